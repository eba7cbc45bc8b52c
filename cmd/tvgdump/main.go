// Command tvgdump decodes a TVG file and writes its document form
// (MessagePack, optionally compressed) to a file or stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/inkbound/tvg"
	"github.com/inkbound/tvg/format"
)

var compressionByName = map[string]format.CompressionType{
	"none": format.CompressionNone,
	"zstd": format.CompressionZstd,
	"s2":   format.CompressionS2,
	"lz4":  format.CompressionLZ4,
}

func main() {
	outPath := flag.String("o", "", "output file path (defaults to stdout)")
	compressName := flag.String("compress", "none", "output compression: none, zstd, s2, lz4")
	allocLimit := flag.Int64("max-bytes", 0, "cap cumulative declared tag payload size (0 disables)")
	strict := flag.Bool("strict-numerics", false, "fail on out-of-range numeric words instead of flagging them")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: tvgdump [flags] <file.tvg>")
	}

	compression, ok := compressionByName[*compressName]
	if !ok {
		log.Fatalf("unknown compression %q", *compressName)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	opts := []tvg.Option{tvg.WithOutputCompression(compression)}
	if *allocLimit > 0 {
		opts = append(opts, tvg.WithAllocationLimit(*allocLimit))
	}
	if *strict {
		opts = append(opts, tvg.WithStrictNumerics())
	}

	doc, err := tvg.Decode(data, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if *outPath == "" {
		if _, err := os.Stdout.Write(doc); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := os.WriteFile(*outPath, doc, 0o644); err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", len(doc), *outPath)
}
