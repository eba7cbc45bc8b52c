// Package emit serializes a decoded record.File through the boundary
// encoding described in §6.2: a self-describing MessagePack document,
// with an optional compression stage applied to the serialized bytes.
package emit

import (
	"github.com/inkbound/tvg/compress"
	"github.com/inkbound/tvg/format"
	"github.com/inkbound/tvg/internal/pool"
	"github.com/inkbound/tvg/record"
	"github.com/vmihailenco/msgpack/v5"
)

// Document serializes file to MessagePack bytes and applies compression,
// which may be format.CompressionNone to skip it. The returned slice is
// freshly allocated and owned by the caller.
func Document(file *record.File, compression format.CompressionType) ([]byte, error) {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if err := msgpack.NewEncoder(buf).Encode(tree(file)); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, err
	}

	// Compress may hand back a slice aliasing the pooled buffer (NoOp
	// does); copy out before the buffer is reset and reused.
	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Parse reverses the compression stage Document applied and decodes the
// MessagePack document into a generic tree. It does not reconstruct
// record.File's typed content — the boundary format is self-describing,
// not schema-bound — callers that need the typed document should keep
// the *record.File returned by decode.File instead of round-tripping
// through Parse.
func Parse(data []byte, compression format.CompressionType) (any, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	var tree any
	if err := msgpack.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}

	return tree, nil
}
