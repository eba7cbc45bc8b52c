//go:build !nocgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses a serialized document with Zstandard via gozstd's
// cgo binding to the reference C library, at a level favoring ratio over
// speed since documents are compressed once and decompressed often.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress reverses Compress.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
