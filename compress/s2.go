package compress

import "github.com/klauspost/compress/s2"

// S2Compressor applies Snappy-compatible S2 compression to an emitted
// document's bytes. S2 favors decompression speed over ratio, making it
// the reasonable default for a viewer that re-fetches and re-decodes
// documents often.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor. S2Compressor carries no
// state, so every call returns an equivalent value.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses a serialized document with S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
