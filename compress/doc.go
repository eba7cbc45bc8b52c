// Package compress provides compression and decompression codecs for the
// serialized documents produced by the emit package.
//
// The TVG wire format itself is never compressed — the decoder never sees
// compressed bytes. This package only applies to the output side: once a
// decoded document has been serialized through the boundary encoder
// (MessagePack, see package emit), the caller may optionally shrink it
// further before writing it to storage or sending it over the network.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no compression, zero overhead.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Two build
//     variants exist — a cgo-accelerated path over gozstd (zstd_cgo.go,
//     build tag !nocgo, the default) and a pure-Go fallback over
//     klauspost/compress/zstd (zstd_pure.go, build tag nocgo, opt in
//     with "go build -tags nocgo").
//   - S2 (format.CompressionS2): fast, decent ratio, good default for
//     interactive viewers re-fetching documents frequently.
//   - LZ4 (format.CompressionLZ4): fastest decompression, useful when the
//     consumer decompresses far more often than it compresses.
//
// # Selection guide
//
// | Scenario                        | Recommended |
// |----------------------------------|-------------|
// | Archiving decoded documents       | Zstd        |
// | Interactive viewer round-trips    | S2          |
// | Read-heavy caches                 | LZ4         |
// | Local debugging / golden fixtures | None        |
//
// # Thread safety
//
// All codec implementations are safe for concurrent use; none carry
// mutable state between calls beyond pooled scratch buffers.
package compress
