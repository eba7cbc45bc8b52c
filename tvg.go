// Package tvg provides a convenient top-level entry point over the
// decode, emit, and record packages for the common case: turn a TVG
// file's bytes into the same self-describing document the format's own
// tools exchange, optionally compressed.
//
// For fine-grained control — inspecting the decoded tree before
// emission, reusing a single Option set across many files, reaching the
// typed record.File directly — use the decode and emit packages.
//
//	data, err := tvg.Decode(fileBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := tvg.Decode(fileBytes,
//	    tvg.WithAllocationLimit(64<<20),
//	    tvg.WithOutputCompression(format.CompressionZstd),
//	)
package tvg

import (
	"github.com/inkbound/tvg/decode"
	"github.com/inkbound/tvg/emit"
	"github.com/inkbound/tvg/format"
	"github.com/inkbound/tvg/internal/options"
	"github.com/inkbound/tvg/record"
)

// config holds the tunables Option can adjust, layered over decode's own
// config so a single options.Apply pass configures both stages.
type config struct {
	decodeOpts  []decode.Option
	compression format.CompressionType
}

func defaultConfig() *config {
	return &config{compression: format.CompressionNone}
}

// Option configures Decode and ParseFile.
type Option = options.Option[*config]

// WithAllocationLimit forwards to decode.WithAllocationLimit.
func WithAllocationLimit(maxBytes int64) Option {
	return options.NoError(func(c *config) {
		c.decodeOpts = append(c.decodeOpts, decode.WithAllocationLimit(maxBytes))
	})
}

// WithStrictNumerics forwards to decode.WithStrictNumerics.
func WithStrictNumerics() Option {
	return options.NoError(func(c *config) {
		c.decodeOpts = append(c.decodeOpts, decode.WithStrictNumerics())
	})
}

// WithOutputCompression selects the codec Decode applies to the emitted
// document. Defaults to format.CompressionNone.
func WithOutputCompression(compression format.CompressionType) Option {
	return options.NoError(func(c *config) {
		c.compression = compression
	})
}

// Decode parses a TVG file's bytes and serializes the decoded tree to
// its self-describing document form, the same bytes a decode.File +
// emit.Document call pair would produce.
func Decode(data []byte, opts ...Option) ([]byte, error) {
	file, err := ParseFile(data, opts...)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return emit.Document(file, cfg.compression)
}

// ParseFile parses a TVG file's bytes into its typed document tree,
// skipping the emission stage entirely. Use this when the caller wants
// to inspect or transform the tree rather than re-serialize it whole.
func ParseFile(data []byte, opts ...Option) (*record.File, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return decode.File(data, cfg.decodeOpts...)
}
