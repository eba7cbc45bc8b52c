// Package decode implements the structural decoders that turn a TVG byte
// slice into a record.File: the file envelope, the main body and its
// fixed layer set, palettes, shapes, components, paths, and thickness
// profiles.
package decode

import (
	"github.com/inkbound/tvg/internal/options"
	"github.com/inkbound/tvg/tags"
)

// config holds the tunables an Option can adjust.
type config struct {
	budget         *tags.Budget
	strictNumerics bool
}

func defaultConfig() *config {
	return &config{}
}

// Option configures a File decode.
type Option = options.Option[*config]

// WithAllocationLimit caps the cumulative declared tag payload size seen
// during decoding, failing with ResourceLimit once exceeded. Zero or
// negative disables the cap (the default).
func WithAllocationLimit(maxBytes int64) Option {
	return options.NoError(func(c *config) {
		if maxBytes > 0 {
			c.budget = tags.NewBudget(maxBytes)
		}
	})
}

// WithStrictNumerics turns a NumericExtreme diagnostic into a hard
// decode failure instead of a best-effort value with a warning. Off by
// default, matching the "flag rather than abort" guidance for numbers in
// the format's undefined region.
func WithStrictNumerics() Option {
	return options.NoError(func(c *config) {
		c.strictNumerics = true
	})
}
