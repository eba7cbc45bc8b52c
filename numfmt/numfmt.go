// Package numfmt decodes the container's custom 32-bit number format.
//
// The format packs a sign, exponent, and fraction into the same
// [S:1|E:8|F:23] shape as IEEE-754 single precision, but the fraction
// has no implicit leading bit and contributes an integer-weighted term
// rather than a pure binary fraction: the decoded magnitude is built
// around an implicit 1024 ("1 r unit") base scaled by the exponent, plus
// the top E-0x79 bits of the fraction field (up to all 23) added at a
// fixed step of 16 per unit, unscaled. See Decode for the exact
// derivation and the calibration table it was checked against.
package numfmt

import "math"

const (
	signMask = uint32(1) << 31
	expShift = 23
	expMask  = uint32(0xFF)
	fracMask = uint32(0x7FFFFF)
	fracBits = 23

	// expBias centers the exponent field the same way IEEE-754 does.
	expBias = 0x7F

	// fracBiasExp is the exponent at which the fraction field starts
	// contributing bits: k = E - fracBiasExp.
	fracBiasExp = 0x79

	// baseUnit is the implicit magnitude contributed by the exponent term
	// alone, before any fraction bits are folded in ("1 r unit" in the
	// calibration notes, decomposed there as 64 steps of 16).
	baseUnit = 1024.0

	// stepSize is the magnitude contributed by one unit of the top-k-bit
	// fraction value, independent of k — verified against every
	// calibration sample that isolates a single set fraction bit.
	stepSize = 16.0
)

// Extreme reports that a decoded word fell in the format's undefined
// region (exponent all-ones, or a fraction bit budget wider than the
// 23-bit field). The decoder still returns a best-effort value in this
// case, per the "flag rather than abort" guidance for NumericExtreme.
type Extreme struct {
	Word   uint32
	Reason string
}

// Decode interprets word as a 32-bit big-endian [S:1|E:8|F:23] word in
// the container's custom numeric format and returns the resulting
// float64.
//
//	if word == 0: 0
//	else:
//	  k          = max(0, E - 0x79)
//	  availBits  = min(k, 23)
//	  topBits    = top availBits bits of F
//	  fracBits   = topBits << (k - availBits)   // zero-filled once k > 23
//	  mag        = 1024 * 2^(E - 0x7F) + 16 * fracBits
//	  result     = -mag if S else mag
//
// If extreme is non-nil, word fell in the undefined region (E == 0xFF,
// or k > 23) and the returned value is this formula's limit rather than
// a calibrated sample.
func Decode(word uint32) (value float64, extreme *Extreme) {
	if word == 0 {
		return 0, nil
	}

	sign := word&signMask != 0
	exp := int((word >> expShift) & expMask)
	frac := word & fracMask

	var ext *Extreme
	if exp == 0xFF {
		ext = &Extreme{Word: word, Reason: "exponent field is all-ones"}
	}

	k := exp - fracBiasExp
	if k < 0 {
		k = 0
	}

	availBits := k
	if availBits > fracBits {
		availBits = fracBits
		ext = &Extreme{Word: word, Reason: "fraction bit budget exceeds field width"}
	}

	topBits := frac >> uint(fracBits-availBits)
	fracVal := uint64(topBits) << uint(k-availBits)

	mag := baseUnit*math.Pow(2, float64(exp-expBias)) + stepSize*float64(fracVal)

	if sign {
		mag = -mag
	}

	return mag, ext
}
