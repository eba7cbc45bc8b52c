package bitpath

import (
	"testing"

	"github.com/inkbound/tvg/errs"
	"github.com/stretchr/testify/require"
)

func TestDecode_SingleLine(t *testing.T) {
	segs, err := Decode([]byte{0x03}, 1)
	require.NoError(t, err)
	require.Equal(t, []SegmentKind{Line}, segs)
}

func TestDecode_SingleCubic(t *testing.T) {
	segs, err := Decode([]byte{0x09}, 3)
	require.NoError(t, err)
	require.Equal(t, []SegmentKind{Cubic}, segs)
}

func TestDecode_TwoCubics(t *testing.T) {
	segs, err := Decode([]byte{0x49}, 6)
	require.NoError(t, err)
	require.Equal(t, []SegmentKind{Cubic, Cubic}, segs)
}

func TestDecode_ThreeCubics(t *testing.T) {
	segs, err := Decode([]byte{0x49, 0x02}, 9)
	require.NoError(t, err)
	require.Equal(t, []SegmentKind{Cubic, Cubic, Cubic}, segs)
}

func TestDecode_ThreeCubicsThenLine(t *testing.T) {
	segs, err := Decode([]byte{0x49, 0x06}, 10)
	require.NoError(t, err)
	require.Equal(t, []SegmentKind{Cubic, Cubic, Cubic, Line}, segs)
}

func TestDecode_LineThenTenCubics(t *testing.T) {
	segs, err := Decode([]byte{0x93, 0x24, 0x49, 0x92}, 31)
	require.NoError(t, err)

	want := []SegmentKind{Line}
	for i := 0; i < 10; i++ {
		want = append(want, Cubic)
	}
	require.Equal(t, want, segs)
}

func TestDecode_MissingMoveToBit(t *testing.T) {
	_, err := Decode([]byte{0x00}, 1)
	require.ErrorIs(t, err, errs.ErrMalformedPath)
}

func TestDecode_NonZeroPadding(t *testing.T) {
	// Declares one line segment (bits 0,1 = 1,1) but leaves a stray set bit
	// in the padding region.
	_, err := Decode([]byte{0x83}, 1)
	require.ErrorIs(t, err, errs.ErrMalformedPath)
}

func TestDecode_TruncatedSegmentCode(t *testing.T) {
	// moveTo bit plus five single-bit line codes exactly fill bits 0-5,
	// consuming 5 of a declared 6-point budget; the sixth point forces one
	// more segment attempt whose cubic-shaped prefix runs past the end of
	// the one-byte buffer.
	_, err := Decode([]byte{0x3F}, 6)
	require.ErrorIs(t, err, errs.ErrMalformedPath)
}

func TestDecode_UnrecognizedCode(t *testing.T) {
	// moveTo=1 (bit0), then bits 1,2,3 = 0,0,0: "000" is not a valid
	// segment code (cubic requires "001").
	_, err := Decode([]byte{0x01}, 1)
	require.ErrorIs(t, err, errs.ErrMalformedPath)
}

func TestDecode_OvershootingSegment(t *testing.T) {
	// Single cubic segment (3 points) against a budget of only 2.
	_, err := Decode([]byte{0x09}, 2)
	require.ErrorIs(t, err, errs.ErrMalformedPath)
}

func TestDecode_EmptyInput(t *testing.T) {
	_, err := Decode(nil, 1)
	require.ErrorIs(t, err, errs.ErrMalformedPath)
}

func TestDecode_ZeroPointBudgetRequiresAllZeroPadding(t *testing.T) {
	segs, err := Decode([]byte{0x01}, 0)
	require.NoError(t, err)
	require.Empty(t, segs)
}

func TestSegmentKind_PointCount(t *testing.T) {
	require.Equal(t, 1, Line.PointCount())
	require.Equal(t, 3, Cubic.PointCount())
}

func TestSegmentKind_String(t *testing.T) {
	require.Equal(t, "line", Line.String())
	require.Equal(t, "cubic", Cubic.String())
}
