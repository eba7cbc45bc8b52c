package decode

import (
	"testing"

	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/record"
	"github.com/stretchr/testify/require"
)

// zeroEdge is 24 zero bytes: three (0,0) points (offset, ctrlBack,
// ctrlFwd), each the word 0x00000000 twice over.
func zeroEdge() []byte {
	return make([]byte, 24)
}

func thicknessControlPoint(loc float64) []byte {
	out := numWord(loc)
	out = append(out, zeroEdge()...) // left
	out = append(out, zeroEdge()...) // right
	return out
}

func TestDecodeThicknessTag_StrictlyIncreasing(t *testing.T) {
	body := append(point(0, 1024), u16b(2)...)
	body = append(body, thicknessControlPoint(0)...)
	body = append(body, thicknessControlPoint(16)...)

	rec, err := decodeThicknessTag(newTestReader(body))
	require.NoError(t, err)

	thickness := rec.Content.(record.Thickness)
	require.Equal(t, 0.0, thickness.DomainStart)
	require.Equal(t, 1024.0, thickness.DomainEnd)
	require.Len(t, thickness.Points, 2)
	require.Equal(t, 0.0, thickness.Points[0].Loc)
	require.Equal(t, 16.0, thickness.Points[1].Loc)
}

func TestDecodeThicknessTag_NonIncreasingLocIsRejected(t *testing.T) {
	body := append(point(0, 1024), u16b(2)...)
	body = append(body, thicknessControlPoint(16)...)
	body = append(body, thicknessControlPoint(16)...)

	_, err := decodeThicknessTag(newTestReader(body))
	require.ErrorIs(t, err, errs.ErrNonMonotonicThickness)
}

func TestDecodeThicknessTag_DecreasingLocIsRejected(t *testing.T) {
	body := append(point(0, 1024), u16b(2)...)
	body = append(body, thicknessControlPoint(32)...)
	body = append(body, thicknessControlPoint(16)...)

	_, err := decodeThicknessTag(newTestReader(body))
	require.ErrorIs(t, err, errs.ErrNonMonotonicThickness)
}
