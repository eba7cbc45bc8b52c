// Package bitpath decodes the packed, LSB-first bitstream that encodes a
// path's sequence of curve segments.
//
// Each byte is consumed least-significant-bit first. The stream opens
// with a single fixed bit marking the path's implicit initial moveTo,
// followed by one variable-length code per segment: "1" for a line (one
// control point) and "0" "0" "1" for a cubic curve (three control
// points). Segments are read until their point counts sum to the
// caller's declared budget; any bits left over after that must be zero,
// since a non-zero bit there means the producer encoded more segments
// than the point list actually backs.
package bitpath

import "github.com/inkbound/tvg/errs"

// SegmentKind distinguishes the two curve instructions the bitstream can
// carry.
type SegmentKind int

const (
	// Line consumes one control point.
	Line SegmentKind = iota
	// Cubic consumes three control points (two handles and an endpoint).
	Cubic
)

// PointCount returns the number of control points this segment kind
// consumes from the path's point list.
func (k SegmentKind) PointCount() int {
	if k == Cubic {
		return 3
	}
	return 1
}

func (k SegmentKind) String() string {
	if k == Cubic {
		return "cubic"
	}
	return "line"
}

// reader is a minimal LSB-first bit cursor over a byte slice. Unlike a
// prefetch-window reader built for sustained high-throughput decoding,
// path segment codes are at most 3 bits wide, so a direct byte/bit-index
// pair is enough; there is no 64-bit window to refill.
type reader struct {
	data   []byte
	bitPos int // absolute bit index, LSB-first within each byte
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) totalBits() int {
	return len(r.data) * 8
}

// readBit reads the next bit, or reports false if the stream is exhausted.
func (r *reader) readBit() (bit byte, ok bool) {
	if r.bitPos >= r.totalBits() {
		return 0, false
	}

	byteIdx := r.bitPos / 8
	bitIdx := uint(r.bitPos % 8)
	bit = (r.data[byteIdx] >> bitIdx) & 1
	r.bitPos++

	return bit, true
}

// Decode reads curve instructions from data's bitstream until their
// point counts sum to exactly targetPoints, the budget remaining after
// the path's implicit moveTo anchor point. It validates the leading
// moveTo marker bit, rejects a segment that would overshoot the budget,
// and requires every bit beyond the last decoded segment to be zero.
func Decode(data []byte, targetPoints int) ([]SegmentKind, error) {
	r := newReader(data)

	moveTo, ok := r.readBit()
	if !ok {
		return nil, errs.Wrap(errs.ErrMalformedPath, 0, "empty path bitstream")
	}
	if moveTo != 1 {
		return nil, errs.Wrap(errs.ErrMalformedPath, 0, "missing initial moveTo marker bit")
	}

	var segments []SegmentKind
	consumed := 0

	for consumed < targetPoints {
		kind, err := decodeOne(r)
		if err != nil {
			return nil, err
		}

		consumed += kind.PointCount()
		if consumed > targetPoints {
			return nil, errs.Wrap(errs.ErrMalformedPath, int64(r.bitPos/8), "segment overshoots declared point count")
		}

		segments = append(segments, kind)
	}

	if err := requireZeroPadding(r); err != nil {
		return nil, err
	}

	return segments, nil
}

func decodeOne(r *reader) (SegmentKind, error) {
	b0, ok := r.readBit()
	if !ok {
		return 0, errs.Wrap(errs.ErrMalformedPath, int64(r.bitPos/8), "truncated segment code")
	}
	if b0 == 1 {
		return Line, nil
	}

	b1, ok := r.readBit()
	if !ok {
		return 0, errs.Wrap(errs.ErrMalformedPath, int64(r.bitPos/8), "truncated segment code")
	}
	b2, ok := r.readBit()
	if !ok {
		return 0, errs.Wrap(errs.ErrMalformedPath, int64(r.bitPos/8), "truncated segment code")
	}

	if b1 == 0 && b2 == 1 {
		return Cubic, nil
	}

	return 0, errs.Wrap(errs.ErrMalformedPath, int64(r.bitPos/8), "unrecognized segment code %d%d%d", b0, b1, b2)
}

func requireZeroPadding(r *reader) error {
	for {
		bit, ok := r.readBit()
		if !ok {
			return nil
		}
		if bit != 0 {
			return errs.Wrap(errs.ErrMalformedPath, int64(r.bitPos/8), "non-zero padding after declared segment count")
		}
	}
}
