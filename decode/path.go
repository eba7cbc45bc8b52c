package decode

import (
	"github.com/inkbound/tvg/bitpath"
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/internal/pool"
	"github.com/inkbound/tvg/record"
)

// bytesPerPoint is the wire size of one point: two 4-byte numbers, X
// then Y.
const bytesPerPoint = 8

// decodePathTag decodes a "path" tag: a declared point count, the
// curve-instruction prefix that accounts for every point but the
// leading anchor, and the flat point list itself.
func decodePathTag(body *byteio.Reader) (record.Record, error) {
	pointCount, err := body.ReadU16()
	if err != nil {
		return record.Record{}, err
	}
	if pointCount < 2 {
		return record.Record{}, errs.Wrap(errs.ErrMalformedPath, body.Offset(), "path declares %d points, need at least 2", pointCount)
	}

	pointBytes := int(pointCount) * bytesPerPoint
	prefixLen := body.Remaining() - pointBytes
	if prefixLen < 0 {
		return record.Record{}, errs.Wrap(errs.ErrMalformedPath, body.Offset(), "declared point count overruns tag payload")
	}

	prefix, err := body.ReadBytes(prefixLen)
	if err != nil {
		return record.Record{}, err
	}

	kinds, err := bitpath.Decode(prefix, int(pointCount)-1)
	if err != nil {
		return record.Record{}, err
	}

	// Stage the flat X/Y list in a pooled scratch buffer before pairing it
	// off into points, so each path tag reuses one coordinate buffer
	// instead of allocating a fresh one.
	coords, release := pool.GetFloat64Slice(int(pointCount) * 2)
	defer release()

	for i := range coords {
		v, err := body.ReadNumber()
		if err != nil {
			return record.Record{}, err
		}
		coords[i] = v
	}

	points := make([]record.Point, pointCount)
	for i := range points {
		points[i] = record.Point{X: coords[2*i], Y: coords[2*i+1]}
	}

	segments := make([]record.Segment, 0, len(kinds))
	cursor := 1
	for _, kind := range kinds {
		n := kind.PointCount()
		segments = append(segments, record.Segment{
			Kind:   segmentKind(kind),
			Points: points[cursor : cursor+n],
		})
		cursor += n
	}

	return record.Record{Type: "path", Content: record.Path{
		Start:    points[0],
		Segments: segments,
	}}, nil
}

func segmentKind(k bitpath.SegmentKind) record.SegmentKind {
	if k == bitpath.Cubic {
		return record.Cubic
	}
	return record.Line
}

func decodePoint(body *byteio.Reader) (record.Point, error) {
	x, err := body.ReadNumber()
	if err != nil {
		return record.Point{}, err
	}

	y, err := body.ReadNumber()
	if err != nil {
		return record.Point{}, err
	}

	return record.Point{X: x, Y: y}, nil
}
