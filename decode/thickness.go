package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/record"
)

// decodeThicknessTag decodes a "thickness" tag: the domain the profile
// applies over, then a strictly loc-increasing list of control points
// carrying independent left/right offset edges.
func decodeThicknessTag(body *byteio.Reader) (record.Record, error) {
	domainStart, err := body.ReadNumber()
	if err != nil {
		return record.Record{}, err
	}
	domainEnd, err := body.ReadNumber()
	if err != nil {
		return record.Record{}, err
	}

	count, err := body.ReadU16()
	if err != nil {
		return record.Record{}, err
	}

	points := make([]record.ThicknessPoint, count)
	var prevLoc float64
	haveLoc := false

	for i := range points {
		loc, err := body.ReadNumber()
		if err != nil {
			return record.Record{}, err
		}
		if haveLoc && loc <= prevLoc {
			return record.Record{}, errs.Wrap(errs.ErrNonMonotonicThickness, body.Offset(), "control point %d loc %g not greater than previous %g", i, loc, prevLoc)
		}
		prevLoc = loc
		haveLoc = true

		left, err := decodeEdge(body)
		if err != nil {
			return record.Record{}, err
		}
		right, err := decodeEdge(body)
		if err != nil {
			return record.Record{}, err
		}

		points[i] = record.ThicknessPoint{Loc: loc, Left: left, Right: right}
	}

	return record.Record{Type: "thickness", Content: record.Thickness{
		DomainStart: domainStart,
		DomainEnd:   domainEnd,
		Points:      points,
	}}, nil
}

func decodeEdge(body *byteio.Reader) (record.Edge, error) {
	offset, err := decodePoint(body)
	if err != nil {
		return record.Edge{}, err
	}
	ctrlBack, err := decodePoint(body)
	if err != nil {
		return record.Edge{}, err
	}
	ctrlFwd, err := decodePoint(body)
	if err != nil {
		return record.Edge{}, err
	}

	return record.Edge{Offset: offset, CtrlBack: ctrlBack, CtrlFwd: ctrlFwd}, nil
}
