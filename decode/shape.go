package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/record"
	"github.com/inkbound/tvg/tags"
)

// decodeShapeTag decodes a "shape" tag: a 1-byte paint-kind
// discriminator followed by its ordered component list.
func decodeShapeTag(cfg *config) tags.Handler {
	return func(body *byteio.Reader) (record.Record, error) {
		kind, err := body.ReadU8()
		if err != nil {
			return record.Record{}, err
		}

		handlers := map[uint32]tags.Handler{
			uint32(tags.TagComponent): decodeComponentTag(cfg),
		}

		recs, err := tags.Dispatch(body, tags.ComponentListCtx, handlers, cfg.budget)
		if err != nil {
			return record.Record{}, err
		}

		components := make([]record.Component, 0, len(recs))
		for _, rec := range recs {
			components = append(components, rec.Content.(record.Component))
		}

		return record.Record{Type: "shape", Content: record.Shape{
			Kind:       shapeKindName(kind),
			Components: components,
		}}, nil
	}
}

func shapeKindName(b byte) string {
	switch b {
	case tags.ShapeKindFill:
		return record.ShapeFill
	case tags.ShapeKindStroke:
		return record.ShapeStroke
	case tags.ShapeKindLine:
		return record.ShapeLine
	default:
		return "unknown"
	}
}
