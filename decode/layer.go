package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/record"
	"github.com/inkbound/tvg/tags"
)

// decodeLayerTag decodes one of the four fixed layer tags: a 1-byte kind
// discriminator, then — only for a vector layer — the ordered shape
// list. A non-vector layer's remaining bytes are skipped rather than
// interpreted, the forward-compatibility escape hatch §4.1 describes.
func decodeLayerTag(cfg *config, recType string) tags.Handler {
	return func(body *byteio.Reader) (record.Record, error) {
		kind, err := body.ReadU8()
		if err != nil {
			return record.Record{}, err
		}

		layer := record.Layer{Kind: layerKindName(kind)}

		if kind == tags.LayerKindVector {
			handlers := map[uint32]tags.Handler{
				uint32(tags.TagShape): decodeShapeTag(cfg),
			}

			recs, err := tags.Dispatch(body, tags.ShapeListCtx, handlers, cfg.budget)
			if err != nil {
				return record.Record{}, err
			}

			layer.Shapes = make([]record.Shape, 0, len(recs))
			for _, rec := range recs {
				layer.Shapes = append(layer.Shapes, rec.Content.(record.Shape))
			}
		} else if err := body.Skip(body.Remaining()); err != nil {
			return record.Record{}, err
		}

		return record.Record{Type: recType, Content: layer}, nil
	}
}

func layerKindName(b byte) string {
	if b == tags.LayerKindVector {
		return "vector"
	}
	return "other"
}
