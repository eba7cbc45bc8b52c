package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/record"
	"github.com/inkbound/tvg/tags"
)

// decodeComponentTag decodes a "component" tag: its info record, its
// path, and an optional thickness profile.
func decodeComponentTag(cfg *config) tags.Handler {
	return func(body *byteio.Reader) (record.Record, error) {
		handlers := map[uint32]tags.Handler{
			uint32(tags.TagInfo):      decodeInfoTag,
			uint32(tags.TagPath):      decodePathTag,
			uint32(tags.TagThickness): decodeThicknessTag,
		}

		recs, err := tags.Dispatch(body, tags.ComponentCtx, handlers, cfg.budget)
		if err != nil {
			return record.Record{}, err
		}

		var comp record.Component
		for _, rec := range recs {
			switch rec.Type {
			case "info":
				comp.Info = rec.Content.(record.Info)
			case "path":
				comp.Path = rec.Content.(record.Path)
			case "thickness":
				thickness := rec.Content.(record.Thickness)
				comp.Thickness = &thickness
			}
		}

		return record.Record{Type: "component", Content: comp}, nil
	}
}
