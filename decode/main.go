package decode

import (
	"strconv"

	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/internal/collision"
	"github.com/inkbound/tvg/internal/hash"
	"github.com/inkbound/tvg/record"
	"github.com/inkbound/tvg/tags"
)

// decodeMainTag decodes a "main" tag's body: a palette, the four layer
// tags (collected positionally regardless of source order), and an
// optional nested identity.
func decodeMainTag(cfg *config) tags.Handler {
	return func(body *byteio.Reader) (record.Record, error) {
		handlers := map[uint32]tags.Handler{
			uint32(tags.TagPalette):       decodePaletteTag(cfg),
			uint32(tags.TagMainIdentity):  decodeIdentityTag,
			uint32(tags.TagLayerUnderlay): decodeLayerTag(cfg, "layer_underlay"),
			uint32(tags.TagLayerColor):    decodeLayerTag(cfg, "layer_color"),
			uint32(tags.TagLayerLine):     decodeLayerTag(cfg, "layer_line"),
			uint32(tags.TagLayerOverlay):  decodeLayerTag(cfg, "layer_overlay"),
		}

		recs, err := tags.Dispatch(body, tags.MainCtx, handlers, cfg.budget)
		if err != nil {
			return record.Record{}, err
		}

		var main record.Main
		onceLayers := collision.NewOnceSet()

		for _, rec := range recs {
			idx, isLayer := layerIndexForType(rec.Type)
			switch {
			case rec.Type == "palette":
				main.Palette = rec.Content.(record.Palette)
			case rec.Type == "identity":
				id := rec.Content.(record.Identity)
				main.Identity = &id
			case isLayer:
				if err := onceLayers.Mark(rec.Type); err != nil {
					return record.Record{}, errs.Wrap(errs.ErrDuplicateTag, body.Offset(), "%s repeated", rec.Type)
				}
				layer := rec.Content.(record.Layer)
				layer.Present = true
				main.Layers[idx] = layer
			}
		}

		main.UnresolvedColorIDs = unresolvedColorIDs(main.Palette, main.Layers)

		return record.Record{Type: "main", Content: main}, nil
	}
}

func layerIndexForType(t string) (int, bool) {
	switch t {
	case "layer_underlay":
		return record.LayerUnderlay, true
	case "layer_color":
		return record.LayerColor, true
	case "layer_line":
		return record.LayerLine, true
	case "layer_overlay":
		return record.LayerOverlay, true
	default:
		return 0, false
	}
}

// unresolvedColorIDs walks every component's info tag and reports, in
// first-seen order, the color ids that don't resolve against the
// palette. Membership is checked against a set of the palette's ids keyed
// by internal/hash, the same hashing the palette uses for display names.
func unresolvedColorIDs(palette record.Palette, layers [4]record.Layer) []uint64 {
	known := make(map[uint64]struct{}, len(palette.Colors))
	for _, c := range palette.Colors {
		known[hash.ID(strconv.FormatInt(c.ID.ID, 10))] = struct{}{}
	}

	var unresolved []uint64
	seen := make(map[uint64]struct{})

	for _, layer := range layers {
		for _, shape := range layer.Shapes {
			for _, comp := range shape.Components {
				if comp.Info.ColorID == nil {
					continue
				}

				id := *comp.Info.ColorID
				key := hash.ID(strconv.FormatInt(id, 10))
				if _, ok := known[key]; ok {
					continue
				}

				u := uint64(id)
				if _, dup := seen[u]; dup {
					continue
				}
				seen[u] = struct{}{}
				unresolved = append(unresolved, u)
			}
		}
	}

	return unresolved
}
