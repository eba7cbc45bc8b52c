package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/internal/collision"
	"github.com/inkbound/tvg/internal/hash"
	"github.com/inkbound/tvg/record"
	"github.com/inkbound/tvg/tags"
)

// decodePaletteTag decodes a "palette" tag's body into its ordered list
// of color entries. Display-name collisions are tracked but not fatal —
// the palette resolves every reference by numeric id, never by name.
func decodePaletteTag(cfg *config) tags.Handler {
	return func(body *byteio.Reader) (record.Record, error) {
		handlers := map[uint32]tags.Handler{
			uint32(tags.TagColor): decodeColorTag(cfg),
		}

		recs, err := tags.Dispatch(body, tags.PaletteCtx, handlers, cfg.budget)
		if err != nil {
			return record.Record{}, err
		}

		tracker := collision.NewNameTracker()
		colors := make([]record.Color, 0, len(recs))
		for _, rec := range recs {
			color := rec.Content.(record.Color)
			_ = tracker.TrackName(color.ID.Name, hash.ID(color.ID.Name))
			colors = append(colors, color)
		}

		return record.Record{Type: "palette", Content: record.Palette{
			Colors:           colors,
			HasNameCollision: tracker.HasCollision(),
		}}, nil
	}
}

// decodeColorTag decodes one "color" entry: its required color_id and
// color_rgba tags, plus any other tags preserved as Unknown.
func decodeColorTag(cfg *config) tags.Handler {
	return func(body *byteio.Reader) (record.Record, error) {
		handlers := map[uint32]tags.Handler{
			uint32(tags.TagColorID):   decodeColorIDTag,
			uint32(tags.TagColorRGBA): decodeColorRGBATag,
		}

		recs, err := tags.Dispatch(body, tags.ColorCtx, handlers, cfg.budget)
		if err != nil {
			return record.Record{}, err
		}

		var color record.Color
		var haveID, haveRGBA bool

		for _, rec := range recs {
			switch rec.Type {
			case "color_id":
				color.ID = rec.Content.(record.ColorID)
				haveID = true
			case "color_rgba":
				color.RGBA = rec.Content.(record.RGBA)
				haveRGBA = true
			default:
				color.Unknown = append(color.Unknown, rec)
			}
		}

		if !haveID || !haveRGBA {
			return record.Record{}, errs.Wrap(errs.ErrMalformedPalette, body.Offset(), "color entry missing required tag")
		}

		return record.Record{Type: "color", Content: color}, nil
	}
}

func decodeColorIDTag(body *byteio.Reader) (record.Record, error) {
	rawID, err := body.ReadU32()
	if err != nil {
		return record.Record{}, err
	}

	paletteName, err := readShortString(body)
	if err != nil {
		return record.Record{}, err
	}

	name, err := readShortString(body)
	if err != nil {
		return record.Record{}, err
	}

	return record.Record{Type: "color_id", Content: record.ColorID{
		ID:      int64(rawID),
		Palette: paletteName,
		Name:    name,
	}}, nil
}

func decodeColorRGBATag(body *byteio.Reader) (record.Record, error) {
	raw, err := body.ReadBytes(4)
	if err != nil {
		return record.Record{}, err
	}

	return record.Record{Type: "color_rgba", Content: record.RGBA{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}}, nil
}

// readShortString reads a single-byte length prefix followed by that
// many bytes of UTF-8 text, the format color names and palette names are
// stored as.
func readShortString(body *byteio.Reader) (string, error) {
	n, err := body.ReadU8()
	if err != nil {
		return "", err
	}

	return body.ReadUTF8(int(n))
}
