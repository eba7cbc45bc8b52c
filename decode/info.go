package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/record"
	"github.com/inkbound/tvg/tags"
)

// decodeInfoTag decodes an "info" tag: a 4-byte color reference, with
// tags.InfoAbsentColorID meaning the component carries no color.
func decodeInfoTag(body *byteio.Reader) (record.Record, error) {
	raw, err := body.ReadU32()
	if err != nil {
		return record.Record{}, err
	}

	var info record.Info
	if raw != tags.InfoAbsentColorID {
		id := int64(raw)
		info.ColorID = &id
	}

	return record.Record{Type: "info", Content: info}, nil
}
