package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/record"
)

// decodeIdentityTag decodes an "identity" tag, used both at the file
// root and nested inside a "main" body: raw UTF-8 text spanning the
// whole payload.
func decodeIdentityTag(body *byteio.Reader) (record.Record, error) {
	text, err := body.ReadUTF8(body.Remaining())
	if err != nil {
		return record.Record{}, err
	}

	return record.Record{Type: "identity", Content: record.Identity{Text: text}}, nil
}

// decodeCertificateTag decodes a "certificate" tag: opaque bytes, left
// for the caller to validate.
func decodeCertificateTag(body *byteio.Reader) (record.Record, error) {
	raw, err := body.ReadBytes(body.Remaining())
	if err != nil {
		return record.Record{}, err
	}

	return record.Record{Type: "certificate", Content: record.Certificate{Bytes: raw}}, nil
}

// decodeSignatureTag decodes a "signature" tag: likewise opaque bytes.
func decodeSignatureTag(body *byteio.Reader) (record.Record, error) {
	raw, err := body.ReadBytes(body.Remaining())
	if err != nil {
		return record.Record{}, err
	}

	return record.Record{Type: "signature", Content: record.Signature{Bytes: raw}}, nil
}
