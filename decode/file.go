package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/endian"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/internal/options"
	"github.com/inkbound/tvg/record"
	"github.com/inkbound/tvg/tags"
)

var envelopeMagic = [4]byte{'T', 'V', 'G', '1'}

var supportedVersions = map[byte]bool{
	0x01: true,
}

// File decodes a complete TVG byte slice into a record.File: the
// envelope's magic and version discriminator, then its top-level tags
// ("main", "certificate", "identity", "signature", and any unrecognized
// tags) in source order. The number of each recognized tag is not
// checked: a file with no "main" tag, or with several, still decodes.
func File(data []byte, opts ...Option) (*record.File, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := byteio.NewReader(data, endian.GetBigEndianEngine())

	if err := readEnvelope(r); err != nil {
		return nil, err
	}

	handlers := map[uint32]tags.Handler{
		uint32(tags.TagMain):        decodeMainTag(cfg),
		uint32(tags.TagCertificate): decodeCertificateTag,
		uint32(tags.TagIdentity):    decodeIdentityTag,
		uint32(tags.TagSignature):   decodeSignatureTag,
	}

	records, err := tags.Dispatch(r, tags.Root, handlers, cfg.budget)
	if err != nil {
		return nil, err
	}

	file := &record.File{Records: records}

	for _, extreme := range r.Diagnostics() {
		if cfg.strictNumerics {
			return nil, errs.Wrap(errs.ErrNumericExtreme, 0, "%s (word 0x%08x)", extreme.Reason, extreme.Word)
		}
		file.Diagnostics = append(file.Diagnostics, record.NumericExtreme{Word: extreme.Word, Reason: extreme.Reason})
	}

	return file, nil
}

func readEnvelope(r *byteio.Reader) error {
	magic, err := r.ReadBytes(len(envelopeMagic))
	if err != nil {
		return errs.Wrap(errs.ErrUnknownVersion, r.Offset(), "truncated envelope magic")
	}
	if string(magic) != string(envelopeMagic[:]) {
		return errs.Wrap(errs.ErrUnknownVersion, r.Offset(), "unrecognized envelope magic % x", magic)
	}

	version, err := r.ReadU8()
	if err != nil {
		return errs.Wrap(errs.ErrUnknownVersion, r.Offset(), "truncated envelope version")
	}
	if !supportedVersions[version] {
		return errs.Wrap(errs.ErrUnknownVersion, r.Offset(), "unsupported envelope version %d", version)
	}

	return nil
}
