// Package byteio provides a length-checked cursor over an immutable byte
// slice, with primitive readers for the fixed-width integers, strings,
// and byte runs the tag dispatcher and structural decoders need.
//
// Every read is bounds-checked; a short read returns errs.ErrTruncatedInput
// rather than panicking. Reader never mutates the underlying slice, and
// the methods that return strings or byte blobs copy them out first, so
// callers may retain those values past the lifetime of the input buffer.
package byteio

import (
	"unicode/utf8"

	"github.com/inkbound/tvg/endian"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/numfmt"
)

// Reader is a cursor over a byte slice. The zero value is not usable; use
// NewReader.
type Reader struct {
	data        []byte
	pos         int
	base        int64 // absolute offset of data[0] within the original input, for error reporting
	engine      endian.EndianEngine
	diagnostics []*numfmt.Extreme
}

// NewReader creates a Reader over data using engine for multi-byte
// integer decoding. The TVG wire format is always big-endian (see
// package endian), but the reader stays engine-parameterized.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// newSub creates a Reader over a sub-slice, preserving absolute offsets
// for error reporting.
func newSub(data []byte, base int64, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, base: base, engine: engine}
}

// Offset returns the absolute byte offset of the cursor within the
// original top-level input, for use in error reporting.
func (r *Reader) Offset() int64 {
	return r.base + int64(r.pos)
}

// Remaining returns the number of unread bytes in this reader's window.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Len returns the total size of this reader's window, read or not.
func (r *Reader) Len() int {
	return len(r.data)
}

func (r *Reader) require(n int) error {
	if n < 0 || r.Remaining() < n {
		return errs.Wrap(errs.ErrTruncatedInput, r.Offset(), "need %d bytes, have %d", n, r.Remaining())
	}

	return nil
}

// PeekU8 returns the next byte without advancing the cursor.
func (r *Reader) PeekU8() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}

	return r.data[r.pos], nil
}

// ReadU8 reads and consumes one byte.
func (r *Reader) ReadU8() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadU16 reads and consumes a 2-byte unsigned integer using the reader's
// endian engine.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}

	v := r.engine.Uint16(r.data[r.pos : r.pos+2])
	r.pos += 2

	return v, nil
}

// ReadU32 reads and consumes a 4-byte unsigned integer using the reader's
// endian engine.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}

	v := r.engine.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4

	return v, nil
}

// ReadNumber reads and consumes a 4-byte number-format word and decodes it
// through numfmt.Decode. If the word falls in the format's undefined
// region, the resulting diagnostic is appended to the reader's
// diagnostics rather than turning into an error: the caller still gets a
// best-effort value.
func (r *Reader) ReadNumber() (float64, error) {
	word, err := r.ReadU32()
	if err != nil {
		return 0, err
	}

	value, extreme := numfmt.Decode(word)
	if extreme != nil {
		r.diagnostics = append(r.diagnostics, extreme)
	}

	return value, nil
}

// Diagnostics returns the NumericExtreme warnings accumulated by every
// ReadNumber call made directly through this reader. Warnings from
// sub-readers must be merged in explicitly via AdoptDiagnostics.
func (r *Reader) Diagnostics() []*numfmt.Extreme {
	return r.diagnostics
}

// AdoptDiagnostics appends sub's accumulated diagnostics onto r. Structural
// decoders that carve off a SubReader for a nested context call this after
// the nested decoder returns, so NumericExtreme warnings bubble up to the
// top-level Reader passed to decode.File.
func (r *Reader) AdoptDiagnostics(sub *Reader) {
	r.diagnostics = append(r.diagnostics, sub.diagnostics...)
}

// ReadBytes reads and consumes n raw bytes, returned as a freshly
// allocated copy so the result safely outlives the input buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n

	return out, nil
}

// ReadUTF8 reads and consumes n bytes and returns them as a string,
// copied out of the input buffer.
func (r *Reader) ReadUTF8(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.Wrap(errs.ErrMalformedPalette, r.Offset(), "invalid UTF-8 in %d-byte string", n)
	}

	return string(b), nil
}

// Skip advances the cursor by n bytes without interpreting them. Used by
// decoders honoring the "skip to the end" forward-compatibility escape
// hatch for extended tag payloads.
func (r *Reader) Skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}

	r.pos += n

	return nil
}

// SubReader carves out the next n bytes as an independent Reader whose
// window is exactly those n bytes, and advances this reader's cursor past
// them. The returned sub-reader must be fully consumed by its decoder;
// checking that is the caller's responsibility via ExpectExhausted.
func (r *Reader) SubReader(n int) (*Reader, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}

	sub := newSub(r.data[r.pos:r.pos+n], r.Offset(), r.engine)
	r.pos += n

	return sub, nil
}

// ExpectExhausted returns errs.ErrTrailingBytes if this reader's window
// has unread bytes remaining. Structural decoders call this after reading
// every tag they understand from a sub-reader, per the §4.1 contract that
// sub-readers must be fully consumed.
func (r *Reader) ExpectExhausted() error {
	if r.Remaining() != 0 {
		return errs.Wrap(errs.ErrTrailingBytes, r.Offset(), "%d bytes left unread", r.Remaining())
	}

	return nil
}
