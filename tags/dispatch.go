package tags

import (
	"fmt"

	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/record"
)

// Handler decodes one recognized tag's body into a Record. body is a
// subreader windowed to exactly the tag's declared length; the handler
// need not call ExpectExhausted itself — Dispatch does that after the
// handler returns, so a handler that stops early is still caught.
type Handler func(body *byteio.Reader) (record.Record, error)

// Budget tracks a decoder-wide allocation ceiling. Dispatch charges it
// once per tag, by that tag's declared payload length, as a proxy for
// the output size that payload will produce.
type Budget struct {
	remaining int64
}

// NewBudget creates a Budget that allows up to max cumulative bytes of
// declared tag payload across the whole decode.
func NewBudget(max int64) *Budget {
	return &Budget{remaining: max}
}

// Charge deducts n from the budget, returning errs.ErrResourceLimit if
// doing so would take it negative.
func (b *Budget) Charge(n int64) error {
	if b == nil {
		return nil
	}
	if n > b.remaining {
		return errs.ErrResourceLimit
	}
	b.remaining -= n
	return nil
}

// ReadHeader reads one tag id and length field, widths per ctx, and
// returns them widened to uint32 and uint64 respectively.
func ReadHeader(r *byteio.Reader, ctx Context) (id uint32, length uint64, err error) {
	id, err = readWidth(r, ctx.IDWidth)
	if err != nil {
		return 0, 0, err
	}

	length, err = readWidthAsU64(r, ctx.LengthWidth)
	if err != nil {
		return 0, 0, err
	}

	return id, length, nil
}

func readWidth(r *byteio.Reader, w Width) (uint32, error) {
	switch w {
	case Width1:
		b, err := r.ReadU8()
		return uint32(b), err
	case Width2:
		v, err := r.ReadU16()
		return uint32(v), err
	default:
		return r.ReadU32()
	}
}

func readWidthAsU64(r *byteio.Reader, w Width) (uint64, error) {
	v, err := readWidth(r, w)
	return uint64(v), err
}

// Dispatch reads tag records from r under ctx until r is exhausted,
// invoking handlers[id] for each recognized id and folding unrecognized
// ids into record.Unknown. Order is preserved. budget may be nil to
// disable the allocation ceiling.
func Dispatch(r *byteio.Reader, ctx Context, handlers map[uint32]Handler, budget *Budget) ([]record.Record, error) {
	var out []record.Record

	for r.Remaining() > 0 {
		id, length, err := ReadHeader(r, ctx)
		if err != nil {
			return nil, err
		}

		if err := budget.Charge(int64(length)); err != nil {
			return nil, errs.Wrap(err, r.Offset(), "tag 0x%02x declares %d bytes, over the allocation limit", id, length)
		}

		body, err := r.SubReader(int(length))
		if err != nil {
			return nil, err
		}

		rec, err := dispatchOne(id, body, handlers)
		if err != nil {
			return nil, err
		}

		r.AdoptDiagnostics(body)
		out = append(out, rec)
	}

	return out, nil
}

func dispatchOne(id uint32, body *byteio.Reader, handlers map[uint32]Handler) (record.Record, error) {
	handler, ok := handlers[id]
	if !ok {
		raw, err := body.ReadBytes(body.Remaining())
		if err != nil {
			return record.Record{}, err
		}

		return record.Record{Type: "unknown", Content: record.Unknown{ID: fmt.Sprintf("0x%02x", id), Bytes: raw}}, nil
	}

	rec, err := handler(body)
	if err != nil {
		return record.Record{}, err
	}

	if err := body.ExpectExhausted(); err != nil {
		return record.Record{}, err
	}

	return rec, nil
}
