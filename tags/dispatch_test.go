package tags

import (
	"testing"

	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/endian"
	"github.com/inkbound/tvg/errs"
	"github.com/inkbound/tvg/record"
	"github.com/stretchr/testify/require"
)

func reader(data []byte) *byteio.Reader {
	return byteio.NewReader(data, endian.GetBigEndianEngine())
}

func TestReadHeader_Width1(t *testing.T) {
	r := reader([]byte{0x02, 0x05})
	ctx := Context{IDWidth: Width1, LengthWidth: Width1}

	id, length, err := ReadHeader(r, ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(0x02), id)
	require.Equal(t, uint64(5), length)
}

func TestReadHeader_MixedWidths(t *testing.T) {
	r := reader([]byte{0x01, 0x00, 0x00, 0x00, 0x10})
	ctx := Context{IDWidth: Width1, LengthWidth: Width4}

	id, length, err := ReadHeader(r, ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01), id)
	require.Equal(t, uint64(0x10), length)
}

func TestDispatch_KnownAndUnknown(t *testing.T) {
	// tag 0x01, len 2, body "hi"; tag 0x02 (unrecognized), len 1, body 'z'
	data := []byte{0x01, 0x02, 'h', 'i', 0x02, 0x01, 'z'}
	r := reader(data)
	ctx := Context{IDWidth: Width1, LengthWidth: Width1}

	var gotBody string
	handlers := map[uint32]Handler{
		0x01: func(body *byteio.Reader) (record.Record, error) {
			b, err := body.ReadBytes(2)
			if err != nil {
				return record.Record{}, err
			}
			gotBody = string(b)
			return record.Record{Type: "greeting", Content: gotBody}, nil
		},
	}

	records, err := Dispatch(r, ctx, handlers, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "greeting", records[0].Type)
	require.Equal(t, "hi", gotBody)
	require.Equal(t, "unknown", records[1].Type)

	unk, ok := records[1].Content.(record.Unknown)
	require.True(t, ok)
	require.Equal(t, "0x02", unk.ID)
	require.Equal(t, []byte("z"), unk.Bytes)
}

func TestDispatch_HandlerMustConsumeBody(t *testing.T) {
	data := []byte{0x01, 0x02, 'h', 'i'}
	r := reader(data)
	ctx := Context{IDWidth: Width1, LengthWidth: Width1}

	handlers := map[uint32]Handler{
		0x01: func(body *byteio.Reader) (record.Record, error) {
			_, err := body.ReadU8()
			return record.Record{Type: "partial"}, err
		},
	}

	_, err := Dispatch(r, ctx, handlers, nil)
	require.ErrorIs(t, err, errs.ErrTrailingBytes)
}

func TestDispatch_TruncatedHeader(t *testing.T) {
	r := reader([]byte{0x01})
	ctx := Context{IDWidth: Width1, LengthWidth: Width1}

	_, err := Dispatch(r, ctx, nil, nil)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestDispatch_BudgetExceeded(t *testing.T) {
	data := []byte{0x01, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	r := reader(data)
	ctx := Context{IDWidth: Width1, LengthWidth: Width1}
	budget := NewBudget(4)

	_, err := Dispatch(r, ctx, map[uint32]Handler{}, budget)
	require.ErrorIs(t, err, errs.ErrResourceLimit)
}

func TestBudget_NilIsUnbounded(t *testing.T) {
	var b *Budget
	require.NoError(t, b.Charge(1<<40))
}

func TestBudget_ChargeDeducts(t *testing.T) {
	b := NewBudget(10)
	require.NoError(t, b.Charge(6))
	require.NoError(t, b.Charge(4))
	require.ErrorIs(t, b.Charge(1), errs.ErrResourceLimit)
}
