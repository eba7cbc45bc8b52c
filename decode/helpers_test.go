package decode

import (
	"github.com/inkbound/tvg/byteio"
	"github.com/inkbound/tvg/endian"
)

func newTestReader(data []byte) *byteio.Reader {
	return byteio.NewReader(data, endian.GetBigEndianEngine())
}

func u16b(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func u32b(v uint32) []byte { return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} }

// tag1w4 frames a tag whose id is 1 byte and whose length is 4 bytes.
func tag1w4(id byte, payload []byte) []byte {
	out := append([]byte{id}, u32b(uint32(len(payload)))...)
	return append(out, payload...)
}

// tag1w2 frames a tag whose id is 1 byte and whose length is 2 bytes.
func tag1w2(id byte, payload []byte) []byte {
	out := append([]byte{id}, u16b(uint16(len(payload)))...)
	return append(out, payload...)
}

// tag1w1 frames a tag whose id and length are both 1 byte.
func tag1w1(id byte, payload []byte) []byte {
	return append([]byte{id, byte(len(payload))}, payload...)
}

func shortString(s string) []byte {
	return append([]byte{byte(len(s))}, []byte(s)...)
}

// numWord encodes one of the calibration table's exact values as its
// 4-byte word, for building test fixtures without hand-deriving bits.
func numWord(value float64) []byte {
	words := map[float64]uint32{
		0:    0x00000000,
		16:   0x3C800000,
		32:   0x3D000000,
		64:   0x3D800000,
		256:  0x3E800000,
		1024: 0x3F800000,
		1040: 0x3F820000,
		2048: 0x40000000,
		-32:  0xBD000000,
	}

	w, ok := words[value]
	if !ok {
		panic("numWord: no calibration word for this value")
	}

	return u32b(w)
}

func point(x, y float64) []byte {
	return append(numWord(x), numWord(y)...)
}
