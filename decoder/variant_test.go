package decoder

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/variantfmt/variant/errs"
)

var emptyMetadata = []byte{0x01, 0x00, 0x00}

func TestDecode_Int8(t *testing.T) {
	v, err := Decode(emptyMetadata, []byte{0x0C, 0x2A})
	require.NoError(t, err)

	kind, err := v.Kind()
	require.NoError(t, err)
	require.Equal(t, KindInt8, kind)

	got, err := v.Int8()
	require.NoError(t, err)
	require.Equal(t, int8(42), got)
}

func TestDecode_ShortString(t *testing.T) {
	value := append([]byte{byte(5<<2) | 0x1}, "hello"...)
	v, err := Decode(emptyMetadata, value)
	require.NoError(t, err)

	kind, err := v.Kind()
	require.NoError(t, err)
	require.Equal(t, KindString, kind)

	s, err := v.StringValue()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestDecode_LongString(t *testing.T) {
	text := "this string is deliberately longer than sixty three bytes so it needs the long form"
	value := []byte{byte(16)<<2 | 0x0}
	lenBuf := make([]byte, 4)
	lenBuf[0] = byte(len(text))
	lenBuf[1] = byte(len(text) >> 8)
	value = append(value, lenBuf...)
	value = append(value, text...)

	v, err := Decode(emptyMetadata, value)
	require.NoError(t, err)
	s, err := v.StringValue()
	require.NoError(t, err)
	require.Equal(t, text, s)
}

func TestDecode_WrongAccessorReturnsError(t *testing.T) {
	v, err := Decode(emptyMetadata, []byte{0x0C, 0x2A})
	require.NoError(t, err)

	_, err = v.Bool()
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestDecode_Decimal4(t *testing.T) {
	value := []byte{byte(8)<<2 | 0x0, 2, 0x10, 0x00, 0x00, 0x00}
	v, err := Decode(emptyMetadata, value)
	require.NoError(t, err)
	d, err := v.Decimal4()
	require.NoError(t, err)
	require.Equal(t, uint8(2), d.Scale)
	require.Equal(t, int32(0x10), d.Unscaled)
}

func TestDecode_Decimal16_Negative(t *testing.T) {
	neg := big.NewInt(-42)
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	twos := new(big.Int).Add(mod, neg)
	bytesBE := make([]byte, 16)
	twos.FillBytes(bytesBE)
	bytesLE := make([]byte, 16)
	for i := 0; i < 16; i++ {
		bytesLE[i] = bytesBE[15-i]
	}

	value := append([]byte{byte(10)<<2 | 0x0, 5}, bytesLE...)
	v, err := Decode(emptyMetadata, value)
	require.NoError(t, err)
	d, err := v.Decimal16()
	require.NoError(t, err)
	require.Equal(t, 0, neg.Cmp(d.Unscaled))
}

func TestDecode_EmptyArray(t *testing.T) {
	value := []byte{0x3, 0x00, 0x00} // array header (small, offsetSize=1), n=0, trailing offset 0
	v, err := Decode(emptyMetadata, value)
	require.NoError(t, err)

	list, err := v.List()
	require.NoError(t, err)
	require.Equal(t, 0, list.Len())
}

func TestDecode_ArrayOfTwoInts(t *testing.T) {
	metadata := emptyMetadata
	elem0 := []byte{0x0C, 0x01}
	elem1 := []byte{0x0C, 0x02}
	payload := append(append([]byte{}, elem0...), elem1...)

	header := arrayHeaderForTest(false, 1)
	value := []byte{header, 0x02}
	value = append(value, 0x00, byte(len(elem0)), byte(len(payload)))
	value = append(value, payload...)

	v, err := Decode(metadata, value)
	require.NoError(t, err)
	list, err := v.List()
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())

	e0, err := list.Element(0)
	require.NoError(t, err)
	n0, err := e0.Int8()
	require.NoError(t, err)
	require.Equal(t, int8(1), n0)

	e1, err := list.Element(1)
	require.NoError(t, err)
	n1, err := e1.Int8()
	require.NoError(t, err)
	require.Equal(t, int8(2), n1)
}

func arrayHeaderForTest(isLarge bool, offsetSize int) byte {
	var largeBit byte
	if isLarge {
		largeBit = 1
	}

	return largeBit<<4 | byte(offsetSize-1)<<2 | byte(0x3)
}
