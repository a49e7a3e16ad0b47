package builder

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/variantfmt/variant/decoder"
)

func TestIntSize(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{0xFF, 1},
		{0x100, 2},
		{0xFFFF, 2},
		{0x10000, 3},
		{0xFFFFFF, 3},
		{0x1000000, 4},
		{0xFFFFFFFF, 4},
	}
	for _, c := range cases {
		require.Equal(t, c.want, intSize(c.v), "intSize(%#x)", c.v)
	}
}

func TestAppendInt8_ExactBytes(t *testing.T) {
	vb := newValueBuffer(8)
	vb.AppendInt8(42)
	require.Equal(t, []byte{0x0C, 0x2A}, vb.Bytes())
}

func TestAppendShortString_ExactBytes(t *testing.T) {
	vb := newValueBuffer(8)
	vb.AppendShortString("hello")
	want := append([]byte{byte(5<<2) | 0x1}, "hello"...)
	require.Equal(t, want, vb.Bytes())
}

func TestAppendShortString_PanicsOnOverlong(t *testing.T) {
	vb := newValueBuffer(8)
	over := make([]byte, MaxShortStringLen+1)
	require.Panics(t, func() { vb.AppendShortString(string(over)) })
}

func TestAppendDecimal16_RoundTripsThroughInt128(t *testing.T) {
	vb := newValueBuffer(32)
	want := big.NewInt(-123456789)
	vb.AppendDecimal16(3, want)

	v, err := decoder.Decode([]byte{0x01, 0x00, 0x00}, vb.Bytes())
	require.NoError(t, err)
	got, err := v.Decimal16()
	require.NoError(t, err)
	require.Equal(t, uint8(3), got.Scale)
	require.Equal(t, 0, want.Cmp(got.Unscaled))
}

func TestAppendDecimal16_LargePositive(t *testing.T) {
	vb := newValueBuffer(32)
	want := new(big.Int).Lsh(big.NewInt(1), 100)
	vb.AppendDecimal16(0, want)

	v, err := decoder.Decode([]byte{0x01, 0x00, 0x00}, vb.Bytes())
	require.NoError(t, err)
	got, err := v.Decimal16()
	require.NoError(t, err)
	require.Equal(t, 0, want.Cmp(got.Unscaled))
}
