package decoder

import "math/big"

// Decimal4 is a decoded Decimal4 primitive: scale plus a 32-bit unscaled
// integer, such that the represented value is Unscaled * 10^-Scale.
type Decimal4 struct {
	Scale    uint8
	Unscaled int32
}

// Decimal8 is a decoded Decimal8 primitive: scale plus a 64-bit unscaled
// integer.
type Decimal8 struct {
	Scale    uint8
	Unscaled int64
}

// Decimal16 is a decoded Decimal16 primitive: scale plus a 128-bit
// unscaled integer, represented as a math/big.Int since Go has no native
// 128-bit integer type.
type Decimal16 struct {
	Scale    uint8
	Unscaled *big.Int
}

// int128FromLE interprets 16 little-endian bytes as a signed two's
// complement 128-bit integer.
func int128FromLE(b []byte) *big.Int {
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[i] = b[15-i]
	}

	v := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		v.Sub(v, mod)
	}

	return v
}
