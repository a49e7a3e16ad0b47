package builder

import (
	"math"
	"math/big"

	"github.com/variantfmt/variant/endian"
	"github.com/variantfmt/variant/format"
	"github.com/variantfmt/variant/internal/pool"
)

// leEngine is the endian.EndianEngine every multi-byte write in this
// package uses. The Variant wire format is little-endian only, with no
// per-value or per-blob choice, so this is never swapped for
// GetBigEndianEngine().
var leEngine = endian.GetLittleEndianEngine()

// intSize returns the smallest number of bytes, in {1,2,3,4}, needed to
// hold v as an unsigned integer. It is used to pick the offset_size of
// array/object headers and the id_size of object headers.
func intSize(v uint64) int {
	switch {
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	case v <= 0xFF_FFFF:
		return 3
	default:
		return 4
	}
}

// primitiveHeader packs a PrimitiveType into a header byte whose low 2
// bits carry the Primitive basic-type tag.
func primitiveHeader(pt format.PrimitiveType) byte {
	return byte(pt)<<2 | byte(format.Primitive)
}

// shortStringHeader packs a string length (must be <= 63) into a header
// byte whose low 2 bits carry the ShortString basic-type tag.
func shortStringHeader(length int) byte {
	return byte(length)<<2 | byte(format.ShortString)
}

// arrayHeader packs the large flag and offset width into a header byte
// whose low 2 bits carry the Array basic-type tag.
func arrayHeader(isLarge bool, offsetSize int) byte {
	var largeBit byte
	if isLarge {
		largeBit = 1
	}

	return largeBit<<4 | byte(offsetSize-1)<<2 | byte(format.Array)
}

// objectHeader packs the large flag, field-id width, and offset width into
// a header byte whose low 2 bits carry the Object basic-type tag.
func objectHeader(isLarge bool, idSize, offsetSize int) byte {
	var largeBit byte
	if isLarge {
		largeBit = 1
	}

	return largeBit<<6 | byte(idSize-1)<<4 | byte(offsetSize-1)<<2 | byte(format.Object)
}

// ValueBuffer is an append-only byte buffer used to accumulate a Variant
// value's encoded bytes. The root VariantBuilder and every nested
// ListBuilder/ObjectBuilder each own exactly one ValueBuffer; nested
// builders write into a pooled scratch buffer that is spliced into the
// parent's ValueBuffer at finish.
type ValueBuffer struct {
	bb *pool.ByteBuffer
}

// newValueBuffer allocates a ValueBuffer backed by a fresh, unpooled
// buffer of the given starting capacity. Used for the root builder, whose
// buffer typically outlives many nested builder lifetimes and is not
// worth pooling.
func newValueBuffer(capacity int) ValueBuffer {
	return ValueBuffer{bb: pool.NewByteBuffer(capacity)}
}

// newScratchValueBuffer allocates a ValueBuffer backed by a pooled scratch
// buffer, for use by nested ListBuilder/ObjectBuilder instances.
func newScratchValueBuffer() ValueBuffer {
	return ValueBuffer{bb: pool.GetScratchBuffer()}
}

// release returns the underlying buffer to the scratch pool. Only valid
// for buffers obtained via newScratchValueBuffer; calling it on the root
// builder's buffer would be a bug since that buffer is not pooled.
func (vb *ValueBuffer) release() {
	pool.PutScratchBuffer(vb.bb)
	vb.bb = nil
}

// Len returns the current write position, i.e. the number of bytes
// written so far.
func (vb *ValueBuffer) Len() int {
	return vb.bb.Len()
}

// Bytes returns the buffer's contents. The returned slice is only valid
// until the next mutating call on vb.
func (vb *ValueBuffer) Bytes() []byte {
	return vb.bb.Bytes()
}

// Push appends a single byte.
func (vb *ValueBuffer) Push(b byte) {
	vb.bb.B = append(vb.bb.B, b)
}

// Extend appends a slice of bytes verbatim.
func (vb *ValueBuffer) Extend(data []byte) {
	vb.bb.B = append(vb.bb.B, data...)
}

// Header writes a header byte followed by an element/field count encoded
// as a single byte when !isLarge, or a 4-byte little-endian value when
// isLarge.
func (vb *ValueBuffer) Header(headerByte byte, isLarge bool, count int) {
	vb.Push(headerByte)
	if isLarge {
		vb.bb.B = leEngine.AppendUint32(vb.bb.B, uint32(count))
	} else {
		vb.Push(byte(count))
	}
}

// OffsetArray writes offsets as a sequence of little-endian integers each
// nbytes wide. If trailingOffset is non-nil, it is appended as one
// additional entry after the supplied offsets.
func (vb *ValueBuffer) OffsetArray(offsets []int, trailingOffset *int, nbytes int) {
	for _, off := range offsets {
		vb.writeUintN(uint64(off), nbytes)
	}
	if trailingOffset != nil {
		vb.writeUintN(uint64(*trailingOffset), nbytes)
	}
}

func (vb *ValueBuffer) writeUintN(v uint64, nbytes int) {
	var tmp [4]byte
	leEngine.PutUint32(tmp[:], uint32(v))
	vb.bb.B = append(vb.bb.B, tmp[:nbytes]...)
}

// AppendNull appends the Null primitive.
func (vb *ValueBuffer) AppendNull() {
	vb.Push(primitiveHeader(format.Null))
}

// AppendBool appends a boolean primitive. True and false are distinct
// primitive types with no payload, rather than a shared type plus a
// payload byte.
func (vb *ValueBuffer) AppendBool(v bool) {
	if v {
		vb.Push(primitiveHeader(format.BooleanTrue))
	} else {
		vb.Push(primitiveHeader(format.BooleanFalse))
	}
}

// AppendInt8 appends a signed 8-bit integer primitive.
func (vb *ValueBuffer) AppendInt8(v int8) {
	vb.Push(primitiveHeader(format.Int8))
	vb.Push(byte(v))
}

// AppendInt16 appends a signed 16-bit integer primitive, little-endian.
func (vb *ValueBuffer) AppendInt16(v int16) {
	vb.Push(primitiveHeader(format.Int16))
	vb.bb.B = leEngine.AppendUint16(vb.bb.B, uint16(v))
}

// AppendInt32 appends a signed 32-bit integer primitive, little-endian.
func (vb *ValueBuffer) AppendInt32(v int32) {
	vb.Push(primitiveHeader(format.Int32))
	vb.bb.B = leEngine.AppendUint32(vb.bb.B, uint32(v))
}

// AppendInt64 appends a signed 64-bit integer primitive, little-endian.
func (vb *ValueBuffer) AppendInt64(v int64) {
	vb.Push(primitiveHeader(format.Int64))
	vb.bb.B = leEngine.AppendUint64(vb.bb.B, uint64(v))
}

// AppendFloat appends an IEEE-754 single-precision float primitive.
func (vb *ValueBuffer) AppendFloat(v float32) {
	vb.Push(primitiveHeader(format.Float))
	vb.bb.B = leEngine.AppendUint32(vb.bb.B, math.Float32bits(v))
}

// AppendDouble appends an IEEE-754 double-precision float primitive.
func (vb *ValueBuffer) AppendDouble(v float64) {
	vb.Push(primitiveHeader(format.Double))
	vb.bb.B = leEngine.AppendUint64(vb.bb.B, math.Float64bits(v))
}

// AppendDate appends a Date primitive: days since 1970-01-01.
func (vb *ValueBuffer) AppendDate(days int32) {
	vb.Push(primitiveHeader(format.Date))
	vb.bb.B = leEngine.AppendUint32(vb.bb.B, uint32(days))
}

// AppendTimestampMicros appends a TimestampMicros primitive: UTC
// microseconds since the Unix epoch.
func (vb *ValueBuffer) AppendTimestampMicros(micros int64) {
	vb.Push(primitiveHeader(format.TimestampMicros))
	vb.bb.B = leEngine.AppendUint64(vb.bb.B, uint64(micros))
}

// AppendTimestampNtzMicros appends a TimestampNtzMicros primitive: naive
// wall-clock microseconds since the Unix epoch, with no timezone.
func (vb *ValueBuffer) AppendTimestampNtzMicros(micros int64) {
	vb.Push(primitiveHeader(format.TimestampNtzMicros))
	vb.bb.B = leEngine.AppendUint64(vb.bb.B, uint64(micros))
}

// AppendDecimal4 appends a Decimal4 primitive: a scale byte followed by a
// signed 32-bit unscaled integer, little-endian.
func (vb *ValueBuffer) AppendDecimal4(scale uint8, unscaled int32) {
	vb.Push(primitiveHeader(format.Decimal4))
	vb.Push(scale)
	vb.bb.B = leEngine.AppendUint32(vb.bb.B, uint32(unscaled))
}

// AppendDecimal8 appends a Decimal8 primitive: a scale byte followed by a
// signed 64-bit unscaled integer, little-endian.
func (vb *ValueBuffer) AppendDecimal8(scale uint8, unscaled int64) {
	vb.Push(primitiveHeader(format.Decimal8))
	vb.Push(scale)
	vb.bb.B = leEngine.AppendUint64(vb.bb.B, uint64(unscaled))
}

// AppendDecimal16 appends a Decimal16 primitive: a scale byte followed by
// a signed 128-bit unscaled integer, little-endian two's complement.
// Panics if unscaled does not fit in 128 bits.
func (vb *ValueBuffer) AppendDecimal16(scale uint8, unscaled *big.Int) {
	vb.Push(primitiveHeader(format.Decimal16))
	vb.Push(scale)
	vb.bb.B = appendInt128LE(vb.bb.B, unscaled)
}

// appendInt128LE appends v to buf as 16 little-endian bytes in two's
// complement form. Panics (via big.Int.FillBytes) if v does not fit in
// 128 bits.
func appendInt128LE(buf []byte, v *big.Int) []byte {
	const size = 16

	var tmp [size]byte
	if v.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), size*8)
		twosComplement := new(big.Int).Add(mod, v)
		twosComplement.FillBytes(tmp[:])
	} else {
		v.FillBytes(tmp[:])
	}

	for i, j := 0, size-1; i < j; i, j = i+1, j-1 {
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}

	return append(buf, tmp[:]...)
}

// AppendBinary appends a Binary primitive: a u32 little-endian length
// followed by the raw bytes.
func (vb *ValueBuffer) AppendBinary(data []byte) {
	vb.Push(primitiveHeader(format.Binary))
	vb.bb.B = leEngine.AppendUint32(vb.bb.B, uint32(len(data)))
	vb.bb.B = append(vb.bb.B, data...)
}

// AppendString appends a String primitive: a u32 little-endian length
// followed by UTF-8 bytes. Unlike AppendShortString, this always uses the
// Primitive/String encoding regardless of length.
func (vb *ValueBuffer) AppendString(s string) {
	vb.Push(primitiveHeader(format.String))
	vb.bb.B = leEngine.AppendUint32(vb.bb.B, uint32(len(s)))
	vb.bb.B = append(vb.bb.B, s...)
}

// MaxShortStringLen is the longest string, in bytes, that fits in a
// ShortString header's 6-bit length field.
const MaxShortStringLen = 63

// AppendShortString appends a ShortString value: a single header byte
// encoding the length, followed immediately by the raw UTF-8 bytes with
// no separate length prefix. Panics if len(s) exceeds MaxShortStringLen;
// callers choosing between AppendString and AppendShortString are
// expected to check the length themselves, as VariantBuilder.AppendString
// does.
func (vb *ValueBuffer) AppendShortString(s string) {
	if len(s) > MaxShortStringLen {
		panic("builder: short string exceeds 63 bytes")
	}
	vb.Push(shortStringHeader(len(s)))
	vb.bb.B = append(vb.bb.B, s...)
}
