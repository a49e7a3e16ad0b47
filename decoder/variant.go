package decoder

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/variantfmt/variant/errs"
	"github.com/variantfmt/variant/format"
)

// Variant is a parsed view over one Variant value, paired with the
// dictionary needed to resolve the field names of any Object it contains.
// It does not copy the underlying value bytes.
type Variant struct {
	metadata *Metadata
	value    []byte
}

// Decode parses a (metadata, value) pair produced by
// builder.VariantBuilder.Finish into a navigable Variant.
func Decode(metadata, value []byte) (Variant, error) {
	md, err := DecodeMetadata(metadata)
	if err != nil {
		return Variant{}, err
	}
	if len(value) == 0 {
		return Variant{}, fmt.Errorf("%w: value blob is empty", errs.ErrInvalidInput)
	}

	return Variant{metadata: md, value: value}, nil
}

func newVariant(metadata *Metadata, value []byte) Variant {
	return Variant{metadata: metadata, value: value}
}

// Metadata returns the field-name dictionary this Variant was decoded
// against.
func (v Variant) Metadata() *Metadata {
	return v.metadata
}

func (v Variant) basicType() format.BasicType {
	return format.BasicType(v.value[0] & 0x3)
}

// Kind reports the semantic shape of this value.
func (v Variant) Kind() (Kind, error) {
	if len(v.value) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidInput)
	}

	switch v.basicType() {
	case format.ShortString:
		return KindString, nil
	case format.Array:
		return KindArray, nil
	case format.Object:
		return KindObject, nil
	case format.Primitive:
		return primitiveKind(format.PrimitiveType(v.value[0] >> 2))
	default:
		return 0, errs.ErrUnsupportedVariantKind
	}
}

func primitiveKind(pt format.PrimitiveType) (Kind, error) {
	switch pt {
	case format.Null:
		return KindNull, nil
	case format.BooleanTrue:
		return KindBooleanTrue, nil
	case format.BooleanFalse:
		return KindBooleanFalse, nil
	case format.Int8:
		return KindInt8, nil
	case format.Int16:
		return KindInt16, nil
	case format.Int32:
		return KindInt32, nil
	case format.Int64:
		return KindInt64, nil
	case format.Double:
		return KindDouble, nil
	case format.Decimal4:
		return KindDecimal4, nil
	case format.Decimal8:
		return KindDecimal8, nil
	case format.Decimal16:
		return KindDecimal16, nil
	case format.Date:
		return KindDate, nil
	case format.TimestampMicros:
		return KindTimestampMicros, nil
	case format.TimestampNtzMicros:
		return KindTimestampNtzMicros, nil
	case format.Float:
		return KindFloat, nil
	case format.Binary:
		return KindBinary, nil
	case format.String:
		return KindString, nil
	default:
		return 0, fmt.Errorf("%w: primitive type %d", errs.ErrUnsupportedVariantKind, pt)
	}
}

func (v Variant) requireKind(want Kind) error {
	got, err := v.Kind()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: expected %s, got %s", errs.ErrInvalidInput, want, got)
	}

	return nil
}

// Bool returns the value of a BooleanTrue or BooleanFalse primitive.
func (v Variant) Bool() (bool, error) {
	kind, err := v.Kind()
	if err != nil {
		return false, err
	}
	switch kind {
	case KindBooleanTrue:
		return true, nil
	case KindBooleanFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected boolean, got %s", errs.ErrInvalidInput, kind)
	}
}

// Int8 returns the value of an Int8 primitive.
func (v Variant) Int8() (int8, error) {
	if err := v.requireKind(KindInt8); err != nil {
		return 0, err
	}

	return int8(v.value[1]), nil
}

// Int16 returns the value of an Int16 primitive.
func (v Variant) Int16() (int16, error) {
	if err := v.requireKind(KindInt16); err != nil {
		return 0, err
	}

	return int16(binary.LittleEndian.Uint16(v.value[1:3])), nil
}

// Int32 returns the value of an Int32 primitive.
func (v Variant) Int32() (int32, error) {
	if err := v.requireKind(KindInt32); err != nil {
		return 0, err
	}

	return int32(binary.LittleEndian.Uint32(v.value[1:5])), nil
}

// Int64 returns the value of an Int64 primitive.
func (v Variant) Int64() (int64, error) {
	if err := v.requireKind(KindInt64); err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(v.value[1:9])), nil
}

// Float returns the value of a Float primitive.
func (v Variant) Float() (float32, error) {
	if err := v.requireKind(KindFloat); err != nil {
		return 0, err
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(v.value[1:5])), nil
}

// Double returns the value of a Double primitive.
func (v Variant) Double() (float64, error) {
	if err := v.requireKind(KindDouble); err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(v.value[1:9])), nil
}

// Date returns the value of a Date primitive: days since 1970-01-01.
func (v Variant) Date() (int32, error) {
	if err := v.requireKind(KindDate); err != nil {
		return 0, err
	}

	return int32(binary.LittleEndian.Uint32(v.value[1:5])), nil
}

// TimestampMicros returns the value of a TimestampMicros primitive: UTC
// microseconds since the Unix epoch.
func (v Variant) TimestampMicros() (int64, error) {
	if err := v.requireKind(KindTimestampMicros); err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(v.value[1:9])), nil
}

// TimestampNtzMicros returns the value of a TimestampNtzMicros primitive:
// naive wall-clock microseconds since the Unix epoch.
func (v Variant) TimestampNtzMicros() (int64, error) {
	if err := v.requireKind(KindTimestampNtzMicros); err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(v.value[1:9])), nil
}

// Decimal4 returns the value of a Decimal4 primitive.
func (v Variant) Decimal4() (Decimal4, error) {
	if err := v.requireKind(KindDecimal4); err != nil {
		return Decimal4{}, err
	}

	return Decimal4{
		Scale:    v.value[1],
		Unscaled: int32(binary.LittleEndian.Uint32(v.value[2:6])),
	}, nil
}

// Decimal8 returns the value of a Decimal8 primitive.
func (v Variant) Decimal8() (Decimal8, error) {
	if err := v.requireKind(KindDecimal8); err != nil {
		return Decimal8{}, err
	}

	return Decimal8{
		Scale:    v.value[1],
		Unscaled: int64(binary.LittleEndian.Uint64(v.value[2:10])),
	}, nil
}

// Decimal16 returns the value of a Decimal16 primitive.
func (v Variant) Decimal16() (Decimal16, error) {
	if err := v.requireKind(KindDecimal16); err != nil {
		return Decimal16{}, err
	}

	return Decimal16{
		Scale:    v.value[1],
		Unscaled: int128FromLE(v.value[2:18]),
	}, nil
}

// Binary returns the payload of a Binary primitive.
func (v Variant) Binary() ([]byte, error) {
	if err := v.requireKind(KindBinary); err != nil {
		return nil, err
	}
	length := binary.LittleEndian.Uint32(v.value[1:5])

	return v.value[5 : 5+length], nil
}

// StringValue returns the text of either a ShortString or a long-form
// String primitive, hiding the wire-level distinction between the two.
func (v Variant) StringValue() (string, error) {
	kind, err := v.Kind()
	if err != nil {
		return "", err
	}
	if kind != KindString {
		return "", fmt.Errorf("%w: expected string, got %s", errs.ErrInvalidInput, kind)
	}

	if v.basicType() == format.ShortString {
		length := int(v.value[0] >> 2)

		return string(v.value[1 : 1+length]), nil
	}

	length := binary.LittleEndian.Uint32(v.value[1:5])

	return string(v.value[5 : 5+length]), nil
}

// headerWidths decodes the large/idSize/offsetSize bits shared by array
// and object headers.
func headerWidths(header byte, basic format.BasicType) (isLarge bool, idSize, offsetSize int) {
	offsetSize = int((header>>2)&0x3) + 1
	if basic == format.Object {
		idSize = int((header>>4)&0x3) + 1
		isLarge = (header>>6)&0x1 == 1
	} else {
		isLarge = (header>>4)&0x1 == 1
	}

	return isLarge, idSize, offsetSize
}

func readCount(b []byte, pos int, isLarge bool) (count, next int) {
	if isLarge {
		return int(binary.LittleEndian.Uint32(b[pos : pos+4])), pos + 4
	}

	return int(b[pos]), pos + 1
}

func readWidthUint(b []byte, pos, width int) int {
	var v uint32
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[pos+i])
	}

	return int(v)
}

// List returns a navigable view over an Array value.
func (v Variant) List() (List, error) {
	if err := v.requireKind(KindArray); err != nil {
		return List{}, err
	}

	isLarge, _, offsetSize := headerWidths(v.value[0], format.Array)
	n, pos := readCount(v.value, 1, isLarge)

	offsets := make([]int, n+1)
	for i := range offsets {
		offsets[i] = readWidthUint(v.value, pos, offsetSize)
		pos += offsetSize
	}
	payload := v.value[pos:]

	elements := make([][]byte, n)
	for i := 0; i < n; i++ {
		elements[i] = payload[offsets[i]:offsets[i+1]]
	}

	return List{metadata: v.metadata, elements: elements}, nil
}

// Object returns a navigable view over an Object value. Fields are
// exposed in the on-wire order: ascending by field name.
func (v Variant) Object() (Object, error) {
	if err := v.requireKind(KindObject); err != nil {
		return Object{}, err
	}

	isLarge, idSize, offsetSize := headerWidths(v.value[0], format.Object)
	n, pos := readCount(v.value, 1, isLarge)

	fieldIDs := make([]uint32, n)
	for i := range fieldIDs {
		fieldIDs[i] = uint32(readWidthUint(v.value, pos, idSize))
		pos += idSize
	}

	offsets := make([]int, n+1)
	for i := range offsets {
		offsets[i] = readWidthUint(v.value, pos, offsetSize)
		pos += offsetSize
	}
	payload := v.value[pos:]

	// Field offsets follow field-name order, not position order, so a
	// field ends at the nearest larger offset (or the trailing data size).
	elements := make([][]byte, n)
	for i := 0; i < n; i++ {
		end := offsets[n]
		for _, off := range offsets[:n] {
			if off > offsets[i] && off < end {
				end = off
			}
		}
		elements[i] = payload[offsets[i]:end]
	}

	return Object{metadata: v.metadata, fieldIDs: fieldIDs, elements: elements}, nil
}
