package builder

import "math/big"

// ValueAppender is implemented by every builder that can receive a new
// value as a direct child: the root VariantBuilder and ListBuilder.
// ObjectBuilder is deliberately excluded — inserting into an object
// always requires a field name, so it exposes keyed Insert* methods instead.
type ValueAppender interface {
	AppendNull()
	AppendBool(v bool)
	AppendInt8(v int8)
	AppendInt16(v int16)
	AppendInt32(v int32)
	AppendInt64(v int64)
	AppendFloat(v float32)
	AppendDouble(v float64)
	AppendDate(days int32)
	AppendTimestampMicros(micros int64)
	AppendTimestampNtzMicros(micros int64)
	AppendDecimal4(scale uint8, unscaled int32)
	AppendDecimal8(scale uint8, unscaled int64)
	AppendDecimal16(scale uint8, unscaled *big.Int)
	AppendBinary(data []byte)
	AppendString(s string)

	// NewList spawns a nested ListBuilder. The returned builder captures
	// exclusive access to this appender; it must be finished or abandoned
	// before any other method is called here.
	NewList() *ListBuilder

	// NewObject spawns a nested ObjectBuilder under the same constraint
	// as NewList.
	NewObject() *ObjectBuilder
}

var (
	_ ValueAppender = (*VariantBuilder)(nil)
	_ ValueAppender = (*ListBuilder)(nil)
)
