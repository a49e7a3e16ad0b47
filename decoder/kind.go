package decoder

// Kind identifies the semantic shape of a decoded Variant value. Unlike
// format.BasicType/format.PrimitiveType, which describe the wire-level
// header bits, Kind collapses the ShortString/String wire distinction
// into a single KindString value — callers read a Variant's logical
// content through Kind and the matching accessor, not its wire encoding.
type Kind uint8

const (
	KindNull Kind = iota
	KindBooleanTrue
	KindBooleanFalse
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindDouble
	KindDecimal4
	KindDecimal8
	KindDecimal16
	KindDate
	KindTimestampMicros
	KindTimestampNtzMicros
	KindFloat
	KindBinary
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBooleanTrue:
		return "BooleanTrue"
	case KindBooleanFalse:
		return "BooleanFalse"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindDouble:
		return "Double"
	case KindDecimal4:
		return "Decimal4"
	case KindDecimal8:
		return "Decimal8"
	case KindDecimal16:
		return "Decimal16"
	case KindDate:
		return "Date"
	case KindTimestampMicros:
		return "TimestampMicros"
	case KindTimestampNtzMicros:
		return "TimestampNtzMicros"
	case KindFloat:
		return "Float"
	case KindBinary:
		return "Binary"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}
