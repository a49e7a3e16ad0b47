package format

// BasicType is the 2-bit tag occupying the low bits of every header byte in
// a Variant value blob. It distinguishes the four top-level shapes a value
// can take; everything else about a value's layout is determined by this
// tag plus, for Primitive, the PrimitiveType packed into the remaining bits.
type BasicType uint8

const (
	Primitive   BasicType = 0x0
	ShortString BasicType = 0x1
	Object      BasicType = 0x2
	Array       BasicType = 0x3
)

func (b BasicType) String() string {
	switch b {
	case Primitive:
		return "Primitive"
	case ShortString:
		return "ShortString"
	case Object:
		return "Object"
	case Array:
		return "Array"
	default:
		return "Unknown"
	}
}

// PrimitiveType occupies the upper 6 bits of a primitive header byte. Each
// value has a fixed payload layout; see the builder package for the exact
// bytes written for each.
type PrimitiveType uint8

const (
	Null PrimitiveType = iota
	BooleanTrue
	BooleanFalse
	Int8
	Int16
	Int32
	Int64
	Double
	Decimal4
	Decimal8
	Decimal16
	Date
	TimestampMicros
	TimestampNtzMicros
	Float
	Binary
	String
)

func (p PrimitiveType) String() string {
	switch p {
	case Null:
		return "Null"
	case BooleanTrue:
		return "BooleanTrue"
	case BooleanFalse:
		return "BooleanFalse"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Double:
		return "Double"
	case Decimal4:
		return "Decimal4"
	case Decimal8:
		return "Decimal8"
	case Decimal16:
		return "Decimal16"
	case Date:
		return "Date"
	case TimestampMicros:
		return "TimestampMicros"
	case TimestampNtzMicros:
		return "TimestampNtzMicros"
	case Float:
		return "Float"
	case Binary:
		return "Binary"
	case String:
		return "String"
	default:
		return "Unknown"
	}
}

// CompressionType identifies the codec applied to a finished pair of
// metadata/value blobs by VariantBuilder.FinishCompressed. It is orthogonal
// to the Variant wire format itself, which is never compressed internally.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
