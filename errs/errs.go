// Package errs defines the sentinel errors returned across the variant
// module. Callers should compare against these with errors.Is rather than
// matching on message text.
package errs

import "errors"

var (
	// ErrDuplicateFields is returned by ObjectBuilder.Finish when
	// validate-unique-fields is enabled and at least one field name was
	// inserted more than once.
	ErrDuplicateFields = errors.New("duplicate field keys detected")

	// ErrDictionaryOverflow is the panic value of MetadataBuilder.Upsert
	// when a new field name would need an ID beyond the 32-bit range.
	ErrDictionaryOverflow = errors.New("field name dictionary overflow")

	// ErrInvalidInput is returned when decoding malformed metadata or value
	// bytes, including during a re-append walk over a source Variant.
	ErrInvalidInput = errors.New("invalid variant input")

	// ErrChildNotFinished names the misuse of calling a builder's methods
	// while a previously spawned ListBuilder or ObjectBuilder has not yet
	// been finished or abandoned. The builders do not track outstanding
	// children, so no builder in this module detects that misuse or
	// returns this error.
	ErrChildNotFinished = errors.New("outstanding child builder not finished")

	// ErrUnknownFieldName is returned by a Metadata lookup for a field ID
	// that does not exist in the dictionary.
	ErrUnknownFieldName = errors.New("unknown field name id")

	// ErrUnsupportedVariantKind is returned when the decoder encounters a
	// basic-type or primitive-type tag it does not recognize.
	ErrUnsupportedVariantKind = errors.New("unsupported variant kind")
)
