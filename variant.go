// Package variant provides a binary-encoded, self-describing value
// format for embedding semi-structured, JSON-like data inside columnar
// storage.
//
// A Variant value is delivered as a pair of byte blobs: a metadata blob
// holding a deduplicated, optionally-sorted dictionary of field names,
// and a value blob holding the typed payload — primitives, arrays, or
// objects whose keys are integer IDs referencing the dictionary.
//
// # Basic Usage
//
// Building a Variant object:
//
//	import "github.com/variantfmt/variant"
//
//	b := variant.NewBuilder()
//	obj := b.NewObject()
//	obj.InsertString("name", "alice")
//	obj.InsertInt32("age", 30)
//	if err := obj.Finish(); err != nil {
//	    // duplicate field keys, if validation was enabled
//	}
//	metadata, value := b.Finish()
//
// Reading it back:
//
//	v, err := variant.Decode(metadata, value)
//	obj, err := v.Object()
//	nameValue, ok, err := obj.Lookup("name")
//	name, err := nameValue.StringValue()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// builder and decoder packages, covering the common case of building or
// reading one Variant end to end. For fine-grained control over nested
// list/object construction or the re-append walker, use those packages
// directly.
package variant

import (
	"github.com/variantfmt/variant/builder"
	"github.com/variantfmt/variant/decoder"
)

// Re-exported decoder types, so a typical caller only needs to import
// the root package.
type (
	Variant  = decoder.Variant
	Object   = decoder.Object
	List     = decoder.List
	Metadata = decoder.Metadata
	Kind     = decoder.Kind
)

// Re-exported builder types.
type (
	Builder       = builder.VariantBuilder
	ListBuilder   = builder.ListBuilder
	ObjectBuilder = builder.ObjectBuilder
)

// NewBuilder returns an empty Builder ready to append values.
func NewBuilder() *Builder {
	return builder.NewVariantBuilder()
}

// BuilderOption configures a Builder at construction time; see
// builder.WithValidateUniqueFields, builder.WithFieldNames, and
// builder.WithReservedCapacity.
type BuilderOption = builder.VariantBuilderOption

// NewBuilderWithOptions returns a Builder configured by opts, applied in
// order. Use this instead of NewBuilder when options are assembled
// dynamically rather than known at the call site.
func NewBuilderWithOptions(opts ...BuilderOption) (*Builder, error) {
	return builder.NewVariantBuilderWithOptions(opts...)
}

// NewBuilderWithMetadata returns a Builder whose field-name dictionary is
// pre-populated from an already-decoded Variant's metadata, in its
// existing order. Use this to seed a destination builder with a source
// Variant's dictionary before copying values into it with AppendVariant.
func NewBuilderWithMetadata(metadata *Metadata) *Builder {
	return builder.NewVariantBuilderWithMetadata(metadata)
}

// Decode parses a (metadata, value) pair produced by Builder.Finish into
// a navigable Variant.
func Decode(metadata, value []byte) (Variant, error) {
	return decoder.Decode(metadata, value)
}

// DecodeMetadata parses a metadata blob on its own, useful for seeding a
// new Builder's dictionary from an existing Variant via
// NewBuilderWithMetadata without decoding its value blob.
func DecodeMetadata(metadata []byte) (*Metadata, error) {
	return decoder.DecodeMetadata(metadata)
}
