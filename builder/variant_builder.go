package builder

import (
	"math/big"

	"github.com/variantfmt/variant/compress"
	"github.com/variantfmt/variant/decoder"
	"github.com/variantfmt/variant/format"
)

// VariantBuilder incrementally builds one top-level Variant value and the
// field-name dictionary shared by every object nested inside it.
//
// A VariantBuilder is not safe for concurrent use. Spawning a nested
// ListBuilder or ObjectBuilder via NewList/NewObject takes exclusive
// access to the VariantBuilder; no other method may be called on it
// until that child's Finish or Abandon returns.
type VariantBuilder struct {
	buffer        ValueBuffer
	metadata      *MetadataBuilder
	validateDupes bool
}

// NewVariantBuilder returns an empty VariantBuilder ready to append
// values.
func NewVariantBuilder() *VariantBuilder {
	return &VariantBuilder{
		buffer:   newValueBuffer(128),
		metadata: newMetadataBuilder(),
	}
}

// NewVariantBuilderWithMetadata returns a VariantBuilder whose field-name
// dictionary is pre-populated from an already-decoded Variant's metadata,
// in its existing order. Use it to seed a destination builder with a
// source Variant's dictionary before copying values into it with
// Reappend or AppendVariant.
func NewVariantBuilderWithMetadata(metadata *decoder.Metadata) *VariantBuilder {
	b := NewVariantBuilder()
	b.metadata.Extend(metadata.Names())

	return b
}

// WithValidateUniqueFields enables validation of unique field keys in
// every ObjectBuilder spawned (directly or transitively) from this
// VariantBuilder. When enabled, ObjectBuilder.Finish returns an
// *errs.DuplicateFieldsError if any key was inserted more than once.
func (b *VariantBuilder) WithValidateUniqueFields(validate bool) *VariantBuilder {
	b.validateDupes = validate

	return b
}

// WithFieldNames pre-populates the field-name dictionary with names, in
// order. Useful for seeding a sorted dictionary up front, which can
// accelerate field lookups by readers that exploit IsSorted.
func (b *VariantBuilder) WithFieldNames(names []string) *VariantBuilder {
	b.metadata.Extend(names)

	return b
}

// AddFieldName adds a single field name to the dictionary, equivalent to
// calling WithFieldNames with a single-element slice.
func (b *VariantBuilder) AddFieldName(name string) {
	b.metadata.Upsert(name)
}

// Reserve pre-sizes the dictionary for at least capacity distinct field
// names.
func (b *VariantBuilder) Reserve(capacity int) {
	b.metadata.Reserve(capacity)
}

func (b *VariantBuilder) AppendNull() {
	b.buffer.AppendNull()
}

func (b *VariantBuilder) AppendBool(v bool) {
	b.buffer.AppendBool(v)
}

func (b *VariantBuilder) AppendInt8(v int8) {
	b.buffer.AppendInt8(v)
}

func (b *VariantBuilder) AppendInt16(v int16) {
	b.buffer.AppendInt16(v)
}

func (b *VariantBuilder) AppendInt32(v int32) {
	b.buffer.AppendInt32(v)
}

func (b *VariantBuilder) AppendInt64(v int64) {
	b.buffer.AppendInt64(v)
}

func (b *VariantBuilder) AppendFloat(v float32) {
	b.buffer.AppendFloat(v)
}

func (b *VariantBuilder) AppendDouble(v float64) {
	b.buffer.AppendDouble(v)
}

func (b *VariantBuilder) AppendDate(days int32) {
	b.buffer.AppendDate(days)
}

func (b *VariantBuilder) AppendTimestampMicros(micros int64) {
	b.buffer.AppendTimestampMicros(micros)
}

func (b *VariantBuilder) AppendTimestampNtzMicros(micros int64) {
	b.buffer.AppendTimestampNtzMicros(micros)
}

func (b *VariantBuilder) AppendDecimal4(scale uint8, unscaled int32) {
	b.buffer.AppendDecimal4(scale, unscaled)
}

func (b *VariantBuilder) AppendDecimal8(scale uint8, unscaled int64) {
	b.buffer.AppendDecimal8(scale, unscaled)
}

func (b *VariantBuilder) AppendDecimal16(scale uint8, unscaled *big.Int) {
	b.buffer.AppendDecimal16(scale, unscaled)
}

func (b *VariantBuilder) AppendBinary(data []byte) {
	b.buffer.AppendBinary(data)
}

// AppendString appends a string value, choosing the ShortString encoding
// when it fits and the long-form String encoding otherwise.
func (b *VariantBuilder) AppendString(s string) {
	if len(s) <= MaxShortStringLen {
		b.buffer.AppendShortString(s)
	} else {
		b.buffer.AppendString(s)
	}
}

// NewList returns a list builder that, once finished, becomes this
// Variant's top-level value. The returned builder has no effect until
// its Finish is called.
func (b *VariantBuilder) NewList() *ListBuilder {
	return newListBuilder(rootParentState(&b.buffer, b.metadata), b.validateDupes)
}

// NewObject returns an object builder that, once finished, becomes this
// Variant's top-level value. The returned builder has no effect until
// its Finish is called.
func (b *VariantBuilder) NewObject() *ObjectBuilder {
	return newObjectBuilder(rootParentState(&b.buffer, b.metadata), b.validateDupes)
}

// Finish completes the builder, returning the metadata blob and value
// blob that together form a decodable Variant. The VariantBuilder
// remains usable afterward; calling Finish again reflects any values
// appended since the previous call, since finishing never consumes the
// underlying buffers.
func (b *VariantBuilder) Finish() (metadata, value []byte) {
	metadata = b.metadata.Finish()
	value = make([]byte, b.buffer.Len())
	copy(value, b.buffer.Bytes())

	return metadata, value
}

// FinishCompressed behaves like Finish, additionally compressing both
// the metadata and value blobs with the given codec.
func (b *VariantBuilder) FinishCompressed(codec format.CompressionType) (metadata, value []byte, err error) {
	rawMetadata, rawValue := b.Finish()

	compressor, err := compress.CreateCodec(codec, "variant builder")
	if err != nil {
		return nil, nil, err
	}

	metadata, err = compressor.Compress(rawMetadata)
	if err != nil {
		return nil, nil, err
	}

	value, err = compressor.Compress(rawValue)
	if err != nil {
		return nil, nil, err
	}

	return metadata, value, nil
}
