package builder

import "github.com/variantfmt/variant/internal/options"

// VariantBuilderOption is a functional option for configuring a
// VariantBuilder at construction time, a type alias for the generic
// Option interface specialized for VariantBuilder.
type VariantBuilderOption = options.Option[*VariantBuilder]

// WithValidateUniqueFields enables or disables duplicate-field-key
// validation on every ObjectBuilder spawned from the resulting
// VariantBuilder, equivalent to calling the method of the same name.
func WithValidateUniqueFields(validate bool) VariantBuilderOption {
	return options.NoError(func(b *VariantBuilder) {
		b.validateDupes = validate
	})
}

// WithFieldNames pre-populates the field-name dictionary with names, in
// order, equivalent to calling the method of the same name.
func WithFieldNames(names []string) VariantBuilderOption {
	return options.NoError(func(b *VariantBuilder) {
		b.metadata.Extend(names)
	})
}

// WithReservedCapacity pre-sizes the dictionary for at least capacity
// distinct field names.
func WithReservedCapacity(capacity int) VariantBuilderOption {
	return options.NoError(func(b *VariantBuilder) {
		b.metadata.Reserve(capacity)
	})
}

// NewVariantBuilderWithOptions returns an empty VariantBuilder configured
// by opts, applied in order. This is an alternative to the fluent
// With*/Add* methods for callers assembling options dynamically, e.g.
// from a slice built up conditionally before construction.
func NewVariantBuilderWithOptions(opts ...VariantBuilderOption) (*VariantBuilder, error) {
	b := NewVariantBuilder()
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}
