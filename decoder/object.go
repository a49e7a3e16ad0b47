package decoder

import (
	"fmt"

	"github.com/variantfmt/variant/errs"
)

// Object is a navigable view over a decoded Object value. Fields are
// stored in the on-wire order, which is ascending by field name.
type Object struct {
	metadata *Metadata
	fieldIDs []uint32
	elements [][]byte
}

// Len returns the number of fields in the object.
func (o Object) Len() int {
	return len(o.fieldIDs)
}

// FieldName returns the i-th field's name, resolved through the
// dictionary.
func (o Object) FieldName(i int) (string, error) {
	if i < 0 || i >= len(o.fieldIDs) {
		return "", fmt.Errorf("%w: field index %d out of range [0,%d)", errs.ErrInvalidInput, i, len(o.fieldIDs))
	}

	return o.metadata.NameAt(o.fieldIDs[i])
}

// Value returns the i-th field's value as a Variant sharing this
// object's dictionary.
func (o Object) Value(i int) (Variant, error) {
	if i < 0 || i >= len(o.elements) {
		return Variant{}, fmt.Errorf("%w: field index %d out of range [0,%d)", errs.ErrInvalidInput, i, len(o.elements))
	}

	return newVariant(o.metadata, o.elements[i]), nil
}

// Lookup finds a field by name. The returned bool reports whether the
// field was present.
func (o Object) Lookup(name string) (Variant, bool, error) {
	for i := range o.fieldIDs {
		fieldName, err := o.FieldName(i)
		if err != nil {
			return Variant{}, false, err
		}
		if fieldName == name {
			v, err := o.Value(i)

			return v, true, err
		}
	}

	return Variant{}, false, nil
}
