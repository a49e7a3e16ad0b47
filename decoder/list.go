package decoder

import (
	"fmt"

	"github.com/variantfmt/variant/errs"
)

// List is a navigable view over a decoded Array value.
type List struct {
	metadata *Metadata
	elements [][]byte
}

// Len returns the number of elements in the array.
func (l List) Len() int {
	return len(l.elements)
}

// Element returns the i-th element as a Variant sharing this list's
// dictionary.
func (l List) Element(i int) (Variant, error) {
	if i < 0 || i >= len(l.elements) {
		return Variant{}, fmt.Errorf("%w: list index %d out of range [0,%d)", errs.ErrInvalidInput, i, len(l.elements))
	}

	return newVariant(l.metadata, l.elements[i]), nil
}
