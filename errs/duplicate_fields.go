package errs

import (
	"fmt"
	"strings"
)

// DuplicateFieldsError reports the sorted list of field names that were
// inserted more than once into an ObjectBuilder with duplicate validation
// enabled. It wraps ErrDuplicateFields so callers can test for it with
// errors.Is without depending on the exact message text.
type DuplicateFieldsError struct {
	Names []string
}

// NewDuplicateFieldsError builds a DuplicateFieldsError from an already
// lexicographically sorted slice of offending field names.
func NewDuplicateFieldsError(sortedNames []string) *DuplicateFieldsError {
	return &DuplicateFieldsError{Names: sortedNames}
}

func (e *DuplicateFieldsError) Error() string {
	return fmt.Sprintf("Invalid argument error: Duplicate field keys detected: [%s]", strings.Join(e.Names, ", "))
}

func (e *DuplicateFieldsError) Unwrap() error {
	return ErrDuplicateFields
}
