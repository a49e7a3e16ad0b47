package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDuplicateFieldsError(t *testing.T) {
	t.Run("message format", func(t *testing.T) {
		err := NewDuplicateFieldsError([]string{"a", "b"})
		require.Equal(t, "Invalid argument error: Duplicate field keys detected: [a, b]", err.Error())
	})

	t.Run("single name", func(t *testing.T) {
		err := NewDuplicateFieldsError([]string{"zebra"})
		require.Equal(t, "Invalid argument error: Duplicate field keys detected: [zebra]", err.Error())
	})

	t.Run("wraps sentinel", func(t *testing.T) {
		err := NewDuplicateFieldsError([]string{"x"})
		require.ErrorIs(t, err, ErrDuplicateFields)
	})

	t.Run("not equal to bare sentinel", func(t *testing.T) {
		err := NewDuplicateFieldsError([]string{"x"})
		require.False(t, errors.Is(ErrDuplicateFields, err))
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrDuplicateFields,
		ErrDictionaryOverflow,
		ErrInvalidInput,
		ErrChildNotFinished,
		ErrUnknownFieldName,
		ErrUnsupportedVariantKind,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.NotErrorIs(t, a, b)
		}
	}
}
