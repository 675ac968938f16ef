package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrMissingIdentifier", ErrMissingIdentifier},
		{"ErrUnknownField", ErrUnknownField},
		{"ErrUnsupportedEncoding", ErrUnsupportedEncoding},
		{"ErrUnknownFixup", ErrUnknownFixup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrMissingIdentifier_Wrapped(t *testing.T) {
	err := fmt.Errorf("saving record: %w", ErrMissingIdentifier)
	assert.True(t, errors.Is(err, ErrMissingIdentifier))
	assert.False(t, errors.Is(err, ErrNotFound))
}
