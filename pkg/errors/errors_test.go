package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "type only",
			err:  &Error{Type: ErrorTypeEmptyFile},
			want: "empty_file error",
		},
		{
			name: "op and message",
			err:  New(ErrorTypeInvalidInput, "from position", "world is required"),
			want: "from position: invalid_input error: world is required",
		},
		{
			name: "path and cause",
			err:  Wrap(ErrorTypeIO, "save", "/tmp/checkpoints.json", os.ErrPermission),
			want: "save: io error (/tmp/checkpoints.json): permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsIs(t *testing.T) {
	err := fmt.Errorf("reload: %w", Wrap(ErrorTypeIO, "read", "x.json", os.ErrNotExist))

	assert.True(t, stderrors.Is(err, ErrIO))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
	assert.False(t, stderrors.Is(err, ErrMalformedRecord))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeMissingWorld, TypeOf(New(ErrorTypeMissingWorld, "remove", "")))
	assert.Equal(t, ErrorTypeEmptyFile, TypeOf(fmt.Errorf("open: %w", ErrEmptyFile)))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(stderrors.New("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestIsWarning(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      bool
	}{
		{ErrorTypeEmptyFile, true},
		{ErrorTypeMalformedRecord, true},
		{ErrorTypeMissingFile, true},
		{ErrorTypeIO, false},
		{ErrorTypeInvalidInput, false},
		{ErrorTypeMissingWorld, false},
		{ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			assert.Equal(t, tt.want, IsWarning(tt.errorType))
		})
	}
}
