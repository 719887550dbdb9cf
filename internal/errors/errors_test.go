package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewParsingError("cannot coerce cell", fmt.Errorf("bad syntax")),
			want: "[PARSING] cannot coerce cell: bad syntax",
		},
		{
			name: "without cause",
			err:  NewConfigError("aggregate column out of bounds", nil),
			want: "[CONFIG] aggregate column out of bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NewNotFoundError("no column", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewParsingError("bad cell", nil).
		WithContext("row", 4).
		WithContext("col", 12)

	assert.Equal(t, 4, err.Context["row"])
	assert.Equal(t, 12, err.Context["col"])
}

func TestIsType(t *testing.T) {
	cfgErr := NewConfigError("bad config", nil)
	wrapped := fmt.Errorf("load reports: %w", cfgErr)

	assert.True(t, IsType(cfgErr, ErrTypeConfig))
	assert.True(t, IsType(wrapped, ErrTypeConfig))
	assert.False(t, IsType(cfgErr, ErrTypeParsing))
	assert.False(t, IsType(errors.New("plain"), ErrTypeConfig))
}
