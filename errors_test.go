package hostid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandErrorMessage(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := &CommandError{Command: "ioreg", Err: inner}

	assert.Equal(t, `command "ioreg" failed: exit status 1`, err.Error())
	assert.Same(t, inner, err.Unwrap())
}

func TestCommandErrorAs(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := fmt.Errorf("reading platform UUID: %w", &CommandError{Command: "ioreg", Err: inner})

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr), "errors.As() should find CommandError in wrapped chain")
	assert.Equal(t, "ioreg", cmdErr.Command)
	assert.ErrorIs(t, err, inner)
}

func TestParseErrorMessage(t *testing.T) {
	inner := fmt.Errorf("unexpected EOF")
	err := &ParseError{Source: "ioreg plist", Err: inner}

	assert.Equal(t, "failed to parse ioreg plist: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestFaultError(t *testing.T) {
	tests := []struct {
		name      string
		recovered any
		wantMsg   string
	}{
		{
			name:      "string panic",
			recovered: "boom",
			wantMsg:   "internal fault while resolving machine ID: boom",
		},
		{
			name:      "error panic",
			recovered: errors.New("nil map write"),
			wantMsg:   "internal fault while resolving machine ID: nil map write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &FaultError{Recovered: tt.recovered}

			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, ErrInternalFault)
			assert.NotErrorIs(t, err, ErrInvalidArgument)

			if cause, ok := tt.recovered.(error); ok {
				assert.ErrorIs(t, err, cause)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidArgument, ErrInternalFault, ErrNotFound, ErrNotSupported}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
