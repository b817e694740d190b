package parityerrors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingInputError(t *testing.T) {
	t.Run("Error message with no locations", func(t *testing.T) {
		err := &MissingInputError{}
		assert.Equal(t, "spec file not found", err.Error())
	})

	t.Run("Error message with one location and cause", func(t *testing.T) {
		err := &MissingInputError{Locations: []string{"api/spec3.sdk.json"}, Cause: os.ErrNotExist}
		assert.Equal(t, "spec file not found: api/spec3.sdk.json: file does not exist", err.Error())
	})

	t.Run("Error message lists every location", func(t *testing.T) {
		err := &MissingInputError{Locations: []string{"a.json", "b.json"}}
		assert.Equal(t, "2 spec files not found: a.json, b.json", err.Error())
	})

	t.Run("Is matches ErrMissingInput only", func(t *testing.T) {
		err := &MissingInputError{Locations: []string{"a.json"}}
		assert.ErrorIs(t, err, ErrMissingInput)
		assert.NotErrorIs(t, err, ErrMalformedInput)
		assert.NotErrorIs(t, err, ErrConfig)
	})

	t.Run("Unwrap reaches os.ErrNotExist", func(t *testing.T) {
		err := &MissingInputError{Locations: []string{"a.json"}, Cause: os.ErrNotExist}
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("As extracts through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("parity: %w", &MissingInputError{Locations: []string{"x", "y"}})
		var missing *MissingInputError
		require.ErrorAs(t, wrapped, &missing)
		assert.Equal(t, []string{"x", "y"}, missing.Locations)
	})
}

func TestMalformedInputError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &MalformedInputError{
			Path:    "spec3.cli.json",
			Line:    12,
			Column:  4,
			Message: "invalid character",
			Cause:   errors.New("underlying"),
		}
		assert.Equal(t, "malformed input in spec3.cli.json at line 12, column 4: invalid character: underlying", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "malformed input", (&MalformedInputError{}).Error())
	})

	t.Run("Error message with line only", func(t *testing.T) {
		assert.Equal(t, "malformed input at line 3", (&MalformedInputError{Line: 3}).Error())
	})

	t.Run("Is matches ErrMalformedInput only", func(t *testing.T) {
		err := &MalformedInputError{Path: "a.json"}
		assert.ErrorIs(t, err, ErrMalformedInput)
		assert.NotErrorIs(t, err, ErrMissingInput)
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		assert.NoError(t, (&MalformedInputError{}).Unwrap())
	})
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{"empty", &ConfigError{}, "configuration error"},
		{"option only", &ConfigError{Option: "rules"}, "configuration error for rules"},
		{
			"option value and message",
			&ConfigError{Option: "namespaces", Value: "/v1/", Message: "overlapping prefix"},
			"configuration error for namespaces (value: /v1/): overlapping prefix",
		},
		{
			"with cause",
			&ConfigError{Message: "reading file", Cause: errors.New("permission denied")},
			"configuration error: reading file: permission denied",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrConfig)
		})
	}
}
