package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/specparity/parityerrors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"failed", failedError{}, ExitFailed},
		{"missing", &parityerrors.MissingInputError{Locations: []string{"a"}}, ExitFailed},
		{"reported missing", &reportedError{err: &parityerrors.MissingInputError{}}, ExitFailed},
		{"malformed", fmt.Errorf("wrapped: %w", &parityerrors.MalformedInputError{Path: "a"}), ExitError},
		{"config", &parityerrors.ConfigError{Option: "x"}, ExitError},
		{"usage", usageError(errors.New("bad flag")), ExitError},
		{"other", errors.New("boom"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestAlreadyReported(t *testing.T) {
	assert.True(t, alreadyReported(failedError{}))
	assert.True(t, alreadyReported(fmt.Errorf("run: %w", failedError{})))
	assert.True(t, alreadyReported(&reportedError{err: &parityerrors.MissingInputError{}}))
	assert.False(t, alreadyReported(&parityerrors.MissingInputError{Locations: []string{"a"}}))
	assert.False(t, alreadyReported(usageError(errors.New("bad flag"))))
}
