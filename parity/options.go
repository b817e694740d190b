package parity

import (
	"io"

	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/loader"
	"github.com/erraggy/specparity/parityerrors"
)

// Option configures a Checker.
type Option func(*Checker) error

// WithLogger sets the structured logger. Log output never goes to the report writer.
func WithLogger(l loader.Logger) Option {
	return func(c *Checker) error {
		c.logger = loader.OrNop(l)
		return nil
	}
}

// WithOutput sets the report writer. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) error {
		if w == nil {
			w = io.Discard
		}
		c.out = w
		return nil
	}
}

// WithFormat sets the report format: text (default), json or yaml.
func WithFormat(format string) Option {
	return func(c *Checker) error {
		if err := cliutil.ValidateOutputFormat(format); err != nil {
			return &parityerrors.ConfigError{Option: "format", Value: format, Message: "unsupported output format", Cause: err}
		}
		c.format = format
		return nil
	}
}

// WithMaxFileSize sets the largest document the checker will load.
func WithMaxFileSize(n int64) Option {
	return func(c *Checker) error {
		if n <= 0 {
			return &parityerrors.ConfigError{Option: "max_file_size", Value: n, Message: "must be positive"}
		}
		c.maxFileSize = n
		return nil
	}
}
