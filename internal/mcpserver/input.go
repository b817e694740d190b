package mcpserver

import (
	"fmt"

	"github.com/erraggy/specparity/internal/options"
	"github.com/erraggy/specparity/loader"
)

// documentInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve loads the document from whichever input was provided. Documents are
// always read fresh so path sets reflect the current content.
func (d documentInput) resolve() (*loader.Document, error) {
	if err := options.ValidateSingleInputSource("file or content", d.File != "", d.Content != ""); err != nil {
		return nil, err
	}

	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SPECPARITY_MCP_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}

	if d.File != "" {
		return loader.LoadWithOptions(loader.WithFilePath(d.File))
	}
	return loader.LoadWithOptions(
		loader.WithBytes([]byte(d.Content)),
		loader.WithSourceName("content"),
	)
}
