package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specparity/parityerrors"
)

// DefaultMaxFileSize is the largest document Load will read (256 MiB).
const DefaultMaxFileSize int64 = 256 << 20

// Document is a loaded specification document.
//
// Only the key set of the top-level "paths" object is meaningful to specparity;
// everything else in Data is carried along untouched. Callers should treat a
// Document as read-only.
type Document struct {
	// SourcePath is the path the document was read from.
	// For byte or reader input it is "LoadBytes.json" / "LoadReader.yaml" etc.
	SourcePath string
	// SourceFormat is the detected format of the source
	SourceFormat SourceFormat
	// Data is the decoded top-level object
	Data map[string]any
	// SourceSize is the size of the source in bytes
	SourceSize int64
	// LoadTime is the time spent reading the source
	LoadTime time.Duration
}

// HasPaths reports whether the document declares a non-null "paths" field.
func (d *Document) HasPaths() bool {
	if d == nil || d.Data == nil {
		return false
	}
	p, ok := d.Data["paths"]
	return ok && p != nil
}

// Loader reads specification documents from disk or memory.
type Loader struct {
	// Logger receives debug diagnostics. Defaults to NopLogger.
	Logger Logger
	// MaxFileSize is the largest file Load will read. 0 means DefaultMaxFileSize.
	MaxFileSize int64
}

// New creates a new Loader instance with default settings
func New() *Loader {
	return &Loader{MaxFileSize: DefaultMaxFileSize}
}

// Load reads and decodes the document at path using a default Loader.
func Load(path string) (*Document, error) {
	return New().Load(path)
}

func (l *Loader) log() Logger {
	return OrNop(l.Logger)
}

func (l *Loader) maxFileSize() int64 {
	if l.MaxFileSize > 0 {
		return l.MaxFileSize
	}
	return DefaultMaxFileSize
}

// Load reads and decodes the document at path.
//
// A path that does not exist returns a *parityerrors.MissingInputError. Content that
// cannot be decoded as a JSON or YAML object returns a *parityerrors.MalformedInputError.
func (l *Loader) Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &parityerrors.MissingInputError{Locations: []string{path}, Cause: err}
		}
		return nil, fmt.Errorf("loader: failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, &parityerrors.MalformedInputError{Path: path, Message: "is a directory"}
	}
	if info.Size() > l.maxFileSize() {
		return nil, &parityerrors.MalformedInputError{
			Path:    path,
			Message: fmt.Sprintf("file size %s exceeds limit of %s", FormatBytes(info.Size()), FormatBytes(l.maxFileSize())),
		}
	}

	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read file: %w", err)
	}

	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	raw, err := decode(data, format, path)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		SourcePath:   path,
		SourceFormat: format,
		Data:         raw,
		SourceSize:   int64(len(data)),
		LoadTime:     loadTime,
	}
	l.log().Debug("loaded document",
		"path", path,
		"format", string(format),
		"size", FormatBytes(doc.SourceSize),
		"loadTime", loadTime)
	return doc, nil
}

// LoadBytes decodes a document held in memory.
// SourcePath is set to LoadBytes.json or LoadBytes.yaml based on the detected format.
func (l *Loader) LoadBytes(data []byte) (*Document, error) {
	if int64(len(data)) > l.maxFileSize() {
		return nil, &parityerrors.MalformedInputError{
			Path:    "LoadBytes",
			Message: fmt.Sprintf("input size %s exceeds limit of %s", FormatBytes(int64(len(data))), FormatBytes(l.maxFileSize())),
		}
	}
	format := detectFormatFromContent(data)
	name := "LoadBytes." + string(format)
	if format == SourceFormatUnknown {
		name = "LoadBytes"
	}
	raw, err := decode(data, format, name)
	if err != nil {
		return nil, err
	}
	return &Document{
		SourcePath:   name,
		SourceFormat: format,
		Data:         raw,
		SourceSize:   int64(len(data)),
	}, nil
}

// LoadReader reads r to completion and decodes the result.
func (l *Loader) LoadReader(r io.Reader) (*Document, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, l.maxFileSize()+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read data: %w", err)
	}
	doc, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	if doc.SourceFormat != SourceFormatUnknown {
		doc.SourcePath = "LoadReader." + string(doc.SourceFormat)
	}
	return doc, nil
}

// decode turns raw bytes into the top-level object of a document.
func decode(data []byte, format SourceFormat, source string) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, jsonError(source, data, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &parityerrors.MalformedInputError{Path: source, Message: "failed to parse YAML", Cause: err}
		}
	}

	if raw == nil {
		return nil, &parityerrors.MalformedInputError{Path: source, Message: "document is empty"}
	}

	if p, ok := raw["paths"]; ok && p != nil {
		switch p.(type) {
		case map[string]any, map[any]any:
		default:
			return nil, &parityerrors.MalformedInputError{
				Path:    source,
				Message: fmt.Sprintf("paths must be an object, got %T", p),
			}
		}
	}
	return raw, nil
}

func jsonError(source string, data []byte, err error) error {
	malformed := &parityerrors.MalformedInputError{Path: source, Message: "failed to parse JSON", Cause: err}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		malformed.Line, malformed.Column = lineColumn(data, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		malformed.Line, malformed.Column = lineColumn(data, typeErr.Offset)
	}
	return malformed
}
