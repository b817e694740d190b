// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specparity/internal/fileutil"
)

// NewSpecDocument creates a minimal OpenAPI 3 document whose paths object holds
// one GET operation per given path identifier.
func NewSpecDocument(paths ...string) map[string]any {
	items := make(map[string]any, len(paths))
	for _, p := range paths {
		items[p] = map[string]any{
			"get": map[string]any{
				"operationId": operationID(p),
				"responses": map[string]any{
					"200": map[string]any{"description": "OK"},
				},
			},
		}
	}
	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":   "Test API",
			"version": "1.0.0",
		},
		"paths": items,
	}
}

// NewDocumentWithoutPaths creates a document that has no paths field at all.
func NewDocumentWithoutPaths() map[string]any {
	doc := NewSpecDocument()
	delete(doc, "paths")
	return doc
}

func operationID(path string) string {
	r := strings.NewReplacer("/", "_", "{", "", "}", "")
	return "Get" + r.Replace(path)
}

// WriteJSON marshals doc to JSON and writes it to dir/name, creating dir if needed.
// Returns the full path of the written file.
func WriteJSON(t *testing.T, dir, name string, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteFile(t, dir, name, data)
}

// WriteYAML marshals doc to YAML and writes it to dir/name, creating dir if needed.
func WriteYAML(t *testing.T, dir, name string, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteFile(t, dir, name, data)
}

// WriteFile writes raw bytes to dir/name, creating dir if needed.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), fileutil.OwnerDir); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write fixture file: %v", err)
	}
	return path
}

// WriteTempJSON writes doc as JSON into a fresh t.TempDir() and returns the file path.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()
	return WriteJSON(t, t.TempDir(), "test.json", doc)
}

// WriteTempYAML writes doc as YAML into a fresh t.TempDir() and returns the file path.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()
	return WriteYAML(t, t.TempDir(), "test.yaml", doc)
}

// SpecSet describes the path identifiers of the five documents of a default run.
type SpecSet struct {
	V1GA           []string
	V2GA           []string
	V2Preview      []string
	UnifiedGA      []string
	UnifiedPreview []string
}

// Default file names of the five documents, relative to the spec directory.
const (
	V1GAFile           = "spec3.sdk.json"
	V2GAFile           = "spec3.v2.sdk.json"
	V2PreviewFile      = "spec3.v2.sdk.preview.json"
	UnifiedGAFile      = "spec3.cli.json"
	UnifiedPreviewFile = "spec3.cli.preview.json"
)

// WriteSpecSet writes the five documents of s into dir using the default file names.
// A nil slice still produces a document with an empty paths object.
func WriteSpecSet(t *testing.T, dir string, s SpecSet) {
	t.Helper()

	WriteJSON(t, dir, V1GAFile, NewSpecDocument(s.V1GA...))
	WriteJSON(t, dir, V2GAFile, NewSpecDocument(s.V2GA...))
	WriteJSON(t, dir, V2PreviewFile, NewSpecDocument(s.V2Preview...))
	WriteJSON(t, dir, UnifiedGAFile, NewSpecDocument(s.UnifiedGA...))
	WriteJSON(t, dir, UnifiedPreviewFile, NewSpecDocument(s.UnifiedPreview...))
}
