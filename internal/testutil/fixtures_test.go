package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestNewSpecDocument(t *testing.T) {
	doc := NewSpecDocument("/v1/charges", "/v2/accounts/{id}")

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, paths, 2)
	assert.Contains(t, paths, "/v1/charges")
	assert.Contains(t, paths, "/v2/accounts/{id}")

	get := paths["/v2/accounts/{id}"].(map[string]any)["get"].(map[string]any)
	assert.Equal(t, "Get_v2_accounts_id", get["operationId"])
}

func TestNewDocumentWithoutPaths(t *testing.T) {
	doc := NewDocumentWithoutPaths()
	assert.NotContains(t, doc, "paths")
	assert.Equal(t, "3.0.0", doc["openapi"])
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, NewSpecDocument("/v1/a"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded["paths"], "/v1/a")
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewSpecDocument("/v1/a"))
	assert.Equal(t, ".yaml", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded["paths"], "/v1/a")
}

func TestWriteSpecSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "api", "openapi-spec")
	WriteSpecSet(t, dir, SpecSet{V1GA: []string{"/v1/charges"}})

	for _, name := range []string{V1GAFile, V2GAFile, V2PreviewFile, UnifiedGAFile, UnifiedPreviewFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
