package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}
	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestIsStructured(t *testing.T) {
	assert.False(t, IsStructured(FormatText))
	assert.True(t, IsStructured(FormatJSON))
	assert.True(t, IsStructured(FormatYAML))
}

func TestWriteStructured(t *testing.T) {
	data := map[string]any{"passed": true, "count": 2}

	var buf bytes.Buffer
	require.NoError(t, WriteStructured(&buf, data, FormatJSON))
	assert.Equal(t, "{\n  \"count\": 2,\n  \"passed\": true\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteStructured(&buf, data, FormatYAML))
	assert.Equal(t, "count: 2\npassed: true\n", buf.String())

	assert.Error(t, WriteStructured(&buf, data, FormatText))
}

func TestWriteStructuredWriteError(t *testing.T) {
	err := WriteStructured(failingWriter{}, map[string]int{"a": 1}, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing json output")
}
