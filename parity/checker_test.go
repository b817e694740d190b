package parity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specparity/config"
	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/internal/testutil"
	"github.com/erraggy/specparity/parityerrors"
	"github.com/erraggy/specparity/reconciler"
)

// passingSet is the passing scenario: every unified subset matches its standalone document.
func passingSet() testutil.SpecSet {
	return testutil.SpecSet{
		V1GA:      []string{"/v1/charges", "/v1/customers"},
		V2GA:      []string{"/v2/accounts"},
		UnifiedGA: []string{"/v1/charges", "/v1/customers", "/v2/accounts"},
	}
}

func newChecker(t *testing.T, dir string, opts ...Option) (*Checker, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.SpecDir = dir
	var buf bytes.Buffer
	c, err := New(cfg, append([]Option{WithOutput(&buf)}, opts...)...)
	require.NoError(t, err)
	return c, &buf
}

func TestRunPassingScenario(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, passingSet())
	c, buf := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Passed)
	assert.Equal(t, 0, report.ExitCode())
	assert.Empty(t, report.Discrepancies())
	require.Len(t, report.Rules, 3)
	assert.Equal(t, 2, report.Rules[0].Matched)
	assert.Equal(t, 1, report.Rules[1].Matched)
	assert.Equal(t, 0, report.Rules[2].Matched)
	assert.Empty(t, report.Notes)

	want := strings.Join([]string{
		"Loading OpenAPI specs...",
		"  - spec3.sdk.json",
		"  - spec3.v2.sdk.json",
		"  - spec3.v2.sdk.preview.json",
		"  - spec3.cli.json",
		"  - spec3.cli.preview.json",
		"",
		"Path counts:",
		"  v1 GA (spec3.sdk.json): 2",
		"  v2 GA (spec3.v2.sdk.json): 1",
		"  v2 Preview (spec3.v2.sdk.preview.json): 0",
		"  Unified GA (spec3.cli.json): 3",
		"  Unified Preview (spec3.cli.preview.json): 0",
		"",
		"Unified GA namespace breakdown:",
		"  v1 paths: 2",
		"  v2 paths: 1",
		"",
		"Unified Preview namespace breakdown:",
		"  v1 paths: 0",
		"  v2 paths: 0",
		"",
		"Validating v1 GA paths...",
		"  ✓ All 2 v1 GA paths match",
		"Validating v2 GA paths...",
		"  ✓ All 1 v2 GA paths match",
		"Validating v2 Preview paths...",
		"  ✓ All 0 v2 Preview paths match",
		"",
		Banner,
		"VALIDATION PASSED",
		Banner,
		"",
		"All validations passed! The unified specs correctly match the separate specs.",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRunFailingScenario(t *testing.T) {
	dir := t.TempDir()
	set := passingSet()
	set.V1GA = []string{"/v1/charges"}
	testutil.WriteSpecSet(t, dir, set)
	c, buf := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Passed)
	assert.Equal(t, 1, report.ExitCode())
	assert.Equal(t, []reconciler.Discrepancy{
		{Kind: reconciler.KindMissing, Path: "/v1/customers", Label: "spec3.sdk.json", Namespace: "v1"},
	}, report.Discrepancies())
	assert.Equal(t, "VALIDATION FAILED: 1 discrepancies in 1 of 3 rules", report.Summary)

	out := buf.String()
	assert.NotContains(t, out, "All 2 v1 GA paths match")
	assert.Contains(t, out, "  ✓ All 1 v2 GA paths match")
	assert.True(t, strings.HasSuffix(out, strings.Join([]string{
		Banner,
		"VALIDATION FAILED",
		Banner,
		"",
		"spec3.sdk.json: Missing 1 v1 paths:",
		"  - /v1/customers",
		"",
	}, "\n")), out)
}

func TestRunReportsEveryRule(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, testutil.SpecSet{
		V1GA:           []string{"/v1/a", "/v1/old"},
		V2GA:           []string{"/v2/b"},
		V2Preview:      []string{"/v2/beta"},
		UnifiedGA:      []string{"/v1/a", "/v2/b", "/v2/new"},
		UnifiedPreview: []string{"/v2/beta", "/v2/beta2"},
	})
	c, buf := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Passed)

	assert.Equal(t, []string{
		"",
		"spec3.sdk.json: Found 1 unexpected v1 paths:",
		"  + /v1/old",
		"",
		"spec3.v2.sdk.json: Missing 1 v2 paths:",
		"  - /v2/new",
		"",
		"spec3.v2.sdk.preview.json: Missing 1 v2 paths:",
		"  - /v2/beta2",
	}, report.Lines())
	assert.Contains(t, buf.String(), "spec3.v2.sdk.preview.json: Missing 1 v2 paths:\n  - /v2/beta2\n")
	assert.Equal(t, "VALIDATION FAILED: 3 discrepancies in 3 of 3 rules", report.Summary)
}

func TestRunMissingInputsAreExhaustive(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteJSON(t, dir, testutil.V2GAFile, testutil.NewSpecDocument())
	testutil.WriteJSON(t, dir, testutil.UnifiedGAFile, testutil.NewSpecDocument())
	c, buf := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, parityerrors.ErrMissingInput))

	var missing *parityerrors.MissingInputError
	require.True(t, errors.As(err, &missing))
	want := []string{
		filepath.Join(dir, testutil.V1GAFile),
		filepath.Join(dir, testutil.V2PreviewFile),
		filepath.Join(dir, testutil.UnifiedPreviewFile),
	}
	assert.Equal(t, want, missing.Locations)

	var lines []string
	for _, p := range want {
		lines = append(lines, "Error: Spec file not found: "+p)
	}
	assert.Equal(t, strings.Join(lines, "\n")+"\n", buf.String())
}

func TestRunMalformedInputAborts(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, passingSet())
	testutil.WriteFile(t, dir, testutil.V2GAFile, []byte(`{"paths": {`))
	c, buf := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, parityerrors.ErrMalformedInput))
	assert.NotContains(t, buf.String(), "VALIDATION")
	assert.NotContains(t, buf.String(), "Path counts:")
}

func TestRunEmptyPathsField(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, testutil.SpecSet{})
	testutil.WriteJSON(t, dir, testutil.V1GAFile, testutil.NewDocumentWithoutPaths())
	c, _ := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, 0, report.Documents[0].PathCount)
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	set := passingSet()
	set.V2GA = append(set.V2GA, "/v2/extra")
	testutil.WriteSpecSet(t, dir, set)

	for _, format := range []string{cliutil.FormatText, cliutil.FormatJSON, cliutil.FormatYAML} {
		t.Run(format, func(t *testing.T) {
			first, buf1 := newChecker(t, dir, WithFormat(format))
			r1, err := first.Run(context.Background())
			require.NoError(t, err)

			second, buf2 := newChecker(t, dir, WithFormat(format))
			r2, err := second.Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, buf1.String(), buf2.String())
			assert.Equal(t, r1, r2)
			assert.Equal(t, r1.ExitCode(), r2.ExitCode())
		})
	}
}

func TestRunV1PreviewNoteNeverFails(t *testing.T) {
	dir := t.TempDir()
	set := passingSet()
	set.UnifiedPreview = []string{"/v1/preview_a", "/v1/preview_b"}
	testutil.WriteSpecSet(t, dir, set)
	c, buf := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, 0, report.ExitCode())

	require.Len(t, report.Notes, 1)
	assert.Equal(t, 2, report.Notes[0].Count)
	assert.Contains(t, buf.String(), "\nNote: Found 2 v1 Preview paths in unified spec.\n"+
		"  These cannot be validated as v1 preview paths don't exist in the old spec structure.\n")
}

func TestRunIgnoresPathsOutsideNamespaces(t *testing.T) {
	dir := t.TempDir()
	set := passingSet()
	set.UnifiedGA = append(set.UnifiedGA, "/health", "/v3/future")
	testutil.WriteSpecSet(t, dir, set)
	c, _ := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, 2, report.Documents[3].OtherCount)
	assert.Equal(t, 5, report.Documents[3].PathCount)
}

func TestRunStructuredFormats(t *testing.T) {
	dir := t.TempDir()
	set := passingSet()
	set.V1GA = []string{"/v1/charges"}
	testutil.WriteSpecSet(t, dir, set)

	t.Run("json", func(t *testing.T) {
		c, buf := newChecker(t, dir, WithFormat(cliutil.FormatJSON))
		report, err := c.Run(context.Background())
		require.NoError(t, err)

		var decoded Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.False(t, decoded.Passed)
		assert.Equal(t, report.Summary, decoded.Summary)
		require.Len(t, decoded.Rules, 3)
		assert.Equal(t, []string{"/v1/customers"}, decoded.Rules[0].Result.Missing)
		assert.Equal(t, map[string]int{"v1": 2, "v2": 1}, decoded.Documents[3].Namespaces)
		assert.NotContains(t, buf.String(), "Loading OpenAPI specs")
	})

	t.Run("yaml", func(t *testing.T) {
		c, buf := newChecker(t, dir, WithFormat(cliutil.FormatYAML))
		_, err := c.Run(context.Background())
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, false, decoded["passed"])
		assert.NotContains(t, buf.String(), Banner)
	})
}

func TestRunGroupsLargeCounts(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 1200)
	for i := range paths {
		paths[i] = fmt.Sprintf("/v1/r%04d", i)
	}
	testutil.WriteSpecSet(t, dir, testutil.SpecSet{V1GA: paths, UnifiedGA: paths})
	c, buf := newChecker(t, dir)

	_, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "  v1 GA (spec3.sdk.json): 1,200\n")
	assert.Contains(t, buf.String(), "  ✓ All 1,200 v1 GA paths match\n")
}

func TestRunGroupsLargeDiscrepancyCounts(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 1200)
	for i := range paths {
		paths[i] = fmt.Sprintf("/v1/r%04d", i)
	}
	testutil.WriteSpecSet(t, dir, testutil.SpecSet{V1GA: []string{"/v1/other"}, UnifiedGA: paths})
	c, buf := newChecker(t, dir)

	report, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Passed)

	out := buf.String()
	assert.Contains(t, out, "  v1 paths: 1,200\n")
	assert.Contains(t, out, "spec3.sdk.json: Missing 1,200 v1 paths:\n")
	assert.Contains(t, out, "spec3.sdk.json: Found 1 unexpected v1 paths:\n  + /v1/other\n")
	assert.NotContains(t, out, "1200")
	assert.Equal(t, "VALIDATION FAILED: 1,201 discrepancies in 1 of 3 rules", report.Summary)
}

func TestRunGlobLocation(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, passingSet())
	cfg := config.Default()
	cfg.SpecDir = dir
	cfg.Documents[0].Location = "spec3.sdk.*"

	var buf bytes.Buffer
	c, err := New(cfg, WithOutput(&buf))
	require.NoError(t, err)
	report, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "spec3.sdk.json", report.Documents[0].File)
	assert.Contains(t, buf.String(), "  - spec3.sdk.json\n")
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, passingSet())
	c, _ := newChecker(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsToLoggerOnly(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, passingSet())
	log := &recordingLogger{}
	c, buf := newChecker(t, dir, WithLogger(log))

	_, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, log.info, "parity check complete")
	assert.NotContains(t, buf.String(), "parity check complete")
}

func TestRunMissingInputLogsAtDebugOnly(t *testing.T) {
	dir := t.TempDir()
	log := &recordingLogger{}
	c, _ := newChecker(t, dir, WithLogger(log))

	_, err := c.Run(context.Background())
	require.ErrorIs(t, err, parityerrors.ErrMissingInput)
	assert.Contains(t, log.debug, "spec files not found")
	assert.Empty(t, log.warn)
	assert.Empty(t, log.errs)
}

func TestNew(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), c.Config())
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Rules = nil
		_, err := New(cfg)
		assert.ErrorIs(t, err, parityerrors.ErrConfig)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(nil, WithFormat("xml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, parityerrors.ErrConfig)
		assert.Contains(t, err.Error(), "parity: invalid options")
	})

	t.Run("invalid max file size", func(t *testing.T) {
		_, err := New(nil, WithMaxFileSize(0))
		assert.ErrorIs(t, err, parityerrors.ErrConfig)
	})
}

func TestRunMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpecSet(t, dir, passingSet())
	c, _ := newChecker(t, dir, WithMaxFileSize(16))

	_, err := c.Run(context.Background())
	assert.ErrorIs(t, err, parityerrors.ErrMalformedInput)
}
