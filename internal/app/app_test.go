package app

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/l10n-coverage/internal/config"
	"github.com/heartmarshall/l10n-coverage/internal/coverage"
)

func testConfig(t *testing.T, document string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "localization.json")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	return &config.Config{
		Coverage: config.CoverageConfig{
			ResourcePath:     path,
			Languages:        []string{"tr-TR", "en-US", "ar-SA"},
			FallbackLanguage: "tr-TR",
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, `{
		"en-US": {"hello": "x", "bye": "y"},
		"tr-TR": {"hello": "x"},
		"ar-SA": {},
		"section1": {"en-US": "x"}
	}`)

	var out bytes.Buffer
	require.NoError(t, Run(cfg, discardLogger(), &out))

	want := `Missing keys by language
========================
tr-TR: 1 missing
  - bye
ar-SA: 2 missing
  - bye
  - hello

Sections with partial language coverage
=======================================
section1: missing ar-SA, tr-TR

Keys without fallback (tr-TR)
=============================
tr-TR: 1 missing
  - bye
ar-SA: 1 missing
  - bye
`
	assert.Equal(t, want, out.String())
}

func TestRun_AllAligned(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, `{"tr-TR": {"a": 1}, "en-US": {"a": 2}, "ar-SA": {"a": 3}}`)

	var out bytes.Buffer
	require.NoError(t, Run(cfg, discardLogger(), &out))

	assert.Contains(t, out.String(), "All languages aligned: no missing keys.")
	assert.NotContains(t, out.String(), "Keys without fallback")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, `{}`)
	cfg.Coverage.ResourcePath = filepath.Join(t.TempDir(), "absent.json")

	var out bytes.Buffer
	err := Run(cfg, discardLogger(), &out)

	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestRun_MalformedDocument(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, `{"tr-TR": `)

	var out bytes.Buffer
	err := Run(cfg, discardLogger(), &out)

	require.ErrorIs(t, err, coverage.ErrMalformedDocument)
	assert.Empty(t, out.String())
}

func TestRun_LogsStats(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, `{"tr-TR": {"a": 1, "b": 2}, "en-US": {"a": 1}}`)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	require.NoError(t, Run(cfg, logger, io.Discard))

	assert.Contains(t, logs.String(), "cultures=2")
	assert.Contains(t, logs.String(), "total_keys=3")
	assert.Contains(t, logs.String(), "distinct_keys=2")
}
