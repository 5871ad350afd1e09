package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-base-url", "https://example.com/"}, &stdout, &stderr), stderr.String())
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<loc>https://example.com/calculators/construction-and-building/framing-material-estimator</loc>")
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-o", path}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://diycalculatorpro.com/calculators")
}

func TestRunUnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sitemap.xml")
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-o", path}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "sitemap:")
	assert.NoFileExists(t, path)
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}
