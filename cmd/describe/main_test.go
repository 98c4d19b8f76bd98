package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImages(t *testing.T, names ...string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, []byte("jpeg"), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestDescribeCmd_Offline(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	paths := writeImages(t, "a.jpg", "b.jpg")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(paths)

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "a.jpg: "))
	assert.Contains(t, lines[0], "a.jpg")
	assert.True(t, strings.HasPrefix(lines[1], "b.jpg: "))
}

func TestDescribeCmd_JSON(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	paths := writeImages(t, "rua.jpg")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--json"}, paths...))

	require.NoError(t, cmd.Execute())

	var results []result
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, paths[0], results[0].Path)
	assert.NotEmpty(t, results[0].Description)
}

func TestDescribeCmd_RequiresPaths(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
