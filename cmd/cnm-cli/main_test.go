package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEdgeListParsesTriangle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.edges")
	content := "0 1\n1 2\n# comment\n\n0 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := loadEdgeList(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
}

func TestLoadEdgeListRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.edges")
	require.NoError(t, os.WriteFile(path, []byte("0 1 2\n"), 0o644))

	_, err := loadEdgeList(path)
	require.Error(t, err)
}

func TestLoadEdgeListRejectsNonIntegerField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.edges")
	require.NoError(t, os.WriteFile(path, []byte("a b\n"), 0o644))

	_, err := loadEdgeList(path)
	require.Error(t, err)
}

func TestLoadEdgeListMissingFileErrors(t *testing.T) {
	_, err := loadEdgeList("/nonexistent/path.edges")
	require.Error(t, err)
}
