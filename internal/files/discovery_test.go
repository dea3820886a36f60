package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rollcall/internal/errors"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestIsSessionFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"session.csv", true},
		{"session.xlsx", true},
		{"session.xls", true},
		{"SESSION.CSV", true},
		{"session.txt", false},
		{"session.pdf", false},
		{"session", false},
		{"csv", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSessionFile(tt.path))
		})
	}
}

func TestDiscover_Directory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "week2.csv")
	touch(t, dir, "week1.xlsx")
	touch(t, dir, "week3.xls")
	touch(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.csv"), 0755))

	paths, err := Discover(dir)
	require.NoError(t, err)

	// Sorted lexicographically by full path, directories and
	// non-session files skipped.
	assert.Equal(t, []string{
		filepath.Join(dir, "week1.xlsx"),
		filepath.Join(dir, "week2.csv"),
		filepath.Join(dir, "week3.xls"),
	}, paths)
}

func TestDiscover_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "session.csv")

	paths, err := Discover(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
}

func TestDiscover_UnsupportedSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "notes.txt")

	_, err := Discover(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindSource))
	assert.Contains(t, err.Error(), "not a supported CSV/XLSX attendance export")
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md")

	_, err := Discover(dir)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindSource))
	assert.Contains(t, err.Error(), "no attendance CSV/XLSX files found")
}

func TestDiscover_NonexistentPath(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindSource))
	assert.Contains(t, err.Error(), "please select a valid directory or attendance file")
}
