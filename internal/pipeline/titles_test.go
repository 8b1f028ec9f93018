package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTitles_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("Head of Growth\n\n  Content Lead  \n"), 0o600))

	titles := LoadTitles(path)
	assert.Equal(t, []string{"Head of Growth", "Content Lead"}, titles)
}

func TestLoadTitles_MissingFileUsesDefaults(t *testing.T) {
	titles := LoadTitles(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, []string{"SEO Manager", "Editor in Chief", "Marketing Manager"}, titles)
}

func TestLoadTitles_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o600))

	titles := LoadTitles(path)
	assert.Equal(t, defaultTitles, titles)
}

func TestLoadTitles_ReturnsCopyOfDefaults(t *testing.T) {
	titles := LoadTitles(filepath.Join(t.TempDir(), "nope.txt"))
	titles[0] = "mutated"
	assert.Equal(t, "SEO Manager", defaultTitles[0])
}
