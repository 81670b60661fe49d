package jump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hernantz/jay/internal/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirs(t *testing.T) {
	t.Run("directories only", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir")
		touch(t, root, "file")

		got, err := ListDirs(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"dir"}, got)
	})

	t.Run("sorted", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir2", "dir1")

		got, err := ListDirs(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"dir1", "dir2"}, got)
	})

	t.Run("symlinks to directories count", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "real")
		touch(t, root, "file")
		require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))
		require.NoError(t, os.Symlink(filepath.Join(root, "file"), filepath.Join(root, "filelink")))

		got, err := ListDirs(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"link", "real"}, got)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := ListDirs(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

func TestWalk(t *testing.T) {
	match := FuzzyMatcher(fuzzy.DefaultThreshold)
	sep := string(filepath.Separator)

	t.Run("no terms returns root unchanged", func(t *testing.T) {
		root := t.TempDir()
		assert.Equal(t, root, Walk(root, nil, match))
	})

	t.Run("one existing dir", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir1")
		assert.Equal(t, filepath.Join(root, "dir1"), Walk(root, []string{"dir1"}, match))
	})

	t.Run("missing dir stops at root", func(t *testing.T) {
		root := t.TempDir()
		assert.Equal(t, root+sep, Walk(root, []string{"fake_dir"}, match))
	})

	t.Run("remaining terms are dropped", func(t *testing.T) {
		root := t.TempDir()
		assert.Equal(t, root+sep, Walk(root, []string{"fake_dir1", "fake_dir2"}, match))
	})

	t.Run("stops at the last existing dir", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir1/dir2")
		got := Walk(root, []string{"dir1", "dir2", "fake_dir"}, match)
		assert.Equal(t, filepath.Join(root, "dir1", "dir2")+sep, got)
	})

	t.Run("fuzzy names", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir1/filedir", "dir1/filedir2")
		got := Walk(root, []string{"dir", "dir"}, match)
		assert.Equal(t, filepath.Join(root, "dir1", "filedir"), got)
	})

	t.Run("exact name beats a longer match", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir1/filedir", "dir1/dir", "dir1/dir1")
		got := Walk(root, []string{"dir", "dir"}, match)
		assert.Equal(t, filepath.Join(root, "dir1", "dir"), got)
	})

	t.Run("files are never candidates", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir1")
		touch(t, root, "dir1/file1")
		got := Walk(root, []string{"dir1", "file1"}, match)
		assert.Equal(t, filepath.Join(root, "dir1")+sep, got)
	})

	t.Run("ambiguous term takes the first directory", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir1/filedir", "dir1/filedir2")
		touch(t, root, "dir1/file1")
		got := Walk(root, []string{"dir1", "file"}, match)
		assert.Equal(t, filepath.Join(root, "dir1", "filedir"), got)
	})

	t.Run("matcher rejection stops the walk", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "dir1")
		never := func(string, []string) (string, bool) { return "", false }
		assert.Equal(t, root+sep, Walk(root, []string{"dir1"}, never))
	})

	t.Run("terms are not modified", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "a/b")
		terms := []string{"a", "b"}
		Walk(root, terms, match)
		assert.Equal(t, []string{"a", "b"}, terms)
	})

	t.Run("root with trailing separator is not doubled", func(t *testing.T) {
		root := t.TempDir() + sep
		assert.Equal(t, root, Walk(root, []string{"nothing"}, match))
	})
}
