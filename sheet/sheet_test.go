package sheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cheetsheet/cheet/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	t.Run("custom directory wins", func(t *testing.T) {
		assert.Equal(t, "/tmp/custom", sheet.Dir("/tmp/custom"))
	})

	t.Run("XDG_CONFIG_HOME is honored", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "cheet"), sheet.Dir(""))
	})

	t.Run("falls back to home config directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		dir := sheet.Dir("")
		assert.True(t, filepath.IsAbs(dir) || dir == filepath.Join(".", ".config", "cheet"))
		assert.Equal(t, "cheet", filepath.Base(dir))
		assert.Equal(t, ".config", filepath.Base(filepath.Dir(dir)))
	})
}

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("missing sheet names the expected path", func(t *testing.T) {
		t.Parallel()
		tmp := t.TempDir()
		_, err := sheet.Find(tmp, "nonexistent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no cheatsheet found for "nonexistent"`)
		assert.Contains(t, err.Error(), filepath.Join(tmp, "nonexistent.md"))
	})

	t.Run("existing sheet resolves", func(t *testing.T) {
		t.Parallel()
		tmp := t.TempDir()
		path := filepath.Join(tmp, "tmux.md")
		require.NoError(t, os.WriteFile(path, []byte("# tmux\n"), 0o644))

		found, err := sheet.Find(tmp, "tmux")
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns file content", func(t *testing.T) {
		t.Parallel()
		tmp := t.TempDir()
		path := filepath.Join(tmp, "git.md")
		require.NoError(t, os.WriteFile(path, []byte("# git\n\n```sh\ngit status\n```\n"), 0o644))

		content, err := sheet.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "# git\n\n```sh\ngit status\n```\n", content)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		_, err := sheet.Load(filepath.Join(t.TempDir(), "missing.md"))
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("returns sorted topics for markdown files only", func(t *testing.T) {
		t.Parallel()
		tmp := t.TempDir()
		for _, name := range []string{"tmux.md", "git.md", "notes.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte("x\n"), 0o644))
		}
		require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(tmp, "sub", "deep.md"), []byte("x\n"), 0o644))

		topics, err := sheet.List(tmp)
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "tmux"}, topics)
	})

	t.Run("empty directory lists nothing", func(t *testing.T) {
		t.Parallel()
		topics, err := sheet.List(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, topics)
	})
}
