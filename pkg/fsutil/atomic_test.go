package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprose/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".mdprose.yml")
		written, err := fsutil.WriteAtomic(context.Background(), path, []byte("line_length: 80\n"), fsutil.WriteOptions{})
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "line_length: 80\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("refuses to replace without overwrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

		written, err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), fsutil.WriteOptions{})
		require.ErrorIs(t, err, fsutil.ErrExists)
		assert.False(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "original", string(got))
	})

	t.Run("replaces with overwrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

		written, err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), fsutil.WriteOptions{Overwrite: true, Mode: 0600})
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("identical content is not rewritten", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("same"), 0644))

		written, err := fsutil.WriteAtomic(context.Background(), path, []byte("same"), fsutil.WriteOptions{})
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := fsutil.WriteAtomic(context.Background(), filepath.Join(dir, "a.yml"), []byte("x"), fsutil.WriteOptions{})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("fails in missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "a.yml")
		_, err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), fsutil.WriteOptions{})
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.WriteAtomic(ctx, filepath.Join(t.TempDir(), "a.yml"), []byte("x"), fsutil.WriteOptions{})
		require.ErrorIs(t, err, context.Canceled)
	})
}
