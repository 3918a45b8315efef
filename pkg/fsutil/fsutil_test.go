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

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		content := []byte("hello world\n")
		require.NoError(t, os.WriteFile(path, content, 0644))

		got, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Equal(t, os.FileMode(0644), info.Mode)
	})

	t.Run("non-existent file is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory is ErrIsDirectory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "anypath")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadStdin_Pipe(t *testing.T) {
	t.Parallel()

	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	defer reader.Close()

	go func() {
		_, _ = writer.WriteString("line one\nline two\n")
		_ = writer.Close()
	}()

	content, info, err := fsutil.ReadStdin(context.Background(), reader)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", string(content))
	assert.Equal(t, fsutil.StdinPath, info.Path)
	assert.False(t, fsutil.IsTerminal(reader))
}

func TestIsTerminal_Nil(t *testing.T) {
	t.Parallel()

	assert.False(t, fsutil.IsTerminal(nil))
}
