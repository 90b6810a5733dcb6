package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes the file into the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sink := fs.NewSink(dir)

		err := sink.Save(context.Background(), "https___a.example_x.md", []byte("# content"))
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dir, "https___a.example_x.md"))
		require.NoError(t, err)
		assert.Equal(t, []byte("# content"), got)
	})

	t.Run("creates the directory on first save", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		sink := fs.NewSink(dir)

		require.NoError(t, sink.Save(context.Background(), "a.md", []byte("x")))
		assert.FileExists(t, filepath.Join(dir, "a.md"))
	})

	t.Run("rejects filenames with path separators", func(t *testing.T) {
		t.Parallel()

		sink := fs.NewSink(t.TempDir())

		err := sink.Save(context.Background(), "../escape.md", []byte("x"))
		assert.Equal(t, urlcontent.EINVALID, urlcontent.ErrorCode(err))

		err = sink.Save(context.Background(), "", []byte("x"))
		assert.Equal(t, urlcontent.EINVALID, urlcontent.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sink := fs.NewSink(t.TempDir())
		assert.Error(t, sink.Save(ctx, "a.md", []byte("x")))
	})
}
