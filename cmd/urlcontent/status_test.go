package main_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/sella-roum/URL-Content-Downloader/cmd/urlcontent"
)

func TestStatusCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("empty tracker shows hint", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     testContext(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Tracker: newTestTracker(t),
		}

		cmd := &main.StatusCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No URLs tracked")
	})

	t.Run("lists entries with counts", func(t *testing.T) {
		t.Parallel()

		tracker := newTestTracker(t)
		ctx := testContext()
		tracker.Enqueue(ctx, "https://a.example/done", "https://a.example/broken", "https://a.example/waiting")
		tracker.Complete(ctx, "https://a.example/done", "Done", "# done", "hash")
		tracker.Fail(ctx, "https://a.example/broken", "HTTP 503")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     ctx,
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Tracker: tracker,
		}

		cmd := &main.StatusCmd{}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "completed  https://a.example/done")
		assert.Contains(t, out, "error      https://a.example/broken  (HTTP 503)")
		assert.Contains(t, out, "pending    https://a.example/waiting")
		assert.Contains(t, out, "3 tracked: 1 completed, 1 failed, 1 pending")
	})

	t.Run("failed flag hides other statuses but keeps counts", func(t *testing.T) {
		t.Parallel()

		tracker := newTestTracker(t)
		ctx := testContext()
		tracker.Enqueue(ctx, "https://a.example/done", "https://a.example/broken")
		tracker.Complete(ctx, "https://a.example/done", "Done", "# done", "hash")
		tracker.Fail(ctx, "https://a.example/broken", "timeout")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     ctx,
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Tracker: tracker,
		}

		cmd := &main.StatusCmd{Failed: true}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.NotContains(t, out, "completed  https://a.example/done")
		assert.Contains(t, out, "https://a.example/broken")
		assert.Contains(t, out, "2 tracked: 1 completed, 1 failed, 0 pending")
	})
}
