package extract_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/extract"
	"github.com/sella-roum/URL-Content-Downloader/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return context.Background()
}

// pipelineQueue builds a queue whose extractor and converter pass the fetched
// HTML through unchanged, so tests only stub the fetcher.
func pipelineQueue(t *testing.T, fetch func(ctx context.Context, url string) (string, error)) (*extract.Queue, *urlcontent.Tracker) {
	t.Helper()

	tracker := urlcontent.NewTracker(nil)
	tracker.Init(testContext())

	q := &extract.Queue{
		Fetcher: &mock.Fetcher{FetchFn: fetch},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*urlcontent.ExtractResult, error) {
				return &urlcontent.ExtractResult{Title: "T", ContentHTML: html}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		},
		Tracker: tracker,
		Logger:  slog.New(slog.DiscardHandler),
	}
	return q, tracker
}

func TestQueue_Run(t *testing.T) {
	t.Parallel()

	t.Run("filters blanks and processes in order", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		q, tracker := pipelineQueue(t, func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			return "content for " + url, nil
		})

		result, err := q.Run(testContext(), []string{"https://a.example/x", "", "https://b.example/y"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/x", "https://b.example/y"}, fetched)
		assert.Equal(t, 2, result.Completed)
		assert.Zero(t, result.Failed)
		assert.Equal(t, 2, tracker.Len())
	})

	t.Run("a per-URL failure never aborts the batch", func(t *testing.T) {
		t.Parallel()

		q, tracker := pipelineQueue(t, func(ctx context.Context, url string) (string, error) {
			if strings.Contains(url, "bad") {
				return "", errors.New("HTTP 500")
			}
			return "ok", nil
		})

		result, err := q.Run(testContext(), []string{"https://a.example/bad", "https://a.example/good"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Completed)
		assert.Equal(t, 1, result.Failed)

		bad, ok := tracker.Entry("https://a.example/bad")
		require.True(t, ok)
		assert.Equal(t, urlcontent.StatusError, bad.Status)
		assert.Equal(t, "HTTP 500", bad.ErrorMessage)

		good, ok := tracker.Entry("https://a.example/good")
		require.True(t, ok)
		assert.Equal(t, urlcontent.StatusCompleted, good.Status)
		assert.Equal(t, "ok", good.Content)
		assert.NotEmpty(t, good.ContentHash)
	})

	t.Run("empty markdown resolves to error", func(t *testing.T) {
		t.Parallel()

		q, tracker := pipelineQueue(t, func(ctx context.Context, url string) (string, error) {
			return "   \n\t", nil
		})

		result, err := q.Run(testContext(), []string{"https://a.example/empty"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		e, ok := tracker.Entry("https://a.example/empty")
		require.True(t, ok)
		assert.Equal(t, urlcontent.StatusError, e.Status)
	})

	t.Run("empty input signals finished immediately", func(t *testing.T) {
		t.Parallel()

		q, _ := pipelineQueue(t, func(ctx context.Context, url string) (string, error) {
			t.Error("fetch must not be called")
			return "", nil
		})

		var events []extract.ProgressType
		result, err := q.Run(testContext(), []string{"", "  "}, func(ev extract.ProgressEvent) {
			events = append(events, ev.Type)
		})

		require.NoError(t, err)
		assert.Zero(t, result.Completed)
		assert.Equal(t, []extract.ProgressType{extract.ProgressStarted, extract.ProgressFinished}, events)
	})

	t.Run("emits one event per URL plus start and finish", func(t *testing.T) {
		t.Parallel()

		q, _ := pipelineQueue(t, func(ctx context.Context, url string) (string, error) {
			if strings.Contains(url, "bad") {
				return "", errors.New("boom")
			}
			return "ok", nil
		})

		var events []extract.ProgressEvent
		_, err := q.Run(testContext(), []string{"https://a.example/ok", "https://a.example/bad"}, func(ev extract.ProgressEvent) {
			events = append(events, ev)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, extract.ProgressStarted, events[0].Type)
		assert.Equal(t, extract.ProgressCompleted, events[1].Type)
		assert.Equal(t, extract.ProgressFailed, events[2].Type)
		assert.Equal(t, "https://a.example/bad", events[2].URL)
		assert.Equal(t, extract.ProgressFinished, events[3].Type)
	})

	t.Run("pending snapshot covers the whole batch before fetching", func(t *testing.T) {
		t.Parallel()

		tracker := urlcontent.NewTracker(nil)
		tracker.Init(testContext())

		q := &extract.Queue{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				// Both entries must already be pending while the first
				// fetch is in flight.
				assert.Equal(t, 2, tracker.Len())
				return "ok", nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(html string) (*urlcontent.ExtractResult, error) {
				return &urlcontent.ExtractResult{ContentHTML: html}, nil
			}},
			Converter: &mock.Converter{ConvertFn: func(html string) (string, error) { return html, nil }},
			Tracker:   tracker,
			Logger:    slog.New(slog.DiscardHandler),
		}

		_, err := q.Run(testContext(), []string{"https://a.example/1", "https://a.example/2"}, nil)
		require.NoError(t, err)
	})

	t.Run("concurrent fetches leave every resolution durably persisted", func(t *testing.T) {
		t.Parallel()

		var (
			storeMu sync.Mutex
			last    []urlcontent.Entry
		)
		store := &mock.ProgressStore{
			LoadFn: func(ctx context.Context) ([]urlcontent.Entry, error) {
				return nil, urlcontent.Errorf(urlcontent.ENOTFOUND, "no snapshot")
			},
			SaveFn: func(ctx context.Context, entries []urlcontent.Entry) error {
				storeMu.Lock()
				last = entries
				storeMu.Unlock()
				return nil
			},
		}
		tracker := urlcontent.NewTracker(store)
		tracker.Init(testContext())

		urls := make([]string, 8)
		for i := range urls {
			urls[i] = fmt.Sprintf("https://a.example/%d", i)
		}

		q := &extract.Queue{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				if strings.HasSuffix(url, "3") {
					return "", errors.New("transient")
				}
				return "content for " + url, nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(html string) (*urlcontent.ExtractResult, error) {
				return &urlcontent.ExtractResult{ContentHTML: html}, nil
			}},
			Converter:   &mock.Converter{ConvertFn: func(html string) (string, error) { return html, nil }},
			Tracker:     tracker,
			Concurrency: 4,
			Logger:      slog.New(slog.DiscardHandler),
		}

		result, err := q.Run(testContext(), urls, nil)
		require.NoError(t, err)
		assert.Equal(t, 7, result.Completed)
		assert.Equal(t, 1, result.Failed)

		// The last snapshot to reach the store must reflect every
		// resolution: nothing may survive as pending.
		storeMu.Lock()
		defer storeMu.Unlock()
		require.Len(t, last, 8)
		for _, e := range last {
			assert.True(t, e.Status.Terminal(), "%s persisted as %s", e.URL, e.Status)
		}
	})
}

func TestQueue_RetryFailed(t *testing.T) {
	t.Parallel()

	t.Run("no failed entries is a no-op", func(t *testing.T) {
		t.Parallel()

		var fetches int
		q, tracker := pipelineQueue(t, func(ctx context.Context, url string) (string, error) {
			fetches++
			return "ok", nil
		})
		_, err := q.Run(testContext(), []string{"https://a.example/x"}, nil)
		require.NoError(t, err)
		fetches = 0

		before := tracker.Snapshot()
		result, err := q.RetryFailed(testContext(), nil)

		require.NoError(t, err)
		assert.Zero(t, fetches, "no fetch calls on a clean map")
		assert.Zero(t, result.Completed+result.Failed)
		assert.Equal(t, before, tracker.Snapshot(), "no state change")
	})

	t.Run("re-runs exactly the failed subset", func(t *testing.T) {
		t.Parallel()

		var failFirst = true
		var fetched []string
		q, tracker := pipelineQueue(t, func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			if failFirst && strings.Contains(url, "flaky") {
				return "", errors.New("transient")
			}
			return "ok", nil
		})

		_, err := q.Run(testContext(), []string{"https://a.example/solid", "https://a.example/flaky"}, nil)
		require.NoError(t, err)

		failFirst = false
		fetched = nil
		result, err := q.RetryFailed(testContext(), nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/flaky"}, fetched)
		assert.Equal(t, 1, result.Completed)

		e, ok := tracker.Entry("https://a.example/flaky")
		require.True(t, ok)
		assert.Equal(t, urlcontent.StatusCompleted, e.Status)
	})
}
