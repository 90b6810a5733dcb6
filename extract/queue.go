// Package extract orchestrates the draining of submitted URLs through the
// fetch pipeline: fetch HTML, extract readable content, convert to Markdown,
// and resolve each entry in the progress tracker.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"golang.org/x/sync/errgroup"
)

// Queue drains URL batches through the fetch collaborators, resolving each
// entry in the Tracker as its fetch completes. A per-URL failure never
// aborts the batch.
type Queue struct {
	Fetcher   urlcontent.Fetcher
	Extractor urlcontent.Extractor
	Converter urlcontent.Converter
	Tracker   *urlcontent.Tracker

	// Concurrency is the maximum number of in-flight fetches. Values
	// below 1 mean strictly sequential processing in submission order,
	// which keeps snapshot writes trivially consistent and avoids
	// hammering the remote host.
	Concurrency int

	Logger *slog.Logger
}

// Result holds the outcome of a queue run.
type Result struct {
	Completed int
	Failed    int
	Bytes     int
}

// ProgressEvent reports progress during a queue run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types, in emission order.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting queue progress.
type ProgressFunc func(event ProgressEvent)

// Run processes the URLs: blanks are filtered, every surviving URL is moved
// to pending up front in one snapshot, and then each URL is fetched,
// extracted, converted, and resolved. The progress callback, if provided,
// receives events as processing proceeds. Finished is signalled after the
// last URL resolves, or immediately when the filtered input is empty.
func (q *Queue) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			filtered = append(filtered, u)
		}
	}

	total := len(filtered)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}
	if total == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished})
		}
		return &Result{}, nil
	}

	batch := uuid.New().String()
	q.logger().Info("extraction run started", "batch", batch, "urls", total)

	q.Tracker.Enqueue(ctx, filtered...)

	concurrency := max(q.Concurrency, 1)

	var completed, failed, byteCount atomic.Int64
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, url := range filtered {
		g.Go(func() error {
			title, markdown, err := q.processURL(gctx, url)
			n := int(done.Add(1))

			if err != nil {
				failed.Add(1)
				q.Tracker.Fail(ctx, url, err.Error())
				q.logger().Warn("fetch failed", "batch", batch, "url", url, "error", err)
				if progress != nil {
					progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: url, Error: err})
				}
				return nil
			}

			completed.Add(1)
			byteCount.Add(int64(len(markdown)))
			q.Tracker.Complete(ctx, url, title, markdown, hashContent(markdown))
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: url})
			}
			return nil
		})
	}
	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	q.logger().Info("extraction run finished",
		"batch", batch,
		"completed", completed.Load(),
		"failed", failed.Load(),
	)

	return &Result{
		Completed: int(completed.Load()),
		Failed:    int(failed.Load()),
		Bytes:     int(byteCount.Load()),
	}, ctx.Err()
}

// RetryFailed re-runs exactly the current failed subset, in progress-map
// order. With no failed entries it is a no-op: no state change, no fetches.
func (q *Queue) RetryFailed(ctx context.Context, progress ProgressFunc) (*Result, error) {
	failed := q.Tracker.Failed()
	if len(failed) == 0 {
		return &Result{}, nil
	}

	urls := make([]string, len(failed))
	for i, e := range failed {
		urls[i] = e.URL
	}
	return q.Run(ctx, urls, progress)
}

// processURL fetches one URL and runs it through extraction and conversion.
func (q *Queue) processURL(ctx context.Context, url string) (title, markdown string, err error) {
	html, err := q.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", "", err
	}

	extracted, err := q.Extractor.Extract(html)
	if err != nil {
		return "", "", err
	}

	markdown, err = q.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", "", urlcontent.Errorf(urlcontent.ENOCONTENT, "no readable content at %s", url)
	}

	return extracted.Title, markdown, nil
}

func (q *Queue) logger() *slog.Logger {
	if q.Logger != nil {
		return q.Logger
	}
	return slog.Default()
}

// hashContent computes a hash of the content using xxhash.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
