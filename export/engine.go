// Package export implements the size-constrained packaging engine. It turns
// completed entries into named byte buffers under a per-file byte budget and
// delivers them either one by one to the download sink or bundled into a
// single archive.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"golang.org/x/time/rate"
)

// ArchiveFilename is the name of the archive delivered for zip exports.
const ArchiveFilename = "url-content.zip"

// DefaultFileDelay paces successive direct-file saves so the host
// environment does not suppress rapid downloads.
const DefaultFileDelay = 500 * time.Millisecond

// combinedBasename names combined-arrangement output files.
const combinedBasename = "combined"

// Engine packages completed entries according to ExportOptions and hands
// the results to the download sink. Exports are all-or-nothing: every
// output buffer is built before the first byte is delivered.
type Engine struct {
	// Archive bundles files for zip exports. Leaving it nil, or an
	// implementation reporting unavailable, fails zip exports cleanly.
	Archive urlcontent.ArchiveBuilder

	Sink urlcontent.DownloadSink

	// FileDelay is the pause between successive direct-file saves.
	// Defaults to DefaultFileDelay; it is not applied to zip exports.
	FileDelay time.Duration

	Logger *slog.Logger
}

// Result holds the outcome of an export.
type Result struct {
	// Files is the number of packaged content files.
	Files int

	// Bytes is the number of bytes handed to the sink.
	Bytes int
}

// Export packages the qualifying subset of entries and delivers it.
// Entries that are not completed are excluded even if nominally selected.
// Returns ENOCONTENT when nothing qualifies and EUNAVAILABLE when zip
// packaging is requested without an archive capability; in both cases
// nothing is delivered.
func (e *Engine) Export(ctx context.Context, entries []urlcontent.Entry, opts urlcontent.ExportOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	qualifying := make([]urlcontent.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == urlcontent.StatusCompleted && entry.Content != "" {
			qualifying = append(qualifying, entry)
		}
	}
	if len(qualifying) == 0 {
		return nil, urlcontent.Errorf(urlcontent.ENOCONTENT, "no fetched content available to package")
	}

	if opts.Format == urlcontent.FormatZip && (e.Archive == nil || !e.Archive.Available()) {
		return nil, urlcontent.Errorf(urlcontent.EUNAVAILABLE, "archive capability is unavailable")
	}

	var files []urlcontent.PackagedFile
	switch opts.Arrangement {
	case urlcontent.ArrangementIndividual:
		files = buildIndividual(qualifying, opts.MaxBytesPerFile)
	case urlcontent.ArrangementCombined:
		files = buildCombined(qualifying, opts.MaxBytesPerFile)
	}

	switch opts.Format {
	case urlcontent.FormatZip:
		return e.deliverArchive(ctx, files)
	default:
		return e.deliverFiles(ctx, files)
	}
}

// buildIndividual produces one file per entry. Content over the budget is
// truncated byte-exactly with the dangling partial character dropped.
func buildIndividual(entries []urlcontent.Entry, budget int) []urlcontent.PackagedFile {
	files := make([]urlcontent.PackagedFile, 0, len(entries))
	seen := make(map[string]int)

	for _, entry := range entries {
		content := entry.Content
		if budget > 0 && len(content) > budget {
			content = urlcontent.TruncateText(content, budget)
		}

		name := urlcontent.SafeFilename(entry.URL)
		// Distinct URLs can collapse to the same safe name; suffix repeats.
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			base := strings.TrimSuffix(name, urlcontent.ContentExtension)
			name = fmt.Sprintf("%s_%d%s", base, n+1, urlcontent.ContentExtension)
		} else {
			seen[name] = 1
		}

		files = append(files, urlcontent.PackagedFile{Filename: name, Data: []byte(content)})
	}
	return files
}

// buildCombined concatenates every entry under a source-URL header, then
// splits the byte stream into consecutive budget-sized chunks. The chunks
// are exact byte slices, so their concatenation reconstructs the combined
// document byte-for-byte.
func buildCombined(entries []urlcontent.Entry, budget int) []urlcontent.PackagedFile {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, "## Source: "+entry.URL+"\n\n"+entry.Content)
	}
	combined := []byte(strings.Join(parts, "\n\n"))

	if budget <= 0 || len(combined) <= budget {
		return []urlcontent.PackagedFile{{
			Filename: combinedBasename + urlcontent.ContentExtension,
			Data:     combined,
		}}
	}

	chunks := urlcontent.SplitBytes(combined, budget)
	files := make([]urlcontent.PackagedFile, 0, len(chunks))
	for i, chunk := range chunks {
		files = append(files, urlcontent.PackagedFile{
			Filename: fmt.Sprintf("%s_%03d%s", combinedBasename, i+1, urlcontent.ContentExtension),
			Data:     chunk,
		})
	}
	return files
}

// deliverFiles hands each file to the sink, pacing between saves.
func (e *Engine) deliverFiles(ctx context.Context, files []urlcontent.PackagedFile) (*Result, error) {
	delay := e.FileDelay
	if delay <= 0 {
		delay = DefaultFileDelay
	}
	pacer := rate.NewLimiter(rate.Every(delay), 1)

	result := &Result{}
	for _, f := range files {
		if err := pacer.Wait(ctx); err != nil {
			return nil, err
		}
		if err := e.Sink.Save(ctx, f.Filename, f.Data); err != nil {
			return nil, urlcontent.Errorf(urlcontent.EINTERNAL, "saving %s: %v", f.Filename, err)
		}
		result.Files++
		result.Bytes += len(f.Data)
		e.logger().Info("file delivered", "filename", f.Filename, "bytes", len(f.Data))
	}
	return result, nil
}

// deliverArchive bundles every file into one archive and saves it.
func (e *Engine) deliverArchive(ctx context.Context, files []urlcontent.PackagedFile) (*Result, error) {
	data, err := e.Archive.Build(files)
	if err != nil {
		return nil, urlcontent.Errorf(urlcontent.EINTERNAL, "building archive: %v", err)
	}
	if err := e.Sink.Save(ctx, ArchiveFilename, data); err != nil {
		return nil, urlcontent.Errorf(urlcontent.EINTERNAL, "saving %s: %v", ArchiveFilename, err)
	}
	e.logger().Info("archive delivered", "filename", ArchiveFilename, "files", len(files), "bytes", len(data))
	return &Result{Files: len(files), Bytes: len(data)}, nil
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
