package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/export"
	"github.com/sella-roum/URL-Content-Downloader/extract"
	"github.com/sella-roum/URL-Content-Downloader/fs"
	"github.com/sella-roum/URL-Content-Downloader/goquery"
	"github.com/sella-roum/URL-Content-Downloader/htmltomarkdown"
	uchttp "github.com/sella-roum/URL-Content-Downloader/http"
	"github.com/sella-roum/URL-Content-Downloader/readability"
	"github.com/sella-roum/URL-Content-Downloader/rod"
	ucslog "github.com/sella-roum/URL-Content-Downloader/slog"
	"github.com/sella-roum/URL-Content-Downloader/sqlite"
	"github.com/sella-roum/URL-Content-Downloader/trafilatura"
	"github.com/sella-roum/URL-Content-Downloader/zip"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the progress store.
	DB *sqlite.DB

	// Tracker for end-to-end testing.
	Tracker *urlcontent.Tracker
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("urlcontent"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'urlcontent --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set URLCONTENT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	store := ucslog.NewLoggingStore(sqlite.NewProgressStore(m.DB), logger)
	m.Tracker = urlcontent.NewTracker(store, urlcontent.WithLogger(logger))
	m.Tracker.Init(ctx)
	deps.DB = m.DB
	deps.Tracker = m.Tracker
	deps.Sitemaps = ucslog.NewLoggingSitemapService(uchttp.NewSitemapService(nil), logger)

	// Wire command-specific dependencies based on command
	if cmd == "fetch" || cmd == "retry" {
		browser := cli.Fetch.Browser
		concurrency := cli.Fetch.Concurrency
		if cmd == "retry" {
			browser = cli.Retry.Browser
			concurrency = cli.Retry.Concurrency
		}

		var fetcher urlcontent.Fetcher
		if browser {
			rodFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = uchttp.NewFetcher()
		}
		fetcher = ucslog.NewLoggingFetcher(fetcher, logger)
		defer fetcher.Close()

		deps.Queue = &extract.Queue{
			Fetcher: fetcher,
			Extractor: extract.Fallback(
				trafilatura.NewExtractor(),
				readability.NewExtractor(),
				goquery.NewExtractor(),
			),
			Converter:   htmltomarkdown.NewConverter(),
			Tracker:     m.Tracker,
			Concurrency: concurrency,
			Logger:      logger,
		}
	}

	if cmd == "export" {
		deps.Engine = &export.Engine{
			Archive: zip.NewBuilder(),
			Sink:    fs.NewSink(cli.Export.Out),
			Logger:  logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("URLCONTENT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "urlcontent.db"
	}
	dir := filepath.Join(home, ".urlcontent")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "state.db")
}
