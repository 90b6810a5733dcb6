package main

import (
	"context"
	"io"
	"log/slog"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/export"
	"github.com/sella-roum/URL-Content-Downloader/extract"
	"github.com/sella-roum/URL-Content-Downloader/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Tracker  *urlcontent.Tracker
	Sitemaps urlcontent.SitemapService
	Queue    *extract.Queue
	Engine   *export.Engine
	Logger   *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Fetch  FetchCmd  `cmd:"" help:"Fetch URLs and extract their content as Markdown"`
	Retry  RetryCmd  `cmd:"" help:"Re-fetch URLs that previously failed"`
	Status StatusCmd `cmd:"" help:"Show progress for tracked URLs"`
	Export ExportCmd `cmd:"" help:"Package completed content and save it to disk"`
	Clear  ClearCmd  `cmd:"" help:"Clear tracked progress"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs        []string `arg:"" help:"URLs to fetch"`
	Sitemap     bool     `short:"s" help:"Treat arguments as site roots and expand them via sitemaps"`
	Browser     bool     `short:"b" help:"Render pages in a headless browser (requires Chrome)"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent fetch limit"`
}

// RetryCmd is the "retry" subcommand.
type RetryCmd struct {
	Browser     bool `short:"b" help:"Render pages in a headless browser (requires Chrome)"`
	Concurrency int  `short:"c" default:"1" help:"Concurrent fetch limit"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	Failed bool `help:"Show only failed URLs"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	URLs        []string `arg:"" optional:"" help:"Limit the export to these URLs"`
	Out         string   `short:"o" default:"." help:"Output directory"`
	Arrangement string   `default:"individual" enum:"individual,combined" help:"File arrangement (individual|combined)"`
	Format      string   `default:"files" enum:"files,zip" help:"Packaging format (files|zip)"`
	MaxBytes    int      `help:"Per-file byte budget, 0 means unlimited"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Scope string `arg:"" optional:"" default:"all" enum:"all,completed,failed" help:"What to clear (all|completed|failed)"`
	Force bool   `help:"Confirm clearing all progress"`
}
