// Package urlcontent provides a local, CLI-based URL content downloader.
// It fetches readable content for user-submitted URLs, tracks per-URL
// progress through a persisted state machine, and packages completed
// content into downloadable files under a configurable byte-size budget.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, trafilatura/, zip/).
package urlcontent
