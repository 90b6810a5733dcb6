package urlcontent

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ClearScope selects which entries Clear removes.
type ClearScope string

// Clear scopes. ClearAll wipes the map and the selection set; the other
// scopes remove only entries in the matching terminal state.
const (
	ClearAll       ClearScope = "all"
	ClearCompleted ClearScope = "completed"
	ClearFailed    ClearScope = "failed"
)

// SnapshotFunc receives the full ordered progress map after each change.
type SnapshotFunc func(entries []Entry)

// Tracker owns the URL-to-status progress map and drives legal transitions.
// All mutations serialize through its mutex, so callers always observe whole
// entries. After every mutation the snapshot is mirrored to the configured
// ProgressStore and published to the change observer.
//
// Tracker is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	entries   map[string]*Entry
	order     []string
	selection map[string]struct{}
	loaded    bool

	// pubMu orders store writes and observer calls. It is always acquired
	// while mu is still held, so snapshots reach the store in mutation
	// order even when resolutions race.
	pubMu sync.Mutex

	store    ProgressStore
	logger   *slog.Logger
	onChange SnapshotFunc
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(logger *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// WithObserver registers a callback invoked with the full snapshot after
// every change.
func WithObserver(fn SnapshotFunc) TrackerOption {
	return func(t *Tracker) {
		t.onChange = fn
	}
}

// NewTracker creates a Tracker mirroring changes to store. A nil store keeps
// the tracker purely in-memory.
func NewTracker(store ProgressStore, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		entries:   make(map[string]*Entry),
		order:     nil,
		selection: make(map[string]struct{}),
		store:     store,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init seeds the tracker from the persisted snapshot. It must be called once
// before any mutation; until it completes no snapshot is written back, so a
// fresh process can never clobber durable state with an empty map.
//
// A missing snapshot (ENOTFOUND) is a normal first run. Any other load
// failure is logged and the tracker starts empty with memory as the
// authority for the session.
func (t *Tracker) Init(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loaded {
		return
	}
	t.loaded = true

	if t.store == nil {
		return
	}

	entries, err := t.store.Load(ctx)
	if err != nil {
		if ErrorCode(err) != ENOTFOUND {
			t.logger.Warn("loading persisted progress failed", "error", err)
		}
		return
	}

	for i := range entries {
		e := entries[i]
		if e.Validate() != nil {
			continue
		}
		if _, ok := t.entries[e.URL]; ok {
			continue
		}
		t.entries[e.URL] = &e
		t.order = append(t.order, e.URL)
	}
}

// Enqueue transitions each URL to pending. Absent URLs are added, terminal
// entries are reset (stale content, error message, and selection membership
// are discarded), and already-pending entries are left untouched. Blank URLs
// are ignored. One snapshot is published for the whole batch.
func (t *Tracker) Enqueue(ctx context.Context, urls ...string) {
	t.mu.Lock()
	changed := false
	for _, url := range urls {
		if url == "" {
			continue
		}
		if e, ok := t.entries[url]; ok {
			if e.Status == StatusPending {
				continue
			}
			*e = Entry{URL: url, Status: StatusPending}
			delete(t.selection, url)
			changed = true
			continue
		}
		t.entries[url] = &Entry{URL: url, Status: StatusPending}
		t.order = append(t.order, url)
		changed = true
	}
	if !changed {
		t.mu.Unlock()
		return
	}
	t.publishLocked(ctx)
}

// Complete resolves the entry for url to completed with the given content.
// A URL that was never enqueued is enqueued in-band.
func (t *Tracker) Complete(ctx context.Context, url, title, content, contentHash string) {
	t.resolve(ctx, url, Entry{
		URL:         url,
		Status:      StatusCompleted,
		Title:       title,
		Content:     content,
		ContentHash: contentHash,
		FetchedAt:   time.Now().UTC(),
	})
}

// Fail resolves the entry for url to error with the given message.
// A URL that was never enqueued is enqueued in-band.
func (t *Tracker) Fail(ctx context.Context, url, message string) {
	t.resolve(ctx, url, Entry{
		URL:          url,
		Status:       StatusError,
		ErrorMessage: message,
		FetchedAt:    time.Now().UTC(),
	})
}

func (t *Tracker) resolve(ctx context.Context, url string, resolved Entry) {
	if url == "" {
		return
	}

	t.mu.Lock()
	e, ok := t.entries[url]
	if !ok {
		e = &Entry{}
		t.entries[url] = e
		t.order = append(t.order, url)
	}
	*e = resolved
	if e.Status != StatusCompleted {
		delete(t.selection, url)
	}
	t.publishLocked(ctx)
}

// Clear removes entries according to scope and prunes them from the
// selection set. ClearAll also drops the persisted snapshot.
func (t *Tracker) Clear(ctx context.Context, scope ClearScope) error {
	t.mu.Lock()

	switch scope {
	case ClearAll:
		t.entries = make(map[string]*Entry)
		t.order = nil
		t.selection = make(map[string]struct{})
		t.pubMu.Lock()
		t.mu.Unlock()

		if t.store != nil {
			if err := t.store.Clear(ctx); err != nil {
				t.logger.Warn("clearing persisted progress failed", "error", err)
			}
		}
		if t.onChange != nil {
			t.onChange(nil)
		}
		t.pubMu.Unlock()
		return nil

	case ClearCompleted, ClearFailed:
		target := StatusCompleted
		if scope == ClearFailed {
			target = StatusError
		}
		kept := t.order[:0]
		for _, url := range t.order {
			if t.entries[url].Status == target {
				delete(t.entries, url)
				delete(t.selection, url)
				continue
			}
			kept = append(kept, url)
		}
		t.order = kept
		t.publishLocked(ctx)
		return nil

	default:
		t.mu.Unlock()
		return Errorf(EINVALID, "unknown clear scope %q", scope)
	}
}

// Select adds a completed URL to the selection set.
// Returns ENOTFOUND for unknown URLs and EINVALID for entries that are not
// completed.
func (t *Tracker) Select(url string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[url]
	if !ok {
		return Errorf(ENOTFOUND, "no entry for %q", url)
	}
	if e.Status != StatusCompleted {
		return Errorf(EINVALID, "entry %q is not completed", url)
	}
	t.selection[url] = struct{}{}
	return nil
}

// Deselect removes a URL from the selection set. Unknown URLs are a no-op.
func (t *Tracker) Deselect(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.selection, url)
}

// Entry returns a copy of the entry for url.
func (t *Tracker) Entry(url string) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[url]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Snapshot returns copies of all entries in submission order.
func (t *Tracker) Snapshot() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Completed returns all completed entries in submission order.
func (t *Tracker) Completed() []Entry {
	return t.filtered(StatusCompleted)
}

// Failed returns all failed entries in submission order.
func (t *Tracker) Failed() []Entry {
	return t.filtered(StatusError)
}

// Selected returns the selected completed entries in submission order.
func (t *Tracker) Selected() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Entry
	for _, url := range t.order {
		if _, ok := t.selection[url]; ok {
			out = append(out, *t.entries[url])
		}
	}
	return out
}

// Len returns the number of tracked entries.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order)
}

func (t *Tracker) filtered(status Status) []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Entry
	for _, url := range t.order {
		if e := t.entries[url]; e.Status == status {
			out = append(out, *e)
		}
	}
	return out
}

func (t *Tracker) snapshotLocked() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, url := range t.order {
		out = append(out, *t.entries[url])
	}
	return out
}

// publishLocked mirrors the current snapshot to the store and notifies the
// observer. The publish lock is taken before the state lock is released, so
// a resolution that mutated first also persists first; a slow save can never
// land after a fresher one and leave the stale snapshot as durable state.
// Store failures are logged and otherwise swallowed: the in-memory map stays
// authoritative for the session. Nothing is written before Init has run.
//
// Callers must hold mu; publishLocked releases it.
func (t *Tracker) publishLocked(ctx context.Context) {
	snap := t.snapshotLocked()
	loaded := t.loaded
	t.pubMu.Lock()
	t.mu.Unlock()
	defer t.pubMu.Unlock()

	if t.store != nil && loaded {
		if err := t.store.Save(ctx, snap); err != nil {
			t.logger.Warn("persisting progress snapshot failed", "error", err)
		}
	}
	if t.onChange != nil {
		t.onChange(snap)
	}
}
