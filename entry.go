package urlcontent

import "time"

// Status represents the lifecycle state of a submitted URL.
type Status string

// Status values for Entry. An entry is created pending and moves to exactly
// one terminal state when its fetch resolves. Re-submission is the only way
// back to pending.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Terminal reports whether the status is a resolution state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Entry represents the progress record for one submitted URL. The URL is the
// key: unique, case-sensitive, exactly as submitted.
type Entry struct {
	URL    string `json:"url"`
	Status Status `json:"status"`

	// Title is the extracted page title. Set only on completion, may be empty.
	Title string `json:"title,omitempty"`

	// Content is the fetched readable content as Markdown.
	// Set if and only if Status is completed.
	Content string `json:"content,omitempty"`

	// ErrorMessage describes the fetch failure.
	// Set if and only if Status is error.
	ErrorMessage string `json:"errorMessage,omitempty"`

	// ContentHash is an xxhash of Content, used to detect content changes
	// across re-submissions. Set only on completion.
	ContentHash string `json:"contentHash,omitempty"`

	// FetchedAt records when the entry resolved.
	FetchedAt time.Time `json:"fetchedAt,omitzero"`
}

// Validate returns an error if the entry violates the status invariant:
// exactly one of {content set, error message set, status pending} holds.
func (e *Entry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	switch e.Status {
	case StatusPending:
		if e.Content != "" || e.ErrorMessage != "" {
			return Errorf(EINVALID, "pending entry must not carry content or an error message")
		}
	case StatusCompleted:
		if e.Content == "" {
			return Errorf(EINVALID, "completed entry requires content")
		}
		if e.ErrorMessage != "" {
			return Errorf(EINVALID, "completed entry must not carry an error message")
		}
	case StatusError:
		if e.ErrorMessage == "" {
			return Errorf(EINVALID, "failed entry requires an error message")
		}
		if e.Content != "" {
			return Errorf(EINVALID, "failed entry must not carry content")
		}
	default:
		return Errorf(EINVALID, "unknown status %q", e.Status)
	}
	return nil
}
