package urlcontent

import (
	"context"
	"strings"
)

// Arrangement controls whether exported content stays per-URL or is
// concatenated into one document.
type Arrangement string

// Arrangement values for ExportOptions.
const (
	ArrangementIndividual Arrangement = "individual"
	ArrangementCombined   Arrangement = "combined"
)

// PackageFormat controls how packaged files are delivered.
type PackageFormat string

// PackageFormat values for ExportOptions.
const (
	FormatFiles PackageFormat = "files"
	FormatZip   PackageFormat = "zip"
)

// ContentExtension is the canonical extension for packaged text files.
// The pipeline emits Markdown.
const ContentExtension = ".md"

// ExportOptions configures a packaging run.
type ExportOptions struct {
	Arrangement Arrangement   `json:"contentArrangement"`
	Format      PackageFormat `json:"packageFormat"`

	// MaxBytesPerFile is the byte budget for each output file.
	// Zero means unbounded regardless of arrangement.
	MaxBytesPerFile int `json:"maxBytesPerFile"`
}

// Validate returns an error if the options contain invalid fields.
func (o ExportOptions) Validate() error {
	switch o.Arrangement {
	case ArrangementIndividual, ArrangementCombined:
	default:
		return Errorf(EINVALID, "unknown arrangement %q", o.Arrangement)
	}
	switch o.Format {
	case FormatFiles, FormatZip:
	default:
		return Errorf(EINVALID, "unknown package format %q", o.Format)
	}
	if o.MaxBytesPerFile < 0 {
		return Errorf(EINVALID, "max bytes per file must not be negative")
	}
	return nil
}

// PackagedFile is one named output buffer produced by an export. It is
// ephemeral: produced fresh per export and never persisted.
type PackagedFile struct {
	Filename string
	Data     []byte
}

// ArchiveBuilder bundles packaged files into a single archive buffer.
// Filenames and content bytes are preserved exactly.
type ArchiveBuilder interface {
	// Available reports whether the archive capability can be used.
	// Callers probe before requesting an archive instead of handling a
	// runtime failure.
	Available() bool

	// Build produces one archive containing every file.
	Build(files []PackagedFile) ([]byte, error)
}

// DownloadSink delivers a packaged file to the user.
type DownloadSink interface {
	Save(ctx context.Context, filename string, data []byte) error
}

// SafeFilename derives an output filename from a URL: every character
// outside [A-Za-z0-9.-] becomes an underscore and the canonical content
// extension is appended.
func SafeFilename(url string) string {
	var b strings.Builder
	b.Grow(len(url) + len(ContentExtension))
	for _, r := range url {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	b.WriteString(ContentExtension)
	return b.String()
}
