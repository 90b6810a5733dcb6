package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<h1>Downloads</h1><h2>Queue</h2><p>Queued pages are fetched in order.</p>`)
		require.NoError(t, err)
		assert.Contains(t, md, "# Downloads")
		assert.Contains(t, md, "## Queue")
		assert.Contains(t, md, "Queued pages are fetched in order.")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<p>See the <a href="https://example.com/docs">docs</a>.</p>`)
		require.NoError(t, err)
		assert.Contains(t, md, "[docs](https://example.com/docs)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<ul><li>pending</li><li>completed</li></ul><ol><li>fetch</li><li>extract</li></ol>`)
		require.NoError(t, err)
		assert.Contains(t, md, "- pending")
		assert.Contains(t, md, "- completed")
		assert.Contains(t, md, "1. fetch")
		assert.Contains(t, md, "2. extract")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<pre><code class="language-sh">urlcontent fetch https://example.com</code></pre>`)
		require.NoError(t, err)
		assert.Contains(t, md, "```sh")
		assert.Contains(t, md, "urlcontent fetch https://example.com")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<table>
<thead><tr><th>URL</th><th>Status</th></tr></thead>
<tbody><tr><td>https://a.example</td><td>completed</td></tr></tbody>
</table>`)
		require.NoError(t, err)
		// Cells may be padded for alignment, check content and structure.
		assert.Contains(t, md, "URL")
		assert.Contains(t, md, "completed")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts emphasis and blockquotes", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<blockquote><p><strong>Note:</strong> exports are <em>byte-limited</em>.</p></blockquote>`)
		require.NoError(t, err)
		assert.Contains(t, md, "> **Note:**")
		assert.Contains(t, md, "*byte-limited*")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, urlcontent.EINVALID, urlcontent.ErrorCode(err))
	})
}
