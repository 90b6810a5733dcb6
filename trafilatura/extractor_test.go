package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/sella-roum/URL-Content-Downloader/trafilatura"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Configuration Reference</title></head>
<body>
<header><nav>Home | Docs | Blog</nav></header>
<main>
<h1>Configuration Reference</h1>
<p>Every setting the downloader accepts is documented on this page,
including the environment variables that control where local state is
stored and how long fetches may run before timing out.</p>
<p>Settings given on the command line always take precedence over
values read from the environment.</p>
</main>
<footer>Generated by the docs pipeline</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(samplePage)
		require.NoError(t, err)

		assert.Equal(t, "Configuration Reference", result.Title)
		assert.Contains(t, result.ContentHTML, "take precedence over")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")
		require.Error(t, err)
		assert.Equal(t, urlcontent.EINVALID, urlcontent.ErrorCode(err))
	})
}
