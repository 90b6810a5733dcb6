package urlcontent_test

import (
	"testing"

	urlcontent "github.com/sella-roum/URL-Content-Downloader"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := urlcontent.Errorf(urlcontent.ENOTFOUND, "entry %q not found", "https://a.example/x")

	assert.Equal(t, urlcontent.ENOTFOUND, urlcontent.ErrorCode(err))
	assert.Equal(t, "entry \"https://a.example/x\" not found", urlcontent.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, urlcontent.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, urlcontent.ErrorMessage(nil))
}
