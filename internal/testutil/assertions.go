package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var body struct {
		Message string `json:"message"`
	}
	AssertJSONResponse(t, resp, &body)
	assert.Contains(t, body.Message, expectedMessage, "error message mismatch")
}

// AssertLocalUploadURL verifies url points at a file served from the upload
// directory of a server at publicURL.
func AssertLocalUploadURL(t *testing.T, publicURL, raw string) {
	t.Helper()

	require.True(t, strings.HasPrefix(raw, publicURL+media.LocalPathPrefix), "not a local upload url: %s", raw)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.NotEqual(t, media.LocalPathPrefix, parsed.Path, "missing filename")
}

// AssertNewestFirst verifies timestamps are in descending order
func AssertNewestFirst(t *testing.T, times []time.Time) {
	t.Helper()
	for i := 1; i < len(times); i++ {
		assert.False(t, times[i].After(times[i-1]), "item %d is newer than item %d", i, i-1)
	}
}
