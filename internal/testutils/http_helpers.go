package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mdhasanali39/taskQuest-server/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// NewCookieClient returns an HTTP client with a cookie jar, so an identity
// cookie set by one response is sent with the following requests.
func NewCookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err, "Failed to create cookie jar")
	return &http.Client{Jar: jar}
}

// ExecuteJSONRequest sends body as JSON and returns the response.
// An empty body sends no payload. The response body is closed on cleanup.
func ExecuteJSONRequest(
	t *testing.T,
	client *http.Client,
	server *httptest.Server,
	method, path, body string,
) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err, "Request %s %s failed", method, path)
	CleanupResponseBody(t, resp)
	return resp
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// DecodeEnvelope reads a JSON response body into a generic map.
func DecodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(body, &envelope), "Failed to unmarshal response: %s", string(body))
	return envelope
}

// AssertErrorResponse checks that a response is an error envelope with the
// expected status code and a message containing expectedMsgPart.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedMsgPart string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal error response: %s", string(body))

	assert.False(t, errResp.Status, "Error envelope must carry status=false")
	assert.Contains(t, errResp.Message, expectedMsgPart,
		"Error message should contain '%s' but got '%s'", expectedMsgPart, errResp.Message)
}
