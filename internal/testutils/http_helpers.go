package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api/shared"
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

// DoJSONRequest sends body to server+path and returns the response with its
// body already read. A non-empty body is sent as application/json.
func DoJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method, path, body string,
) (*http.Response, string) {
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

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp, string(data)
}

// AssertErrorResponse checks the status code and that body is exactly
// {"errors": expectedMessage}.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	body string,
	expectedStatus int,
	expectedMessage string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &decoded),
		"Failed to unmarshal error response: %s", body)
	assert.Len(t, decoded, 1, "error body should only carry the errors key")

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, expectedMessage, errResp.Errors)
}
