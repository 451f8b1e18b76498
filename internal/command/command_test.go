package command

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsprobe/fsprobe/internal/probe"
	"github.com/fsprobe/fsprobe/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(probe.NewHandler(&schema.OS{}))
}

func doRequest(t *testing.T, h *Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	return rec
}

// TestExists_Success tests the exists command for a present and a missing path.
func TestExists_Success(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	handler := newTestHandler()

	rec := doRequest(t, handler, "/api/exists?path="+file, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExistsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)

	rec = doRequest(t, handler, "/api/exists?path=/definitely/missing/path", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
}

// TestExists_Fail_MissingPath tests the only failure mode of the exists
// command: an absent path parameter.
func TestExists_Fail_MissingPath(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	rec := doRequest(t, handler, "/api/exists", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrMissingPath.Error(), resp.Error)
}

// TestMetadata_Success tests the wire shape of a served metadata record.
func TestMetadata_Success(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, make([]byte, 42), 0o644))

	handler := newTestHandler()

	rec := doRequest(t, handler, "/api/metadata?path="+file, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var flat map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flat))

	assert.Equal(t, float64(42), flat["size"])
	assert.Equal(t, true, flat["isFile"])
	assert.Equal(t, false, flat["isDir"])
	assert.Contains(t, flat, "accessedAtMs")
	assert.Contains(t, flat, "createdAtMs")
	assert.Contains(t, flat, "modifiedAtMs")
	assert.Contains(t, flat, "permissions")
}

// TestMetadata_Fail_NotFound tests that a missing path yields the error
// payload, not a partial record.
func TestMetadata_Fail_NotFound(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	rec := doRequest(t, handler, "/api/metadata?path=/definitely/missing/path", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

// TestMetadata_Fail_MissingPath tests the absent path parameter case.
func TestMetadata_Fail_MissingPath(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	rec := doRequest(t, handler, "/api/metadata", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestVersion_Success tests the version command payload.
func TestVersion_Success(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	handler.SetVersionInfo("1.2.3", "abcdef", "2026-01-01")

	rec := doRequest(t, handler, "/api/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "abcdef", resp.GitCommit)
	assert.Equal(t, "2026-01-01", resp.BuildTime)
}

// TestRequestID_Success tests that a caller-supplied request ID is echoed and
// a missing one is assigned.
func TestRequestID_Success(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	rec := doRequest(t, handler, "/api/exists?path=/tmp", map[string]string{"X-Request-ID": "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	rec = doRequest(t, handler, "/api/exists?path=/tmp", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
