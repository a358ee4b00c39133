package api

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/tgg/pkg/codec"
	"github.com/ssargent/tgg/pkg/storage"
	"github.com/ssargent/tgg/pkg/tgg"
)

const testAPIKey = "test-key"

// setupTestServer creates a router backed by a library in a temporary directory
func setupTestServer(t *testing.T) (http.Handler, *storage.Library) {
	t.Helper()

	library, err := storage.Open(filepath.Join(t.TempDir(), "library"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = library.Close() })

	registry := prometheus.NewRegistry()
	config := ServerConfig{APIKey: testAPIKey, MaxUploadBytes: 4096}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(library, config, NewMetrics(registry), logger)

	return NewRouter(server, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})), library
}

func demoBytes(t *testing.T) []byte {
	t.Helper()

	created := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	doc, err := tgg.DemoCrossword("Test Author", tgg.WithClock(func() time.Time { return created }))
	require.NoError(t, err)
	return tgg.Encode(doc)
}

func do(t *testing.T, h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-API-Key", testAPIKey)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of an APIResponse into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) APIResponse {
	t.Helper()

	var envelope struct {
		APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	if out != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return envelope.APIResponse
}

func TestHandleHealth(t *testing.T) {
	h, _ := setupTestServer(t)

	w := do(t, h, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var data map[string]string
	resp := decodeData(t, w, &data)
	assert.True(t, resp.Success)
	assert.Equal(t, "healthy", data["status"])
}

func TestRoutesRequireAPIKey(t *testing.T) {
	h, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsEndpointIsOpen(t *testing.T) {
	h, _ := setupTestServer(t)
	do(t, h, http.MethodGet, "/api/v1/health", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tgg_http_requests_total")
}

func TestHandleCreate(t *testing.T) {
	h, library := setupTestServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/puzzles", demoBytes(t))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var summary storage.Summary
	resp := decodeData(t, w, &summary)
	assert.True(t, resp.Success)
	assert.Equal(t, "Test Crossword", summary.Title)
	assert.Equal(t, "Test Author", summary.Author)
	assert.Equal(t, "Crossword", summary.Game)

	id, err := ksuid.Parse(summary.ID)
	require.NoError(t, err)
	raw, err := library.GetRaw(id)
	require.NoError(t, err)
	assert.Equal(t, demoBytes(t), raw)
}

func TestHandleCreate_Rejects(t *testing.T) {
	corrupt := demoBytes(t)
	corrupt[30] ^= 0x01

	tests := []struct {
		name       string
		body       []byte
		wantStatus int
		wantKind   string
	}{
		{name: "corrupted byte", body: corrupt, wantStatus: http.StatusUnprocessableEntity, wantKind: kindChecksum},
		{name: "too short", body: []byte("0.1.0"), wantStatus: http.StatusUnprocessableEntity, wantKind: kindEnvelope},
		{name: "empty body", body: nil, wantStatus: http.StatusBadRequest},
		{name: "too large", body: bytes.Repeat([]byte{0x01}, 5000), wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, library := setupTestServer(t)

			w := do(t, h, http.MethodPost, "/api/v1/puzzles", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			resp := decodeData(t, w, nil)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantKind, resp.Kind)

			summaries, err := library.List()
			require.NoError(t, err)
			assert.Empty(t, summaries)
		})
	}
}

func TestHandleValidate(t *testing.T) {
	h, library := setupTestServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/puzzles/validate", demoBytes(t))
	require.Equal(t, http.StatusOK, w.Code)

	var result ValidationResult
	decodeData(t, w, &result)
	assert.Equal(t, "Test Crossword", result.Title)
	assert.Equal(t, "June, 01, 2024", result.Created)

	summaries, err := library.List()
	require.NoError(t, err)
	assert.Empty(t, summaries, "validate must not store")
}

func TestHandleValidate_ChecksumMismatch(t *testing.T) {
	h, _ := setupTestServer(t)

	data := demoBytes(t)
	data[len(data)-1] ^= 0xFF

	w := do(t, h, http.MethodPost, "/api/v1/puzzles/validate", data)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeData(t, w, nil)
	assert.Equal(t, kindChecksum, resp.Kind)
	assert.Contains(t, resp.Error, "footer checksum mismatch")
}

func TestHandleListGetDelete(t *testing.T) {
	h, _ := setupTestServer(t)

	w := do(t, h, http.MethodGet, "/api/v1/puzzles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = do(t, h, http.MethodPost, "/api/v1/puzzles", demoBytes(t))
	require.Equal(t, http.StatusCreated, w.Code)
	var created storage.Summary
	decodeData(t, w, &created)

	w = do(t, h, http.MethodGet, "/api/v1/puzzles", nil)
	var listed []storage.Summary
	decodeData(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	w = do(t, h, http.MethodGet, "/api/v1/puzzles/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view PuzzleView
	decodeData(t, w, &view)
	assert.Equal(t, "June, 01, 2024", view.Created)
	require.NotNil(t, view.Crossword)
	assert.Equal(t, []string{"CAT", "##A", "##B"}, view.Crossword.Rows)
	require.Len(t, view.Crossword.Across, 1)
	assert.Equal(t, "CAT", view.Crossword.Across[0].Answer)
	require.Len(t, view.Crossword.Down, 1)
	assert.Equal(t, "TAB", view.Crossword.Down[0].Answer)

	w = do(t, h, http.MethodGet, "/api/v1/puzzles/"+created.ID+"/raw", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasSuffix(w.Header().Get("Content-Disposition"), `.tgg"`))
	assert.Equal(t, demoBytes(t), w.Body.Bytes())

	w = do(t, h, http.MethodDelete, "/api/v1/puzzles/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/puzzles/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/api/v1/puzzles/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGet_InvalidID(t *testing.T) {
	h, _ := setupTestServer(t)

	for _, path := range []string{"/api/v1/puzzles/not-an-id", "/api/v1/puzzles/not-an-id/raw"} {
		w := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestHandleCreate_NonASCIIMetadataKeepsLibraryReadable(t *testing.T) {
	h, _ := setupTestServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/puzzles", demoBytes(t))
	require.Equal(t, http.StatusCreated, w.Code)

	// Latin-1 byte in the title with both file checksums recomputed
	data := demoBytes(t)
	data[tgg.HeaderSize+1] = 0xE9
	sum := codec.Checksum(data[tgg.HeaderSize : len(data)-tgg.FooterSize])
	binary.LittleEndian.PutUint16(data[tgg.HeaderSize-2:], sum)
	binary.LittleEndian.PutUint16(data[len(data)-tgg.FooterSize:], sum)

	w = do(t, h, http.MethodPost, "/api/v1/puzzles", data)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeData(t, w, nil)
	assert.Equal(t, kindMetadata, resp.Kind)

	w = do(t, h, http.MethodGet, "/api/v1/puzzles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []storage.Summary
	decodeData(t, w, &listed)
	assert.Len(t, listed, 1)
}

func TestLibrarySizeGauge(t *testing.T) {
	h, _ := setupTestServer(t)

	for i := 0; i < 2; i++ {
		w := do(t, h, http.MethodPost, "/api/v1/puzzles", demoBytes(t))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "tgg_library_puzzles 2")
}
