package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ssargent/tgg/pkg/crossword"
	"github.com/ssargent/tgg/pkg/tgg"
)

func TestDecodeErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: kindOK},
		{err: tgg.ErrHeaderChecksumMismatch, want: kindChecksum},
		{err: fmt.Errorf("wrapped: %w", tgg.ErrFooterChecksumMismatch), want: kindChecksum},
		{err: tgg.ErrPayloadChecksumMismatch, want: kindChecksum},
		{err: tgg.ErrInvalidID, want: kindEnvelope},
		{err: tgg.ErrInvalidGameType, want: kindEnvelope},
		{err: tgg.ErrInsufficientHeaderBytes, want: kindEnvelope},
		{err: tgg.ErrAuthorEmpty, want: kindMetadata},
		{err: tgg.ErrInsufficientMetadataBytes, want: kindMetadata},
		{err: crossword.ErrClueCountMismatch, want: kindPayload},
		{err: tgg.ErrGameNotImplemented, want: kindPayload},
		{err: errors.New("something else"), want: kindPayload},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+fmt.Sprint(tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, decodeErrorKind(tt.err))
		})
	}
}

func TestMetrics_RecordDecode(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	assert.Equal(t, kindOK, m.RecordDecode(nil))
	assert.Equal(t, kindChecksum, m.RecordDecode(tgg.ErrHeaderChecksumMismatch))
	assert.Equal(t, kindChecksum, m.RecordDecode(tgg.ErrFooterChecksumMismatch))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeResultsTotal.WithLabelValues(kindOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.decodeResultsTotal.WithLabelValues(kindChecksum)))
}

func TestMetrics_InstrumentHandler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	handler := m.InstrumentHandler("GET", "/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/teapot", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequestsInFlight.WithLabelValues("GET", "/teapot")))
}

func TestMetrics_InstrumentAuthMiddleware(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := m.InstrumentAuthMiddleware(apiKeyMiddleware("secret"))(ok)

	for _, key := range []string{"secret", "wrong", ""} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusError)))
}

func TestMetrics_SetLibrarySize(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.SetLibrarySize(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.libraryPuzzles))
}
