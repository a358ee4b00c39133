package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssargent/tgg/pkg/tgg"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Decode outcome labels
const (
	kindOK       = "ok"
	kindEnvelope = "envelope"
	kindChecksum = "checksum"
	kindMetadata = "metadata"
	kindPayload  = "payload"
)

// Metrics holds the Prometheus metrics for the API
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	decodeResultsTotal *prometheus.CounterVec
	libraryPuzzles     prometheus.Gauge

	authRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates the API metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tgg_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tgg_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tgg_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		decodeResultsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tgg_decode_results_total",
				Help: "Uploaded files by decode outcome",
			},
			[]string{"kind"},
		),

		libraryPuzzles: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tgg_library_puzzles",
				Help: "Number of puzzles in the library",
			},
		),

		authRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tgg_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDecode records the outcome of decoding an uploaded file
func (m *Metrics) RecordDecode(err error) string {
	kind := decodeErrorKind(err)
	m.decodeResultsTotal.WithLabelValues(kind).Inc()
	return kind
}

// SetLibrarySize updates the library size gauge
func (m *Metrics) SetLibrarySize(n int) {
	m.libraryPuzzles.Set(float64(n))
}

// RecordAuthRequest records an authentication request
func (m *Metrics) RecordAuthRequest(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// decodeErrorKind maps a tgg.Decode error onto a coarse label
func decodeErrorKind(err error) string {
	switch {
	case err == nil:
		return kindOK
	case errors.Is(err, tgg.ErrHeaderChecksumMismatch),
		errors.Is(err, tgg.ErrFooterChecksumMismatch),
		errors.Is(err, tgg.ErrPayloadChecksumMismatch):
		return kindChecksum
	case errors.Is(err, tgg.ErrInsufficientHeaderBytes),
		errors.Is(err, tgg.ErrInvalidID),
		errors.Is(err, tgg.ErrInvalidGameType):
		return kindEnvelope
	case errors.Is(err, tgg.ErrInsufficientMetadataBytes),
		errors.Is(err, tgg.ErrInvalidMetadataText),
		errors.Is(err, tgg.ErrTitleEmpty),
		errors.Is(err, tgg.ErrDescriptionEmpty),
		errors.Is(err, tgg.ErrAuthorEmpty):
		return kindMetadata
	default:
		return kindPayload
	}
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// InstrumentAuthMiddleware counts authentication attempts that carried a key
func (m *Metrics) InstrumentAuthMiddleware(next func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hasAPIKey := r.Header.Get("X-API-Key") != ""

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next(h).ServeHTTP(rw, r)

			if hasAPIKey {
				m.RecordAuthRequest(rw.statusCode != http.StatusUnauthorized)
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
