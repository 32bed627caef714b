package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordCodecOperation("encode", true, 5)
	m.RecordCodecOperation("encode", false, 0)
	m.RecordCodecOperation("decode", true, 0)
	m.RecordSkipped(2)
	m.RecordSkipped(0)
	m.RecordDropOperation("create", true)
	m.RecordHealthCheck(true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.codecOperationsTotal.WithLabelValues("encode", statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.codecOperationsTotal.WithLabelValues("encode", statusError)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.codecBytesTotal.WithLabelValues("encode")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.codecBytesTotal.WithLabelValues("decode")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.skippedCharsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dropOperationsTotal.WithLabelValues("create", statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.healthChecksTotal.WithLabelValues(statusSuccess)))
}

func TestMetrics_InstrumentHandler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	handler := m.InstrumentHandler("GET", "/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/test", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequestsInFlight.WithLabelValues("GET", "/test")))
}

func TestMetrics_InstrumentAuthMiddleware(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := m.InstrumentAuthMiddleware(apiKeyMiddleware("secret"))(ok)

	for _, key := range []string{"secret", "wrong", ""} {
		req := httptest.NewRequest("GET", "/", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	// Requests without a key are not counted
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusError)))
}
