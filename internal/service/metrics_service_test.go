package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsServiceRecords(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/users/:username", http.StatusOK, 10*time.Millisecond)
	m.ObserveDBQuery("find_by_username", time.Millisecond)
	m.ObserveLockWait(true, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/api/v1/users/:username", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.dbQueryDuration))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.lockBusy))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveDBQuery("x", time.Millisecond)
	m.ObserveLockWait(false, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
