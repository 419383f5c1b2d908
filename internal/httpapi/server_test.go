package httpapi_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcocalc/internal/domain"
	"alcocalc/internal/httpapi"
	"alcocalc/internal/services/calc"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, opts ...httpapi.Option) *httptest.Server {
	t.Helper()
	srv := httpapi.NewServer(calc.New(discardLogger()), discardLogger(), opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestServer_Density(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var res domain.DensityResult
	resp := getJSON(t, ts.URL+"/v1/density?abv=96&t=20", &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.8074, res.Density)
	assert.NotEmpty(t, resp.Header.Get(httpapi.RequestIDHeader))
}

func TestServer_KeepsRequestID(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(httpapi.RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(httpapi.RequestIDHeader))
}

func TestServer_BadInput(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	tests := []struct {
		name, path, wantErr string
	}{
		{"missing parameter", "/v1/density?abv=40", `missing query parameter "t"`},
		{"not a number", "/v1/hydrometer?reading=forty&t=20", "invalid number"},
		{"abv out of range", "/v1/volume?mass=100&abv=140&t=20", "abv must be between"},
		{"temperature out of range", "/v1/ethanol?volume=100&abv=40&t=90", "temperature must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct{ Error string }
			resp := getJSON(t, ts.URL+tt.path, &body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, body.Error, tt.wantErr)
		})
	}
}

func TestServer_Dilute(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/dilute", "application/json",
		strings.NewReader(`{"source_mass_g":1000,"source_abv":96,"target_abv":40}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res domain.DilutionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 1818.0, res.WaterToAddG)

	bad, err := http.Post(ts.URL+"/v1/dilute", "application/json",
		strings.NewReader(`{"source_mass_g":1000,"source_abv":40,"target_abv":96}`))
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)

	garbage, err := http.Post(ts.URL+"/v1/dilute", "application/json", strings.NewReader(`{`))
	require.NoError(t, err)
	defer garbage.Body.Close()
	assert.Equal(t, http.StatusBadRequest, garbage.StatusCode)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var body struct{ Error string }
	resp := getJSON(t, ts.URL+"/v1/dilute", &body)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.MethodPost, resp.Header.Get("Allow"))
	assert.Equal(t, "method not allowed", body.Error)
}

func TestServer_NotFoundIsJSON(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var body struct{ Error string }
	resp := getJSON(t, ts.URL+"/v1/nope", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "not found", body.Error)
}

func TestServer_DiluteBodyTooLarge(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	payload := `{"source_mass_g":1000,"note":"` + strings.Repeat("x", 1<<16) + `"}`
	var body struct{ Error string }
	resp, err := http.Post(ts.URL+"/v1/dilute", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Contains(t, body.Error, "too large")
}

func TestServer_MetricsLabelsStayBounded(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	metrics := httpapi.NewMetrics(reg)
	ts := newTestServer(t, httpapi.WithMetrics(metrics))

	for i := range 50 {
		resp, err := http.Get(fmt.Sprintf("%s/v1/junk%d", ts.URL, i))
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.RequestsTotal))
	assert.Equal(t, 50.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("other", "GET", "404")))

	for _, method := range []string{"BREW", "WHEN", "SPILL"} {
		req, err := http.NewRequest(method, ts.URL+"/v1/density", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.RequestsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("/v1/density", "other", "405")))
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	metrics := httpapi.NewMetrics(reg)
	ts := newTestServer(t, httpapi.WithMetrics(metrics))

	for range 3 {
		var res domain.TemperatureCheck
		getJSON(t, ts.URL+"/v1/temperature?t=12", &res)
		assert.Equal(t, domain.WarningCaution, res.Level)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("/v1/temperature", "GET", "200")))
}

func TestServer_RateLimit(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	metrics := httpapi.NewMetrics(reg)
	ts := newTestServer(t, httpapi.WithMetrics(metrics), httpapi.WithLimiter(httpapi.NewLimiter(0.001, 2)))

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Get(ts.URL + "/healthz")
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RateLimitDropped))
}
