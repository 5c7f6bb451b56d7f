package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics_Instrument(t *testing.T) {
	m := NewMetrics()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /invitations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /invitations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	mux.Handle("GET /metrics", m.Handler())
	handler := m.Instrument(mux, mux)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/invitations?name=a", nil),
		httptest.NewRequest(http.MethodGet, "/invitations?name=b", nil),
		httptest.NewRequest(http.MethodDelete, "/invitations", nil),
		httptest.NewRequest(http.MethodGet, "/nowhere", nil),
	} {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	out := string(body)

	require.Contains(t, out, `invitations_http_requests_total{method="GET",route="GET /invitations",status="200"} 2`)
	require.Contains(t, out, `invitations_http_requests_total{method="DELETE",route="DELETE /invitations",status="400"} 1`)
	require.Contains(t, out, `route="unmatched"`)
	require.False(t, strings.Contains(out, `route="GET /metrics"`))
	require.Contains(t, out, "invitations_http_request_duration_seconds_bucket")
}
