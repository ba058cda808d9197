package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsCollector_WritePrometheus(t *testing.T) {
	m := NewMetricsCollector()
	m.RecordRequest("/color", http.StatusOK, 5*time.Millisecond)
	m.RecordRequest("/color", http.StatusOK, 7*time.Millisecond)
	m.RecordRequest("/get-animal", http.StatusNotFound, 2*time.Millisecond)
	m.RecordColorLookup("match")
	m.RecordMascotLookup("not_found")

	rec := httptest.NewRecorder()
	m.WritePrometheus(rec)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"# HELP hue_requests_total",
		"# TYPE hue_requests_total counter",
		`hue_requests_total{route="/color",status="200"} 2`,
		`hue_requests_total{route="/get-animal",status="404"} 1`,
		`hue_color_lookups_total{outcome="match"} 1`,
		`hue_mascot_lookups_total{outcome="not_found"} 1`,
		`hue_request_duration_seconds_count{route="/color"} 2`,
		"hue_uptime_seconds",
		"hue_info{version=",
		"hue_goroutines",
		"hue_memory_alloc_bytes",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Output does not contain %q:\n%s", want, body)
		}
	}
}

func TestHistogram_Buckets(t *testing.T) {
	m := NewMetricsCollector()
	// One fast request and one slower than every bound
	m.RecordRequest("/", http.StatusOK, 2*time.Millisecond)
	m.RecordRequest("/", http.StatusOK, 3*time.Second)

	rec := httptest.NewRecorder()
	m.WritePrometheus(rec)
	body := rec.Body.String()

	if !strings.Contains(body, `hue_request_duration_seconds_bucket{route="/",le="0.005"} 1`) {
		t.Errorf("Output is missing the fast bucket:\n%s", body)
	}
	if !strings.Contains(body, `hue_request_duration_seconds_bucket{route="/",le="+Inf"} 2`) {
		t.Errorf("Output is missing the +Inf bucket:\n%s", body)
	}
	if !strings.Contains(body, `hue_request_duration_seconds_count{route="/"} 2`) {
		t.Errorf("Output is missing the count:\n%s", body)
	}
}

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/color", "/color"},
		{"/get-colors", "/get-colors"},
		{"/get-animal", "/get-animal"},
		{"/healthz", "/healthz"},
		{"/metrics", "/metrics"},
		{"/nope", "other"},
		{"/color/extra", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := routeLabel(tt.path); got != tt.want {
				t.Errorf("routeLabel(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetricsCollector()
	handler := MetricsMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/unknown-path", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	out := httptest.NewRecorder()
	m.WritePrometheus(out)

	if !strings.Contains(out.Body.String(), `hue_requests_total{route="other",status="404"} 1`) {
		t.Errorf("Output does not count the request:\n%s", out.Body.String())
	}
}
