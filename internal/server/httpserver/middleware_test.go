// Package httpserver provides the HTTP/HTTPS server for Soul Forge.
package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/twistedsoul/forge-go/internal/telemetry/logger"
	"github.com/twistedsoul/forge-go/internal/telemetry/metric"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_GeneratesID(t *testing.T) {
	var captured string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestIDFromContext(r.Context())
	}), RequestID())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if captured == "" {
		t.Fatal("request ID not set in context")
	}
	if !strings.HasPrefix(captured, "req-") {
		t.Errorf("request ID = %q, want req- prefix", captured)
	}
	if rec.Header().Get("X-Request-ID") != captured {
		t.Error("response header does not match context value")
	}
}

func TestRequestID_HonorsUpstreamID(t *testing.T) {
	var captured string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestIDFromContext(r.Context())
	}), RequestID())

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "req-upstream")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if captured != "req-upstream" {
		t.Errorf("request ID = %q, want upstream value", captured)
	}
}

func TestRequestID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	mw := RequestID()
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[GetRequestIDFromContext(r.Context())] = true
	}), mw)

	for range 100 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}
	if len(seen) != 100 {
		t.Errorf("generated %d unique IDs out of 100", len(seen))
	}
}

func TestRateLimit_AllowsBurstThenRejects(t *testing.T) {
	h := Chain(okHandler(), RateLimit(1, 3))

	statuses := make([]int, 0, 5)
	for range 5 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/mint", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	for i := 0; i < 3; i++ {
		if statuses[i] != http.StatusOK {
			t.Errorf("request %d status = %d, want 200", i, statuses[i])
		}
	}
	if statuses[4] != http.StatusTooManyRequests {
		t.Errorf("request 4 status = %d, want 429", statuses[4])
	}
}

func TestRateLimit_PerIP(t *testing.T) {
	h := Chain(okHandler(), RateLimit(1, 1))

	first := httptest.NewRequest("POST", "/api/mint", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first IP first request status = %d", rec.Code)
	}

	// Same IP, bucket exhausted
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("first IP second request status = %d, want 429", rec.Code)
	}

	// Different IP gets its own bucket
	second := httptest.NewRequest("POST", "/api/mint", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Errorf("second IP status = %d, want 200", rec.Code)
	}
}

func TestRecover_Panics(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), RequestID(), Recover(logger.Nop()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/mint", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if got := rec.Header().Get("X-Error-Code"); got != "TS-SYS-5000" {
		t.Errorf("X-Error-Code = %q", got)
	}
}

func TestRequestLog_RecordsMetrics(t *testing.T) {
	metrics := metric.NewRegistry()
	h := Chain(okHandler(), RequestID(), RequestLog(logger.Nop(), metrics))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/mint", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/operations/tsop-abc", nil))

	families, err := metrics.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() != "forge_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "route" && l.GetValue() == "/api/operations/{id}" {
					found = true
				}
				if l.GetName() == "route" && strings.Contains(l.GetValue(), "tsop-") {
					t.Errorf("unbounded route label: %q", l.GetValue())
				}
			}
		}
	}
	if !found {
		t.Error("operations route not normalized into metrics")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "192.168.1.1:5000", nil, "192.168.1.1"},
		{"ipv6 remote addr", "[::1]:5000", nil, "::1"},
		{"x-forwarded-for", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "203.0.113.5"},
		{"x-real-ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
