package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/agbru/fibserve/internal/fibonacci"
)

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewHandler(fibonacci.BenchmarkIndex).ServeHTTP(rec, req)
	return rec
}

func assertBenchmarkResponse(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain" {
		t.Errorf("Content-Type = %q, want %q", got, "text/plain")
	}
	if got := rec.Body.String(); got != "5702887" {
		t.Errorf("body = %q, want %q", got, "5702887")
	}
}

func TestHandler_AnyMethod(t *testing.T) {
	t.Parallel()
	methods := []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "TRACE", "BREW"}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			t.Parallel()
			assertBenchmarkResponse(t, serve(t, httptest.NewRequest(method, "/", http.NoBody)))
		})
	}
}

func TestHandler_AnyPath(t *testing.T) {
	t.Parallel()
	paths := []string{"/", "/metrics", "/fib/10", "/a/b/c?n=5", "/%20", "/favicon.ico"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			assertBenchmarkResponse(t, serve(t, httptest.NewRequest(http.MethodGet, path, http.NoBody)))
		})
	}
}

// TestHandler_InputIgnored compares odd requests against a bare GET.
func TestHandler_InputIgnored(t *testing.T) {
	t.Parallel()
	bare := serve(t, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	withBody := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"n": 10}`))
	withBody.Header.Set("Content-Type", "application/json")

	oddHeaders := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	oddHeaders.Header.Set("Accept", "application/json")
	oddHeaders.Header.Set("X-Fib-N", "10")
	oddHeaders.Header.Set("Accept-Encoding", "gzip")
	oddHeaders.Header.Set("Range", "bytes=0-2")

	for name, req := range map[string]*http.Request{"body": withBody, "headers": oddHeaders} {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, req)
			assertBenchmarkResponse(t, rec)
			if rec.Body.String() != bare.Body.String() {
				t.Errorf("body %q differs from bare GET %q", rec.Body.String(), bare.Body.String())
			}
			if rec.Header().Get("Content-Type") != bare.Header().Get("Content-Type") {
				t.Error("Content-Type differs from bare GET")
			}
		})
	}
}

func TestHandler_SmallIndex(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	NewHandler(10).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	got, err := strconv.ParseUint(rec.Body.String(), 10, 64)
	if err != nil {
		t.Fatalf("body %q is not an integer: %v", rec.Body.String(), err)
	}
	if got != 55 {
		t.Errorf("body = %d, want 55", got)
	}
}

func BenchmarkHandler(b *testing.B) {
	h := NewHandler(fibonacci.BenchmarkIndex)
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	for i := 0; i < b.N; i++ {
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
}
