package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLocaleFromRequest(t *testing.T) {
	var got string
	h := Locale("pt")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))
	cases := []struct {
		url, accept, want string
	}{
		{"/", "", "pt"},
		{"/", "en-US,en;q=0.9", "en"},
		{"/?lang=pt-BR", "en-US", "pt"},
		{"/", "fr-FR", "pt"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		if tc.accept != "" {
			req.Header.Set("Accept-Language", tc.accept)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		if got != tc.want {
			t.Fatalf("%s %q: locale = %s, want %s", tc.url, tc.accept, got, tc.want)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS("http://localhost:5173")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/admin/empresas", nil))
	if rr.Code != http.StatusNoContent || called {
		t.Fatalf("preflight: code %d, called %v", rr.Code, called)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("missing allow-origin")
	}

	rr = httptest.NewRecorder()
	CORS("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("disabled CORS still set headers")
	}
}

func TestRecoverReturns500(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }), Locale("pt"), Recover(logger))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rr.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil || body.Success || body.Message == "" {
		t.Fatalf("body = %s", rr.Body.String())
	}
	if !strings.Contains(buf.String(), "panic serving request") {
		t.Fatalf("panic not logged")
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	out := buf.String()
	if !strings.Contains(out, "request completed") || !strings.Contains(out, "status=418") {
		t.Fatalf("log = %s", out)
	}
}

func TestHeaders(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), NoStore, SecureHeaders)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Header().Get("Cache-Control") == "" || rr.Header().Get("X-Frame-Options") != "DENY" || rr.Header().Get("Vary") != "Accept-Language" {
		t.Fatalf("headers = %v", rr.Header())
	}
}
