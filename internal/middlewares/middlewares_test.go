package middlewares

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/vlatan/video-transcripts/internal/config"
)

func silenceLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestRecoverPanic(t *testing.T) {

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": tr`))
		panic("boom")
	})

	tests := []struct {
		name          string
		failureStatus bool
		debug         bool
		status        int
		wantDetails   bool
	}{
		{"compatible status", false, false, http.StatusOK, false},
		{"failure status", true, false, http.StatusInternalServerError, false},
		{"debug details", false, true, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := silenceLog(t)
			mw := New(&config.Config{FailureStatus: tt.failureStatus, Debug: tt.debug})

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/transcript", nil)
			mw.RecoverPanic(panicking).ServeHTTP(recorder, req)

			if recorder.Code != tt.status {
				t.Errorf("got status %d, want %d", recorder.Code, tt.status)
			}

			var body map[string]any
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("got invalid JSON %q; %v", recorder.Body.String(), err)
			}

			if body["success"] != false || body["error"] != "panic: boom" {
				t.Errorf("got body %v", body)
			}

			if _, ok := body["details"]; ok != tt.wantDetails {
				t.Errorf("got details present = %t, want %t", ok, tt.wantDetails)
			}

			if !strings.Contains(logs.String(), "Panic in GET /api/transcript") {
				t.Errorf("got logs %q", logs.String())
			}
		})
	}
}

func TestRecoverPanicPassThrough(t *testing.T) {

	mw := New(&config.Config{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("ok"))
	})

	recorder := httptest.NewRecorder()
	mw.RecoverPanic(handler).ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	if recorder.Code != http.StatusTeapot || recorder.Body.String() != "ok" {
		t.Errorf("got %d %q, want %d %q", recorder.Code, recorder.Body.String(), http.StatusTeapot, "ok")
	}
}

func TestLogging(t *testing.T) {

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	validID := uuid.NewString()
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"no request id", "", false},
		{"valid request id", validID, true},
		{"invalid request id", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := silenceLog(t)
			mw := New(&config.Config{})

			req := httptest.NewRequest("GET", "/api/transcript?videoId=abc", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}

			recorder := httptest.NewRecorder()
			mw.Logging(handler).ServeHTTP(recorder, req)

			got := recorder.Header().Get(RequestIDHeader)
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("got request id %q, want a UUID", got)
			}

			if tt.keep && got != tt.incoming {
				t.Errorf("got request id %q, want %q", got, tt.incoming)
			}

			line := logs.String()
			if !strings.Contains(line, got) || !strings.Contains(line, "GET /api/transcript?videoId=abc 404") {
				t.Errorf("got log line %q", line)
			}
		})
	}
}

func TestAddHeaders(t *testing.T) {

	tests := []struct {
		name  string
		debug bool
		hsts  bool
	}{
		{"production", false, true},
		{"debug", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(&config.Config{Debug: tt.debug})
			recorder := httptest.NewRecorder()
			mw.AddHeaders(http.NotFoundHandler()).ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

			if got := recorder.Header().Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("got %q, want %q", got, "nosniff")
			}

			if got := recorder.Header().Get("Cache-Control"); got != "no-store" {
				t.Errorf("got %q, want %q", got, "no-store")
			}

			if hsts := recorder.Header().Get("Strict-Transport-Security") != ""; hsts != tt.hsts {
				t.Errorf("got HSTS = %t, want %t", hsts, tt.hsts)
			}
		})
	}
}

func TestCompress(t *testing.T) {

	body := strings.Repeat(`{"text":"hello world"}`, 200)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})

	mw := New(&config.Config{})
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	recorder := httptest.NewRecorder()
	mw.Compress(handler).ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("got content encoding %q, want gzip", got)
	}

	reader, err := gzip.NewReader(recorder.Body)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}

	if string(decoded) != body {
		t.Error("decompressed body does not match the original")
	}
}

func TestApplyToAll(t *testing.T) {

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mw := New(&config.Config{})
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	mw.ApplyToAll(mark("first"), mark("second"))(final).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if got := strings.Join(order, ","); got != "first,second,handler" {
		t.Errorf("got order %q, want %q", got, "first,second,handler")
	}
}

func TestRecoverPanicDropsEncodingHeaders(t *testing.T) {

	silenceLog(t)
	mw := New(&config.Config{})

	// Body large enough for gzip to kick in before the panic
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "99999")
		w.Write([]byte(strings.Repeat(`{"text":"hello world"}`, 200)))
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/api/transcript", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	recorder := httptest.NewRecorder()
	mw.RecoverPanic(mw.Compress(panicking)).ServeHTTP(recorder, req)

	for _, header := range []string{"Content-Encoding", "Content-Length"} {
		if got := recorder.Header().Get(header); got != "" {
			t.Errorf("got %s %q, want none", header, got)
		}
	}

	if !json.Valid(recorder.Body.Bytes()) {
		t.Errorf("got invalid JSON %q", recorder.Body.String())
	}
}
