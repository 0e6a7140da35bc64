package fetcher

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetBytesSendsUserAgent(t *testing.T) {
	const agent = "Mozilla/5.0 (test)"

	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	f := NewFetcher(agent, 5*time.Second)
	body, err := f.GetBytes(server.URL)
	if err != nil {
		t.Fatalf("GetBytes returned error: %v", err)
	}
	if gotAgent != agent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, agent)
	}
	if !strings.Contains(string(body), "ok") {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestGetBytesNon2xxStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "rate limited", status: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			f := NewFetcher("agent", 5*time.Second)
			if _, err := f.GetBytes(server.URL); err == nil {
				t.Errorf("expected error for status %d, got nil", tt.status)
			}
		})
	}
}

func TestGetBytesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	f := NewFetcher("agent", 20*time.Millisecond)
	if _, err := f.GetBytes(server.URL); err == nil {
		t.Error("expected timeout error, got nil")
	}
}

func TestGetDocumentParsesHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1 id="title">Hello</h1></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher("agent", 5*time.Second)
	doc, err := f.GetDocument(server.URL)
	if err != nil {
		t.Fatalf("GetDocument returned error: %v", err)
	}
	if got := doc.Find("#title").Text(); got != "Hello" {
		t.Errorf("title = %q, want %q", got, "Hello")
	}
}
