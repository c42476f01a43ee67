package cvdash

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestFetchParsesRemoteDocument(t *testing.T) {
	raw, err := os.ReadFile(samplePath)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("unexpected Accept header %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	}))
	defer srv.Close()

	doc, err := Fetch(context.Background(), FetchRequest{URL: srv.URL, Client: srv.Client()})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if doc.Name != "Alex Morgan" {
		t.Fatalf("unexpected name %q", doc.Name)
	}
	if doc.PhotoPath() != "photo.png" {
		t.Fatalf("expected unresolved relative photo path, got %q", doc.PhotoPath())
	}
}

func TestFetchRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := FetchRaw(context.Background(), FetchRequest{URL: srv.URL})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat(" ", maxDocumentSize+1)))
	}))
	defer srv.Close()
	_, err := FetchRaw(context.Background(), FetchRequest{URL: srv.URL})
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestFetchReportsValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"A"}`))
	}))
	defer srv.Close()
	_, err := Fetch(context.Background(), FetchRequest{URL: srv.URL})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFetchRequiresHTTPScheme(t *testing.T) {
	if _, err := FetchRaw(context.Background(), FetchRequest{URL: "ftp://example.com/cv.json"}); err == nil {
		t.Fatalf("expected unsupported scheme error")
	}
	if _, err := FetchRaw(context.Background(), FetchRequest{}); err == nil {
		t.Fatalf("expected missing URL error")
	}
}

func TestFetchHonorsCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FetchRaw(ctx, FetchRequest{URL: srv.URL}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/cv.json": true,
		" HTTP://x ":                  true,
		"./cv.json":                   false,
		"ftp://x":                     false,
	}
	for in, want := range cases {
		if got := IsURL(in); got != want {
			t.Fatalf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}
