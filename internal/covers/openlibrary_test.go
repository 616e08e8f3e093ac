package covers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(searchHandler http.HandlerFunc) (*OpenLibraryClient, *httptest.Server) {
	server := httptest.NewServer(searchHandler)
	client := &OpenLibraryClient{
		httpClient:  server.Client(),
		baseURL:     server.URL,
		coversURL:   server.URL,
		rateLimiter: newRateLimiter(0),
	}
	return client, server
}

func TestOpenLibraryClient_FindCoverURL(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("title"); got != "Dune" {
			t.Errorf("expected title=Dune, got %q", got)
		}
		if got := r.URL.Query().Get("author"); got != "Frank Herbert" {
			t.Errorf("expected author=Frank Herbert, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"docs":[{"cover_i":12345}]}`))
	})
	defer server.Close()

	url, err := client.FindCoverURL(context.Background(), "Dune", "Frank Herbert")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := server.URL + "/b/id/12345-L.jpg"
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}
}

func TestOpenLibraryClient_FindCoverURL_NoResults(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"docs":[]}`))
	})
	defer server.Close()

	url, err := client.FindCoverURL(context.Background(), "Nonexistent", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "" {
		t.Errorf("expected empty URL, got %q", url)
	}
}

func TestOpenLibraryClient_FindCoverURL_MissingTitle(t *testing.T) {
	client := NewOpenLibraryClient()
	if _, err := client.FindCoverURL(context.Background(), "", "Someone"); err == nil {
		t.Error("empty title should be rejected")
	}
}

func TestFetcher_Fetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"docs":[{"cover_i":777}]}`))
	})
	mux.HandleFunc("/b/id/777-L.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg bytes"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := &OpenLibraryClient{
		httpClient:  server.Client(),
		baseURL:     server.URL,
		coversURL:   server.URL,
		rateLimiter: newRateLimiter(0),
	}

	dir := t.TempDir()
	fetcher, err := NewFetcher(client, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fetcher.httpClient = &http.Client{Timeout: 5 * time.Second}

	wrote, err := fetcher.Fetch(context.Background(), "Dune", "Frank Herbert", "dune.jpg")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if !wrote {
		t.Error("expected a new file to be written")
	}

	data, err := os.ReadFile(filepath.Join(dir, "dune.jpg"))
	if err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("unexpected file content: %q", data)
	}

	// Second fetch must skip the existing file
	wrote, err = fetcher.Fetch(context.Background(), "Dune", "Frank Herbert", "dune.jpg")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if wrote {
		t.Error("existing file should be skipped")
	}
}
