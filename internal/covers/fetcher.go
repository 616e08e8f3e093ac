package covers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Fetcher downloads cover images into a local directory.
type Fetcher struct {
	client     *OpenLibraryClient
	httpClient *http.Client
	dir        string
}

// NewFetcher creates a fetcher writing into dir, creating it if needed.
func NewFetcher(client *OpenLibraryClient, dir string) (*Fetcher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create covers dir: %w", err)
	}

	return &Fetcher{
		client: client,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		dir: dir,
	}, nil
}

// Fetch looks up the cover for a book and downloads it under the given
// filename. Files that already exist are skipped. Returns true when a new
// file was written.
func (f *Fetcher) Fetch(ctx context.Context, title, author, filename string) (bool, error) {
	dest := filepath.Join(f.dir, filename)
	if _, err := os.Stat(dest); err == nil {
		return false, nil
	}

	coverURL, err := f.client.FindCoverURL(ctx, title, author)
	if err != nil {
		return false, err
	}
	if coverURL == "" {
		return false, fmt.Errorf("no cover listed for %q", title)
	}

	if err := f.download(ctx, coverURL, dest); err != nil {
		return false, err
	}

	return true, nil
}

// download writes the image via a temp file so a failed transfer never
// leaves a truncated cover behind.
func (f *Fetcher) download(ctx context.Context, coverURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "BookWeb/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch cover: status %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp(f.dir, "cover_tmp_")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, dest)
}
