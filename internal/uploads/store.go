// Package uploads stores user-provided book cover images on disk.
//
// Files are kept under a single directory and named by their sanitized
// original filename. Two uploads with the same name overwrite each other;
// the catalog references covers by filename only.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrDisallowedExtension is returned when an uploaded file's extension is
// not on the allow-list. Callers treat this as "no cover", not a failure.
var ErrDisallowedExtension = errors.New("file extension not allowed")

// allowedExtensions is the case-insensitive allow-list for cover images.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Whitespace characters to normalize
	whitespaceChars = regexp.MustCompile(`[\r\n\t]`)
	// Multiple spaces to collapse
	multipleSpaces = regexp.MustCompile(`\s+`)
)

// Store persists uploaded cover files under a single directory.
type Store struct {
	dir          string
	maxSizeBytes int64
}

// NewStore creates the upload directory if needed and returns a store.
func NewStore(dir string, maxSizeBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		dir:          dir,
		maxSizeBytes: maxSizeBytes,
	}, nil
}

// Dir returns the upload directory path.
func (s *Store) Dir() string {
	return s.dir
}

// AllowedExtension reports whether the filename carries an allow-listed
// image extension, matched case-insensitively.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}

// SanitizeFilename strips directory components and characters that are
// invalid or problematic in filenames, keeping the original extension.
func SanitizeFilename(filename string) string {
	// Drop any client-supplied path components
	filename = filepath.Base(filepath.ToSlash(filename))

	ext := strings.ToLower(filepath.Ext(filename))
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = whitespaceChars.ReplaceAllString(name, " ")
	name = multipleSpaces.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")

	// Leave room for the extension on long names
	if len(name) > 100 {
		name = strings.TrimSpace(name[:100])
	}

	if name == "" || name == "." || name == ".." {
		return ""
	}

	return name + ext
}

// Save validates and stores an uploaded cover file, returning the filename
// it was stored under. Returns ErrDisallowedExtension for files that fail
// the extension allow-list and an empty filename when the sanitized name
// comes out empty.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Filename == "" {
		return "", ErrDisallowedExtension
	}
	if !AllowedExtension(fh.Filename) {
		return "", ErrDisallowedExtension
	}
	if s.maxSizeBytes > 0 && fh.Size > s.maxSizeBytes {
		return "", fmt.Errorf("file too large: %d bytes", fh.Size)
	}

	filename := SanitizeFilename(fh.Filename)
	if filename == "" {
		return "", ErrDisallowedExtension
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := s.writeAtomic(filename, src); err != nil {
		return "", err
	}

	return filename, nil
}

// writeAtomic writes the file via a temp file in the same directory so a
// half-written upload never becomes visible under its final name.
func (s *Store) writeAtomic(filename string, src io.Reader) error {
	tmpFile, err := os.CreateTemp(s.dir, "upload_tmp_")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath) // Clean up if we didn't rename
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, filepath.Join(s.dir, filename))
}

// Exists reports whether a stored file with the given name is present.
func (s *Store) Exists(filename string) bool {
	if filename == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filename))
	return err == nil
}
