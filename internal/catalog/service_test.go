package catalog

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/seifadel74/bookweb/internal/database"
	"github.com/seifadel74/bookweb/internal/entities"
	"github.com/seifadel74/bookweb/internal/uploads"
)

func setupService(t *testing.T) (*Service, *database.Database, string) {
	t.Helper()

	db, err := database.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	uploadsDir := t.TempDir()
	store, err := uploads.NewStore(uploadsDir, 5<<20)
	if err != nil {
		t.Fatalf("failed to create upload store: %v", err)
	}

	return NewService(db, store), db, uploadsDir
}

func createTestUser(t *testing.T, db *database.Database, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// fileHeader builds a multipart.FileHeader the way a real form upload
// produces one.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("cover_image", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["cover_image"][0]
}

func TestService_AddBook(t *testing.T) {
	svc, db, _ := setupService(t)
	user := createTestUser(t, db, "alice")

	book, err := svc.AddBook(AddBookInput{
		Title:   "The Go Programming Language",
		Author:  "Donovan and Kernighan",
		Genre:   "Programming",
		OwnerID: user.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if book.ID == 0 {
		t.Error("expected book ID to be set")
	}
	if !book.IsAvailable {
		t.Error("new books should be available")
	}
	if book.UserID != user.ID {
		t.Errorf("expected owner %d, got %d", user.ID, book.UserID)
	}
}

func TestService_AddBook_Validation(t *testing.T) {
	svc, db, _ := setupService(t)
	user := createTestUser(t, db, "alice")

	tests := []struct {
		name    string
		input   AddBookInput
		wantErr error
	}{
		{
			name:    "missing title",
			input:   AddBookInput{Author: "Someone", OwnerID: user.ID},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "missing author",
			input:   AddBookInput{Title: "Untitled", OwnerID: user.ID},
			wantErr: ErrAuthorRequired,
		},
		{
			name:    "missing owner",
			input:   AddBookInput{Title: "Untitled", Author: "Someone"},
			wantErr: ErrOwnerRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddBook(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_AddBook_WithCover(t *testing.T) {
	svc, db, uploadsDir := setupService(t)
	user := createTestUser(t, db, "alice")

	book, err := svc.AddBook(AddBookInput{
		Title:   "Covered",
		Author:  "Someone",
		OwnerID: user.ID,
		Cover:   fileHeader(t, "my cover.jpg", "fake image bytes"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if book.CoverImage == "" {
		t.Fatal("expected cover image to be recorded")
	}
	if _, err := os.Stat(filepath.Join(uploadsDir, book.CoverImage)); err != nil {
		t.Errorf("cover file should exist on disk: %v", err)
	}
}

func TestService_AddBook_DisallowedCoverSkipped(t *testing.T) {
	svc, db, uploadsDir := setupService(t)
	user := createTestUser(t, db, "alice")

	book, err := svc.AddBook(AddBookInput{
		Title:   "Suspicious",
		Author:  "Someone",
		OwnerID: user.ID,
		Cover:   fileHeader(t, "x.exe", "not an image"),
	})
	if err != nil {
		t.Fatalf("book should still be created: %v", err)
	}

	if book.CoverImage != "" {
		t.Errorf("disallowed cover should be skipped, got %q", book.CoverImage)
	}

	entries, err := os.ReadDir(uploadsDir)
	if err != nil {
		t.Fatalf("failed to read uploads dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("no file should have been written, found %d", len(entries))
	}
}

func TestService_Search(t *testing.T) {
	svc, db, _ := setupService(t)
	user := createTestUser(t, db, "alice")

	titles := []string{"The Great Gatsby", "Great Expectations", "Moby Dick"}
	for _, title := range titles {
		if _, err := svc.AddBook(AddBookInput{Title: title, Author: "Author", OwnerID: user.ID}); err != nil {
			t.Fatalf("failed to add %q: %v", title, err)
		}
	}

	t.Run("matches title case-insensitively", func(t *testing.T) {
		books, err := svc.Search("great")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 2 {
			t.Errorf("expected 2 results, got %d", len(books))
		}
	})

	t.Run("matches author", func(t *testing.T) {
		books, err := svc.Search("author")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 3 {
			t.Errorf("expected 3 results, got %d", len(books))
		}
	})

	t.Run("empty query returns nothing", func(t *testing.T) {
		books, err := svc.Search("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 0 {
			t.Errorf("empty query should yield no results, got %d", len(books))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		books, err := svc.Search("zzzzz")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 0 {
			t.Errorf("expected no results, got %d", len(books))
		}
	})
}

func TestService_ToggleAvailability(t *testing.T) {
	svc, db, _ := setupService(t)
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	admin := createTestUser(t, db, "admin")
	db.DB.Model(&entities.User{}).Where("id = ?", admin.ID).Update("is_admin", true)

	book, err := svc.AddBook(AddBookInput{Title: "Toggled", Author: "Someone", OwnerID: owner.ID})
	if err != nil {
		t.Fatalf("failed to add book: %v", err)
	}

	t.Run("owner toggles off then on", func(t *testing.T) {
		available, err := svc.ToggleAvailability(book.ID, Actor{ID: owner.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if available {
			t.Error("first toggle should check the book out")
		}

		available, err = svc.ToggleAvailability(book.ID, Actor{ID: owner.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !available {
			t.Error("second toggle should restore availability")
		}
	})

	t.Run("non-owner is forbidden and state unchanged", func(t *testing.T) {
		before, err := svc.GetBook(book.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = svc.ToggleAvailability(book.ID, Actor{ID: other.ID})
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}

		after, err := svc.GetBook(book.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if before.IsAvailable != after.IsAvailable {
			t.Error("forbidden toggle must not change availability")
		}
	})

	t.Run("admin may toggle someone else's book", func(t *testing.T) {
		if _, err := svc.ToggleAvailability(book.ID, Actor{ID: admin.ID, IsAdmin: true}); err != nil {
			t.Errorf("admin toggle should succeed: %v", err)
		}
	})

	t.Run("missing book", func(t *testing.T) {
		_, err := svc.ToggleAvailability(99999, Actor{ID: owner.ID})
		if !errors.Is(err, ErrBookNotFound) {
			t.Errorf("expected ErrBookNotFound, got %v", err)
		}
	})
}

func TestService_GetBook_NotFound(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.GetBook(42)
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestService_Categories(t *testing.T) {
	svc, db, _ := setupService(t)

	for _, name := range []string{"Science Fiction", "Biography"} {
		if err := db.CreateCategory(&entities.Category{Name: name}); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}

	categories, err := svc.ListCategories()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Biography" {
		t.Errorf("categories should be sorted by name, got %q first", categories[0].Name)
	}

	_, err = svc.GetCategory(99999)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}
