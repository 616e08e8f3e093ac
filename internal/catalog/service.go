// Package catalog implements the book catalog operations: listing,
// searching, adding books with optional cover uploads, availability
// toggling and category browsing.
package catalog

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/seifadel74/bookweb/internal/database"
	"github.com/seifadel74/bookweb/internal/entities"
	"github.com/seifadel74/bookweb/internal/uploads"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrForbidden        = errors.New("you do not have permission to perform this action")
	ErrTitleRequired    = errors.New("title is required")
	ErrAuthorRequired   = errors.New("author is required")
	ErrOwnerRequired    = errors.New("owner is required")
)

// Service provides catalog operations over the persistent store.
type Service struct {
	db      *database.Database
	uploads *uploads.Store
}

// NewService creates a catalog service.
func NewService(db *database.Database, uploadStore *uploads.Store) *Service {
	return &Service{
		db:      db,
		uploads: uploadStore,
	}
}

// ListBooks returns every book in the catalog, newest first.
func (s *Service) ListBooks() ([]entities.Book, error) {
	return s.db.GetAllBooks()
}

// GetBook returns a single book with its categories.
func (s *Service) GetBook(id uint) (*entities.Book, error) {
	book, err := s.db.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// AddBookInput carries the fields of the add-book form.
type AddBookInput struct {
	Title       string
	Author      string
	Genre       string
	Description string
	OwnerID     uint
	Cover       *multipart.FileHeader // optional
}

// AddBook creates a book owned by the caller. A cover file that fails the
// extension allow-list is skipped silently: the book is still created,
// just without a cover reference.
func (s *Service) AddBook(input AddBookInput) (*entities.Book, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Author == "" {
		return nil, ErrAuthorRequired
	}
	if input.OwnerID == 0 {
		return nil, ErrOwnerRequired
	}

	book := &entities.Book{
		Title:       input.Title,
		Author:      input.Author,
		Genre:       input.Genre,
		Description: input.Description,
		IsAvailable: true,
		UserID:      input.OwnerID,
	}

	if input.Cover != nil {
		filename, err := s.uploads.Save(input.Cover)
		switch {
		case errors.Is(err, uploads.ErrDisallowedExtension):
			// Not an image we accept; the book goes in without a cover
		case err != nil:
			return nil, fmt.Errorf("save cover: %w", err)
		default:
			book.CoverImage = filename
		}
	}

	if err := s.db.CreateBook(book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return book, nil
}

// Search returns books whose title or author contains the query,
// case-insensitively. An empty query yields no results rather than the
// whole catalog.
func (s *Service) Search(query string) ([]entities.Book, error) {
	if query == "" {
		return []entities.Book{}, nil
	}
	return s.db.SearchBooks(query)
}

// ToggleAvailability flips a book's availability flag when the actor is its
// owner or an administrator. Returns the new availability state.
func (s *Service) ToggleAvailability(bookID uint, actor Actor) (bool, error) {
	book, err := s.db.GetBookByID(bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrBookNotFound
		}
		return false, err
	}

	if !CanModify(book, actor) {
		return book.IsAvailable, ErrForbidden
	}

	next := !book.IsAvailable
	if err := s.db.SetBookAvailability(book.ID, next); err != nil {
		return book.IsAvailable, fmt.Errorf("update availability: %w", err)
	}

	return next, nil
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories() ([]entities.Category, error) {
	return s.db.GetAllCategories()
}

// GetCategory returns a category with its books, newest first.
func (s *Service) GetCategory(id uint) (*entities.Category, error) {
	category, err := s.db.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
