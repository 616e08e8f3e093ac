// Package seed populates baseline data at startup: the administrator
// account, the default categories and a set of sample books. Every step is
// idempotent, so running the seed twice never duplicates anything.
package seed

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/seifadel74/bookweb/internal/auth"
	"github.com/seifadel74/bookweb/internal/config"
	"github.com/seifadel74/bookweb/internal/database"
	"github.com/seifadel74/bookweb/internal/entities"
)

const (
	AdminUsername = "admin"
	AdminEmail    = "admin@example.com"
)

// Seeder populates baseline data.
type Seeder struct {
	db         *database.Database
	cfg        config.Seed
	bcryptCost int
}

// New creates a seeder.
func New(db *database.Database, cfg config.Seed, bcryptCost int) *Seeder {
	return &Seeder{
		db:         db,
		cfg:        cfg,
		bcryptCost: bcryptCost,
	}
}

// Run ensures the admin account, categories and sample books exist.
func (s *Seeder) Run() error {
	admin, err := s.ensureAdmin()
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	categories, err := s.ensureCategories()
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	if err := s.ensureBooks(admin.ID, categories); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}

	return nil
}

// ensureAdmin creates the administrator account if it does not exist.
func (s *Seeder) ensureAdmin() (*entities.User, error) {
	admin, err := s.db.GetUserByUsername(AdminUsername)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(s.cfg.AdminPassword, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	admin = &entities.User{
		Username:     AdminUsername,
		Email:        AdminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := s.db.CreateUser(admin); err != nil {
		return nil, err
	}

	log.Printf("Created administrator account %q - change the default password", AdminUsername)
	return admin, nil
}

// ensureCategories creates any missing default categories and returns all
// of them keyed by name.
func (s *Seeder) ensureCategories() (map[string]entities.Category, error) {
	categories := make(map[string]entities.Category, len(defaultCategories))

	for _, fixture := range defaultCategories {
		category, err := s.db.GetCategoryByName(fixture.Name)
		if err == nil {
			categories[fixture.Name] = *category
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		created := &entities.Category{
			Name:        fixture.Name,
			Description: fixture.Description,
		}
		if err := s.db.CreateCategory(created); err != nil {
			return nil, fmt.Errorf("create category %q: %w", fixture.Name, err)
		}
		categories[fixture.Name] = *created
	}

	return categories, nil
}

// ensureBooks creates any missing sample books, owned by the admin and
// linked to their categories. Idempotent by title.
func (s *Seeder) ensureBooks(adminID uint, categories map[string]entities.Category) error {
	for _, fixture := range sampleBooks {
		_, err := s.db.GetBookByTitle(fixture.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		book := &entities.Book{
			Title:       fixture.Title,
			Author:      fixture.Author,
			Genre:       fixture.Genre,
			Description: fixture.Description,
			CoverImage:  fixture.Cover,
			IsAvailable: true,
			UserID:      adminID,
		}
		for _, name := range fixture.Categories {
			category, ok := categories[name]
			if !ok {
				return fmt.Errorf("book %q references unknown category %q", fixture.Title, name)
			}
			book.Categories = append(book.Categories, category)
		}

		if err := s.db.CreateBook(book); err != nil {
			return fmt.Errorf("create book %q: %w", fixture.Title, err)
		}
	}

	return nil
}
