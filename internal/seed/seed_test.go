package seed

import (
	"testing"

	"github.com/seifadel74/bookweb/internal/config"
	"github.com/seifadel74/bookweb/internal/database"
	"github.com/seifadel74/bookweb/internal/entities"
)

func setupSeeder(t *testing.T) (*Seeder, *database.Database) {
	t.Helper()

	db, err := database.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return New(db, config.Seed{AdminPassword: "admin123"}, 4), db
}

func TestSeeder_Run(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	admins, err := db.CountAdmins()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admins != 1 {
		t.Errorf("expected 1 admin, got %d", admins)
	}

	categories, err := db.CountCategories()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int(categories) != CategoryCount() {
		t.Errorf("expected %d categories, got %d", CategoryCount(), categories)
	}

	books, err := db.CountBooks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int(books) != SampleBookCount() {
		t.Errorf("expected %d books, got %d", SampleBookCount(), books)
	}
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := seeder.Run(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	users, _ := db.CountUsers()
	categories, _ := db.CountCategories()
	books, _ := db.CountBooks()

	if users != 1 {
		t.Errorf("expected 1 user after double seed, got %d", users)
	}
	if int(categories) != CategoryCount() {
		t.Errorf("expected %d categories after double seed, got %d", CategoryCount(), categories)
	}
	if int(books) != SampleBookCount() {
		t.Errorf("expected %d books after double seed, got %d", SampleBookCount(), books)
	}
}

func TestSeeder_PreservesExistingRows(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// Modify a seeded book, then seed again. The change must survive.
	book, err := db.GetBookByTitle("The Hobbit")
	if err != nil {
		t.Fatalf("seeded book missing: %v", err)
	}
	if err := db.SetBookAvailability(book.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := seeder.Run(); err != nil {
		t.Fatalf("re-seed failed: %v", err)
	}

	book, err = db.GetBookByTitle("The Hobbit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.IsAvailable {
		t.Error("re-seeding should not reset existing book state")
	}
}

func TestSeeder_SeededBooksHaveCategories(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	book, err := db.GetBookByTitle("The Hobbit")
	if err != nil {
		t.Fatalf("seeded book missing: %v", err)
	}

	full, err := db.GetBookByID(book.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(full.Categories) == 0 {
		t.Error("seeded book should be linked to at least one category")
	}

	var admin entities.User
	if err := db.DB.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if full.UserID != admin.ID {
		t.Errorf("seeded books should belong to the admin, got owner %d", full.UserID)
	}
}
