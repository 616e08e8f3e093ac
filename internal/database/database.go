package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/seifadel74/bookweb/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.User{},
		&entities.Book{},
		&entities.Category{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --- Users ---

func (d *Database) CreateUser(user *entities.User) error {
	return d.DB.Create(user).Error
}

func (d *Database) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := d.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := d.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := d.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) CountUsers() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (d *Database) CountAdmins() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.User{}).Where("is_admin = ?", true).Count(&count).Error
	return count, err
}

// --- Books ---

func (d *Database) CreateBook(book *entities.Book) error {
	return d.DB.Create(book).Error
}

func (d *Database) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := d.DB.Preload("Categories").Preload("User").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (d *Database) GetBookByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := d.DB.Where("title = ?", title).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks returns all books, newest first.
func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := d.DB.Preload("Categories").Preload("User").
		Order("created_at DESC").Find(&books).Error
	return books, err
}

// SearchBooks matches the query as a case-insensitive substring of title or author.
func (d *Database) SearchBooks(query string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + query + "%"
	err := d.DB.Preload("Categories").
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", searchPattern, searchPattern).
		Order("created_at DESC").Find(&books).Error
	return books, err
}

func (d *Database) SetBookAvailability(id uint, available bool) error {
	return d.DB.Model(&entities.Book{}).Where("id = ?", id).
		Update("is_available", available).Error
}

func (d *Database) CountBooks() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// ReferencedCoverFiles returns the set of cover filenames referenced by any book.
func (d *Database) ReferencedCoverFiles() (map[string]bool, error) {
	var filenames []string
	err := d.DB.Model(&entities.Book{}).
		Where("cover_image <> ''").
		Pluck("cover_image", &filenames).Error
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]bool, len(filenames))
	for _, name := range filenames {
		referenced[name] = true
	}
	return referenced, nil
}

// --- Categories ---

func (d *Database) CreateCategory(category *entities.Category) error {
	return d.DB.Create(category).Error
}

func (d *Database) GetCategoryByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := d.DB.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *Database) GetCategoryByName(name string) (*entities.Category, error) {
	var category entities.Category
	err := d.DB.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *Database) GetAllCategories() ([]entities.Category, error) {
	var categories []entities.Category
	err := d.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (d *Database) CountCategories() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Category{}).Count(&count).Error
	return count, err
}
