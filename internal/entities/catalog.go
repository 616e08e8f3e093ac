package entities

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120" json:"email"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	Books        []Book    `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Book struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"index;size:200;not null" json:"title"`
	Author      string     `gorm:"index;size:200;not null" json:"author"`
	Genre       string     `gorm:"size:100" json:"genre,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CoverImage  string     `gorm:"size:200" json:"cover_image,omitempty"`
	IsAvailable bool       `gorm:"default:true" json:"is_available"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	Categories  []Category `gorm:"many2many:book_categories;" json:"categories,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Description string    `gorm:"size:200" json:"description,omitempty"`
	Books       []Book    `gorm:"many2many:book_categories;" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

func (Category) TableName() string {
	return "categories"
}
