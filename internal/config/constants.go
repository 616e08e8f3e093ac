package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./library.db"

	// DefaultUploadsDir is the default directory for uploaded book covers
	DefaultUploadsDir = "./static/book_covers"
)
