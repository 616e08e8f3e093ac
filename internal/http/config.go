package http

import (
	"github.com/seifadel74/bookweb/internal/auth"
	"github.com/seifadel74/bookweb/internal/catalog"
	"github.com/seifadel74/bookweb/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. This replaces a long parameter list in NewRouter.
type RouterConfig struct {
	// Core dependencies
	Catalog  *catalog.Service
	Database *database.Database

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	RateLimiter    *auth.RateLimiter
	CSRFSecret     []byte
	SecureCookies  bool

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Uploaded cover images directory
	UploadsDir string

	// Application info
	Version string
}
