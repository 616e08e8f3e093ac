package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/seifadel74/bookweb/internal/auth"
	"github.com/seifadel74/bookweb/internal/entities"
)

// coverURL resolves a book's cover image to the URL it is served from.
// Books without a cover get the generated placeholder.
func coverURL(book entities.Book) string {
	if book.CoverImage == "" {
		return "/static/book_covers/default_cover.png"
	}
	return "/static/book_covers/" + book.CoverImage
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.SecureCookies {
		router.Use(auth.StrictTransportSecurityMiddleware())
	}

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Inject auth data for templates
	router.Use(AuthContextMiddleware())

	funcMap := template.FuncMap{
		"coverURL": coverURL,
	}

	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	static := NewStaticController(cfg.StaticPath, cfg.UploadsDir)
	static.RegisterRoutes(router)

	authController := auth.NewController(cfg.AuthService, cfg.SessionManager, cfg.RateLimiter)
	authController.RegisterRoutes(router, cfg.AuthMiddleware)

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	books := NewBooksController(cfg.Catalog, cfg.SessionManager)
	books.RegisterRoutes(router, cfg.AuthMiddleware)

	categories := NewCategoriesController(cfg.Catalog, cfg.SessionManager)
	categories.RegisterRoutes(router)

	return router
}
