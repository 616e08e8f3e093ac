package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/seifadel74/bookweb/internal/covers"
)

const (
	coverPrefix     = "book_covers/"
	placeholderName = "default_cover.png"
)

// StaticController serves static assets and uploaded book covers under
// a single /static tree. Cover requests are resolved against the
// uploads directory; a missing cover or the well-known placeholder
// name yields a generated placeholder image. Everything else comes
// from the on-disk static directory.
type StaticController struct {
	staticDir  string
	uploadsDir string

	placeholderOnce sync.Once
	placeholder     []byte
	placeholderErr  error
}

func NewStaticController(staticDir, uploadsDir string) *StaticController {
	return &StaticController{
		staticDir:  staticDir,
		uploadsDir: uploadsDir,
	}
}

func (ctrl *StaticController) RegisterRoutes(router *gin.Engine) {
	router.GET("/static/*filepath", ctrl.Serve)
	router.HEAD("/static/*filepath", ctrl.Serve)
}

func (ctrl *StaticController) Serve(c *gin.Context) {
	// Collapse any ../ segments before touching the filesystem.
	requested := path.Clean("/" + c.Param("filepath"))
	requested = strings.TrimPrefix(requested, "/")

	if strings.HasPrefix(requested, coverPrefix) {
		ctrl.serveCover(c, strings.TrimPrefix(requested, coverPrefix))
		return
	}

	ctrl.serveFile(c, ctrl.staticDir, requested)
}

func (ctrl *StaticController) serveCover(c *gin.Context, name string) {
	if name == placeholderName {
		ctrl.servePlaceholder(c)
		return
	}

	full := filepath.Join(ctrl.uploadsDir, filepath.FromSlash(name))
	if info, err := os.Stat(full); err != nil || info.IsDir() {
		// Cover file went missing; fall back to the placeholder so
		// listings never render broken images.
		ctrl.servePlaceholder(c)
		return
	}
	c.File(full)
}

func (ctrl *StaticController) serveFile(c *gin.Context, dir, name string) {
	full := filepath.Join(dir, filepath.FromSlash(name))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(full)
}

func (ctrl *StaticController) servePlaceholder(c *gin.Context) {
	ctrl.placeholderOnce.Do(func() {
		ctrl.placeholder, ctrl.placeholderErr = covers.Placeholder()
	})
	if ctrl.placeholderErr != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "image/png", ctrl.placeholder)
}
