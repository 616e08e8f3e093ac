package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seifadel74/bookweb/internal/auth"
	"github.com/seifadel74/bookweb/internal/catalog"
)

// CategoriesController serves the category listing and per-category
// book pages.
type CategoriesController struct {
	catalog        *catalog.Service
	sessionManager *auth.SessionManager
}

func NewCategoriesController(catalogService *catalog.Service, sessionManager *auth.SessionManager) *CategoriesController {
	return &CategoriesController{
		catalog:        catalogService,
		sessionManager: sessionManager,
	}
}

func (ctrl *CategoriesController) RegisterRoutes(router *gin.Engine) {
	router.GET("/categories", ctrl.List)
	router.GET("/category/:id", ctrl.Detail)
}

// List renders every category, alphabetically.
func (ctrl *CategoriesController) List(c *gin.Context) {
	categories, err := ctrl.catalog.ListCategories()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Could not load categories",
		}))
		return
	}

	c.HTML(http.StatusOK, "categories.html", pageData(c, ctrl.sessionManager, gin.H{
		"Categories": categories,
	}))
}

// Detail renders one category with its books, newest first.
func (ctrl *CategoriesController) Detail(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Category not found",
		}))
		return
	}

	category, err := ctrl.catalog.GetCategory(uint(categoryID))
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		c.HTML(http.StatusNotFound, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Category not found",
		}))
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Could not load the category",
		}))
		return
	}

	c.HTML(http.StatusOK, "category_books.html", pageData(c, ctrl.sessionManager, gin.H{
		"Category": category,
		"Books":    category.Books,
	}))
}
