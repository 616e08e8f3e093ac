package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seifadel74/bookweb/internal/auth"
	"github.com/seifadel74/bookweb/internal/catalog"
)

// BooksController serves the catalog pages: index, add-book form,
// search and availability toggling.
type BooksController struct {
	catalog        *catalog.Service
	sessionManager *auth.SessionManager
}

func NewBooksController(catalogService *catalog.Service, sessionManager *auth.SessionManager) *BooksController {
	return &BooksController{
		catalog:        catalogService,
		sessionManager: sessionManager,
	}
}

func (ctrl *BooksController) RegisterRoutes(router *gin.Engine, authMiddleware *auth.Middleware) {
	router.GET("/", ctrl.Index)
	router.GET("/search", ctrl.Search)

	authenticated := router.Group("/")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/add", ctrl.AddBookPage)
		authenticated.POST("/add", ctrl.AddBook)
		// Kept on GET as well so bookmarked toggle links keep working
		authenticated.GET("/toggle_availability/:id", ctrl.ToggleAvailability)
		authenticated.POST("/toggle_availability/:id", ctrl.ToggleAvailability)
	}
}

// Index renders the full catalog, newest first.
func (ctrl *BooksController) Index(c *gin.Context) {
	books, err := ctrl.catalog.ListBooks()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Could not load the catalog",
		}))
		return
	}

	c.HTML(http.StatusOK, "index.html", pageData(c, ctrl.sessionManager, gin.H{
		"Books": books,
	}))
}

// AddBookPage renders the add-book form.
func (ctrl *BooksController) AddBookPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_book.html", pageData(c, ctrl.sessionManager, nil))
}

// AddBook handles the add-book form submission. The cover upload is
// optional; a file with a disallowed extension is dropped without
// failing the request.
func (ctrl *BooksController) AddBook(c *gin.Context) {
	input := catalog.AddBookInput{
		Title:       c.PostForm("title"),
		Author:      c.PostForm("author"),
		Genre:       c.PostForm("genre"),
		Description: c.PostForm("description"),
		OwnerID:     auth.GetUserID(c),
	}

	if file, err := c.FormFile("cover_image"); err == nil {
		input.Cover = file
	}

	_, err := ctrl.catalog.AddBook(input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTitleRequired), errors.Is(err, catalog.ErrAuthorRequired):
			c.HTML(http.StatusBadRequest, "add_book.html", pageData(c, ctrl.sessionManager, gin.H{
				"Error": "Title and author are required",
				"Form":  input,
			}))
		default:
			c.HTML(http.StatusInternalServerError, "add_book.html", pageData(c, ctrl.sessionManager, gin.H{
				"Error": "Could not add the book",
				"Form":  input,
			}))
		}
		return
	}

	ctrl.sessionManager.Flash(c.Request, "Book added successfully!")
	c.Redirect(http.StatusFound, "/")
}

// Search renders books matching the query. An empty query shows an
// empty result set, not the whole catalog.
func (ctrl *BooksController) Search(c *gin.Context) {
	query := c.Query("query")

	books, err := ctrl.catalog.Search(query)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Search failed",
		}))
		return
	}

	c.HTML(http.StatusOK, "search.html", pageData(c, ctrl.sessionManager, gin.H{
		"Books": books,
		"Query": query,
	}))
}

// ToggleAvailability flips a book between available and checked out.
// Only the owner or an administrator may do so; anyone else gets a
// flash message and a redirect back to the catalog.
func (ctrl *BooksController) ToggleAvailability(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Book not found",
		}))
		return
	}

	actor := catalog.Actor{
		ID:      auth.GetUserID(c),
		IsAdmin: auth.IsAdmin(c),
	}

	available, err := ctrl.catalog.ToggleAvailability(uint(bookID), actor)
	switch {
	case errors.Is(err, catalog.ErrBookNotFound):
		c.HTML(http.StatusNotFound, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Book not found",
		}))
		return
	case errors.Is(err, catalog.ErrForbidden):
		ctrl.sessionManager.Flash(c.Request, "You do not have permission to perform this action.")
		c.Redirect(http.StatusFound, "/")
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", pageData(c, ctrl.sessionManager, gin.H{
			"Error": "Could not update the book",
		}))
		return
	}

	if available {
		ctrl.sessionManager.Flash(c.Request, "Book is now available!")
	} else {
		ctrl.sessionManager.Flash(c.Request, "Book is now checked out!")
	}
	c.Redirect(http.StatusFound, "/")
}
