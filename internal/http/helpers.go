package http

import (
	"github.com/gin-gonic/gin"

	"github.com/seifadel74/bookweb/internal/auth"
)

// AuthTemplateData holds authentication info for templates.
type AuthTemplateData struct {
	LoggedIn  bool
	Username  string
	IsAdmin   bool
	CSRFToken string
}

// AuthContextMiddleware injects authentication data into the Gin context
// for templates. Templates access it via .Auth in the page data.
func AuthContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("auth_template_data", AuthTemplateData{
			LoggedIn:  auth.IsAuthenticated(c),
			Username:  auth.GetUsername(c),
			IsAdmin:   auth.IsAdmin(c),
			CSRFToken: auth.GetCSRFToken(c),
		})
		c.Next()
	}
}

// GetAuthTemplateData retrieves auth data from context for use in templates.
func GetAuthTemplateData(c *gin.Context) AuthTemplateData {
	if data, exists := c.Get("auth_template_data"); exists {
		if authData, ok := data.(AuthTemplateData); ok {
			return authData
		}
	}
	return AuthTemplateData{}
}

// pageData assembles the common template payload: auth state and any
// pending flash message, merged with the handler's own values.
func pageData(c *gin.Context, sm *auth.SessionManager, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Auth"] = GetAuthTemplateData(c)
	if sm != nil {
		data["Flash"] = sm.PopFlash(c.Request)
	}
	return data
}
