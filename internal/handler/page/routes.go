package page

import "github.com/gin-gonic/gin"

// SetupRoutes registers the HTML pages. requireAuth must redirect to LoginPath.
func SetupRoutes(r gin.IRouter, h *PageHandler, requireAuth gin.HandlerFunc) {
	r.GET("/", h.Index)
	r.GET(LoginPath, h.LoginForm)
	r.POST("/login/form", h.LoginSubmit)
	r.GET("/success", h.Success)
	r.GET("/logout/form", h.Logout)

	authed := r.Group("", requireAuth)
	{
		authed.GET("/create", h.CreateForm)
		authed.POST("/create", h.Create)
		authed.GET("/blogs", h.List)
		authed.GET("/blogs/:id", h.Detail)
	}
}
