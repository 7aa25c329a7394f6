package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups the JSON API handlers.
type Handlers struct {
	Blog   *BlogHandler
	User   *UserHandler
	Auth   *AuthHandler
	Health *HealthHandler
}

// SetupRoutes configures the JSON API routes. requireAuth guards every
// blog route and logout.
func SetupRoutes(r gin.IRouter, h Handlers, requireAuth gin.HandlerFunc) {
	r.GET("/health", h.Health.HealthCheck)

	r.POST("/user", h.User.Create)
	r.GET("/user/:id", h.User.Get)

	r.POST("/login", h.Auth.Login)
	r.POST("/logout", requireAuth, h.Auth.Logout)

	blog := r.Group("/blog", requireAuth)
	{
		blog.POST("", h.Blog.Create)
		blog.GET("", h.Blog.List)
		blog.GET("/:id", h.Blog.Get)
		blog.PUT("/:id", h.Blog.Update)
		blog.DELETE("/:id", h.Blog.Delete)
	}
}
