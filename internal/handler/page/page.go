package page

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/microcosm-cc/bluemonday"
	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/pkg/logger"
	"seungpyo.lee/BlogBackend/pkg/middleware"
	"seungpyo.lee/BlogBackend/pkg/util"
)

// LoginPath is where unauthenticated page requests are redirected.
const LoginPath = "/login"

// FuncMap returns the template helpers. "sanitize" renders user HTML through policy.
func FuncMap(policy *bluemonday.Policy) template.FuncMap {
	return template.FuncMap{
		"sanitize": func(s string) template.HTML { return template.HTML(policy.Sanitize(s)) },
	}
}

// PageHandler renders the HTML pages over the same services as the JSON API.
type PageHandler struct {
	blogs     domain.BlogService
	auth      domain.AuthService
	log       *logger.Logger
	cookieTTL time.Duration
	failure   int
}

// NewPageHandler creates a new PageHandler. cookieTTL should match the token TTL.
func NewPageHandler(blogs domain.BlogService, auth domain.AuthService, log *logger.Logger, cookieTTL time.Duration, loginFailureStatus int) *PageHandler {
	return &PageHandler{blogs: blogs, auth: auth, log: log, cookieTTL: cookieTTL, failure: loginFailureStatus}
}

func isLoggedIn(c *gin.Context) bool {
	_, err := c.Cookie(middleware.AccessTokenCookie)
	return err == nil
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"isLoggedIn": isLoggedIn(c)})
}

func (h *PageHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{"isLoggedIn": true})
}

// Create handles the create form post.
func (h *PageHandler) Create(c *gin.Context) {
	var req domain.BlogRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "create.html", gin.H{
			"isLoggedIn": true,
			"error":      "title and body are required",
			"title":      req.Title,
			"body":       req.Body,
		})
		return
	}
	subject, _ := util.GetSubject(c)
	if _, err := h.blogs.Create(c.Request.Context(), subject, req); err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			c.Redirect(http.StatusFound, LoginPath)
			return
		}
		h.internalError(c, err)
		return
	}
	c.HTML(http.StatusCreated, "success.html", gin.H{"isLoggedIn": true, "message": "Blog created."})
}

func (h *PageHandler) List(c *gin.Context) {
	subject, _ := util.GetSubject(c)
	blogs, err := h.blogs.List(c.Request.Context(), subject)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "blogs.html", gin.H{"isLoggedIn": true, "blogs": domain.NewShowBlogs(blogs)})
}

func (h *PageHandler) Detail(c *gin.Context) {
	raw := c.Param("id")
	notFound := fmt.Sprintf("Blog with id %s is not available!", raw)
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"isLoggedIn": true, "error": notFound})
		return
	}
	subject, _ := util.GetSubject(c)
	blog, err := h.blogs.Get(c.Request.Context(), subject, uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"isLoggedIn": true, "error": notFound})
			return
		}
		h.internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "blog_id.html", gin.H{"isLoggedIn": true, "blog": domain.NewShowBlog(blog)})
}

func (h *PageHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"isLoggedIn": isLoggedIn(c)})
}

// LoginSubmit authenticates the form and keeps the token in the access_token cookie.
func (h *PageHandler) LoginSubmit(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": "email and password are required"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidName):
			c.HTML(h.failure, "login.html", gin.H{"error": "Invalid name", "username": req.Username})
		case errors.Is(err, domain.ErrIncorrectPassword):
			c.HTML(h.failure, "login.html", gin.H{"error": "Incorrect password", "username": req.Username})
		default:
			h.internalError(c, err)
		}
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token.AccessToken, int(h.cookieTTL.Seconds()), "/", "", false, true)
	c.HTML(http.StatusOK, "success.html", gin.H{"isLoggedIn": true, "message": "Logged in."})
}

func (h *PageHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", gin.H{"isLoggedIn": isLoggedIn(c)})
}

// Logout revokes the cookie token (when a denylist is configured) and clears the cookie.
func (h *PageHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.AccessTokenCookie); err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			h.log.Warn("logout: failed to revoke token", "error", err)
		}
	}
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	h.log.Error("page request failed", "path", c.FullPath(), "error", err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Something went wrong."})
}
