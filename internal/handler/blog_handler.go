package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/pkg/logger"
	"seungpyo.lee/BlogBackend/pkg/util"
)

// BlogHandler handles the /blog JSON API.
type BlogHandler struct {
	Service domain.BlogService
	log     *logger.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service domain.BlogService, log *logger.Logger) *BlogHandler {
	return &BlogHandler{Service: service, log: log}
}

// Create handles POST /blog.
func (h *BlogHandler) Create(c *gin.Context) {
	var req domain.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	subject, _ := util.GetSubject(c)
	blog, err := h.Service.Create(c.Request.Context(), subject, req)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			detail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		internalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// List handles GET /blog.
func (h *BlogHandler) List(c *gin.Context) {
	subject, _ := util.GetSubject(c)
	blogs, err := h.Service.List(c.Request.Context(), subject)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			detail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		internalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, domain.NewShowBlogs(blogs))
}

// Get handles GET /blog/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	id, raw, ok := parseID(c)
	if !ok {
		detail(c, http.StatusNotFound, fmt.Sprintf("Blog with id %s is not available!", raw))
		return
	}
	subject, _ := util.GetSubject(c)
	blog, err := h.Service.Get(c.Request.Context(), subject, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlogNotFound):
			detail(c, http.StatusNotFound, fmt.Sprintf("Blog with id %s is not available!", raw))
		case errors.Is(err, domain.ErrUnauthenticated):
			detail(c, http.StatusUnauthorized, "Could not validate credentials")
		default:
			internalError(c, h.log, err)
		}
		return
	}
	c.JSON(http.StatusOK, domain.NewShowBlog(blog))
}

// Update handles PUT /blog/:id. Title and body are both replaced.
func (h *BlogHandler) Update(c *gin.Context) {
	var req domain.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	id, raw, ok := parseID(c)
	if !ok {
		detail(c, http.StatusNotFound, fmt.Sprintf("Blog with id %s is not exist", raw))
		return
	}
	subject, _ := util.GetSubject(c)
	if err := h.Service.Update(c.Request.Context(), subject, id, req); err != nil {
		h.mutationError(c, raw, err)
		return
	}
	c.JSON(http.StatusAccepted, "updated")
}

// Delete handles DELETE /blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, raw, ok := parseID(c)
	if !ok {
		detail(c, http.StatusNotFound, fmt.Sprintf("Blog with id %s is not exist", raw))
		return
	}
	subject, _ := util.GetSubject(c)
	if err := h.Service.Delete(c.Request.Context(), subject, id); err != nil {
		h.mutationError(c, raw, err)
		return
	}
	// 204 carries no body; gin drops it.
	c.JSON(http.StatusNoContent, "done")
}

func (h *BlogHandler) mutationError(c *gin.Context, raw string, err error) {
	switch {
	case errors.Is(err, domain.ErrBlogNotFound):
		detail(c, http.StatusNotFound, fmt.Sprintf("Blog with id %s is not exist", raw))
	case errors.Is(err, domain.ErrUnauthenticated):
		detail(c, http.StatusUnauthorized, "Could not validate credentials")
	default:
		internalError(c, h.log, err)
	}
}
