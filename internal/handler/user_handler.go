package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/pkg/logger"
)

// UserHandler handles the /user JSON API.
type UserHandler struct {
	Service domain.UserService
	log     *logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service domain.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{Service: service, log: log}
}

// Create handles POST /user for registration.
func (h *UserHandler) Create(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailInUse):
			detail(c, http.StatusConflict, err.Error())
			return
		case errors.Is(err, domain.ErrPasswordTooLong):
			detail(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, domain.NewShowUser(user))
}

// Get handles GET /user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, raw, ok := parseID(c)
	if !ok {
		detail(c, http.StatusNotFound, fmt.Sprintf("User with id %s is not found!", raw))
		return
	}
	user, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			detail(c, http.StatusNotFound, fmt.Sprintf("User with id %s is not found!", raw))
			return
		}
		internalError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, domain.NewShowUser(user))
}
