package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/pkg/logger"
	"seungpyo.lee/BlogBackend/pkg/util"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	Service       domain.AuthService
	log           *logger.Logger
	failureStatus int
}

// NewAuthHandler creates a new AuthHandler. failureStatus is the status
// answered for an unknown email or a wrong password.
func NewAuthHandler(service domain.AuthService, log *logger.Logger, failureStatus int) *AuthHandler {
	return &AuthHandler{Service: service, log: log, failureStatus: failureStatus}
}

// Login handles POST /login with a form-encoded username (email) and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidName):
			h.loginFailed(c, "Invalid name")
		case errors.Is(err, domain.ErrIncorrectPassword):
			h.loginFailed(c, "Incorrect password")
		default:
			internalError(c, h.log, err)
		}
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *AuthHandler) loginFailed(c *gin.Context, msg string) {
	if h.failureStatus == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	detail(c, h.failureStatus, msg)
}

// Logout handles POST /logout. The presented token is revoked when a denylist is configured.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := util.GetToken(c)
	if err := h.Service.Logout(c.Request.Context(), token); err != nil {
		internalError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
