package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/BlogBackend/pkg/logger"
)

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// internalError logs err and answers 500 without leaking it.
func internalError(c *gin.Context, log *logger.Logger, err error) {
	_ = c.Error(err)
	log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	detail(c, http.StatusInternalServerError, "internal server error")
}

// parseID reads the :id path parameter. ok is false for anything that is not a
// positive integer fitting a Postgres bigint.
func parseID(c *gin.Context) (uint, string, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, raw, false
	}
	return uint(id), raw, true
}
