package util

import (
	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key holding the authenticated token subject (the user's email).
const SubjectKey = "auth_subject"

// TokenKey is the gin context key holding the raw bearer token of the request.
const TokenKey = "auth_token"

// GetSubject extracts the authenticated subject set by the auth middleware.
func GetSubject(c *gin.Context) (string, bool) {
	subject := c.GetString(SubjectKey)
	if subject == "" {
		return "", false
	}
	return subject, true
}

// GetToken extracts the raw bearer token set by the auth middleware.
func GetToken(c *gin.Context) (string, bool) {
	token := c.GetString(TokenKey)
	if token == "" {
		return "", false
	}
	return token, true
}
