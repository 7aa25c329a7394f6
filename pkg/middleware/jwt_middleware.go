package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/BlogBackend/pkg/jwt"
	"seungpyo.lee/BlogBackend/pkg/util"
)

// AccessTokenCookie is the cookie the HTML pages keep the bearer token in.
const AccessTokenCookie = "access_token"

var errMissingToken = errors.New("missing bearer token")

// AuthMiddleware returns a Gin middleware that validates bearer tokens and injects the subject into the context.
// Failures abort with 401 and a JSON detail.
func AuthMiddleware(tokenManager jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, tokenManager); err != nil {
			status, detail := failure(err)
			if status == http.StatusUnauthorized {
				c.Header("WWW-Authenticate", "Bearer")
			}
			c.AbortWithStatusJSON(status, gin.H{"detail": detail})
			return
		}
		c.Next()
	}
}

// PageAuthMiddleware is AuthMiddleware for HTML pages: unauthenticated requests are redirected to loginPath.
func PageAuthMiddleware(tokenManager jwt.TokenManager, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, tokenManager); err != nil {
			if status, _ := failure(err); status != http.StatusUnauthorized {
				c.AbortWithStatus(status)
				return
			}
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// authenticate reads the token from the Authorization header, falling back to the access_token cookie.
func authenticate(c *gin.Context, tokenManager jwt.TokenManager) error {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return errMissingToken
	}
	subject, err := tokenManager.Validate(c.Request.Context(), tokenString)
	if err != nil {
		_ = c.Error(err)
		return err
	}
	c.Set(util.SubjectKey, subject)
	c.Set(util.TokenKey, tokenString)
	return nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		// scheme names are case-insensitive (RFC 7235)
		scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func failure(err error) (int, string) {
	switch {
	case errors.Is(err, errMissingToken):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, jwt.ErrExpired):
		return http.StatusUnauthorized, "access token expired"
	case errors.Is(err, jwt.ErrRevoked):
		return http.StatusUnauthorized, "access token revoked"
	case errors.Is(err, jwt.ErrAuth):
		return http.StatusUnauthorized, "Could not validate credentials"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
