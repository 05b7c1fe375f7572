package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/auth"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

// Context keys set by Authenticated
const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// TokenVerifier validates a raw bearer token
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticated validates the Bearer token of the request and stores its
// claims in the context. Any failure aborts with 401.
func Authenticated(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		// Expected format "Bearer <token>"
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			log(c).WithError(err).Debug("Rejected bearer token")
			abortUnauthorized(c)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims of the request, if any
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// EmailFrom returns the email of the verified caller, or "" when the request
// is anonymous.
func EmailFrom(c *gin.Context) string {
	return c.GetString(EmailKey)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		models.NewAPIError(models.ErrCodeUnauthorized, models.ErrUnauthorized.Error()))
}
