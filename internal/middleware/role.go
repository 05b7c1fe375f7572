package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

// AdminChecker reports whether the account behind an email holds the admin role
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// IsAdmin must run after Authenticated. The role is read from the user
// store on every request, so promotions and demotions apply immediately.
func IsAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		admin, err := users.IsAdmin(c.Request.Context(), claims.Email)
		if err != nil {
			log(c).WithError(err).Error("Failed to look up caller role")
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				models.NewAPIError(models.ErrCodeInternalServer, "failed to verify role"))
			return
		}
		if !admin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				models.NewAPIError(models.ErrCodeForbidden, models.ErrForbidden.Error()))
			return
		}

		c.Next()
	}
}
