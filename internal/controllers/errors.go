package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/middleware"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

// respondError maps service errors onto the API error envelope. Unknown
// errors are logged and reported as 500 without their text.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrBadRequest):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, err.Error()))
	case errors.Is(err, models.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrCodeUnauthorized, models.ErrUnauthorized.Error()))
	case errors.Is(err, models.ErrForbidden):
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrCodeForbidden, models.ErrForbidden.Error()))
	default:
		middleware.Logger(ctx).WithError(err).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrCodeInternalServer, "internal server error"))
	}
}

func respondBadBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "Invalid request body",
		map[string]interface{}{"error": err.Error()}))
}
