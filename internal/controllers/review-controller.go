package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
)

type ReviewController struct {
	service services.ReviewService
}

func NewReviewController(service services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// ListReviews godoc
// @Summary Get customer reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} models.Review
// @Failure 500 {object} models.APIError
// @Router /reviews [get]
func (rc *ReviewController) ListReviews(ctx *gin.Context) {
	reviews, err := rc.service.ListReviews(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
