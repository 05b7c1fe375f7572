package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
)

type StatsController struct {
	service services.StatsService
}

func NewStatsController(service services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// AdminStats godoc
// @Summary Dashboard totals
// @Description Counts users, menu items and orders and sums the revenue of every payment.
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminStats
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /admin-stats [get]
func (sc *StatsController) AdminStats(ctx *gin.Context) {
	stats, err := sc.service.AdminStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// OrderStats godoc
// @Summary Sales per category
// @Description Joins every ordered menu reference against the menu and groups by category.
// @Tags admin
// @Produce json
// @Success 200 {array} models.CategoryStat
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /order-stars [get]
func (sc *StatsController) OrderStats(ctx *gin.Context) {
	stats, err := sc.service.OrderStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
