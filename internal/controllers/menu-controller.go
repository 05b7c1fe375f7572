package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
)

// MenuController handles HTTP requests related to the menu
type MenuController interface {
	// ListMenu retrieves all menu items
	ListMenu(c *gin.Context)
	// CreateMenuItem adds a menu item
	CreateMenuItem(c *gin.Context)
	// DeleteMenuItem removes a menu item by its ID
	DeleteMenuItem(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) MenuController {
	return &menuController{service: service}
}

// ListMenu godoc
// @Summary Get the menu
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /menu [get]
func (mc *menuController) ListMenu(ctx *gin.Context) {
	items, err := mc.service.ListMenu(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// CreateMenuItem godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param item body models.MenuItem true "Menu item"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /menu [post]
func (mc *menuController) CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		respondBadBody(ctx, err)
		return
	}

	res, err := mc.service.CreateMenuItem(ctx.Request.Context(), &item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.DeleteResult
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /menu/{id} [delete]
func (mc *menuController) DeleteMenuItem(ctx *gin.Context) {
	res, err := mc.service.DeleteMenuItem(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
