package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/middleware"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
)

// CartController handles HTTP requests related to shopping carts
type CartController interface {
	// ListCart returns the caller's cart
	ListCart(c *gin.Context)
	// AddToCart stores a cart entry
	AddToCart(c *gin.Context)
	// RemoveFromCart deletes a cart entry by its ID
	RemoveFromCart(c *gin.Context)
}

type cartController struct {
	service services.CartService
}

// NewCartController creates a new instance of CartController
func NewCartController(service services.CartService) CartController {
	return &cartController{service: service}
}

// ListCart godoc
// @Summary Get a cart
// @Description Returns the cart of the given email, which must be the caller's. Without an email the cart is empty.
// @Tags carts
// @Produce json
// @Param email query string false "Owner email"
// @Success 200 {array} models.CartItem
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /carts [get]
func (cc *cartController) ListCart(ctx *gin.Context) {
	items, err := cc.service.ListCart(ctx.Request.Context(), middleware.EmailFrom(ctx), ctx.Query("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// AddToCart godoc
// @Summary Add an item to a cart
// @Tags carts
// @Accept json
// @Produce json
// @Param item body models.CartItem true "Cart item"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Router /carts [post]
func (cc *cartController) AddToCart(ctx *gin.Context) {
	var item models.CartItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		respondBadBody(ctx, err)
		return
	}

	res, err := cc.service.AddToCart(ctx.Request.Context(), &item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// RemoveFromCart godoc
// @Summary Remove an item from a cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} models.DeleteResult
// @Router /carts/{id} [delete]
func (cc *cartController) RemoveFromCart(ctx *gin.Context) {
	res, err := cc.service.RemoveFromCart(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
