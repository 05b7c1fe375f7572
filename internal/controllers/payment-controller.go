package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/middleware"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
)

// IntentRequest is the body of POST /create-payment-intent
type IntentRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

// IntentResponse carries the client secret the browser confirms the card with
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentController handles payment intents and checkouts
type PaymentController interface {
	// CreateIntent creates a card payment intent
	CreateIntent(c *gin.Context)
	// Checkout records a payment and clears the paid cart items
	Checkout(c *gin.Context)
}

type paymentController struct {
	service services.PaymentService
}

// NewPaymentController creates a new instance of PaymentController
func NewPaymentController(service services.PaymentService) PaymentController {
	return &paymentController{service: service}
}

// CreateIntent godoc
// @Summary Create a payment intent
// @Description Converts the price to minor units and creates a card intent with the payment processor.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body controllers.IntentRequest true "Price in major units"
// @Success 200 {object} controllers.IntentResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /create-payment-intent [post]
func (pc *paymentController) CreateIntent(ctx *gin.Context) {
	var req IntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadBody(ctx, err)
		return
	}

	secret, err := pc.service.CreateIntent(ctx.Request.Context(), *req.Price)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, IntentResponse{ClientSecret: secret})
}

// Checkout godoc
// @Summary Record a payment
// @Description Stores the payment and deletes the cart items it settles in one transaction.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.Payment true "Payment"
// @Success 200 {object} models.CheckoutResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /payments [post]
func (pc *paymentController) Checkout(ctx *gin.Context) {
	var payment models.Payment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		respondBadBody(ctx, err)
		return
	}

	res, err := pc.service.Checkout(ctx.Request.Context(), middleware.EmailFrom(ctx), &payment)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
