package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// CartService manages shopping carts
type CartService interface {
	// ListCart returns the cart of email on behalf of the authenticated caller.
	// An empty email yields an empty cart; another user's email is forbidden.
	ListCart(ctx context.Context, callerEmail, email string) ([]models.CartItem, error)
	AddToCart(ctx context.Context, item *models.CartItem) (models.InsertResult, error)
	RemoveFromCart(ctx context.Context, id string) (models.DeleteResult, error)
}

type cartService struct {
	carts store.CartStore
}

func NewCartService(carts store.CartStore) CartService {
	return &cartService{carts: carts}
}

func (s *cartService) ListCart(ctx context.Context, callerEmail, email string) ([]models.CartItem, error) {
	if email == "" {
		return []models.CartItem{}, nil
	}
	if email != callerEmail {
		return nil, models.ErrForbidden
	}
	return s.carts.ListCartByEmail(ctx, email)
}

func (s *cartService) AddToCart(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	item.Email = strings.TrimSpace(item.Email)
	if item.Email == "" {
		return models.InsertResult{}, fmt.Errorf("%w: email is required", models.ErrBadRequest)
	}
	item.ID = ""
	return s.carts.InsertCartItem(ctx, item)
}

func (s *cartService) RemoveFromCart(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.carts.DeleteCartItem(ctx, id)
}
