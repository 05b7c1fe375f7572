package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/bistro-boss-api/internal/cache"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// MenuService provides access to the restaurant menu
type MenuService interface {
	// ListMenu retrieves all menu items
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	// CreateMenuItem adds a new item to the menu
	CreateMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error)
	// DeleteMenuItem removes a menu item by its ID
	DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error)
}

type menuService struct {
	menu  store.MenuStore
	cache *cache.Client
}

// NewMenuService creates a new instance of MenuService. c may be nil.
func NewMenuService(menu store.MenuStore, c *cache.Client) MenuService {
	return &menuService{menu: menu, cache: c}
}

func (s *menuService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return cache.Remember(ctx, s.cache, cache.MenuKey, s.menu.ListMenu)
}

func (s *menuService) CreateMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if item.Name == "" {
		return models.InsertResult{}, fmt.Errorf("%w: name is required", models.ErrBadRequest)
	}
	if item.Price < 0 {
		return models.InsertResult{}, fmt.Errorf("%w: price must not be negative", models.ErrBadRequest)
	}

	item.ID = ""
	res, err := s.menu.InsertMenuItem(ctx, item)
	if err != nil {
		return models.InsertResult{}, err
	}
	s.cache.Delete(ctx, cache.MenuKey)
	return res, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error) {
	res, err := s.menu.DeleteMenuItem(ctx, id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	if res.DeletedCount > 0 {
		s.cache.Delete(ctx, cache.MenuKey)
	}
	return res, nil
}
