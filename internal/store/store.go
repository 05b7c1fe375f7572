// Package store defines the persistence contracts of the API. Each backend
// returns acknowledgments shaped like the document store's native results so
// handlers can hand them back to clients verbatim.
package store

import (
	"context"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

// UserStore persists user accounts
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// FindUserByEmail returns models.ErrNotFound when no user has the email
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) (models.InsertResult, error)
	// SetUserRole updates the role of the user with the given id. Unknown or
	// malformed ids match nothing.
	SetUserRole(ctx context.Context, id, role string) (models.UpdateResult, error)
	CountUsers(ctx context.Context) (int64, error)
}

// MenuStore persists menu items
type MenuStore interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	InsertMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error)
	DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error)
	CountMenu(ctx context.Context) (int64, error)
}

// ReviewStore persists customer reviews
type ReviewStore interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	InsertReview(ctx context.Context, review *models.Review) (models.InsertResult, error)
}

// CartStore persists cart items
type CartStore interface {
	ListCartByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, item *models.CartItem) (models.InsertResult, error)
	DeleteCartItem(ctx context.Context, id string) (models.DeleteResult, error)
}

// PaymentStore persists payments and serves the reporting queries
type PaymentStore interface {
	// Checkout inserts the payment and deletes the cart items it lists in a
	// single transaction.
	Checkout(ctx context.Context, payment *models.Payment) (models.CheckoutResult, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	CountPayments(ctx context.Context) (int64, error)
	// OrderStats joins every payment's menu references against the menu and
	// groups the joined items by category, sorted by category.
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

// Store is the full persistence surface used by the API
type Store interface {
	UserStore
	MenuStore
	ReviewStore
	CartStore
	PaymentStore

	// Ping checks the backend is reachable
	Ping(ctx context.Context) error
	// Close releases the underlying connection
	Close(ctx context.Context) error
}
