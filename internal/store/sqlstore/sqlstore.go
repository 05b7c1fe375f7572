// Package sqlstore implements store.Store on top of GORM for PostgreSQL,
// MySQL and SQLite.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// paymentItem is one menu reference of a payment. Rows are written with the
// payment so order statistics can join them against the menu table.
type paymentItem struct {
	ID         uint   `gorm:"primaryKey"`
	PaymentID  string `gorm:"size:24;index;not null"`
	MenuItemID string `gorm:"size:24;index;not null"`
}

func (paymentItem) TableName() string {
	return "payment_items"
}

// Store is the relational implementation of store.Store
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an open GORM connection and registers the metrics callbacks
func New(db *gorm.DB) (*Store, error) {
	if err := registerCallbacks(db); err != nil {
		return nil, fmt.Errorf("sqlstore: register callbacks: %w", err)
	}
	return &Store{db: db}, nil
}

// Migrate creates or updates the schema
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Review{},
		&models.CartItem{},
		&models.Payment{},
		&paymentItem{},
	)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, user *models.User) (models.InsertResult, error) {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

// SetUserRole reports matched and modified counts separately, so a user that
// already holds the role is matched but not modified.
func (s *Store) SetUserRole(ctx context.Context, id, role string) (models.UpdateResult, error) {
	result := models.UpdateResult{Acknowledged: true}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&result.MatchedCount).Error; err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return nil
		}
		res := tx.Model(&models.User{}).
			Where("id = ? AND (role IS NULL OR role <> ?)", id, role).
			Update("role", role)
		if res.Error != nil {
			return res.Error
		}
		result.ModifiedCount = res.RowsAffected
		return nil
	})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return result, nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.User{})
}

func (s *Store) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error) {
	if item.ID == "" {
		item.ID = models.NewID()
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.deleteByID(ctx, &models.MenuItem{}, id)
}

func (s *Store) CountMenu(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.MenuItem{})
}

func (s *Store) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) InsertReview(ctx context.Context, review *models.Review) (models.InsertResult, error) {
	if review.ID == "" {
		review.ID = models.NewID()
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: review.ID}, nil
}

func (s *Store) ListCartByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := s.db.WithContext(ctx).Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertCartItem(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	if item.ID == "" {
		item.ID = models.NewID()
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (s *Store) DeleteCartItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.deleteByID(ctx, &models.CartItem{}, id)
}

func (s *Store) Checkout(ctx context.Context, payment *models.Payment) (models.CheckoutResult, error) {
	if payment.ID == "" {
		payment.ID = models.NewID()
	}

	var result models.CheckoutResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		result.InsertResult = models.InsertResult{Acknowledged: true, InsertedID: payment.ID}

		if len(payment.MenuItems) > 0 {
			items := make([]paymentItem, 0, len(payment.MenuItems))
			for _, menuID := range payment.MenuItems {
				items = append(items, paymentItem{PaymentID: payment.ID, MenuItemID: menuID})
			}
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("insert payment items: %w", err)
			}
		}

		result.DeleteResult = models.DeleteResult{Acknowledged: true}
		if len(payment.CartItems) == 0 {
			return nil
		}
		res := tx.Where("id IN ?", payment.CartItems).Delete(&models.CartItem{})
		if res.Error != nil {
			return fmt.Errorf("delete cart items: %w", res.Error)
		}
		result.DeleteResult.DeletedCount = res.RowsAffected
		return nil
	})
	if err != nil {
		return models.CheckoutResult{}, err
	}
	return result, nil
}

func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := s.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Store) CountPayments(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Payment{})
}

func (s *Store) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	stats := []models.CategoryStat{}
	err := s.db.WithContext(ctx).
		Table("payment_items AS pi").
		Select("m.category AS category, COUNT(*) AS count, SUM(m.price) AS total_price").
		Joins("JOIN menu AS m ON m.id = pi.menu_item_id").
		Group("m.category").
		Order("m.category").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i].TotalPrice = decimal.NewFromFloat(stats[i].TotalPrice).Round(2).InexactFloat64()
	}
	return stats, nil
}

func (s *Store) count(ctx context.Context, model interface{}) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) deleteByID(ctx context.Context, model interface{}, id string) (models.DeleteResult, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return models.DeleteResult{}, res.Error
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}
