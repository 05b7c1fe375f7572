package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// StatsStore is the read surface the reporting needs
type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountMenu(ctx context.Context) (int64, error)
	store.PaymentStore
}

// StatsService computes the admin dashboard reports
type StatsService interface {
	AdminStats(ctx context.Context) (models.AdminStats, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

type statsService struct {
	store StatsStore
}

func NewStatsService(s StatsStore) StatsService {
	return &statsService{store: s}
}

// AdminStats folds the payment prices in decimal so the revenue does not pick
// up binary rounding noise.
func (s *statsService) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	var err error

	if stats.Users, err = s.store.CountUsers(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.Products, err = s.store.CountMenu(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.Orders, err = s.store.CountPayments(ctx); err != nil {
		return models.AdminStats{}, err
	}

	all, err := s.store.ListPayments(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	revenue := decimal.Zero
	for _, p := range all {
		revenue = revenue.Add(decimal.NewFromFloat(p.Price))
	}
	stats.Revenue = revenue.InexactFloat64()
	return stats, nil
}

func (s *statsService) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	return s.store.OrderStats(ctx)
}
