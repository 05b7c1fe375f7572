package services

import (
	"context"

	"github.com/franciscosanchezn/bistro-boss-api/internal/cache"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

type ReviewService interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) (models.InsertResult, error)
}

type reviewService struct {
	reviews store.ReviewStore
	cache   *cache.Client
}

func NewReviewService(reviews store.ReviewStore, c *cache.Client) ReviewService {
	return &reviewService{reviews: reviews, cache: c}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return cache.Remember(ctx, s.cache, cache.ReviewsKey, s.reviews.ListReviews)
}

func (s *reviewService) CreateReview(ctx context.Context, review *models.Review) (models.InsertResult, error) {
	res, err := s.reviews.InsertReview(ctx, review)
	if err != nil {
		return models.InsertResult{}, err
	}
	s.cache.Delete(ctx, cache.ReviewsKey)
	return res, nil
}
