package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/bistro-boss-api/internal/metrics"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/payments"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// PaymentService handles payment intents and checkouts
type PaymentService interface {
	// CreateIntent asks the processor for a card intent covering price and
	// returns the client secret
	CreateIntent(ctx context.Context, price float64) (string, error)
	// Checkout records the payment of callerEmail and clears the settled cart
	// items atomically
	Checkout(ctx context.Context, callerEmail string, payment *models.Payment) (models.CheckoutResult, error)
}

type paymentService struct {
	payments  store.PaymentStore
	processor payments.Processor
	currency  string
	log       *logrus.Logger
	now       func() time.Time
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(ps store.PaymentStore, processor payments.Processor, currency string, log *logrus.Logger) PaymentService {
	if currency == "" {
		currency = "usd"
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &paymentService{
		payments:  ps,
		processor: processor,
		currency:  currency,
		log:       log,
		now:       time.Now,
	}
}

// CreateIntent passes tiny and zero amounts through; the processor decides
// whether they are valid.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := payments.ToMinorUnits(price)
	intent, err := s.processor.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		metrics.PaymentIntents.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("create payment intent for %d %s: %w", amount, s.currency, err)
	}
	metrics.PaymentIntents.WithLabelValues("created").Inc()
	s.log.WithFields(logrus.Fields{
		"intent_id": intent.ID,
		"amount":    amount,
		"currency":  s.currency,
	}).Info("Payment intent created")
	return intent.ClientSecret, nil
}

func (s *paymentService) Checkout(ctx context.Context, callerEmail string, payment *models.Payment) (models.CheckoutResult, error) {
	if payment.Email == "" {
		payment.Email = callerEmail
	}
	if payment.Email != callerEmail {
		return models.CheckoutResult{}, models.ErrForbidden
	}
	if payment.Date.IsZero() {
		payment.Date = s.now().UTC()
	}
	if payment.Status == "" {
		payment.Status = models.DefaultPaymentStatus
	}
	payment.ID = ""

	res, err := s.payments.Checkout(ctx, payment)
	if err != nil {
		return models.CheckoutResult{}, err
	}
	s.log.WithFields(logrus.Fields{
		"payment_id":     payment.ID,
		"transaction_id": payment.TransactionID,
		"cart_deleted":   res.DeleteResult.DeletedCount,
	}).Info("Payment recorded")
	return res, nil
}
