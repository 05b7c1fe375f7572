// Package testutil holds fixtures shared by handler and service tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/franciscosanchezn/bistro-boss-api/internal/payments"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store/sqlstore"
)

// NewSQLiteStore returns a migrated store backed by a private in-memory
// SQLite database that lives until the test ends.
func NewSQLiteStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	s, err := sqlstore.New(db)
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

// FakeProcessor records the intents it is asked for
type FakeProcessor struct {
	mu      sync.Mutex
	Amounts []int64
	Err     error
}

func (p *FakeProcessor) CreateIntent(_ context.Context, amount int64, currency string) (*payments.Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Amounts = append(p.Amounts, amount)
	if p.Err != nil {
		return nil, p.Err
	}
	return &payments.Intent{
		ID:           fmt.Sprintf("pi_%d", len(p.Amounts)),
		ClientSecret: fmt.Sprintf("pi_%d_secret_test", len(p.Amounts)),
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// LastAmount returns the most recent requested amount
func (p *FakeProcessor) LastAmount() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Amounts) == 0 {
		return -1
	}
	return p.Amounts[len(p.Amounts)-1]
}
