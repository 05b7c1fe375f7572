package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	// a named shared-cache database keeps every pooled connection on the same data
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	s, err := New(db)
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestUserLifecycle(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.FindUserByEmail(ctx, "nobody@bistro.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	user := &models.User{Name: "Rafi", Email: "rafi@bistro.com"}
	res, err := s.InsertUser(ctx, user)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Len(t, res.InsertedID, 24)
	assert.Equal(t, user.ID, res.InsertedID)

	found, err := s.FindUserByEmail(ctx, "rafi@bistro.com")
	require.NoError(t, err)
	assert.Equal(t, "Rafi", found.Name)
	assert.False(t, found.IsAdmin())

	upd, err := s.SetUserRole(ctx, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	again, err := s.SetUserRole(ctx, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.MatchedCount)
	assert.Equal(t, int64(0), again.ModifiedCount)

	missing, err := s.SetUserRole(ctx, "not-an-id", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, missing.Acknowledged)
	assert.Equal(t, int64(0), missing.MatchedCount)

	found, err = s.FindUserByEmail(ctx, "rafi@bistro.com")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin())

	n, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeleteUnknownCartItemIsZeroAck(t *testing.T) {
	s := setupTestStore(t)

	res, err := s.DeleteCartItem(context.Background(), models.NewID())
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, int64(0), res.DeletedCount)
}

func TestListCartByEmail(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, email := range []string{"a@bistro.com", "a@bistro.com", "b@bistro.com"} {
		_, err := s.InsertCartItem(ctx, &models.CartItem{Email: email, Name: "Soup", Price: 5})
		require.NoError(t, err)
	}

	items, err := s.ListCartByEmail(ctx, "a@bistro.com")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "a@bistro.com", item.Email)
	}

	none, err := s.ListCartByEmail(ctx, "c@bistro.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCheckoutInsertsPaymentAndClearsCart(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	first := &models.CartItem{Email: "a@bistro.com", Name: "Pizza"}
	second := &models.CartItem{Email: "a@bistro.com", Name: "Cake"}
	kept := &models.CartItem{Email: "a@bistro.com", Name: "Soup"}
	for _, item := range []*models.CartItem{first, second, kept} {
		_, err := s.InsertCartItem(ctx, item)
		require.NoError(t, err)
	}

	payment := &models.Payment{
		Email:     "a@bistro.com",
		Price:     20,
		CartItems: []string{first.ID, second.ID},
		MenuItems: []string{models.NewID()},
	}
	res, err := s.Checkout(ctx, payment)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, res.InsertResult.InsertedID)
	assert.Equal(t, int64(2), res.DeleteResult.DeletedCount)

	left, err := s.ListCartByEmail(ctx, "a@bistro.com")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, kept.ID, left[0].ID)

	payments, err := s.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, []string{first.ID, second.ID}, payments[0].CartItems)
}

func TestCheckoutRollsBackOnFailure(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	item := &models.CartItem{Email: "a@bistro.com", Name: "Pizza"}
	_, err := s.InsertCartItem(ctx, item)
	require.NoError(t, err)

	existing := &models.Payment{ID: models.NewID(), Email: "a@bistro.com"}
	_, err = s.Checkout(ctx, existing)
	require.NoError(t, err)

	// same primary key: the insert fails and the cart must survive
	_, err = s.Checkout(ctx, &models.Payment{ID: existing.ID, CartItems: []string{item.ID}})
	require.Error(t, err)

	left, err := s.ListCartByEmail(ctx, "a@bistro.com")
	require.NoError(t, err)
	assert.Len(t, left, 1)

	n, err := s.CountPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOrderStatsGroupsJoinedMenuItems(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	margherita := &models.MenuItem{Name: "Margherita", Category: "pizza", Price: 12}
	pepperoni := &models.MenuItem{Name: "Pepperoni", Category: "pizza", Price: 8}
	cake := &models.MenuItem{Name: "Cheesecake", Category: "dessert", Price: 4.335}
	for _, item := range []*models.MenuItem{margherita, pepperoni, cake} {
		_, err := s.InsertMenuItem(ctx, item)
		require.NoError(t, err)
	}

	_, err := s.Checkout(ctx, &models.Payment{MenuItems: []string{margherita.ID, pepperoni.ID}})
	require.NoError(t, err)
	// a dangling reference is dropped by the join
	_, err = s.Checkout(ctx, &models.Payment{MenuItems: []string{cake.ID, cake.ID, models.NewID()}})
	require.NoError(t, err)

	stats, err := s.OrderStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, models.CategoryStat{Category: "dessert", Count: 2, TotalPrice: 8.67}, stats[0])
	assert.Equal(t, models.CategoryStat{Category: "pizza", Count: 2, TotalPrice: 20}, stats[1])
}

func TestDeleteMenuItem(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	item := &models.MenuItem{Name: "Salad", Category: "salad", Price: 6}
	_, err := s.InsertMenuItem(ctx, item)
	require.NoError(t, err)

	res, err := s.DeleteMenuItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	n, err := s.CountMenu(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
