package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/franciscosanchezn/bistro-boss-api/internal/database"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

func TestOrderStatsPipelineShape(t *testing.T) {
	pipeline := OrderStatsPipeline()
	require.Len(t, pipeline, 6)

	var stages []string
	for _, stage := range pipeline {
		stages = append(stages, stage[0].Key)
	}
	assert.Equal(t, []string{"$unwind", "$lookup", "$unwind", "$group", "$project", "$sort"}, stages)

	lookup := pipeline[1][0].Value.(bson.D).Map()
	assert.Equal(t, MenuCollection, lookup["from"])
	assert.Equal(t, "menuItems", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])

	raw, err := bson.Marshal(bson.D{{Key: "pipeline", Value: pipeline}})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

// TestStoreAgainstLiveDeployment runs when MONGO_TEST_URI points at a replica
// set, e.g. mongodb://localhost:27017/?replicaSet=rs0
func TestStoreAgainstLiveDeployment(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "bistro_test_" + models.NewID()
	client, db, err := database.InitMongo(ctx, database.MongoConfig{URI: uri, Database: dbName})
	require.NoError(t, err)
	s := New(client, db)
	defer func() {
		_ = db.Drop(context.Background())
		_ = s.Close(context.Background())
	}()
	require.NoError(t, s.EnsureIndexes(ctx))

	pizzaA := &models.MenuItem{Name: "Margherita", Category: "pizza", Price: 12}
	pizzaB := &models.MenuItem{Name: "Pepperoni", Category: "pizza", Price: 8}
	for _, item := range []*models.MenuItem{pizzaA, pizzaB} {
		_, err := s.InsertMenuItem(ctx, item)
		require.NoError(t, err)
	}

	cart := &models.CartItem{Email: "a@bistro.com", MenuItemID: pizzaA.ID}
	_, err = s.InsertCartItem(ctx, cart)
	require.NoError(t, err)

	res, err := s.Checkout(ctx, &models.Payment{
		Email:     "a@bistro.com",
		Price:     20,
		CartItems: []string{cart.ID},
		MenuItems: []string{pizzaA.ID, pizzaB.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeleteResult.DeletedCount)

	stats, err := s.OrderStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryStat{{Category: "pizza", Count: 2, TotalPrice: 20}}, stats)

	del, err := s.DeleteCartItem(ctx, models.NewID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)
}
