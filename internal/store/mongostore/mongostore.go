// Package mongostore implements store.Store on MongoDB, the document store the
// API was designed around.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// Collection names
const (
	UsersCollection    = "users"
	MenuCollection     = "menu"
	ReviewsCollection  = "reviews"
	CartsCollection    = "carts"
	PaymentsCollection = "payments"
)

// Store is the MongoDB implementation of store.Store
type Store struct {
	client   *mongo.Client
	db       *mongo.Database
	users    *mongo.Collection
	menu     *mongo.Collection
	reviews  *mongo.Collection
	carts    *mongo.Collection
	payments *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// New binds the store to a connected client and database
func New(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:   client,
		db:       db,
		users:    db.Collection(UsersCollection),
		menu:     db.Collection(MenuCollection),
		reviews:  db.Collection(ReviewsCollection),
		carts:    db.Collection(CartsCollection),
		payments: db.Collection(PaymentsCollection),
	}
}

// EnsureIndexes creates the lookup indexes used by the handlers
func (s *Store) EnsureIndexes(ctx context.Context) error {
	emailIndex := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}
	if _, err := s.users.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}
	if _, err := s.carts.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return fmt.Errorf("carts email index: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := findAll(ctx, s.users, bson.D{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
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
	return insertOne(ctx, s.users, user.ID, user)
}

func (s *Store) SetUserRole(ctx context.Context, id, role string) (models.UpdateResult, error) {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.users.EstimatedDocumentCount(ctx)
}

func (s *Store) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := findAll(ctx, s.menu, bson.D{}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error) {
	if item.ID == "" {
		item.ID = models.NewID()
	}
	return insertOne(ctx, s.menu, item.ID, item)
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteOne(ctx, s.menu, id)
}

func (s *Store) CountMenu(ctx context.Context) (int64, error) {
	return s.menu.EstimatedDocumentCount(ctx)
}

func (s *Store) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := findAll(ctx, s.reviews, bson.D{}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) InsertReview(ctx context.Context, review *models.Review) (models.InsertResult, error) {
	if review.ID == "" {
		review.ID = models.NewID()
	}
	return insertOne(ctx, s.reviews, review.ID, review)
}

func (s *Store) ListCartByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := findAll(ctx, s.carts, bson.M{"email": email}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertCartItem(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	if item.ID == "" {
		item.ID = models.NewID()
	}
	return insertOne(ctx, s.carts, item.ID, item)
}

func (s *Store) DeleteCartItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteOne(ctx, s.carts, id)
}

// Checkout runs the payment insert and the cart cleanup in one multi-document
// transaction. Transactions need a replica set or sharded cluster.
func (s *Store) Checkout(ctx context.Context, payment *models.Payment) (models.CheckoutResult, error) {
	if payment.ID == "" {
		payment.ID = models.NewID()
	}

	session, err := s.client.StartSession()
	if err != nil {
		return models.CheckoutResult{}, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	out, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result := models.CheckoutResult{
			DeleteResult: models.DeleteResult{Acknowledged: true},
		}
		if _, err := s.payments.InsertOne(sc, payment); err != nil {
			return nil, fmt.Errorf("insert payment: %w", err)
		}
		result.InsertResult = models.InsertResult{Acknowledged: true, InsertedID: payment.ID}

		if len(payment.CartItems) == 0 {
			return result, nil
		}
		del, err := s.carts.DeleteMany(sc, bson.M{"_id": bson.M{"$in": payment.CartItems}})
		if err != nil {
			return nil, fmt.Errorf("delete cart items: %w", err)
		}
		result.DeleteResult.DeletedCount = del.DeletedCount
		return result, nil
	})
	if err != nil {
		return models.CheckoutResult{}, err
	}
	return out.(models.CheckoutResult), nil
}

func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := findAll(ctx, s.payments, bson.D{}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Store) CountPayments(ctx context.Context) (int64, error) {
	return s.payments.EstimatedDocumentCount(ctx)
}

func (s *Store) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	cursor, err := s.payments.Aggregate(ctx, OrderStatsPipeline())
	if err != nil {
		return nil, err
	}
	stats := []models.CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// OrderStatsPipeline unwinds each payment to one document per menu reference,
// joins it to the menu, and groups the joined items by category.
func OrderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: MenuCollection},
			{Key: "localField", Value: "menuItems"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItem"},
		}}},
		{{Key: "$unwind", Value: "$menuItem"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItem.category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalPrice", Value: bson.D{{Key: "$sum", Value: "$menuItem.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "totalPrice", Value: bson.D{{Key: "$round", Value: bson.A{"$totalPrice", 2}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}
}

func findAll(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}) error {
	cursor, err := coll.Find(ctx, filter, options.Find())
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func insertOne(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) (models.InsertResult, error) {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string) (models.DeleteResult, error) {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
