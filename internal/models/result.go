package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertResult acknowledges a single insert, shaped like the document store's
// native reply.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges a single update.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult acknowledges a delete of zero or more documents.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CheckoutResult is the reply of a payment checkout
type CheckoutResult struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}

// NewID returns a fresh 24 character hex identifier. Every backend stores ids
// in this form so menu references in payments join without conversion.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
