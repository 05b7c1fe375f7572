package models

import "time"

// DefaultPaymentStatus is assigned to payments posted without a status
const DefaultPaymentStatus = "service pending"

// Payment records one completed checkout. CartItems lists the cart entries it
// settles and MenuItems the menu ids that were bought.
type Payment struct {
	ID            string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:24"`
	Email         string    `json:"email" bson:"email" gorm:"index"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Price         float64   `json:"price" bson:"price"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	Date          time.Time `json:"date" bson:"date"`
	Status        string    `json:"status" bson:"status"`
	CartItems     []string  `json:"cartItems" bson:"cartItems" gorm:"serializer:json"`
	MenuItems     []string  `json:"menuItems" bson:"menuItems" gorm:"serializer:json"`
	ItemNames     []string  `json:"itemNames,omitempty" bson:"itemNames,omitempty" gorm:"serializer:json"`
}
