package models

// CartItem is a menu item a user put in their cart. The menu fields are
// copied in at insertion time.
type CartItem struct {
	ID         string  `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:24"`
	MenuItemID string  `json:"menuItemId" bson:"menuItemId"`
	Email      string  `json:"email" bson:"email" gorm:"index"`
	Name       string  `json:"name" bson:"name"`
	Image      string  `json:"image" bson:"image"`
	Price      float64 `json:"price" bson:"price"`
}
