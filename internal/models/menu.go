package models

// MenuItem represents a dish on the restaurant menu
type MenuItem struct {
	ID          string  `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:24"`
	Name        string  `json:"name" bson:"name" binding:"required"`
	Category    string  `json:"category" bson:"category" gorm:"index"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	Image       string  `json:"image" bson:"image"`
}

// TableName keeps the relational table aligned with the "menu" collection
func (MenuItem) TableName() string {
	return "menu"
}
