package models

type Review struct {
	ID      string  `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:24"`
	Name    string  `json:"name" bson:"name"`
	Details string  `json:"details" bson:"details"`
	Rating  float64 `json:"rating" bson:"rating"`
}
