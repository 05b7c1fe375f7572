package models

// AdminStats is the dashboard summary returned by /admin-stats
type AdminStats struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// CategoryStat aggregates ordered menu items of one category
type CategoryStat struct {
	Category   string  `json:"category" bson:"category"`
	Count      int64   `json:"count" bson:"count"`
	TotalPrice float64 `json:"totalPrice" bson:"totalPrice"`
}
