package models

// Roles a user record can carry. An empty role is a regular customer.
const (
	RoleAdmin   = "admin"
	RoleRegular = ""
)

// User is an account created on first sign-in and keyed by email
type User struct {
	ID       string `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:24"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email" gorm:"index"`
	PhotoURL string `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role     string `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the stored role grants admin access
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
