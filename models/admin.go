package models

import "time"

// Admin roles. Super-admins can manage other admins; both roles can use the
// CMS and order screens.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Admin is an authenticated CMS principal.
type Admin struct {
	AdminID       string    `bson:"adminid" json:"adminid"`
	Username      string    `bson:"username" json:"username"`
	Password      string    `bson:"password" json:"-"`
	Role          []string  `bson:"role" json:"role"`
	RefreshToken  string    `bson:"refresh_token,omitempty" json:"-"`
	RefreshExpiry time.Time `bson:"refresh_expiry,omitempty" json:"-"`
	LastLogin     time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
