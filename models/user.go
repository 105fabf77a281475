package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:150;uniqueIndex" json:"email"`
	Password  string `gorm:"size:255" json:"-"` // store hashed password, never return in JSON

	// Roles in use cannot be deleted.
	RoleID uint `gorm:"index" json:"role_id"`
	Role   Role `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"role"`

	Hotels []Hotel `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role. Role must be
// preloaded.
func (u User) IsAdmin() bool {
	return u.Role.Name == RoleAdmin
}
