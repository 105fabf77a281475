package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	// Ability scopes granted to the role, stored as a JSON array of strings,
	// e.g. ["hotels.manage_any", "users.assign_role"].
	Abilities datatypes.JSON `json:"abilities"`

	CreatedAt time.Time `json:"created_at"`
}
