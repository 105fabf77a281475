package models

import "time"

type Hotel struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:150" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	TaxID   string `gorm:"column:tax_id;size:50;uniqueIndex" json:"tax_id"`

	// Declared capacity ceiling: the sum of configured room quantities must
	// never exceed this, and must equal it exactly after a full replace.
	RoomsTotal uint `gorm:"column:rooms_total" json:"rooms_total"`

	CityID uint `gorm:"index" json:"city_id"`
	City   City `gorm:"foreignKey:CityID" json:"city"`

	// Owning user, set from the authenticated caller on create.
	UserID uint `gorm:"index" json:"user_id"`
	Owner  User `gorm:"foreignKey:UserID" json:"-"`

	RoomConfigurations []RoomConfiguration `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"room_configurations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
