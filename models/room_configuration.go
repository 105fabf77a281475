package models

import "time"

// RoomConfiguration binds a hotel to one (room type, accommodation) pair and
// the quantity of rooms of that kind. The pair is unique per hotel.
type RoomConfiguration struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID         uint `gorm:"index;uniqueIndex:idx_hotel_type_accommodation" json:"hotel_id"`
	RoomTypeID      uint `gorm:"uniqueIndex:idx_hotel_type_accommodation" json:"room_type_id"`
	AccommodationID uint `gorm:"uniqueIndex:idx_hotel_type_accommodation" json:"accommodation_id"`
	Quantity        uint `json:"quantity"`

	RoomType      RoomType      `gorm:"foreignKey:RoomTypeID" json:"room_type"`
	Accommodation Accommodation `gorm:"foreignKey:AccommodationID" json:"accommodation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
