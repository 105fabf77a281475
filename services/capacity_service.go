package services

import (
	"fmt"
	"math"

	"hotel-inventory/models"

	"gorm.io/gorm"
)

// allowedAccommodations is the fixed compatibility table between room type
// names and the accommodation names valid for them.
var allowedAccommodations = map[string][]string{
	"Standard": {"Single", "Double"},
	"Junior":   {"Triple", "Quadruple"},
	"Suite":    {"Single", "Double", "Triple"},
}

// CapacityService holds the capacity-consistency rules for a hotel's room
// configurations. Two distinct rules exist on purpose: incremental changes may
// fall short of the hotel's total but never exceed it (ValidateAdd), while a
// full replace must match the total exactly (ValidateExactReplace). Callers
// pick the rule matching their flow.
type CapacityService struct{}

func NewCapacityService() *CapacityService {
	return &CapacityService{}
}

// ValidateAdd checks that adding incomingQuantity on top of the hotel's
// current aggregate (excluding the row being updated, if any) stays within the
// declared total.
func (s *CapacityService) ValidateAdd(hotel models.Hotel, incomingQuantity, existingTotal uint) error {
	// Compared by subtraction so an oversized quantity cannot wrap the
	// unsigned sum back under the limit.
	if incomingQuantity > hotel.RoomsTotal || existingTotal > hotel.RoomsTotal-incomingQuantity {
		return &CapacityExceededError{Limit: hotel.RoomsTotal}
	}
	return nil
}

// ValidateExactReplace checks that the proposed full configuration set sums
// exactly to the hotel's declared total.
func (s *CapacityService) ValidateExactReplace(hotel models.Hotel, proposed []models.RoomConfiguration) error {
	var sum uint
	for _, config := range proposed {
		// A single quantity beyond the limit can never be part of a
		// matching set. The second clause keeps the unsigned sum from
		// wrapping around.
		if config.Quantity > hotel.RoomsTotal || config.Quantity > math.MaxUint-sum {
			return &CapacityExceededError{Limit: hotel.RoomsTotal}
		}
		sum += config.Quantity
	}
	if sum != hotel.RoomsTotal {
		return &CapacityMismatchError{Expected: hotel.RoomsTotal, Actual: sum}
	}
	return nil
}

// ValidateCombination checks the (room type, accommodation) pair against the
// compatibility table.
func (s *CapacityService) ValidateCombination(roomType, accommodation string) error {
	for _, allowed := range allowedAccommodations[roomType] {
		if allowed == accommodation {
			return nil
		}
	}
	return &InvalidCombinationError{RoomType: roomType, Accommodation: accommodation}
}

// ValidateNoDuplicate checks that no other configuration row for the hotel
// uses the same (room type, accommodation) pair. excludeID skips the row being
// updated; pass 0 for a new row. Runs inside the caller's transaction.
func (s *CapacityService) ValidateNoDuplicate(tx *gorm.DB, hotelID, roomTypeID, accommodationID, excludeID uint) error {
	var count int64
	query := tx.Model(&models.RoomConfiguration{}).
		Where("hotel_id = ? AND room_type_id = ? AND accommodation_id = ?", hotelID, roomTypeID, accommodationID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for duplicate configuration: %w", err)
	}
	if count > 0 {
		return &DuplicateConfigurationError{RoomTypeID: roomTypeID, AccommodationID: accommodationID}
	}
	return nil
}

// ConfiguredRoomTotal returns the aggregate configured quantity for a hotel,
// optionally excluding one configuration row.
func ConfiguredRoomTotal(tx *gorm.DB, hotelID, excludeID uint) (uint, error) {
	var total int64
	query := tx.Model(&models.RoomConfiguration{}).Where("hotel_id = ?", hotelID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum room quantities for hotel %d: %w", hotelID, err)
	}
	return uint(total), nil
}
