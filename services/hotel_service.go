package services

import (
	"errors"
	"fmt"

	"hotel-inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HotelInput carries the hotel fields for creation. The city may be given by
// id or by exact name.
type HotelInput struct {
	Name       string `json:"name" binding:"required,max=150"`
	Address    string `json:"address" binding:"required,max=255"`
	TaxID      string `json:"tax_id" binding:"required,min=5,max=50"`
	RoomsTotal uint   `json:"rooms_total" binding:"required,min=1"`
	CityID     uint   `json:"city_id"`
	City       string `json:"city"`
}

// HotelPatch carries optional scalar updates for a hotel. Nil fields are left
// untouched.
type HotelPatch struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	TaxID      *string `json:"tax_id"`
	RoomsTotal *uint   `json:"rooms_total"`
	CityID     *uint   `json:"city_id"`
}

// RoomConfigurationInput references a room type and an accommodation either by
// id or by exact name, plus the quantity of rooms of that kind.
type RoomConfigurationInput struct {
	RoomTypeID      uint   `json:"room_type_id"`
	RoomType        string `json:"room_type"`
	AccommodationID uint   `json:"accommodation_id"`
	Accommodation   string `json:"accommodation"`
	Quantity        uint   `json:"quantity" binding:"required,min=1"`
}

// HotelService orchestrates catalog resolution, the capacity rules and
// repository writes into atomic hotel lifecycle operations.
type HotelService struct {
	DB       *gorm.DB
	Catalog  *CatalogService
	Capacity *CapacityService
	Gate     *AuthorizationGate
}

func NewHotelService(db *gorm.DB, catalog *CatalogService, capacity *CapacityService, gate *AuthorizationGate) *HotelService {
	return &HotelService{DB: db, Catalog: catalog, Capacity: capacity, Gate: gate}
}

// lockForUpdate takes a row lock so the read-sum-then-write sequence is atomic
// relative to other writers. SQLite serializes writers with a database-level
// lock and rejects FOR UPDATE, so the clause is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// GetAll lists hotels, optionally filtered by a name substring.
func (s *HotelService) GetAll(name string) ([]models.Hotel, error) {
	var hotels []models.Hotel
	query := s.DB.
		Preload("City").
		Preload("RoomConfigurations.RoomType").
		Preload("RoomConfigurations.Accommodation")
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if err := query.Order("id").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// GetByID returns a hotel with its city and room configurations loaded.
func (s *HotelService) GetByID(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.
		Preload("City").
		Preload("RoomConfigurations.RoomType").
		Preload("RoomConfigurations.Accommodation").
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel, ErrNotFound
		}
		return hotel, fmt.Errorf("failed to load hotel %d: %w", id, err)
	}
	return hotel, nil
}

// Create persists a hotel together with its complete initial configuration
// set in one transaction. Creation supplies the full target state, so the
// configured quantities must sum exactly to rooms_total; on any failure
// nothing is persisted.
func (s *HotelService) Create(caller models.User, input HotelInput, configInputs []RoomConfigurationInput) (models.Hotel, error) {
	var hotelID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		city, err := s.Catalog.ResolveCity(tx, input.CityID, input.City)
		if err != nil {
			return err
		}

		hotel := models.Hotel{
			Name:       input.Name,
			Address:    input.Address,
			TaxID:      input.TaxID,
			RoomsTotal: input.RoomsTotal,
			CityID:     city.ID,
			UserID:     caller.ID,
		}

		rows, err := s.resolveConfigurations(tx, configInputs)
		if err != nil {
			return err
		}
		if err := s.Capacity.ValidateExactReplace(hotel, rows); err != nil {
			return err
		}

		if err := tx.Create(&hotel).Error; err != nil {
			return fmt.Errorf("failed to create hotel: %w", err)
		}
		for i := range rows {
			rows[i].HotelID = hotel.ID
		}
		if len(rows) > 0 {
			if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to create room configurations: %w", err)
			}
		}

		hotelID = hotel.ID
		return nil
	})
	if err != nil {
		return models.Hotel{}, err
	}
	return s.GetByID(hotelID)
}

// Update patches a hotel's scalar fields and, when configInputs is non-nil,
// replaces its entire configuration set. The replace is all-or-nothing: the
// prior set is only gone once the new set validated and persisted, otherwise
// the transaction rolls back. Without a replace, shrinking rooms_total below
// the currently configured sum is rejected.
func (s *HotelService) Update(hotelID uint, caller models.User, patch HotelPatch, configInputs *[]RoomConfigurationInput) (models.Hotel, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := lockForUpdate(tx).First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
		}
		if err := s.Gate.AuthorizeMutation(caller, hotel); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if patch.Name != nil {
			hotel.Name = *patch.Name
			updates["name"] = *patch.Name
		}
		if patch.Address != nil {
			hotel.Address = *patch.Address
			updates["address"] = *patch.Address
		}
		if patch.TaxID != nil {
			hotel.TaxID = *patch.TaxID
			updates["tax_id"] = *patch.TaxID
		}
		if patch.RoomsTotal != nil {
			hotel.RoomsTotal = *patch.RoomsTotal
			updates["rooms_total"] = *patch.RoomsTotal
		}
		if patch.CityID != nil {
			city, err := s.Catalog.ResolveCity(tx, *patch.CityID, "")
			if err != nil {
				return err
			}
			hotel.CityID = city.ID
			updates["city_id"] = city.ID
		}

		if configInputs != nil {
			if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&models.RoomConfiguration{}).Error; err != nil {
				return fmt.Errorf("failed to clear room configurations: %w", err)
			}
			rows, err := s.resolveConfigurations(tx, *configInputs)
			if err != nil {
				return err
			}
			if err := s.Capacity.ValidateExactReplace(hotel, rows); err != nil {
				return err
			}
			for i := range rows {
				rows[i].HotelID = hotel.ID
			}
			if len(rows) > 0 {
				if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
					return fmt.Errorf("failed to create room configurations: %w", err)
				}
			}
		} else if patch.RoomsTotal != nil {
			total, err := ConfiguredRoomTotal(tx, hotel.ID, 0)
			if err != nil {
				return err
			}
			if total > hotel.RoomsTotal {
				return &CapacityMismatchError{Expected: hotel.RoomsTotal, Actual: total}
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update hotel %d: %w", hotel.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return models.Hotel{}, err
	}
	return s.GetByID(hotelID)
}

// Delete removes a hotel and all its room configurations. Only the owner or
// an admin may delete.
func (s *HotelService) Delete(hotelID uint, caller models.User) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := lockForUpdate(tx).First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
		}
		if err := s.Gate.AuthorizeMutation(caller, hotel); err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&models.RoomConfiguration{}).Error; err != nil {
			return fmt.Errorf("failed to delete room configurations: %w", err)
		}
		if err := tx.Delete(&hotel).Error; err != nil {
			return fmt.Errorf("failed to delete hotel %d: %w", hotel.ID, err)
		}
		return nil
	})
}

// resolveConfigurations turns request rows into persistable rows: each room
// type and accommodation reference (id or name) is resolved through the
// catalog, the combination rule is checked, and duplicates within the batch
// are rejected. The batch always targets an empty configuration set (fresh
// hotel or post-clear replace), so no database duplicate check is needed here.
func (s *HotelService) resolveConfigurations(tx *gorm.DB, inputs []RoomConfigurationInput) ([]models.RoomConfiguration, error) {
	type pair struct{ roomTypeID, accommodationID uint }
	seen := map[pair]bool{}

	rows := make([]models.RoomConfiguration, 0, len(inputs))
	for _, input := range inputs {
		roomType, err := s.Catalog.ResolveRoomType(tx, input.RoomTypeID, input.RoomType)
		if err != nil {
			return nil, err
		}
		accommodation, err := s.Catalog.ResolveAccommodation(tx, input.AccommodationID, input.Accommodation)
		if err != nil {
			return nil, err
		}
		if err := s.Capacity.ValidateCombination(roomType.Name, accommodation.Name); err != nil {
			return nil, err
		}

		key := pair{roomType.ID, accommodation.ID}
		if seen[key] {
			return nil, &DuplicateConfigurationError{RoomTypeID: roomType.ID, AccommodationID: accommodation.ID}
		}
		seen[key] = true

		rows = append(rows, models.RoomConfiguration{
			RoomTypeID:      roomType.ID,
			AccommodationID: accommodation.ID,
			Quantity:        input.Quantity,
			RoomType:        roomType,
			Accommodation:   accommodation,
		})
	}
	return rows, nil
}
