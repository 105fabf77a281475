package services

import (
	"errors"
	"fmt"

	"hotel-inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomConfigurationService handles incremental single-row changes to a
// hotel's configuration set, as opposed to the full-replace path in
// HotelService. Incremental changes may leave the hotel under-configured but
// must never exceed rooms_total.
type RoomConfigurationService struct {
	DB       *gorm.DB
	Catalog  *CatalogService
	Capacity *CapacityService
	Gate     *AuthorizationGate
}

func NewRoomConfigurationService(db *gorm.DB, catalog *CatalogService, capacity *CapacityService, gate *AuthorizationGate) *RoomConfigurationService {
	return &RoomConfigurationService{DB: db, Catalog: catalog, Capacity: capacity, Gate: gate}
}

// ListByHotel returns all configurations for a hotel with catalog relations
// loaded.
func (s *RoomConfigurationService) ListByHotel(hotelID uint) ([]models.RoomConfiguration, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}

	var configs []models.RoomConfiguration
	err := s.DB.
		Preload("RoomType").
		Preload("Accommodation").
		Where("hotel_id = ?", hotelID).
		Order("id").
		Find(&configs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list room configurations: %w", err)
	}
	return configs, nil
}

// GetByID returns one configuration with catalog relations loaded.
func (s *RoomConfigurationService) GetByID(id uint) (models.RoomConfiguration, error) {
	var config models.RoomConfiguration
	err := s.DB.Preload("RoomType").Preload("Accommodation").First(&config, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return config, ErrNotFound
		}
		return config, fmt.Errorf("failed to load room configuration %d: %w", id, err)
	}
	return config, nil
}

// Create adds a net-new configuration row to a hotel. The quantity
// accumulates on top of the existing aggregate and must not push it past
// rooms_total.
func (s *RoomConfigurationService) Create(hotelID uint, caller models.User, input RoomConfigurationInput) (models.RoomConfiguration, error) {
	var configID uint
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

		roomType, err := s.Catalog.ResolveRoomType(tx, input.RoomTypeID, input.RoomType)
		if err != nil {
			return err
		}
		accommodation, err := s.Catalog.ResolveAccommodation(tx, input.AccommodationID, input.Accommodation)
		if err != nil {
			return err
		}
		if err := s.Capacity.ValidateCombination(roomType.Name, accommodation.Name); err != nil {
			return err
		}
		if err := s.Capacity.ValidateNoDuplicate(tx, hotel.ID, roomType.ID, accommodation.ID, 0); err != nil {
			return err
		}

		total, err := ConfiguredRoomTotal(tx, hotel.ID, 0)
		if err != nil {
			return err
		}
		if err := s.Capacity.ValidateAdd(hotel, input.Quantity, total); err != nil {
			return err
		}

		config := models.RoomConfiguration{
			HotelID:         hotel.ID,
			RoomTypeID:      roomType.ID,
			AccommodationID: accommodation.ID,
			Quantity:        input.Quantity,
		}
		if err := tx.Omit(clause.Associations).Create(&config).Error; err != nil {
			return fmt.Errorf("failed to create room configuration: %w", err)
		}
		configID = config.ID
		return nil
	})
	if err != nil {
		return models.RoomConfiguration{}, err
	}
	return s.GetByID(configID)
}

// UpdateQuantity changes one row's quantity. The capacity check excludes the
// row's old quantity from the aggregate before adding the new one.
func (s *RoomConfigurationService) UpdateQuantity(configID uint, caller models.User, quantity uint) (models.RoomConfiguration, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var config models.RoomConfiguration
		if err := tx.First(&config, configID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room configuration %d: %w", configID, err)
		}

		var hotel models.Hotel
		if err := lockForUpdate(tx).First(&hotel, config.HotelID).Error; err != nil {
			return fmt.Errorf("failed to load hotel %d: %w", config.HotelID, err)
		}
		if err := s.Gate.AuthorizeMutation(caller, hotel); err != nil {
			return err
		}

		total, err := ConfiguredRoomTotal(tx, hotel.ID, config.ID)
		if err != nil {
			return err
		}
		if err := s.Capacity.ValidateAdd(hotel, quantity, total); err != nil {
			return err
		}

		if err := tx.Model(&config).Update("quantity", quantity).Error; err != nil {
			return fmt.Errorf("failed to update room configuration %d: %w", configID, err)
		}
		return nil
	})
	if err != nil {
		return models.RoomConfiguration{}, err
	}
	return s.GetByID(configID)
}

// Delete removes one configuration row. Removing rooms never violates the
// capacity ceiling, so only ownership is checked.
func (s *RoomConfigurationService) Delete(configID uint, caller models.User) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var config models.RoomConfiguration
		if err := tx.First(&config, configID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room configuration %d: %w", configID, err)
		}

		var hotel models.Hotel
		if err := tx.First(&hotel, config.HotelID).Error; err != nil {
			return fmt.Errorf("failed to load hotel %d: %w", config.HotelID, err)
		}
		if err := s.Gate.AuthorizeMutation(caller, hotel); err != nil {
			return err
		}

		if err := tx.Delete(&config).Error; err != nil {
			return fmt.Errorf("failed to delete room configuration %d: %w", configID, err)
		}
		return nil
	})
}
