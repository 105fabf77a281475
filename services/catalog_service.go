package services

import (
	"errors"
	"fmt"
	"strconv"

	"hotel-inventory/models"

	"gorm.io/gorm"
)

// CatalogService reads and maintains the reference catalogs: room types,
// accommodations and cities. Room configuration requests may reference
// entries either by id or by exact name; both resolve through here.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ResolveRoomType resolves a room type by id (when non-zero) or by exact
// name.
func (s *CatalogService) ResolveRoomType(tx *gorm.DB, id uint, name string) (models.RoomType, error) {
	var roomType models.RoomType
	err := resolveByIDOrName(tx, &roomType, id, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return roomType, &UnknownCatalogEntryError{Kind: "room type", Ref: refString(id, name)}
		}
		return roomType, fmt.Errorf("failed to resolve room type: %w", err)
	}
	return roomType, nil
}

// ResolveAccommodation resolves an accommodation by id (when non-zero) or by
// exact name.
func (s *CatalogService) ResolveAccommodation(tx *gorm.DB, id uint, name string) (models.Accommodation, error) {
	var accommodation models.Accommodation
	err := resolveByIDOrName(tx, &accommodation, id, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accommodation, &UnknownCatalogEntryError{Kind: "accommodation", Ref: refString(id, name)}
		}
		return accommodation, fmt.Errorf("failed to resolve accommodation: %w", err)
	}
	return accommodation, nil
}

// ResolveCity resolves a city by id (when non-zero) or by exact name.
func (s *CatalogService) ResolveCity(tx *gorm.DB, id uint, name string) (models.City, error) {
	var city models.City
	err := resolveByIDOrName(tx, &city, id, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return city, &UnknownCatalogEntryError{Kind: "city", Ref: refString(id, name)}
		}
		return city, fmt.Errorf("failed to resolve city: %w", err)
	}
	return city, nil
}

func resolveByIDOrName(tx *gorm.DB, dest interface{}, id uint, name string) error {
	if id != 0 {
		return tx.First(dest, id).Error
	}
	if name == "" {
		return gorm.ErrRecordNotFound
	}
	return tx.Where("name = ?", name).First(dest).Error
}

func refString(id uint, name string) string {
	if id != 0 {
		return strconv.FormatUint(uint64(id), 10)
	}
	return name
}

func (s *CatalogService) ListRoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("id").Find(&types).Error
	return types, err
}

func (s *CatalogService) ListAccommodations() ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	err := s.DB.Order("id").Find(&accommodations).Error
	return accommodations, err
}

func (s *CatalogService) ListCities() ([]models.City, error) {
	var cities []models.City
	err := s.DB.Order("name").Find(&cities).Error
	return cities, err
}

func (s *CatalogService) GetRoomType(id uint) (models.RoomType, error) {
	var roomType models.RoomType
	if err := s.DB.First(&roomType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return roomType, ErrNotFound
		}
		return roomType, err
	}
	return roomType, nil
}

func (s *CatalogService) GetAccommodation(id uint) (models.Accommodation, error) {
	var accommodation models.Accommodation
	if err := s.DB.First(&accommodation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accommodation, ErrNotFound
		}
		return accommodation, err
	}
	return accommodation, nil
}

func (s *CatalogService) CreateRoomType(roomType *models.RoomType) error {
	return s.DB.Create(roomType).Error
}

func (s *CatalogService) UpdateRoomType(id uint, roomType models.RoomType) (models.RoomType, error) {
	var existing models.RoomType
	if err := s.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return existing, ErrNotFound
		}
		return existing, err
	}
	if err := s.DB.Model(&existing).Updates(models.RoomType{
		Name:        roomType.Name,
		Description: roomType.Description,
	}).Error; err != nil {
		return existing, err
	}
	return existing, nil
}

func (s *CatalogService) DeleteRoomType(id uint) error {
	result := s.DB.Delete(&models.RoomType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) CreateAccommodation(accommodation *models.Accommodation) error {
	return s.DB.Create(accommodation).Error
}

func (s *CatalogService) UpdateAccommodation(id uint, accommodation models.Accommodation) (models.Accommodation, error) {
	var existing models.Accommodation
	if err := s.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return existing, ErrNotFound
		}
		return existing, err
	}
	if err := s.DB.Model(&existing).Updates(models.Accommodation{
		Name:        accommodation.Name,
		Description: accommodation.Description,
	}).Error; err != nil {
		return existing, err
	}
	return existing, nil
}

func (s *CatalogService) DeleteAccommodation(id uint) error {
	result := s.DB.Delete(&models.Accommodation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
