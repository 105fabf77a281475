package services

import (
	"errors"

	"hotel-inventory/models"

	"gorm.io/gorm"
)

type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

func (s *RoleService) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := s.DB.Order("id").Find(&roles).Error
	return roles, err
}

func (s *RoleService) GetByID(id uint) (models.Role, error) {
	var role models.Role
	if err := s.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return role, ErrNotFound
		}
		return role, err
	}
	return role, nil
}

func (s *RoleService) Create(role *models.Role) error {
	return s.DB.Create(role).Error
}
