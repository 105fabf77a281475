package services

import (
	"errors"
	"fmt"

	"hotel-inventory/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type UserPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

type UserService struct {
	DB   *gorm.DB
	Gate *AuthorizationGate
}

func NewUserService(db *gorm.DB, gate *AuthorizationGate) *UserService {
	return &UserService{DB: db, Gate: gate}
}

// Register creates a user with a bcrypt-hashed password. New users always get
// the "user" role; elevation goes through AssignRole.
func (s *UserService) Register(input RegisterInput) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var role models.Role
	if err := s.DB.Where("name = ?", models.RoleUser).First(&role).Error; err != nil {
		return models.User{}, fmt.Errorf("failed to load default role: %w", err)
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		RoleID:    role.ID,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	user.Role = role
	return user, nil
}

// Authenticate verifies email and password and returns the user with its role
// loaded.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	var user models.User
	if err := s.DB.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.DB.Preload("Role").Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.Preload("Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrNotFound
		}
		return user, err
	}
	return user, nil
}

// Update patches a user's own fields. Users edit themselves; admins edit
// anyone.
func (s *UserService) Update(targetID uint, caller models.User, patch UserPatch) (models.User, error) {
	user, err := s.GetByID(targetID)
	if err != nil {
		return models.User{}, err
	}
	if caller.ID != user.ID && !caller.IsAdmin() {
		return models.User{}, ErrForbidden
	}

	updates := map[string]interface{}{}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return models.User{}, err
		}
	}
	return s.GetByID(user.ID)
}

// AssignRole sets a user's role after the role-change gate passes: no
// self-service changes, and only admins may grant admin.
func (s *UserService) AssignRole(caller models.User, targetID, roleID uint) (models.User, error) {
	target, err := s.GetByID(targetID)
	if err != nil {
		return models.User{}, err
	}

	var role models.Role
	if err := s.DB.First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to load role %d: %w", roleID, err)
	}

	if err := s.Gate.AuthorizeRoleChange(caller, target, role); err != nil {
		return models.User{}, err
	}

	if err := s.DB.Model(&models.User{}).Where("id = ?", target.ID).Update("role_id", role.ID).Error; err != nil {
		return models.User{}, err
	}
	return s.GetByID(target.ID)
}

// Delete removes a user. Users still owning hotels cannot be deleted; their
// hotels must be deleted or reassigned first.
func (s *UserService) Delete(targetID uint, caller models.User) error {
	user, err := s.GetByID(targetID)
	if err != nil {
		return err
	}
	if caller.ID != user.ID && !caller.IsAdmin() {
		return ErrForbidden
	}

	var hotelCount int64
	if err := s.DB.Model(&models.Hotel{}).Where("user_id = ?", user.ID).Count(&hotelCount).Error; err != nil {
		return fmt.Errorf("failed to count hotels for user %d: %w", user.ID, err)
	}
	if hotelCount > 0 {
		return ErrUserHasHotels
	}

	return s.DB.Delete(&models.User{}, user.ID).Error
}
