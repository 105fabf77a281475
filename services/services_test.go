package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"hotel-inventory/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.City{},
		&models.RoomType{},
		&models.Accommodation{},
		&models.Hotel{},
		&models.RoomConfiguration{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// fixture seeds the catalogs, both roles and three users: an owner, an admin
// and an unrelated user.
type fixture struct {
	db  *gorm.DB
	seq int

	adminRole models.Role
	userRole  models.Role

	owner models.User
	admin models.User
	other models.User

	standard models.RoomType
	junior   models.RoomType
	suite    models.RoomType

	single    models.Accommodation
	double    models.Accommodation
	triple    models.Accommodation
	quadruple models.Accommodation

	cartagena models.City
	bogota    models.City
}

func mustJSON(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return datatypes.JSON(data)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)
	f := &fixture{db: db}

	f.adminRole = models.Role{Name: models.RoleAdmin, Abilities: mustJSON(t, []string{"hotels.manage_any"})}
	f.userRole = models.Role{Name: models.RoleUser, Abilities: mustJSON(t, []string{"hotels.manage_own"})}
	if err := db.Create(&f.adminRole).Error; err != nil {
		t.Fatalf("seed admin role: %v", err)
	}
	if err := db.Create(&f.userRole).Error; err != nil {
		t.Fatalf("seed user role: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	f.owner = models.User{FirstName: "Olga", LastName: "Owner", Email: "owner@example.com", Password: string(hash), RoleID: f.userRole.ID, Role: f.userRole}
	f.admin = models.User{FirstName: "Ada", LastName: "Admin", Email: "admin@example.com", Password: string(hash), RoleID: f.adminRole.ID, Role: f.adminRole}
	f.other = models.User{FirstName: "Omar", LastName: "Other", Email: "other@example.com", Password: string(hash), RoleID: f.userRole.ID, Role: f.userRole}
	for _, u := range []*models.User{&f.owner, &f.admin, &f.other} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	f.standard = models.RoomType{Name: "Standard"}
	f.junior = models.RoomType{Name: "Junior"}
	f.suite = models.RoomType{Name: "Suite"}
	for _, rt := range []*models.RoomType{&f.standard, &f.junior, &f.suite} {
		if err := db.Create(rt).Error; err != nil {
			t.Fatalf("seed room type: %v", err)
		}
	}

	f.single = models.Accommodation{Name: "Single"}
	f.double = models.Accommodation{Name: "Double"}
	f.triple = models.Accommodation{Name: "Triple"}
	f.quadruple = models.Accommodation{Name: "Quadruple"}
	for _, a := range []*models.Accommodation{&f.single, &f.double, &f.triple, &f.quadruple} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed accommodation: %v", err)
		}
	}

	f.cartagena = models.City{Name: "Cartagena", Country: "Colombia"}
	f.bogota = models.City{Name: "Bogota", Country: "Colombia"}
	for _, city := range []*models.City{&f.cartagena, &f.bogota} {
		if err := db.Create(city).Error; err != nil {
			t.Fatalf("seed city: %v", err)
		}
	}

	return f
}

func (f *fixture) hotelService() *HotelService {
	return NewHotelService(f.db, NewCatalogService(f.db), NewCapacityService(), NewAuthorizationGate())
}

func (f *fixture) roomConfigService() *RoomConfigurationService {
	return NewRoomConfigurationService(f.db, NewCatalogService(f.db), NewCapacityService(), NewAuthorizationGate())
}

func (f *fixture) userService() *UserService {
	return NewUserService(f.db, NewAuthorizationGate())
}

// createHotel persists a hotel row directly, bypassing the service, for tests
// that need a starting state.
func (f *fixture) createHotel(t *testing.T, owner models.User, roomsTotal uint) models.Hotel {
	t.Helper()
	f.seq++
	hotel := models.Hotel{
		Name:       fmt.Sprintf("Decameron Cartagena %d", f.seq),
		Address:    "Calle 70 No. 1-25",
		TaxID:      fmt.Sprintf("900123456-%d", f.seq),
		RoomsTotal: roomsTotal,
		CityID:     f.cartagena.ID,
		UserID:     owner.ID,
	}
	if err := f.db.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	return hotel
}

func (f *fixture) configuredSum(t *testing.T, hotelID uint) uint {
	t.Helper()
	total, err := ConfiguredRoomTotal(f.db, hotelID, 0)
	if err != nil {
		t.Fatalf("sum quantities: %v", err)
	}
	return total
}
