package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-inventory/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_inventory")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate creates the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.City{},
		&models.RoomType{},
		&models.Accommodation{},
		&models.Hotel{},
		&models.RoomConfiguration{},
	)
}

func mustAbilities(abilities ...string) datatypes.JSON {
	data, err := json.Marshal(abilities)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(data)
}

// SeedDatabase ensures the reference catalogs, the two base roles and a
// default admin account exist. Safe to run on every boot.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Roles ----------------
	var adminRole, userRole models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		adminRole = models.Role{
			Name:        models.RoleAdmin,
			Description: "Full access to hotels, catalogs, users and roles",
			Abilities: mustAbilities(
				"hotels.manage_any",
				"catalogs.manage",
				"users.manage",
				"users.assign_role",
			),
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("warning: failed to create admin role: %v", err)
		}
	}
	if err := db.Where("name = ?", models.RoleUser).First(&userRole).Error; err != nil {
		userRole = models.Role{
			Name:        models.RoleUser,
			Description: "Manages only the hotels it owns",
			Abilities:   mustAbilities("hotels.manage_own"),
		}
		if err := db.Create(&userRole).Error; err != nil {
			log.Printf("warning: failed to create user role: %v", err)
		}
	}

	// ---------------- Default admin ----------------
	var adminCount int64
	db.Model(&models.User{}).Where("role_id = ?", adminRole.ID).Count(&adminCount)
	if adminCount == 0 {
		email := envOrDefault("ADMIN_EMAIL", "admin@hotel.local")
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FirstName: "Admin",
				LastName:  "User",
				Email:     email,
				Password:  string(hash),
				RoleID:    adminRole.ID,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", Description: "Standard room"},
			{Name: "Junior", Description: "Junior room"},
			{Name: "Suite", Description: "Suite room"},
		}
		db.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}

	// ---------------- Accommodations ----------------
	var accCount int64
	db.Model(&models.Accommodation{}).Count(&accCount)
	if accCount == 0 {
		accommodations := []models.Accommodation{
			{Name: "Single", Description: "Sized for one guest"},
			{Name: "Double", Description: "Sized for two guests"},
			{Name: "Triple", Description: "Sized for three guests"},
			{Name: "Quadruple", Description: "Sized for four guests"},
		}
		db.Create(&accommodations)
		log.Println("Accommodations seeded")
	}

	// ---------------- Cities ----------------
	var cityCount int64
	db.Model(&models.City{}).Count(&cityCount)
	if cityCount == 0 {
		cities := []models.City{
			{Name: "Cartagena", Country: "Colombia"},
			{Name: "Bogota", Country: "Colombia"},
			{Name: "Medellin", Country: "Colombia"},
			{Name: "Armenia", Country: "Colombia"},
		}
		db.Create(&cities)
		log.Println("Cities seeded")
	}
}
