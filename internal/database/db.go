package database

import (
	"errors"

	"backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate auto-migrates every model. Split out so tests can run it against
// a throwaway database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.AuditLog{},
		&model.Service{},
		&model.Destination{},
		&model.Banner{},
		&model.Section{},
		&model.Page{},
		&model.ThemeConfig{},
		&model.License{},
		&model.ConciergeRequest{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.MediaFile{},
	)
}

// SeedAdmin creates the initial admin account when the users table is empty.
// No-op when credentials are not configured or a user already exists.
func SeedAdmin(db *gorm.DB, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash admin password")
	}

	admin := model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}
