package database

import (
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fableration/site-backend/models"
)

// allModels is the canonical table set, in dependency order so foreign keys
// resolve during creation.
func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Author{},
		&models.Logo{},
		&models.Tag{},
		&models.Blog{},
		&models.BlogTag{},
		&models.BlogReference{},
		&models.Announcement{},
		&models.Event{},
		&models.EventItem{},
		&models.Highlight{},
	}
}

// EnsureSchema creates any missing tables and columns. It never drops or
// alters existing data. Failures are logged and the loop continues: an
// already-correct database must still let the process come up.
func EnsureSchema(db *gorm.DB) {
	for _, model := range allModels() {
		if err := db.AutoMigrate(model); err != nil {
			log.Error().Err(err).Msgf("ensure schema failed for %T", model)
		}
	}
}

// EnsureSeedAdmin inserts the admin account on first boot. It is a no-op
// when a user with the admin email already exists. The password is hashed
// with argon2id and never logged.
func EnsureSeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" {
		return fmt.Errorf("admin email is empty")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := db.Create(&models.User{
		Email:    email,
		Password: hash,
		Role:     "admin",
	}).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.Info().Str("email", email).Msg("Seeded admin account")
	return nil
}
