package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fableration/site-backend/models"
)

type LogoRepo struct {
	db *gorm.DB
}

func NewLogoRepo(db *gorm.DB) *LogoRepo {
	return &LogoRepo{db}
}

// FindAll returns all logos, newest first.
func (r *LogoRepo) FindAll() ([]models.Logo, error) {
	var logos []models.Logo
	err := r.db.Order("created_at DESC").Find(&logos).Error
	return logos, err
}

// FindByID returns a logo by id, or nil when it does not exist.
func (r *LogoRepo) FindByID(id uint) (*models.Logo, error) {
	var logo models.Logo
	err := r.db.First(&logo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

// Add inserts a new logo.
func (r *LogoRepo) Add(logo *models.Logo) error {
	return r.db.Create(logo).Error
}

// Update updates an existing logo.
func (r *LogoRepo) Update(logo *models.Logo) error {
	return r.db.Save(logo).Error
}

// Delete removes a logo. Blogs referencing it fall back to a null logo_id.
func (r *LogoRepo) Delete(id uint) error {
	return r.db.Delete(&models.Logo{}, id).Error
}
