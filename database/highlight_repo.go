package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fableration/site-backend/models"
)

type HighlightRepo struct {
	db *gorm.DB
}

func NewHighlightRepo(db *gorm.DB) *HighlightRepo {
	return &HighlightRepo{db}
}

// FindAll returns all highlights, newest first.
func (r *HighlightRepo) FindAll() ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := r.db.Order("created_at DESC").Find(&highlights).Error
	return highlights, err
}

// FindActive returns only active highlights.
func (r *HighlightRepo) FindActive() ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := r.db.Where("active = ?", true).Order("created_at DESC").Find(&highlights).Error
	return highlights, err
}

// FindByID returns a highlight by id, or nil when it does not exist.
func (r *HighlightRepo) FindByID(id uint) (*models.Highlight, error) {
	var highlight models.Highlight
	err := r.db.First(&highlight, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &highlight, nil
}

// Add inserts a new highlight.
func (r *HighlightRepo) Add(highlight *models.Highlight) error {
	return r.db.Create(highlight).Error
}

// Update updates an existing highlight.
func (r *HighlightRepo) Update(highlight *models.Highlight) error {
	return r.db.Save(highlight).Error
}

// Delete removes a highlight.
func (r *HighlightRepo) Delete(id uint) error {
	return r.db.Delete(&models.Highlight{}, id).Error
}
