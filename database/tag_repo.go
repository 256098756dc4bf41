package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fableration/site-backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags ordered by name.
func (r *TagRepo) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByID returns a tag by id, or nil when it does not exist.
func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add inserts a new tag.
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Update updates an existing tag.
func (r *TagRepo) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete removes a tag. Links in blog_tags go with it via the cascading
// foreign key.
func (r *TagRepo) Delete(id uint) error {
	return r.db.Delete(&models.Tag{}, id).Error
}
