package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fableration/site-backend/models"
)

type AnnouncementRepo struct {
	db *gorm.DB
}

func NewAnnouncementRepo(db *gorm.DB) *AnnouncementRepo {
	return &AnnouncementRepo{db}
}

// FindAll returns all announcements, newest first.
func (r *AnnouncementRepo) FindAll() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

// FindActive returns announcements that are active and not yet expired as
// of now. Expiry is evaluated here at query time; nothing ever flips the
// active flag on expired rows.
func (r *AnnouncementRepo) FindActive(now time.Time) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.
		Where("active = ? AND (expires_at IS NULL OR expires_at > ?)", true, now).
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

// FindByID returns an announcement by id, or nil when it does not exist.
func (r *AnnouncementRepo) FindByID(id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.First(&announcement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Add inserts a new announcement.
func (r *AnnouncementRepo) Add(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// Update updates an existing announcement.
func (r *AnnouncementRepo) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// Delete removes an announcement.
func (r *AnnouncementRepo) Delete(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}
