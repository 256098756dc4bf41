package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fableration/site-backend/models"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

func itemsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindAll returns all events with their items in display order, newest
// event first.
func (r *EventRepo) FindAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("Items", itemsInOrder).Order("created_at DESC").Find(&events).Error
	return events, err
}

// FindByID returns an event with its ordered items, or nil when it does
// not exist.
func (r *EventRepo) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Items", itemsInOrder).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts the event and its full item list in one transaction, with
// positions recomputed from list order.
func (r *EventRepo) Create(event *models.Event, items []models.EventItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		event.Items = nil
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return insertItems(tx, event.ID, items)
	})
}

// Update saves the event and replaces its item list wholesale: delete all,
// reinsert the provided list with positions 0..n-1. There is no partial
// item update; the whole list is the unit of change.
func (r *EventRepo) Update(event *models.Event, items []models.EventItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		event.Items = nil
		if err := tx.Save(event).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventItem{}).Error; err != nil {
			return err
		}
		return insertItems(tx, event.ID, items)
	})
}

// Delete removes an event. Its items go with it via the cascading foreign
// key.
func (r *EventRepo) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

func insertItems(tx *gorm.DB, eventID uint, items []models.EventItem) error {
	for i := range items {
		item := models.EventItem{
			EventID:  eventID,
			Name:     items[i].Name,
			Content:  items[i].Content,
			IconURL:  items[i].IconURL,
			Position: i,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
