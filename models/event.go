package models

import "time"

// Event owns an ordered list of items. Items are only ever replaced as a
// whole list, never patched individually.
type Event struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"type:text;not null"`
	ImageURL     string    `json:"imageUrl" gorm:"type:text"`
	Summary      string    `json:"summary" gorm:"type:text"`
	Content      string    `json:"content" gorm:"type:text"`
	ExternalLink string    `json:"externalLink" gorm:"type:text"`
	Published    bool      `json:"published" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Items []EventItem `json:"items" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// EventItem positions are dense 0..n-1 within their event; the repo
// recomputes them from list order on every write.
type EventItem struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	EventID  uint   `json:"eventId" gorm:"not null;index"`
	Name     string `json:"name" gorm:"type:text"`
	Content  string `json:"content" gorm:"type:text"`
	IconURL  string `json:"iconUrl" gorm:"type:text"`
	Position int    `json:"position" gorm:"not null;default:0"`
}
