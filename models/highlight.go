package models

import "time"

// Highlight types.
const (
	HighlightTypeImage = "image"
	HighlightTypeVideo = "video"
)

// Highlight is a featured media card on the landing page.
type Highlight struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	ImageURL  string    `json:"imageUrl" gorm:"type:text"`
	URL       string    `json:"url" gorm:"type:text"`
	Type      string    `json:"type" gorm:"type:text;not null;default:image"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
