package models

import "time"

// Announcement is a site banner. Expiry is a read-time filter: an expired row
// keeps active=true and simply stops appearing in the active listing.
type Announcement struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"type:text;not null"`
	Message   string     `json:"message" gorm:"type:text"`
	URL       string     `json:"url" gorm:"type:text"`
	Active    bool       `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt"`
}
