package models

import "time"

// Logo is partner branding attached to blogs.
type Logo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	LogoURL   string    `json:"logoUrl" gorm:"type:text"`
	Date      string    `json:"date" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
