package models

import "time"

// Tag is a label shared across blogs via the blog_tags junction.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Color     string    `json:"color" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
