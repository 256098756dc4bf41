package models

import "time"

// Author has its own lifecycle; blogs reference it and survive its deletion
// with a nulled-out authorId.
type Author struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	AvatarURL string    `json:"avatarUrl" gorm:"type:text"`
	Bio       string    `json:"bio" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
