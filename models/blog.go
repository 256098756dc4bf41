package models

import "time"

// Blog is a published article. The slug is derived from the title and is
// unique across all blogs; the unique index on it is the authoritative
// arbiter when two writers race on the same title.
type Blog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"type:text"`
	Slug         string    `json:"slug" gorm:"type:text;uniqueIndex:idx_blogs_slug"`
	Content      string    `json:"content" gorm:"type:text"`
	Summary      string    `json:"summary" gorm:"type:text"`
	Category     string    `json:"category" gorm:"type:text"`
	ImageURL     string    `json:"imageUrl" gorm:"type:text"`
	CoverImage   string    `json:"coverImage" gorm:"type:text"`
	ExternalLink string    `json:"externalLink" gorm:"type:text"`
	LogoID       *uint     `json:"logoId"`
	AuthorID     *uint     `json:"authorId"`
	Published    bool      `json:"published" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Logo   *Logo   `json:"logo,omitempty" gorm:"foreignKey:LogoID;constraint:OnDelete:SET NULL"`
	Author *Author `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}
