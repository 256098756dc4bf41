package models

// BlogTag links a blog to a tag. The pair is unique and both sides cascade,
// so deleting either the blog or the tag removes the link.
type BlogTag struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	BlogID uint `json:"blogId" gorm:"not null;uniqueIndex:idx_blog_tag_pair"`
	TagID  uint `json:"tagId" gorm:"not null;uniqueIndex:idx_blog_tag_pair"`

	Blog Blog `json:"-" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	Tag  Tag  `json:"-" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
