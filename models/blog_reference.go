package models

// BlogReference links a blog to another blog it cites. Position preserves
// the order the references were supplied in. The list is rewritten wholesale
// whenever the owning blog is updated.
type BlogReference struct {
	ID               uint `json:"id" gorm:"primaryKey"`
	BlogID           uint `json:"blogId" gorm:"not null;uniqueIndex:idx_blog_reference_pair"`
	ReferencedBlogID uint `json:"referencedBlogId" gorm:"not null;uniqueIndex:idx_blog_reference_pair"`
	Position         int  `json:"position" gorm:"not null;default:0"`

	Blog           Blog `json:"-" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	ReferencedBlog Blog `json:"-" gorm:"foreignKey:ReferencedBlogID;constraint:OnDelete:CASCADE"`
}
