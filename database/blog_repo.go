package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fableration/site-backend/errs"
	"github.com/fableration/site-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blogs with their logo and author joined, newest first.
func (r *BlogRepo) FindAll() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Preload("Logo").Preload("Author").Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by its ID, or nil when it does not exist.
func (r *BlogRepo) FindByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Logo").Preload("Author").First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a blog by its slug, or nil when it does not exist.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Logo").Preload("Author").Where("slug = ?", slug).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// TagsFor returns the tags associated with a blog.
func (r *BlogRepo) TagsFor(blogID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.
		Joins("JOIN blog_tags ON blog_tags.tag_id = tags.id").
		Where("blog_tags.blog_id = ?", blogID).
		Order("tags.name ASC").
		Find(&tags).Error
	return tags, err
}

// References returns the published blogs this blog cites, in reference order.
func (r *BlogRepo) References(blogID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.
		Joins("JOIN blog_references ON blog_references.referenced_blog_id = blogs.id").
		Where("blog_references.blog_id = ? AND blogs.published = ?", blogID, true).
		Order("blog_references.position ASC").
		Find(&blogs).Error
	return blogs, err
}

// UniqueSlug resolves a candidate slug against existing rows, appending -1,
// -2, ... until an unused value is found. excludeID is the row being
// updated, or zero for a new row. The check re-queries the database on
// every iteration; the unique index remains the authoritative arbiter for
// writers racing between check and insert.
func (r *BlogRepo) UniqueSlug(candidate string, excludeID uint) (string, error) {
	current := candidate
	for i := 1; ; i++ {
		query := r.db.Model(&models.Blog{}).Where("slug = ?", current)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return current, nil
		}

		current = fmt.Sprintf("%s-%d", candidate, i)
	}
}

// Create inserts the blog together with its tag and reference associations
// in one transaction, so a crash can never leave a half-written aggregate.
func (r *BlogRepo) Create(blog *models.Blog, tagIDs, refIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.writeWithSlugRetry(tx, blog, func() error {
			return tx.Create(blog).Error
		}); err != nil {
			return err
		}
		if err := replaceTags(tx, blog.ID, tagIDs); err != nil {
			return err
		}
		return replaceReferences(tx, blog.ID, refIDs)
	})
}

// Update saves the blog and rewrites its tag and reference associations
// wholesale, all in one transaction.
func (r *BlogRepo) Update(blog *models.Blog, tagIDs, refIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.writeWithSlugRetry(tx, blog, func() error {
			return tx.Save(blog).Error
		}); err != nil {
			return err
		}
		if err := replaceTags(tx, blog.ID, tagIDs); err != nil {
			return err
		}
		return replaceReferences(tx, blog.ID, refIDs)
	})
}

// Delete removes a blog by id. Dependent blog_tags and blog_references rows
// go with it via cascading foreign keys; the tags themselves are untouched.
func (r *BlogRepo) Delete(id uint) error {
	return r.db.Delete(&models.Blog{}, id).Error
}

// writeWithSlugRetry runs the write and, when it fails on the slug unique
// index, re-resolves the slug against committed rows and tries again. The
// pre-check in UniqueSlug is only an optimization; this is what settles a
// race between concurrent writers over the same base slug.
func (r *BlogRepo) writeWithSlugRetry(tx *gorm.DB, blog *models.Blog, write func() error) error {
	for {
		err := write()
		if err == nil {
			return nil
		}
		if !errs.IsUniqueViolation(err, "blogs.slug") {
			return err
		}

		next, rerr := (&BlogRepo{tx}).UniqueSlug(blog.Slug, blog.ID)
		if rerr != nil {
			return rerr
		}
		if next == blog.Slug {
			// The conflicting row is not visible to us; surface the
			// constraint error rather than spin.
			return err
		}
		blog.Slug = next
	}
}

// replaceTags rewrites the blog's tag set: delete all, reinsert the given
// ids. Input is deduplicated and filtered to positive ids before insertion
// so duplicate request payloads cannot trip the unique pair index.
func replaceTags(tx *gorm.DB, blogID uint, tagIDs []uint) error {
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.BlogTag{}).Error; err != nil {
		return err
	}

	for _, tagID := range dedupePositive(tagIDs) {
		if err := tx.Create(&models.BlogTag{BlogID: blogID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// replaceReferences rewrites the blog's reference list with positions
// recomputed from input order.
func replaceReferences(tx *gorm.DB, blogID uint, refIDs []uint) error {
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.BlogReference{}).Error; err != nil {
		return err
	}

	for i, refID := range dedupePositive(refIDs) {
		ref := models.BlogReference{BlogID: blogID, ReferencedBlogID: refID, Position: i}
		if err := tx.Create(&ref).Error; err != nil {
			return err
		}
	}
	return nil
}

// dedupePositive drops non-positive ids and duplicates, preserving first
// occurrence order.
func dedupePositive(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
