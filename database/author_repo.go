package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fableration/site-backend/models"
)

type AuthorRepo struct {
	db *gorm.DB
}

func NewAuthorRepo(db *gorm.DB) *AuthorRepo {
	return &AuthorRepo{db}
}

// FindAll returns all authors ordered by name.
func (r *AuthorRepo) FindAll() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}

// FindByID returns an author by id, or nil when it does not exist.
func (r *AuthorRepo) FindByID(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Add inserts a new author.
func (r *AuthorRepo) Add(author *models.Author) error {
	return r.db.Create(author).Error
}

// Update updates an existing author.
func (r *AuthorRepo) Update(author *models.Author) error {
	return r.db.Save(author).Error
}

// Delete removes an author. Blogs referencing it keep running with a
// nulled-out author_id via ON DELETE SET NULL.
func (r *AuthorRepo) Delete(id uint) error {
	return r.db.Delete(&models.Author{}, id).Error
}
