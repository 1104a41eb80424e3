package repository

import (
	"gorm.io/gorm"

	"github.com/notewire/notewire/app/models"
)

// noteRepository implements the NoteRepository interface
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create creates a new note in the database
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetBySlugForOwner retrieves a note by slug scoped to its owner. A note
// owned by anybody else yields gorm.ErrRecordNotFound.
func (r *noteRepository) GetBySlugForOwner(slug string, userID uint) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("slug = ? AND user_id = ?", slug, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByOwner retrieves all notes belonging to a user, title ascending
func (r *noteRepository) ListByOwner(userID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("user_id = ?", userID).Order("title ASC").Find(&notes).Error
	return notes, err
}

// Update updates an existing note in the database
func (r *noteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete soft deletes a note
func (r *noteRepository) Delete(note *models.Note) error {
	return r.db.Delete(note).Error
}

// Count returns the total number of notes
func (r *noteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *noteRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *noteRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
