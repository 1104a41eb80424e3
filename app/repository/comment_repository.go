package repository

import (
	"gorm.io/gorm"

	"github.com/notewire/notewire/app/models"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment in the database
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByIDForAuthor retrieves a comment by id scoped to its author. A match
// owned by anybody else yields gorm.ErrRecordNotFound.
func (r *commentRepository) GetByIDForAuthor(id uint, userID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByNewsID retrieves all comments of a news article in chronological order
func (r *commentRepository) GetByNewsID(newsID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Where("news_id = ?", newsID).
		Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// Update updates an existing comment in the database
func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete soft deletes a comment
func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}

// Count returns the total number of comments
func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}

// CountByNewsID returns the number of comments on a news article
func (r *commentRepository) CountByNewsID(newsID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("news_id = ?", newsID).Count(&count).Error
	return count, err
}
