package repository

import (
	"gorm.io/gorm"

	"github.com/notewire/notewire/app/models"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news article by its ID
func (r *newsRepository) GetByID(id uint64) (*models.News, error) {
	var news models.News
	err := r.db.First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetHomePage retrieves the newest articles for the home feed, date descending.
func (r *newsRepository) GetHomePage(limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Order("date DESC").Limit(limit).Find(&news).Error
	return news, err
}

// GetAll retrieves news articles with pagination
func (r *newsRepository) GetAll(offset, limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Order("date DESC").Offset(offset).Limit(limit).Find(&news).Error
	return news, err
}

// Count returns the total number of news articles
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Count(&count).Error
	return count, err
}
