package models

import (
	"time"

	"gorm.io/gorm"
)

// News represents an article on the public newsroom feed. Articles carry no
// owner; they are seeded through the repository and immutable on the web
// surface.
type News struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Text      string         `gorm:"type:text" json:"text" validate:"required"`
	Date      time.Time      `gorm:"type:date;index" json:"date"`
	ViewCount uint64         `gorm:"default:0" json:"view_count"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

// BeforeCreate defaults the publication date to the creation day.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.Date.IsZero() {
		n.Date = time.Now().Truncate(24 * time.Hour)
	}
	return nil
}
