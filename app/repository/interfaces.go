package repository

import (
	"gorm.io/gorm"

	"github.com/notewire/notewire/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByName(name string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
	GetByProviderAccount(provider, providerUserID string) (*models.User, error)
	LinkProviderAccount(account *models.ProviderAccount) error
}

// NewsRepository defines the interface for newsroom feed operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint64) (*models.News, error)
	GetHomePage(limit int) ([]models.News, error)
	GetAll(offset, limit int) ([]models.News, error)
	Count() (int64, error)
}

// CommentRepository defines the interface for comment operations.
// Mutations resolve the comment by id scoped to its author; a non-author
// caller sees gorm.ErrRecordNotFound.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByIDForAuthor(id uint, userID uint) (*models.Comment, error)
	GetByNewsID(newsID uint64) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(comment *models.Comment) error
	Count() (int64, error)
	CountByNewsID(newsID uint64) (int64, error)
}

// NoteRepository defines the interface for owner-scoped note operations.
// Every lookup filters by owner before resolving the slug, so a foreign
// note is indistinguishable from a missing one.
type NoteRepository interface {
	Create(note *models.Note) error
	GetBySlugForOwner(slug string, userID uint) (*models.Note, error)
	ListByOwner(userID uint) ([]models.Note, error)
	Update(note *models.Note) error
	Delete(note *models.Note) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	News    NewsRepository
	Comment CommentRepository
	Note    NoteRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		News:    NewNewsRepository(db),
		Comment: NewCommentRepository(db),
		Note:    NewNoteRepository(db),
	}
}
