package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"miniblog/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)
	List(ctx context.Context, query string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByPostID(ctx context.Context, postID int64) ([]models.Image, error)
	GetByImageID(ctx context.Context, imageID string) (*models.Image, error)
	Delete(ctx context.Context, imageID string) error
	DeleteByPostID(ctx context.Context, postID int64) error
}

type Repository struct {
	Post  PostRepository
	User  UserRepository
	Image ImageRepository
}

// NewRepository wires the stores: posts and images over sqlx raw SQL,
// users over GORM.
func NewRepository(db *sqlx.DB, orm *gorm.DB) *Repository {
	return &Repository{
		Post:  NewPostRepository(db),
		User:  NewUserRepository(orm),
		Image: NewImageRepository(db),
	}
}
