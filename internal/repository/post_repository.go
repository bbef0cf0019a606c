package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"miniblog/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (title, content, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	err := r.db.GetContext(ctx, &post.ID, query,
		post.Title, post.Content, post.UserID, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE user_id = $1 ORDER BY id`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// List returns every post, or the posts whose title or content contains
// query as a substring. Pagination happens in the service layer over the
// full result.
func (r *PostRepositoryImpl) List(ctx context.Context, query string) ([]models.Post, error) {
	var posts []models.Post
	var err error

	if query != "" {
		sqlQuery := `
            SELECT * FROM posts
            WHERE title LIKE '%' || $1 || '%' OR content LIKE '%' || $1 || '%'
            ORDER BY id
        `
		err = r.db.SelectContext(ctx, &posts, sqlQuery, query)
	} else {
		err = r.db.SelectContext(ctx, &posts, `SELECT * FROM posts ORDER BY id`)
	}

	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			updated_at = :updated_at
		WHERE id = :id
	`

	post.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
