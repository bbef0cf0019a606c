package models

import (
	"time"
)

type User struct {
	ID           int64     `db:"id" gorm:"column:id;primaryKey"`
	Username     string    `db:"username" gorm:"column:username"`
	Email        string    `db:"email" gorm:"column:email"`
	PasswordHash string    `db:"password_hash" gorm:"column:password_hash"`
	CreatedAt    time.Time `db:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `db:"updated_at" gorm:"column:updated_at"`
}

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Images    []Image   `db:"-"`
}

type Image struct {
	ImageID   string    `db:"image_id"`
	PostID    int64     `db:"post_id"`
	ImageURL  string    `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
}

// PostPage is what the index handler renders: one page of posts plus
// the numbers the pagination links need.
type PostPage struct {
	Posts     []Post
	Page      int
	PageCount int
	Query     string
}
