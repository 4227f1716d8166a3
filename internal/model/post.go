package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Insert(ctx context.Context, content string, authorID int64) (Post, error)
	ListWithAuthors(ctx context.Context) ([]PostWithAuthor, error)
	DeleteOwned(ctx context.Context, postID, authorID int64) error
}

// Post represents a stored post. Posts are immutable once created and
// created_at is always assigned by the database at insert time.
type Post struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    int64     `json:"author"`
}

// PostWithAuthor is a post joined with its author's display fields.
type PostWithAuthor struct {
	Post
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}
