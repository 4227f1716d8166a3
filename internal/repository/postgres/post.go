package postgres

import (
	"context"
	"fmt"

	"microblog/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

// Insert creates a post with a database-assigned creation timestamp so
// ordering stays server-authoritative regardless of client clocks.
func (r *PostRepository) Insert(ctx context.Context, content string, authorID int64) (model.Post, error) {
	query := `INSERT INTO posts (content, created_at, author)
			  VALUES ($1, now(), $2)
			  RETURNING id, content, created_at, author`

	var post model.Post
	err := r.db.QueryRow(ctx, query, content, authorID).Scan(
		&post.ID, &post.Content, &post.CreatedAt, &post.Author,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// ListWithAuthors returns all posts joined with author display fields,
// newest first. An empty table yields an empty slice, not nil.
func (r *PostRepository) ListWithAuthors(ctx context.Context) ([]model.PostWithAuthor, error) {
	query := `SELECT p.id, p.content, p.created_at, p.author, u.name, u.email
			  FROM posts p
			  JOIN users u ON u.id = p.author
			  ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.PostWithAuthor, 0)
	for rows.Next() {
		var p model.PostWithAuthor
		if err := rows.Scan(&p.ID, &p.Content, &p.CreatedAt, &p.Author, &p.AuthorName, &p.AuthorEmail); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read post rows: %w", err)
	}

	return posts, nil
}

// DeleteOwned removes the post only when both id and author match, in a
// single statement. Zero affected rows means the post does not exist or
// belongs to someone else; the two cases are not distinguished.
func (r *PostRepository) DeleteOwned(ctx context.Context, postID, authorID int64) error {
	query := `DELETE FROM posts WHERE id = $1 AND author = $2`

	tag, err := r.db.Exec(ctx, query, postID, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
