package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"loveuadAdmin/internal/models"
)

type CommentRepositoryImpl struct {
	DB *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{DB: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.BlogComment) error {
	query := `
		INSERT INTO blog_comments (post_id, author_name, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	comment.CreatedAt = time.Now()

	err := r.DB.GetContext(ctx, &comment.ID, query, comment.PostID, comment.AuthorName, comment.Content, comment.CreatedAt)
	if err != nil {
		if isPQCode(err, pqForeignKeyViolation) {
			return fmt.Errorf("post %d: %w", comment.PostID, ErrNotFound)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) ListByPost(ctx context.Context, postID int64) ([]models.BlogComment, error) {
	query := `
		SELECT id, post_id, author_name, content, created_at
		FROM blog_comments
		WHERE post_id = $1
		ORDER BY created_at DESC
	`

	comments := []models.BlogComment{}
	if err := r.DB.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
