package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"loveuadAdmin/internal/models"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts
		(title, slug, content, excerpt, meta_description, keywords, author, featured_image, status, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	err := r.DB.GetContext(ctx, &post.ID, query,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.MetaDescription,
		post.Keywords,
		post.Author,
		post.FeaturedImage,
		post.Status,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return fmt.Errorf("slug %q already in use: %w", post.Slug, ErrConflict)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.BlogPost, error) {
	query := `SELECT * FROM blog_posts WHERE id = $1`

	var post models.BlogPost
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT * FROM blog_posts WHERE slug = $1 AND status = 'published'`

	var post models.BlogPost
	err := r.DB.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return &post, nil
}

// SlugExists reports whether another post already owns slug.
// excludeID is ignored when zero.
func (r *PostRepositoryImpl) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := r.DB.GetContext(ctx, &exists, query, slug, excludeID); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}

	return exists, nil
}

func (r *PostRepositoryImpl) ListAll(ctx context.Context) ([]models.BlogPostSummary, error) {
	query := `
		SELECT id, title, slug, excerpt, author, status, published_at, created_at
		FROM blog_posts
		ORDER BY created_at DESC
	`

	posts := []models.BlogPostSummary{}
	if err := r.DB.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListPublished(ctx context.Context, limit, offset int) ([]models.BlogPostSummary, error) {
	query := `
		SELECT id, title, slug, excerpt, author, featured_image, published_at, updated_at
		FROM blog_posts
		WHERE status = 'published'
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`

	posts := []models.BlogPostSummary{}
	if err := r.DB.SelectContext(ctx, &posts, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountPublished(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM blog_posts WHERE status = 'published'`); err != nil {
		return 0, fmt.Errorf("failed to count published posts: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts SET
			title = $1,
			slug = $2,
			content = $3,
			excerpt = $4,
			meta_description = $5,
			keywords = $6,
			featured_image = $7,
			status = $8,
			published_at = $9,
			updated_at = $10
		WHERE id = $11
	`

	post.UpdatedAt = time.Now()

	result, err := r.DB.ExecContext(ctx, query,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.MetaDescription,
		post.Keywords,
		post.FeaturedImage,
		post.Status,
		post.PublishedAt,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return fmt.Errorf("slug %q already in use: %w", post.Slug, ErrConflict)
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", post.ID, ErrNotFound)
	}

	return nil
}

// Delete removes the post; comments go with it through ON DELETE CASCADE.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	return nil
}
