package service

import (
	"context"
	"fmt"
	"strings"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

const anonymousAuthor = "Anonymous"

type CommentService interface {
	ListComments(ctx context.Context, postID int64) ([]models.BlogComment, error)
	AddComment(ctx context.Context, postID int64, req models.CreateCommentRequest) (*models.BlogComment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (c *commentService) ListComments(ctx context.Context, postID int64) ([]models.BlogComment, error) {
	return c.commentRepo.ListByPost(ctx, postID)
}

func (c *commentService) AddComment(ctx context.Context, postID int64, req models.CreateCommentRequest) (*models.BlogComment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("comment content required: %w", ErrValidation)
	}

	name := strings.TrimSpace(req.AuthorName)
	if name == "" {
		name = strings.TrimSpace(req.Name)
	}
	if name == "" {
		name = anonymousAuthor
	}

	comment := &models.BlogComment{
		PostID:     postID,
		AuthorName: name,
		Content:    content,
	}

	if err := c.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
