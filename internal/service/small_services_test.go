package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

func TestAuditTrailLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "default", requested: 0, want: DefaultAuditLimit},
		{name: "negative", requested: -3, want: DefaultAuditLimit},
		{name: "within range", requested: 25, want: 25},
		{name: "clamped", requested: 5000, want: MaxAuditLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockAuditRepository)
			repo.On("List", mock.Anything, "hash", tt.want).Return([]models.AiAuditLogEntry{}, nil)

			_, err := NewAuditService(repo).Trail(context.Background(), "hash", tt.requested)

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestAddComment(t *testing.T) {
	t.Run("blank name becomes Anonymous", func(t *testing.T) {
		repo := new(mockCommentRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.BlogComment) bool {
			return c.AuthorName == "Anonymous" && c.Content == "Thank you" && c.PostID == 3
		})).Return(nil)

		comment, err := NewCommentService(repo).AddComment(context.Background(), 3, models.CreateCommentRequest{
			AuthorName: "  ",
			Content:    " Thank you ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Anonymous", comment.AuthorName)
		repo.AssertExpectations(t)
	})

	t.Run("name is accepted for the author", func(t *testing.T) {
		repo := new(mockCommentRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.BlogComment) bool {
			return c.AuthorName == "Maria"
		})).Return(nil)

		comment, err := NewCommentService(repo).AddComment(context.Background(), 3, models.CreateCommentRequest{
			Name:    " Maria ",
			Content: "Thank you",
		})

		require.NoError(t, err)
		assert.Equal(t, "Maria", comment.AuthorName)
	})

	t.Run("author_name wins over name", func(t *testing.T) {
		repo := new(mockCommentRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		comment, err := NewCommentService(repo).AddComment(context.Background(), 3, models.CreateCommentRequest{
			AuthorName: "Ann",
			Name:       "Maria",
			Content:    "Thank you",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ann", comment.AuthorName)
	})

	t.Run("blank content", func(t *testing.T) {
		repo := new(mockCommentRepository)

		_, err := NewCommentService(repo).AddComment(context.Background(), 3, models.CreateCommentRequest{Content: "   "})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(mockCommentRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

		_, err := NewCommentService(repo).AddComment(context.Background(), 99, models.CreateCommentRequest{Content: "hi"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestProcessDeletion(t *testing.T) {
	t.Run("trims the code", func(t *testing.T) {
		repo := new(mockDeletionRepository)
		repo.On("Process", mock.Anything, "ABC123").Return(nil)

		err := NewDeletionService(repo).Process(context.Background(), " ABC123 ")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown code", func(t *testing.T) {
		repo := new(mockDeletionRepository)
		repo.On("Process", mock.Anything, "NOPE").Return(repository.ErrNotFound)

		err := NewDeletionService(repo).Process(context.Background(), "NOPE")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
