package service

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*models.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *mockPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *mockPostRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepository) ListAll(ctx context.Context) ([]models.BlogPostSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPostSummary), args.Error(1)
}

func (m *mockPostRepository) ListPublished(ctx context.Context, limit, offset int) ([]models.BlogPostSummary, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPostSummary), args.Error(1)
}

func (m *mockPostRepository) CountPublished(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.BlogComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]models.BlogComment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogComment), args.Error(1)
}

type mockCostRepository struct {
	mock.Mock
}

func (m *mockCostRepository) Create(ctx context.Context, cost *models.ManualCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *mockCostRepository) History(ctx context.Context, limit int) ([]models.ManualCost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ManualCost), args.Error(1)
}

func (m *mockCostRepository) TotalsByType(ctx context.Context, month time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

type mockAuditRepository struct {
	mock.Mock
}

func (m *mockAuditRepository) List(ctx context.Context, codeHash string, limit int) ([]models.AiAuditLogEntry, error) {
	args := m.Called(ctx, codeHash, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AiAuditLogEntry), args.Error(1)
}

func (m *mockAuditRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *mockAuditRepository) CountByActionType(ctx context.Context, since time.Time) ([]repository.ActionTypeCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ActionTypeCount), args.Error(1)
}

func (m *mockAuditRepository) UserActionCounts(ctx context.Context, since time.Time) (repository.UserActionCounts, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(repository.UserActionCounts), args.Error(1)
}

type mockDeletionRepository struct {
	mock.Mock
}

func (m *mockDeletionRepository) ListPending(ctx context.Context) ([]models.DeletionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeletionRequest), args.Error(1)
}

func (m *mockDeletionRepository) Process(ctx context.Context, patientCode string) error {
	args := m.Called(ctx, patientCode)
	return args.Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
