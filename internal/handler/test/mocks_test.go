package test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/service"
	"loveuadAdmin/internal/session"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (session.Identity, error) {
	args := m.Called(tokenString)
	return args.Get(0).(session.Identity), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context, admin bool) ([]models.BlogPostSummary, error) {
	args := m.Called(ctx, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPostSummary), args.Error(1)
}

func (m *MockPostService) ListPublishedPage(ctx context.Context, page, perPage int) ([]models.BlogPostSummary, int, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.BlogPostSummary), args.Int(1), args.Error(2)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64, admin bool) (*models.BlogPost, error) {
	args := m.Called(ctx, postID, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockPostService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID int64, req models.UpdatePostRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) SetFeaturedImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.BlogPost, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context, postID int64) ([]models.BlogComment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogComment), args.Error(1)
}

func (m *MockCommentService) AddComment(ctx context.Context, postID int64, req models.CreateCommentRequest) (*models.BlogComment, error) {
	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogComment), args.Error(1)
}

type MockCostService struct {
	mock.Mock
}

func (m *MockCostService) AddCost(ctx context.Context, req models.AddManualCostRequest) (*models.ManualCost, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ManualCost), args.Error(1)
}

func (m *MockCostService) History(ctx context.Context) ([]models.ManualCost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ManualCost), args.Error(1)
}

type MockDeletionService struct {
	mock.Mock
}

func (m *MockDeletionService) ListPending(ctx context.Context) ([]models.DeletionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeletionRequest), args.Error(1)
}

func (m *MockDeletionService) Process(ctx context.Context, patientCode string) error {
	args := m.Called(ctx, patientCode)
	return args.Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Trail(ctx context.Context, codeHash string, limit int) ([]models.AiAuditLogEntry, error) {
	args := m.Called(ctx, codeHash, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AiAuditLogEntry), args.Error(1)
}

type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) Report(ctx context.Context) (*service.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Report), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) RSS(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockFeedService) Sitemap(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFeedService) PostURL(slug string) string {
	args := m.Called(slug)
	return args.String(0)
}
