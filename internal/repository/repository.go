package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"loveuadAdmin/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type PostRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, postID int64) (*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	ListAll(ctx context.Context) ([]models.BlogPostSummary, error)
	ListPublished(ctx context.Context, limit, offset int) ([]models.BlogPostSummary, error)
	CountPublished(ctx context.Context) (int, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.BlogComment) error
	ListByPost(ctx context.Context, postID int64) ([]models.BlogComment, error)
}

type CostRepository interface {
	Create(ctx context.Context, cost *models.ManualCost) error
	History(ctx context.Context, limit int) ([]models.ManualCost, error)
	TotalsByType(ctx context.Context, month time.Time) (map[string]decimal.Decimal, error)
}

type AuditRepository interface {
	List(ctx context.Context, codeHash string, limit int) ([]models.AiAuditLogEntry, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	CountByActionType(ctx context.Context, since time.Time) ([]ActionTypeCount, error)
	UserActionCounts(ctx context.Context, since time.Time) (UserActionCounts, error)
}

type DeletionRepository interface {
	ListPending(ctx context.Context) ([]models.DeletionRequest, error)
	Process(ctx context.Context, patientCode string) error
}

type UsageRepository interface {
	TotalPatients(ctx context.Context) (int, error)
	ActiveUsersSince(ctx context.Context, since time.Time, minLaunches int) (int, error)
	RetainedUsers(ctx context.Context, windowStart time.Time) (int, error)
	SignupsBetween(ctx context.Context, from, to time.Time) (int, error)
	DailySignups(ctx context.Context, since time.Time) ([]DailyCount, error)
	DailyActiveUsers(ctx context.Context, since time.Time) ([]DailyCount, error)
	SurveyBuckets(ctx context.Context) ([]SurveyBucket, error)
	GeminiUsage(ctx context.Context, since time.Time) ([]TokenUsage, error)
}

type StatsRepository interface {
	Ping(ctx context.Context) error
	DatabaseSize(ctx context.Context) (int64, error)
	ActiveConnections(ctx context.Context) (int, error)
	LargestTables(ctx context.Context, limit int) ([]TableSize, error)
	CountRows(ctx context.Context, table string) (int, error)
}

type Repository struct {
	Post     PostRepository
	Comment  CommentRepository
	Cost     CostRepository
	Audit    AuditRepository
	Deletion DeletionRepository
	Usage    UsageRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Cost:     NewCostRepository(db),
		Audit:    NewAuditRepository(db),
		Deletion: NewDeletionRepository(db),
		Usage:    NewUsageRepository(db),
		Stats:    NewStatsRepository(db),
	}
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}
