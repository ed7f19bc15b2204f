package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

func init() {
	// amounts are rendered as JSON numbers for the dashboard script
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"

	DeletionPending   = "pending"
	DeletionCompleted = "completed"

	UserActionAccepted = "accepted"
	UserActionRejected = "rejected"
	UserActionModified = "modified"
)

// CostTypes lists the accepted manual cost categories.
var CostTypes = []string{"marketing", "personnel", "ads", "legal", "other"}

type ManualCost struct {
	ID        int64           `json:"id" db:"id"`
	CostType  string          `json:"cost_type" db:"cost_type"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Month     time.Time       `json:"month" db:"month"`
	Notes     *string         `json:"notes" db:"notes"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type AiAuditLogEntry struct {
	ID           int64              `json:"id,omitempty" db:"id"`
	CodeHash     string             `json:"code_hash,omitempty" db:"code_hash"`
	ActionType   string             `json:"action_type" db:"action_type"`
	AiOutput     *string            `json:"ai_output,omitempty" db:"ai_output"`
	UserAction   *string            `json:"user_action" db:"user_action"`
	Context      types.NullJSONText `json:"context,omitempty" db:"context"`
	ModelVersion *string            `json:"model_version" db:"model_version"`
	Timestamp    time.Time          `json:"timestamp" db:"timestamp"`
}

type BlogPost struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Content         string     `json:"content" db:"content"`
	Excerpt         *string    `json:"excerpt" db:"excerpt"`
	MetaDescription *string    `json:"meta_description" db:"meta_description"`
	Keywords        *string    `json:"keywords" db:"keywords"`
	Author          *string    `json:"author" db:"author"`
	FeaturedImage   *string    `json:"featured_image" db:"featured_image"`
	Status          string     `json:"status" db:"status"`
	PublishedAt     *time.Time `json:"published_at" db:"published_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// IsPublished reports whether the post is visible to anonymous readers.
func (p *BlogPost) IsPublished() bool {
	return p.Status == StatusPublished
}

// BlogPostSummary is the list projection of a post; content is omitted.
type BlogPostSummary struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Excerpt       *string    `json:"excerpt" db:"excerpt"`
	Author        *string    `json:"author" db:"author"`
	FeaturedImage *string    `json:"featured_image,omitempty" db:"featured_image"`
	Status        string     `json:"status,omitempty" db:"status"`
	PublishedAt   *time.Time `json:"published_at" db:"published_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	CreatedAt     *time.Time `json:"created_at,omitempty" db:"created_at"`
}

type BlogComment struct {
	ID         int64     `json:"id" db:"id"`
	PostID     int64     `json:"post_id" db:"post_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type DeletionRequest struct {
	PatientCode string     `json:"patient_code" db:"patient_code"`
	CodeHash    string     `json:"-" db:"code_hash"`
	Status      string     `json:"status,omitempty" db:"status"`
	RequestedAt time.Time  `json:"requested_at" db:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" db:"processed_at"`
	DaysPending int        `json:"days_pending" db:"days_pending"`
}

// MonthStart truncates t to midnight UTC on the first day of its month.
// Manual costs are booked against this date.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
