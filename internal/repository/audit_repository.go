package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"loveuadAdmin/internal/models"
)

type ActionTypeCount struct {
	ActionType string `json:"action_type" db:"action_type"`
	Count      int    `json:"count" db:"count"`
}

// UserActionCounts tallies rated audit entries (user_action IS NOT NULL).
type UserActionCounts struct {
	Accepted int `db:"accepted"`
	Rejected int `db:"rejected"`
	Modified int `db:"modified"`
	Total    int `db:"total"`
}

type AuditRepositoryImpl struct {
	DB *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepositoryImpl {
	return &AuditRepositoryImpl{DB: db}
}

// List returns the newest audit entries. With a code hash the full entry
// (output and context) is returned for that subject only.
func (r *AuditRepositoryImpl) List(ctx context.Context, codeHash string, limit int) ([]models.AiAuditLogEntry, error) {
	entries := []models.AiAuditLogEntry{}

	var err error
	if codeHash != "" {
		err = r.DB.SelectContext(ctx, &entries, `
			SELECT action_type, ai_output, user_action, context, model_version, timestamp
			FROM ai_audit_log
			WHERE code_hash = $1
			ORDER BY timestamp DESC
			LIMIT $2
		`, codeHash, limit)
	} else {
		err = r.DB.SelectContext(ctx, &entries, `
			SELECT code_hash, action_type, user_action, model_version, timestamp
			FROM ai_audit_log
			ORDER BY timestamp DESC
			LIMIT $1
		`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return entries, nil
}

func (r *AuditRepositoryImpl) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM ai_audit_log WHERE timestamp >= $1`, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	return count, nil
}

func (r *AuditRepositoryImpl) CountByActionType(ctx context.Context, since time.Time) ([]ActionTypeCount, error) {
	query := `
		SELECT action_type, COUNT(*) AS count
		FROM ai_audit_log
		WHERE timestamp >= $1
		GROUP BY action_type
		ORDER BY count DESC
	`

	counts := []ActionTypeCount{}
	if err := r.DB.SelectContext(ctx, &counts, query, since); err != nil {
		return nil, fmt.Errorf("failed to count audit entries by type: %w", err)
	}

	return counts, nil
}

func (r *AuditRepositoryImpl) UserActionCounts(ctx context.Context, since time.Time) (UserActionCounts, error) {
	query := `
		SELECT
			COUNT(CASE WHEN user_action = 'accepted' THEN 1 END) AS accepted,
			COUNT(CASE WHEN user_action = 'rejected' THEN 1 END) AS rejected,
			COUNT(CASE WHEN user_action = 'modified' THEN 1 END) AS modified,
			COUNT(*) AS total
		FROM ai_audit_log
		WHERE timestamp >= $1 AND user_action IS NOT NULL
	`

	var counts UserActionCounts
	if err := r.DB.GetContext(ctx, &counts, query, since); err != nil {
		return UserActionCounts{}, fmt.Errorf("failed to count user actions: %w", err)
	}

	return counts, nil
}
