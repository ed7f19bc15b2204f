package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type TableSize struct {
	Name  string `db:"name"`
	Bytes int64  `db:"bytes"`
}

// countableTables limits CountRows to known tables; the name is
// interpolated into the statement.
var countableTables = map[string]bool{
	"patients":         true,
	"medications":      true,
	"reminders":        true,
	"manual_costs":     true,
	"ai_audit_log":     true,
	"blog_posts":       true,
	"blog_comments":    true,
	"gemini_usage":     true,
	"survey_responses": true,
}

type StatsRepositoryImpl struct {
	DB *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepositoryImpl {
	return &StatsRepositoryImpl{DB: db}
}

func (r *StatsRepositoryImpl) Ping(ctx context.Context) error {
	var one int
	if err := r.DB.GetContext(ctx, &one, `SELECT 1`); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (r *StatsRepositoryImpl) DatabaseSize(ctx context.Context) (int64, error) {
	var size int64
	if err := r.DB.GetContext(ctx, &size, `SELECT pg_database_size(current_database())`); err != nil {
		return 0, fmt.Errorf("failed to get database size: %w", err)
	}

	return size, nil
}

func (r *StatsRepositoryImpl) ActiveConnections(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM pg_stat_activity WHERE state = 'active'`); err != nil {
		return 0, fmt.Errorf("failed to count active connections: %w", err)
	}

	return count, nil
}

func (r *StatsRepositoryImpl) LargestTables(ctx context.Context, limit int) ([]TableSize, error) {
	query := `
		SELECT tablename AS name, pg_total_relation_size('public.' || quote_ident(tablename)) AS bytes
		FROM pg_tables
		WHERE schemaname = 'public'
		ORDER BY bytes DESC
		LIMIT $1
	`

	tables := []TableSize{}
	if err := r.DB.SelectContext(ctx, &tables, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list table sizes: %w", err)
	}

	return tables, nil
}

func (r *StatsRepositoryImpl) CountRows(ctx context.Context, table string) (int, error) {
	if !countableTables[table] {
		return 0, fmt.Errorf("table %q is not countable", table)
	}

	var count int
	if err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}

	return count, nil
}
