package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type DailyCount struct {
	Date  time.Time `db:"date"`
	Count int       `db:"count"`
}

type SurveyBucket struct {
	SurveyDay    int    `db:"survey_day"`
	ResultBucket string `db:"result_bucket"`
	Count        int    `db:"count"`
}

type TokenUsage struct {
	QueryType    string `db:"query_type"`
	InputTokens  int64  `db:"input_tokens"`
	OutputTokens int64  `db:"output_tokens"`
	Count        int    `db:"count"`
}

// UsageRepositoryImpl reads tables owned by the main application.
// Nothing here writes.
type UsageRepositoryImpl struct {
	DB *sqlx.DB
}

func NewUsageRepository(db *sqlx.DB) *UsageRepositoryImpl {
	return &UsageRepositoryImpl{DB: db}
}

func (r *UsageRepositoryImpl) TotalPatients(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM patients`); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}

	return count, nil
}

// ActiveUsersSince counts users with at least minLaunches launch days on or
// after since.
func (r *UsageRepositoryImpl) ActiveUsersSince(ctx context.Context, since time.Time, minLaunches int) (int, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT code_hash
			FROM daily_launch_tracker
			WHERE launch_date >= $1
			GROUP BY code_hash
			HAVING COUNT(*) >= $2
		) AS active
	`

	var count int
	if err := r.DB.GetContext(ctx, &count, query, since, minLaunches); err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}

	return count, nil
}

// RetainedUsers counts users active since windowStart who also launched the
// app at least once before it.
func (r *UsageRepositoryImpl) RetainedUsers(ctx context.Context, windowStart time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT t1.code_hash)
		FROM daily_launch_tracker t1
		WHERE t1.launch_date >= $1
		AND EXISTS (
			SELECT 1 FROM daily_launch_tracker t2
			WHERE t2.code_hash = t1.code_hash AND t2.launch_date < $1
		)
	`

	var count int
	if err := r.DB.GetContext(ctx, &count, query, windowStart); err != nil {
		return 0, fmt.Errorf("failed to count retained users: %w", err)
	}

	return count, nil
}

// SignupsBetween counts patients created in [from, to).
func (r *UsageRepositoryImpl) SignupsBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM patients WHERE created_at >= $1 AND created_at < $2`

	var count int
	if err := r.DB.GetContext(ctx, &count, query, from, to); err != nil {
		return 0, fmt.Errorf("failed to count signups: %w", err)
	}

	return count, nil
}

func (r *UsageRepositoryImpl) DailySignups(ctx context.Context, since time.Time) ([]DailyCount, error) {
	query := `
		SELECT DATE(created_at) AS date, COUNT(*) AS count
		FROM patients
		WHERE created_at >= $1
		GROUP BY DATE(created_at)
		ORDER BY date DESC
	`

	days := []DailyCount{}
	if err := r.DB.SelectContext(ctx, &days, query, since); err != nil {
		return nil, fmt.Errorf("failed to load daily signups: %w", err)
	}

	return days, nil
}

func (r *UsageRepositoryImpl) DailyActiveUsers(ctx context.Context, since time.Time) ([]DailyCount, error) {
	query := `
		SELECT event_date AS date, COALESCE(SUM(launch_count), 0) AS count
		FROM daily_active_users
		WHERE event_date >= $1
		GROUP BY event_date
		ORDER BY event_date DESC
	`

	days := []DailyCount{}
	if err := r.DB.SelectContext(ctx, &days, query, since); err != nil {
		return nil, fmt.Errorf("failed to load daily active users: %w", err)
	}

	return days, nil
}

func (r *UsageRepositoryImpl) SurveyBuckets(ctx context.Context) ([]SurveyBucket, error) {
	query := `
		SELECT survey_day, result_bucket, COUNT(*) AS count
		FROM survey_responses
		GROUP BY survey_day, result_bucket
		ORDER BY survey_day
	`

	buckets := []SurveyBucket{}
	if err := r.DB.SelectContext(ctx, &buckets, query); err != nil {
		return nil, fmt.Errorf("failed to load survey responses: %w", err)
	}

	return buckets, nil
}

func (r *UsageRepositoryImpl) GeminiUsage(ctx context.Context, since time.Time) ([]TokenUsage, error) {
	query := `
		SELECT
			query_type,
			COALESCE(SUM(input_tokens), 0) AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens,
			COUNT(*) AS count
		FROM gemini_usage
		WHERE created_at >= $1
		GROUP BY query_type
	`

	usage := []TokenUsage{}
	if err := r.DB.SelectContext(ctx, &usage, query, since); err != nil {
		return nil, fmt.Errorf("failed to load gemini usage: %w", err)
	}

	return usage, nil
}
