package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"loveuadAdmin/internal/models"
)

type DeletionRepositoryImpl struct {
	DB *sqlx.DB
}

func NewDeletionRepository(db *sqlx.DB) *DeletionRepositoryImpl {
	return &DeletionRepositoryImpl{DB: db}
}

func (r *DeletionRepositoryImpl) ListPending(ctx context.Context) ([]models.DeletionRequest, error) {
	query := `
		SELECT
			patient_code,
			requested_at,
			EXTRACT(DAY FROM (CURRENT_TIMESTAMP - requested_at))::int AS days_pending
		FROM deletion_requests
		WHERE status = 'pending'
		ORDER BY requested_at DESC
	`

	requests := []models.DeletionRequest{}
	if err := r.DB.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("failed to list deletion requests: %w", err)
	}

	return requests, nil
}

// Process erases every row keyed by the request's code hash and marks the
// request completed. The whole erasure commits or none of it does.
func (r *DeletionRepositoryImpl) Process(ctx context.Context, patientCode string) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin deletion transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				slog.Error("deletion rollback failed", "err", rbErr)
			}
		}
	}()

	var codeHash string
	err = tx.GetContext(ctx, &codeHash, `
		SELECT code_hash FROM deletion_requests
		WHERE patient_code = $1 AND status = 'pending'
		FOR UPDATE
	`, patientCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("pending deletion request for %s: %w", patientCode, ErrNotFound)
		}
		return fmt.Errorf("failed to find deletion request: %w", err)
	}

	for _, table := range []string{"medications", "reminders", "patients"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE code_hash = $1", codeHash); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE deletion_requests
		SET status = 'completed', processed_at = CURRENT_TIMESTAMP
		WHERE patient_code = $1 AND status = 'pending'
	`, patientCode)
	if err != nil {
		return fmt.Errorf("failed to complete deletion request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deletion: %w", err)
	}

	return nil
}
