package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"loveuadAdmin/internal/models"
)

type CostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewCostRepository(db *sqlx.DB) *CostRepositoryImpl {
	return &CostRepositoryImpl{DB: db}
}

func (r *CostRepositoryImpl) Create(ctx context.Context, cost *models.ManualCost) error {
	query := `
		INSERT INTO manual_costs (cost_type, amount, month, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	cost.CreatedAt = time.Now()

	err := r.DB.GetContext(ctx, &cost.ID, query, cost.CostType, cost.Amount, cost.Month, cost.Notes, cost.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create manual cost: %w", err)
	}

	return nil
}

func (r *CostRepositoryImpl) History(ctx context.Context, limit int) ([]models.ManualCost, error) {
	query := `
		SELECT id, cost_type, amount, month, notes, created_at
		FROM manual_costs
		ORDER BY month DESC, created_at DESC
		LIMIT $1
	`

	costs := []models.ManualCost{}
	if err := r.DB.SelectContext(ctx, &costs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list manual costs: %w", err)
	}

	return costs, nil
}

type costTotal struct {
	CostType string          `db:"cost_type"`
	Total    decimal.Decimal `db:"total"`
}

// TotalsByType sums the costs booked for month, keyed by cost type.
func (r *CostRepositoryImpl) TotalsByType(ctx context.Context, month time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT cost_type, SUM(amount) AS total
		FROM manual_costs
		WHERE month = $1
		GROUP BY cost_type
	`

	var rows []costTotal
	if err := r.DB.SelectContext(ctx, &rows, query, month); err != nil {
		return nil, fmt.Errorf("failed to sum manual costs: %w", err)
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.CostType] = row.Total
	}

	return totals, nil
}
