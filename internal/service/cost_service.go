package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

const costHistoryLimit = 100

type CostService interface {
	AddCost(ctx context.Context, req models.AddManualCostRequest) (*models.ManualCost, error)
	History(ctx context.Context) ([]models.ManualCost, error)
}

type costService struct {
	costRepo repository.CostRepository
	now      func() time.Time
}

func NewCostService(costRepo repository.CostRepository) CostService {
	return &costService{costRepo: costRepo, now: time.Now}
}

// parseMonth accepts YYYY-MM or YYYY-MM-DD and normalises to the first of
// the month. Empty means the current month.
func (c *costService) parseMonth(value string) (time.Time, error) {
	if value == "" {
		return models.MonthStart(c.now()), nil
	}

	for _, layout := range []string{time.DateOnly, "2006-01"} {
		if t, err := time.Parse(layout, value); err == nil {
			return models.MonthStart(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid month %q: %w", value, ErrValidation)
}

func (c *costService) AddCost(ctx context.Context, req models.AddManualCostRequest) (*models.ManualCost, error) {
	if !slices.Contains(models.CostTypes, req.CostType) {
		return nil, fmt.Errorf("unknown cost type %q: %w", req.CostType, ErrValidation)
	}

	if req.Amount == nil || req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("amount must be zero or more: %w", ErrValidation)
	}

	month, err := c.parseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	cost := &models.ManualCost{
		CostType: req.CostType,
		Amount:   req.Amount.Round(2),
		Month:    month,
		Notes:    req.Notes,
	}

	if err := c.costRepo.Create(ctx, cost); err != nil {
		return nil, err
	}

	return cost, nil
}

func (c *costService) History(ctx context.Context) ([]models.ManualCost, error) {
	return c.costRepo.History(ctx, costHistoryLimit)
}
