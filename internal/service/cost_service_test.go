package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loveuadAdmin/internal/models"
)

func newTestCostService(repo *mockCostRepository) *costService {
	svc := NewCostService(repo).(*costService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestParseMonth(t *testing.T) {
	svc := newTestCostService(new(mockCostRepository))
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "full date", value: "2024-03-15", want: march},
		{name: "year and month", value: "2024-03", want: march},
		{name: "empty is current month", value: "", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "words", value: "March 2024", wantErr: true},
		{name: "month out of range", value: "2024-13", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.parseMonth(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestAddCost(t *testing.T) {
	amount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	t.Run("stored rounded to cents", func(t *testing.T) {
		repo := new(mockCostRepository)
		svc := newTestCostService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.ManualCost) bool {
			return c.CostType == "legal" && c.Amount.Equal(decimal.RequireFromString("10.56")) && c.Month.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
		})).Return(nil)

		_, err := svc.AddCost(context.Background(), models.AddManualCostRequest{
			CostType: "legal",
			Amount:   amount("10.555"),
			Month:    "2024-02",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name string
		req  models.AddManualCostRequest
	}{
		{name: "unknown type", req: models.AddManualCostRequest{CostType: "coffee", Amount: amount("1")}},
		{name: "negative amount", req: models.AddManualCostRequest{CostType: "ads", Amount: amount("-5")}},
		{name: "missing amount", req: models.AddManualCostRequest{CostType: "ads"}},
		{name: "bad month", req: models.AddManualCostRequest{CostType: "ads", Amount: amount("5"), Month: "06/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCostRepository)
			svc := newTestCostService(repo)

			_, err := svc.AddCost(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCostHistory(t *testing.T) {
	repo := new(mockCostRepository)
	repo.On("History", mock.Anything, costHistoryLimit).Return([]models.ManualCost{{ID: 1}}, nil)

	history, err := NewCostService(repo).History(context.Background())

	require.NoError(t, err)
	assert.Len(t, history, 1)
	repo.AssertExpectations(t)
}
