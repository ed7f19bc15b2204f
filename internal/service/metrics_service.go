package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"loveuadAdmin/internal/collector"
)

// RevenuePerUser is the flat monthly subscription price.
var RevenuePerUser = decimal.NewFromInt(5)

type AutomatedCosts struct {
	CloudRun   float64 `json:"cloud_run"`
	CloudSQL   float64 `json:"cloud_sql"`
	Networking float64 `json:"networking"`
	Twilio     float64 `json:"twilio"`
	Gemini     float64 `json:"gemini"`
	Total      float64 `json:"total"`
}

type CostSummary struct {
	Automated AutomatedCosts        `json:"automated"`
	Manual    collector.ManualCosts `json:"manual"`
	Total     float64               `json:"total"`
	PerUser   float64               `json:"per_user"`
}

type Financial struct {
	TotalCosts     float64 `json:"total_costs"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	ProfitLoss     float64 `json:"profit_loss"`
	BreakevenUsers int64   `json:"breakeven_users"`
	CurrentUsers   int     `json:"current_users"`
}

type Details struct {
	GCP      collector.GCPCosts        `json:"gcp"`
	Database collector.DatabaseMetrics `json:"database"`
	Twilio   collector.TwilioMetrics   `json:"twilio"`
	Gemini   collector.GeminiMetrics   `json:"gemini"`
}

// Report is the document behind the dashboard.
type Report struct {
	Success      bool                          `json:"success"`
	Users        collector.UserMetrics         `json:"users"`
	Costs        CostSummary                   `json:"costs"`
	Financial    Financial                     `json:"financial"`
	Details      Details                       `json:"details"`
	Satisfaction collector.SatisfactionMetrics `json:"satisfaction"`
	DAU          collector.DAUMetrics          `json:"dau"`
	Errors       collector.ErrorMetrics        `json:"errors"`
	Health       collector.HealthStatus        `json:"health"`
	AICompliance collector.ComplianceMetrics   `json:"ai_compliance"`
	Deletions    collector.DeletionMetrics     `json:"deletions"`
}

type MetricsService interface {
	Report(ctx context.Context) (*Report, error)
}

type metricsService struct {
	collectors *collector.Set
}

func NewMetricsService(collectors *collector.Set) MetricsService {
	return &metricsService{collectors: collectors}
}

// Report runs every collector in turn and derives the financial figures.
// Individual collector failures are carried inside the report; only a
// cancelled request fails the whole call.
func (m *metricsService) Report(ctx context.Context) (*Report, error) {
	c := m.collectors

	gcp := collector.Settle(ctx, "gcp", c.GCP)
	database := collector.Settle(ctx, "database", c.Database)
	twilio := collector.Settle(ctx, "twilio", c.Twilio)
	gemini := collector.Settle(ctx, "gemini", c.Gemini)
	users := collector.Settle(ctx, "users", c.Users)
	satisfaction := collector.Settle(ctx, "satisfaction", c.Satisfaction)
	dau := collector.Settle(ctx, "dau", c.DAU)
	manual := collector.Settle(ctx, "manual_costs", c.ManualCosts)
	errs := collector.Settle(ctx, "errors", c.Errors)
	health := collector.Settle(ctx, "health", c.Health)
	compliance := collector.Settle(ctx, "ai_compliance", c.Compliance)
	deletions := collector.Settle(ctx, "deletions", c.Deletions)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("metrics aggregation aborted: %w", err)
	}

	costs, financial := Derive(gcp, twilio, gemini, manual, users.TotalUsers)

	return &Report{
		Success:   true,
		Users:     users,
		Costs:     costs,
		Financial: financial,
		Details: Details{
			GCP:      gcp,
			Database: database,
			Twilio:   twilio,
			Gemini:   gemini,
		},
		Satisfaction: satisfaction,
		DAU:          dau,
		Errors:       errs,
		Health:       health,
		AICompliance: compliance,
		Deletions:    deletions,
	}, nil
}

// Derive combines the cost collectors with the user count.
func Derive(gcp collector.GCPCosts, twilio collector.TwilioMetrics, gemini collector.GeminiMetrics, manual collector.ManualCosts, totalUsers int) (CostSummary, Financial) {
	automated := decimal.NewFromFloat(gcp.Total).
		Add(decimal.NewFromFloat(twilio.Cost)).
		Add(decimal.NewFromFloat(gemini.Cost)).
		Round(2)
	total := automated.Add(decimal.NewFromFloat(manual.Total)).Round(2)

	users := decimal.NewFromInt(int64(totalUsers))
	perUser := decimal.Zero
	if totalUsers > 0 {
		perUser = total.Div(users)
	}
	revenue := users.Mul(RevenuePerUser)

	costs := CostSummary{
		Automated: AutomatedCosts{
			CloudRun:   gcp.CloudRun,
			CloudSQL:   gcp.CloudSQL,
			Networking: gcp.Networking,
			Twilio:     twilio.Cost,
			Gemini:     gemini.Cost,
			Total:      automated.InexactFloat64(),
		},
		Manual:  manual,
		Total:   total.InexactFloat64(),
		PerUser: perUser.Round(2).InexactFloat64(),
	}

	financial := Financial{
		TotalCosts:     total.InexactFloat64(),
		MonthlyRevenue: revenue.Round(2).InexactFloat64(),
		ProfitLoss:     revenue.Sub(total).Round(2).InexactFloat64(),
		BreakevenUsers: total.Div(RevenuePerUser).Floor().IntPart(),
		CurrentUsers:   totalUsers,
	}

	return costs, financial
}
