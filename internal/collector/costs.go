package collector

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"loveuadAdmin/internal/models"
)

var (
	llmInputPerMillion  = decimal.RequireFromString("0.075")
	llmOutputPerMillion = decimal.RequireFromString("0.30")
	callCostPerMinute   = decimal.RequireFromString("0.013")
	million             = decimal.NewFromInt(1_000_000)
	sixty               = decimal.NewFromInt(60)
)

// LLMCost prices token usage at the flat Gemini rates.
func LLMCost(inputTokens, outputTokens int64) decimal.Decimal {
	in := decimal.NewFromInt(inputTokens).Div(million).Mul(llmInputPerMillion)
	out := decimal.NewFromInt(outputTokens).Div(million).Mul(llmOutputPerMillion)
	return in.Add(out)
}

// CallCost prices call time at the flat per-minute rate.
func CallCost(seconds int) decimal.Decimal {
	return decimal.NewFromInt(int64(seconds)).Div(sixty).Mul(callCostPerMinute)
}

func (s *Set) GCP(ctx context.Context) (GCPCosts, error) {
	if s.Billing == nil {
		return GCPCosts{Source: "No GCP billing config"}, nil
	}

	costs, err := s.Billing.CostsByService(ctx)
	if err != nil {
		return GCPCosts{}, err
	}

	total := decimal.Zero
	for _, cost := range costs {
		total = total.Add(decimal.NewFromFloat(cost))
	}

	service := func(name string) float64 {
		return round(decimal.NewFromFloat(costs[name]), 2)
	}

	return GCPCosts{
		CloudRun:   service("Cloud Run"),
		CloudSQL:   service("Cloud SQL"),
		Networking: service("Networking"),
		Storage:    service("Cloud Storage"),
		Total:      round(total, 2),
		Source:     "BigQuery",
	}, nil
}

func (s *Set) Twilio(ctx context.Context) (TwilioMetrics, error) {
	if s.Calls == nil {
		return TwilioMetrics{}, errors.New("no Twilio credentials")
	}

	durations, err := s.Calls.CallDurations(ctx, s.clock().AddDate(0, 0, -30))
	if err != nil {
		return TwilioMetrics{}, err
	}

	seconds := 0
	for _, d := range durations {
		seconds += d
	}

	minutes := decimal.NewFromInt(int64(seconds)).Div(sixty)
	result := TwilioMetrics{
		TotalCalls:   len(durations),
		TotalMinutes: round(minutes, 2),
		Cost:         round(CallCost(seconds), 2),
	}
	if len(durations) > 0 {
		result.AvgDuration = round(minutes.Div(decimal.NewFromInt(int64(len(durations)))), 2)
	}

	balance, err := s.Calls.Balance(ctx)
	if err != nil {
		slog.WarnContext(ctx, "twilio balance unavailable", "err", err)
	} else {
		result.Balance = balance
	}

	return result, nil
}

func (s *Set) Gemini(ctx context.Context) (GeminiMetrics, error) {
	usage, err := s.Usage.GeminiUsage(ctx, s.clock().AddDate(0, 0, -30))
	if err != nil {
		return GeminiMetrics{}, err
	}

	var result GeminiMetrics
	for _, row := range usage {
		result.InputTokens += row.InputTokens
		result.OutputTokens += row.OutputTokens
		switch row.QueryType {
		case "query":
			result.TotalQueries = row.Count
		case "scan":
			result.TotalScans = row.Count
		}
	}
	result.TotalTokens = result.InputTokens + result.OutputTokens
	result.Cost = round(LLMCost(result.InputTokens, result.OutputTokens), 2)

	return result, nil
}

// ManualCosts sums the manual costs booked for the current month.
func (s *Set) ManualCosts(ctx context.Context) (ManualCosts, error) {
	totals, err := s.Cost.TotalsByType(ctx, models.MonthStart(s.clock()))
	if err != nil {
		return ManualCosts{}, err
	}

	total := decimal.Zero
	for _, amount := range totals {
		total = total.Add(amount)
	}

	return ManualCosts{
		Marketing: round(totals["marketing"], 2),
		Personnel: round(totals["personnel"], 2),
		Ads:       round(totals["ads"], 2),
		Legal:     round(totals["legal"], 2),
		Other:     round(totals["other"], 2),
		Total:     round(total, 2),
	}, nil
}
