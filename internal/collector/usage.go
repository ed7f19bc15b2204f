package collector

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"loveuadAdmin/internal/repository"
)

// GrowthRate compares this week's signups with last week's. A previous week
// with no signups counts as 1 so the rate stays finite.
func GrowthRate(recent, previous int) (rate float64, effectivePrevious int) {
	if previous <= 0 {
		previous = 1
	}
	diff := decimal.NewFromInt(int64(recent - previous))
	return round(diff.Div(decimal.NewFromInt(int64(previous))).Mul(decimal.NewFromInt(100)), 1), previous
}

func dayCounts(rows []repository.DailyCount) []DayCount {
	days := make([]DayCount, 0, len(rows))
	for _, row := range rows {
		days = append(days, DayCount{Date: row.Date.Format(time.DateOnly), Count: row.Count})
	}
	return days
}

func (s *Set) Users(ctx context.Context) (UserMetrics, error) {
	today := startOfDay(s.clock())
	weekAgo := today.AddDate(0, 0, -7)
	tomorrow := today.AddDate(0, 0, 1)
	// signup windows are seven whole days each, the recent one ending today
	recentStart := today.AddDate(0, 0, -6)
	previousStart := today.AddDate(0, 0, -13)

	total, err := s.Usage.TotalPatients(ctx)
	if err != nil {
		return UserMetrics{}, err
	}

	activeOnce, err := s.Usage.ActiveUsersSince(ctx, weekAgo, 1)
	if err != nil {
		return UserMetrics{}, err
	}

	activeThrice, err := s.Usage.ActiveUsersSince(ctx, weekAgo, 3)
	if err != nil {
		return UserMetrics{}, err
	}

	daily, err := s.Usage.DailySignups(ctx, today.AddDate(0, 0, -30))
	if err != nil {
		return UserMetrics{}, err
	}

	recent, err := s.Usage.SignupsBetween(ctx, recentStart, tomorrow)
	if err != nil {
		return UserMetrics{}, err
	}

	previous, err := s.Usage.SignupsBetween(ctx, previousStart, recentStart)
	if err != nil {
		return UserMetrics{}, err
	}

	retained, err := s.Usage.RetainedUsers(ctx, weekAgo)
	if err != nil {
		return UserMetrics{}, err
	}

	growth, previous := GrowthRate(recent, previous)

	return UserMetrics{
		TotalUsers:      total,
		ActiveOnce7d:    activeOnce,
		ActiveThrice7d:  activeThrice,
		ActiveOncePct:   Percent(activeOnce, total),
		ActiveThricePct: Percent(activeThrice, total),
		GrowthRate:      growth,
		RetentionRate:   Percent(retained, activeOnce),
		Signups7d:       recent,
		SignupsPrev7d:   previous,
		DailySignups:    dayCounts(daily),
	}, nil
}

// Satisfaction groups survey answers by day. A day's score is the share of
// Low answers.
func (s *Set) Satisfaction(ctx context.Context) (SatisfactionMetrics, error) {
	buckets, err := s.Usage.SurveyBuckets(ctx)
	if err != nil {
		return SatisfactionMetrics{}, err
	}

	result := SatisfactionMetrics{
		ByDay:  map[string]SurveyDay{},
		Scores: map[string]float64{},
	}

	for _, b := range buckets {
		key := strconv.Itoa(b.SurveyDay)
		day := result.ByDay[key]
		switch b.ResultBucket {
		case "Low":
			day.Low += b.Count
		case "Medium":
			day.Medium += b.Count
		case "High":
			day.High += b.Count
		}
		day.Total += b.Count
		result.ByDay[key] = day
	}

	for key, day := range result.ByDay {
		if day.Total > 0 {
			result.Scores[fmt.Sprintf("Day %s", key)] = Percent(day.Low, day.Total)
		}
	}

	return result, nil
}

func (s *Set) DAU(ctx context.Context) (DAUMetrics, error) {
	rows, err := s.Usage.DailyActiveUsers(ctx, startOfDay(s.clock()).AddDate(0, 0, -30))
	if err != nil {
		return DAUMetrics{}, err
	}

	return DAUMetrics{Daily: dayCounts(rows)}, nil
}
