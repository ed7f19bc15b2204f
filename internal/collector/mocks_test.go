package collector

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

type mockUsageRepository struct {
	mock.Mock
}

func (m *mockUsageRepository) TotalPatients(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockUsageRepository) ActiveUsersSince(ctx context.Context, since time.Time, minLaunches int) (int, error) {
	args := m.Called(ctx, since, minLaunches)
	return args.Int(0), args.Error(1)
}

func (m *mockUsageRepository) RetainedUsers(ctx context.Context, windowStart time.Time) (int, error) {
	args := m.Called(ctx, windowStart)
	return args.Int(0), args.Error(1)
}

func (m *mockUsageRepository) SignupsBetween(ctx context.Context, from, to time.Time) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

func (m *mockUsageRepository) DailySignups(ctx context.Context, since time.Time) ([]repository.DailyCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DailyCount), args.Error(1)
}

func (m *mockUsageRepository) DailyActiveUsers(ctx context.Context, since time.Time) ([]repository.DailyCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DailyCount), args.Error(1)
}

func (m *mockUsageRepository) SurveyBuckets(ctx context.Context) ([]repository.SurveyBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SurveyBucket), args.Error(1)
}

func (m *mockUsageRepository) GeminiUsage(ctx context.Context, since time.Time) ([]repository.TokenUsage, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TokenUsage), args.Error(1)
}

type mockStatsRepository struct {
	mock.Mock
}

func (m *mockStatsRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockStatsRepository) DatabaseSize(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsRepository) ActiveConnections(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockStatsRepository) LargestTables(ctx context.Context, limit int) ([]repository.TableSize, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TableSize), args.Error(1)
}

func (m *mockStatsRepository) CountRows(ctx context.Context, table string) (int, error) {
	args := m.Called(ctx, table)
	return args.Int(0), args.Error(1)
}

type mockCostRepository struct {
	mock.Mock
}

func (m *mockCostRepository) Create(ctx context.Context, cost *models.ManualCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *mockCostRepository) History(ctx context.Context, limit int) ([]models.ManualCost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ManualCost), args.Error(1)
}

func (m *mockCostRepository) TotalsByType(ctx context.Context, month time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

type mockAuditRepository struct {
	mock.Mock
}

func (m *mockAuditRepository) List(ctx context.Context, codeHash string, limit int) ([]models.AiAuditLogEntry, error) {
	args := m.Called(ctx, codeHash, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AiAuditLogEntry), args.Error(1)
}

func (m *mockAuditRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *mockAuditRepository) CountByActionType(ctx context.Context, since time.Time) ([]repository.ActionTypeCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ActionTypeCount), args.Error(1)
}

func (m *mockAuditRepository) UserActionCounts(ctx context.Context, since time.Time) (repository.UserActionCounts, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(repository.UserActionCounts), args.Error(1)
}

type mockDeletionRepository struct {
	mock.Mock
}

func (m *mockDeletionRepository) ListPending(ctx context.Context) ([]models.DeletionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeletionRequest), args.Error(1)
}

func (m *mockDeletionRepository) Process(ctx context.Context, patientCode string) error {
	args := m.Called(ctx, patientCode)
	return args.Error(0)
}

type fakeBilling struct {
	costs map[string]float64
	err   error
}

func (f fakeBilling) CostsByService(ctx context.Context) (map[string]float64, error) {
	return f.costs, f.err
}

type fakeCalls struct {
	durations  []int
	err        error
	balance    float64
	balanceErr error
}

func (f fakeCalls) CallDurations(ctx context.Context, since time.Time) ([]int, error) {
	return f.durations, f.err
}

func (f fakeCalls) Balance(ctx context.Context) (float64, error) {
	return f.balance, f.balanceErr
}

type fakeLogs struct {
	entries []LogEntry
	err     error
}

func (f fakeLogs) ErrorEntries(ctx context.Context, since time.Time, limit int) ([]LogEntry, error) {
	return f.entries, f.err
}
