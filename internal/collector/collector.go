// Package collector gathers dashboard metrics from the database and the
// external services. Collectors run one after another and never fail the
// report: Settle turns an error into a zero-valued result carrying it.
package collector

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"loveuadAdmin/internal/repository"
)

const (
	StatusOK           = "ok"
	StatusError        = "error"
	StatusUnreachable  = "unreachable"
	StatusUnknown      = "unknown"
	StatusUnconfigured = "unconfigured"

	OverallHealthy   = "healthy"
	OverallUnhealthy = "unhealthy"

	// ProbeTimeout bounds the main application reachability check.
	ProbeTimeout = 5 * time.Second
)

// BillingSource reports the last 30 days of cloud spend keyed by service
// description ("Cloud Run", "Cloud SQL", ...).
type BillingSource interface {
	CostsByService(ctx context.Context) (map[string]float64, error)
}

// CallSource reports telephony usage.
type CallSource interface {
	CallDurations(ctx context.Context, since time.Time) ([]int, error)
	Balance(ctx context.Context) (float64, error)
}

type LogEntry struct {
	InsertID  string
	Timestamp time.Time
	Severity  string
	Message   string
}

// LogSource returns error-level entries of the main application, newest
// first.
type LogSource interface {
	ErrorEntries(ctx context.Context, since time.Time, limit int) ([]LogEntry, error)
}

// Set holds what the collectors read from. The external sources are
// optional; a nil source is reported as unconfigured.
type Set struct {
	Usage    repository.UsageRepository
	Stats    repository.StatsRepository
	Cost     repository.CostRepository
	Audit    repository.AuditRepository
	Deletion repository.DeletionRepository

	Billing BillingSource
	Calls   CallSource
	Logs    LogSource

	HTTPClient *http.Client
	MainAppURL string

	now func() time.Time
}

func NewSet(rep *repository.Repository, billing BillingSource, calls CallSource, logs LogSource, mainAppURL string) *Set {
	return &Set{
		Usage:      rep.Usage,
		Stats:      rep.Stats,
		Cost:       rep.Cost,
		Audit:      rep.Audit,
		Deletion:   rep.Deletion,
		Billing:    billing,
		Calls:      calls,
		Logs:       logs,
		HTTPClient: &http.Client{Timeout: ProbeTimeout},
		MainAppURL: mainAppURL,
		now:        time.Now,
	}
}

func (s *Set) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

type failable[T any] interface {
	*T
	setError(msg string)
}

// Settle runs one collector. On error it logs, counts the failure and returns
// the zero T with its Error field set.
func Settle[T any, PT failable[T]](ctx context.Context, name string, collect func(context.Context) (T, error)) T {
	started := time.Now()
	result, err := collect(ctx)
	observe(name, started, err)

	if err != nil {
		slog.WarnContext(ctx, "collector failed", "collector", name, "err", err)
		var zero T
		PT(&zero).setError(err.Error())
		return zero
	}

	return result
}

func round(value decimal.Decimal, places int32) float64 {
	return value.Round(places).InexactFloat64()
}

// Percent returns part/whole*100 rounded to one place, 0 for an empty whole.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return round(decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(whole))).Mul(decimal.NewFromInt(100)), 1)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
