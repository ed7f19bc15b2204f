package collector

import (
	"context"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const largestTables = 10

var (
	bytesPerGB = decimal.NewFromInt(1 << 30)
	bytesPerMB = decimal.NewFromInt(1 << 20)
)

func (s *Set) Database(ctx context.Context) (DatabaseMetrics, error) {
	size, err := s.Stats.DatabaseSize(ctx)
	if err != nil {
		return DatabaseMetrics{}, err
	}

	connections, err := s.Stats.ActiveConnections(ctx)
	if err != nil {
		return DatabaseMetrics{}, err
	}

	tables, err := s.Stats.LargestTables(ctx, largestTables)
	if err != nil {
		return DatabaseMetrics{}, err
	}

	usage := make([]TableUsage, 0, len(tables))
	for _, t := range tables {
		usage = append(usage, TableUsage{
			Name:      t.Name,
			SizeMB:    round(decimal.NewFromInt(t.Bytes).Div(bytesPerMB), 2),
			SizeHuman: humanize.IBytes(uint64(max(t.Bytes, 0))),
		})
	}

	return DatabaseMetrics{
		SizeGB:            round(decimal.NewFromInt(size).Div(bytesPerGB), 2),
		SizeBytes:         size,
		SizeHuman:         humanize.IBytes(uint64(max(size, 0))),
		ActiveConnections: connections,
		Tables:            usage,
	}, nil
}

func elapsedMS(started time.Time) float64 {
	return round(decimal.NewFromFloat(float64(time.Since(started).Microseconds())/1000), 2)
}

// Health pings the database, counts core rows and probes the main
// application. Overall health follows the database only.
func (s *Set) Health(ctx context.Context) (HealthStatus, error) {
	var result HealthStatus

	started := time.Now()
	if err := s.Stats.Ping(ctx); err != nil {
		return HealthStatus{}, err
	}
	result.Database = ProbeResult{Status: StatusOK, ResponseMS: elapsedMS(started)}

	var err error
	if result.PatientsCount, err = s.Stats.CountRows(ctx, "patients"); err != nil {
		return HealthStatus{}, err
	}
	if result.MedicationsCount, err = s.Stats.CountRows(ctx, "medications"); err != nil {
		return HealthStatus{}, err
	}

	result.MainApp = s.probeMainApp(ctx)
	result.Overall = OverallHealthy

	return result, nil
}

func (s *Set) probeMainApp(ctx context.Context) ProbeResult {
	if s.MainAppURL == "" {
		return ProbeResult{Status: StatusUnconfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.MainAppURL, nil)
	if err != nil {
		return ProbeResult{Status: StatusUnreachable}
	}

	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: ProbeTimeout}
	}

	started := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return ProbeResult{Status: StatusUnreachable}
	}
	defer resp.Body.Close()

	status := StatusError
	if resp.StatusCode == http.StatusOK {
		status = StatusOK
	}

	return ProbeResult{Status: status, ResponseMS: elapsedMS(started)}
}
