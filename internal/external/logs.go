package external

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/logging/logadmin"
	"google.golang.org/api/iterator"

	"loveuadAdmin/internal/collector"
)

// CloudRunLogs lists error entries written by one Cloud Run service.
type CloudRunLogs struct {
	client  *logadmin.Client
	service string
}

func NewCloudRunLogs(ctx context.Context, projectID, service string) (*CloudRunLogs, error) {
	client, err := logadmin.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging client: %w", err)
	}

	return &CloudRunLogs{client: client, service: service}, nil
}

// ErrorFilter builds the Cloud Logging filter for a service's errors since t.
func ErrorFilter(service string, since time.Time) string {
	return fmt.Sprintf(
		`resource.type="cloud_run_revision" AND resource.labels.service_name=%q AND severity>=ERROR AND timestamp>=%q`,
		service, since.UTC().Format(time.RFC3339),
	)
}

func (l *CloudRunLogs) ErrorEntries(ctx context.Context, since time.Time, limit int) ([]collector.LogEntry, error) {
	it := l.client.Entries(ctx, logadmin.Filter(ErrorFilter(l.service, since)), logadmin.NewestFirst())

	entries := []collector.LogEntry{}
	for len(entries) < limit {
		entry, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read log entries: %w", err)
		}

		message := ""
		if entry.Payload != nil {
			message = fmt.Sprint(entry.Payload)
		}

		entries = append(entries, collector.LogEntry{
			InsertID:  entry.InsertID,
			Timestamp: entry.Timestamp,
			Severity:  entry.Severity.String(),
			Message:   message,
		})
	}

	return entries, nil
}

func (l *CloudRunLogs) Close() error {
	return l.client.Close()
}
