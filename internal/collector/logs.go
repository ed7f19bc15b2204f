package collector

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"loveuadAdmin/internal/textutil"
)

const (
	errorWindowDays = 7
	errorFetchLimit = 100
	recentErrors    = 50
	messageLength   = 200
)

// errorMarkers are checked in order; the first substring found names the type.
var errorMarkers = []struct {
	marker    string
	errorType string
}{
	{"TypeError", "TypeError"},
	{"KeyError", "KeyError"},
	{"ValueError", "ValueError"},
	{"ConnectionError", "ConnectionError"},
	{"TimeoutError", "TimeoutError"},
	{"500", "ServerError"},
	{"404", "NotFound"},
	{"503", "ServiceUnavailable"},
}

// ClassifyError names the kind of failure a log message describes.
func ClassifyError(message string) string {
	for _, m := range errorMarkers {
		if strings.Contains(message, m.marker) {
			return m.errorType
		}
	}
	return "Error"
}

func (s *Set) Errors(ctx context.Context) (ErrorMetrics, error) {
	if s.Logs == nil {
		return ErrorMetrics{}, errors.New("no GCP project configured")
	}

	now := s.clock()
	entries, err := s.Logs.ErrorEntries(ctx, now.AddDate(0, 0, -errorWindowDays), errorFetchLimit)
	if err != nil {
		return ErrorMetrics{}, err
	}

	result := ErrorMetrics{
		Recent:     []LoggedError{},
		ByType:     []ErrorTypeCount{},
		ByEndpoint: []ErrorTypeCount{},
		Source:     "Cloud Run Logs",
	}

	byType := map[string]int{}
	dayAgo := now.Add(-24 * time.Hour)
	for _, entry := range entries {
		message := entry.Message
		if message == "" {
			message = "No message"
		}

		timestamp := entry.Timestamp
		if timestamp.IsZero() {
			timestamp = now
		}

		errorType := ClassifyError(message)
		byType[errorType]++
		result.Errors7d++
		if !timestamp.Before(dayAgo) {
			result.Errors24h++
		}

		if len(result.Recent) < recentErrors {
			result.Recent = append(result.Recent, LoggedError{
				ID:        entry.InsertID,
				ErrorType: errorType,
				Message:   textutil.Truncate(message, messageLength),
				Severity:  entry.Severity,
				CreatedAt: timestamp.UTC().Format(time.RFC3339),
			})
		}
	}
	result.Unresolved = result.Errors7d

	for errorType, count := range byType {
		result.ByType = append(result.ByType, ErrorTypeCount{ErrorType: errorType, Count: count})
	}
	sort.Slice(result.ByType, func(i, j int) bool {
		if result.ByType[i].Count != result.ByType[j].Count {
			return result.ByType[i].Count > result.ByType[j].Count
		}
		return result.ByType[i].ErrorType < result.ByType[j].ErrorType
	})

	return result, nil
}
