package collector

import (
	"context"

	"loveuadAdmin/internal/repository"
)

const recentAuditEntries = 50

// AcceptanceRate is the share of rated AI outputs the user accepted.
func AcceptanceRate(counts repository.UserActionCounts) float64 {
	return Percent(counts.Accepted, counts.Total)
}

func (s *Set) Compliance(ctx context.Context) (ComplianceMetrics, error) {
	since := s.clock().AddDate(0, 0, -30)

	total, err := s.Audit.CountSince(ctx, since)
	if err != nil {
		return ComplianceMetrics{}, err
	}

	byType, err := s.Audit.CountByActionType(ctx, since)
	if err != nil {
		return ComplianceMetrics{}, err
	}

	actions, err := s.Audit.UserActionCounts(ctx, since)
	if err != nil {
		return ComplianceMetrics{}, err
	}

	recent, err := s.Audit.List(ctx, "", recentAuditEntries)
	if err != nil {
		return ComplianceMetrics{}, err
	}

	return ComplianceMetrics{
		TotalActions:   total,
		ByType:         byType,
		AcceptanceRate: AcceptanceRate(actions),
		Accepted:       actions.Accepted,
		Rejected:       actions.Rejected,
		Modified:       actions.Modified,
		Recent:         recent,
	}, nil
}

func (s *Set) Deletions(ctx context.Context) (DeletionMetrics, error) {
	pending, err := s.Deletion.ListPending(ctx)
	if err != nil {
		return DeletionMetrics{}, err
	}

	return DeletionMetrics{Pending: pending, Count: len(pending)}, nil
}
