package service

import (
	"context"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 1000
)

type AuditService interface {
	Trail(ctx context.Context, codeHash string, limit int) ([]models.AiAuditLogEntry, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Trail lists audit entries newest first. limit is clamped to
// [1, MaxAuditLimit]; zero or less selects DefaultAuditLimit.
func (a *auditService) Trail(ctx context.Context, codeHash string, limit int) ([]models.AiAuditLogEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		limit = MaxAuditLimit
	}

	return a.auditRepo.List(ctx, codeHash, limit)
}
