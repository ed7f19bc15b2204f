package service

import (
	"errors"

	"loveuadAdmin/internal/collector"
	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/repository"
	"loveuadAdmin/internal/storage"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("invalid credentials")
	ErrForbidden       = errors.New("forbidden")
	ErrStorageDisabled = errors.New("image storage is not configured")
)

type Service struct {
	Auth     AuthService
	Post     PostService
	Comment  CommentService
	Cost     CostService
	Deletion DeletionService
	Audit    AuditService
	Metrics  MetricsService
	Feed     FeedService
}

// NewService wires the services. store may be nil when MinIO is not configured.
func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage, collectors *collector.Set) (*Service, error) {
	auth, err := NewAuthService(cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		Auth:     auth,
		Post:     NewPostService(rep.Post, store, cfg),
		Comment:  NewCommentService(rep.Comment),
		Cost:     NewCostService(rep.Cost),
		Deletion: NewDeletionService(rep.Deletion),
		Audit:    NewAuditService(rep.Audit),
		Metrics:  NewMetricsService(collectors),
		Feed:     NewFeedService(rep.Post, cfg),
	}, nil
}
