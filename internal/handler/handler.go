package handlers

import (
	"github.com/go-playground/validator/v10"

	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	PostService     service.PostService
	CommentService  service.CommentService
	CostService     service.CostService
	DeletionService service.DeletionService
	AuditService    service.AuditService
	MetricsService  service.MetricsService
	FeedService     service.FeedService
	Pages           *Pages
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		PostService:     service.Post,
		CommentService:  service.Comment,
		CostService:     service.Cost,
		DeletionService: service.Deletion,
		AuditService:    service.Audit,
		MetricsService:  service.Metrics,
		FeedService:     service.Feed,
		Pages:           NewPages(config.Blog),
		Cfg:             config,
		Validate:        validator.New(),
	}
}
