package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

type DeletionService interface {
	ListPending(ctx context.Context) ([]models.DeletionRequest, error)
	Process(ctx context.Context, patientCode string) error
}

type deletionService struct {
	deletionRepo repository.DeletionRepository
}

func NewDeletionService(deletionRepo repository.DeletionRepository) DeletionService {
	return &deletionService{deletionRepo: deletionRepo}
}

func (d *deletionService) ListPending(ctx context.Context) ([]models.DeletionRequest, error) {
	return d.deletionRepo.ListPending(ctx)
}

func (d *deletionService) Process(ctx context.Context, patientCode string) error {
	patientCode = strings.TrimSpace(patientCode)
	if patientCode == "" {
		return fmt.Errorf("patient_code required: %w", ErrValidation)
	}

	if err := d.deletionRepo.Process(ctx, patientCode); err != nil {
		return err
	}

	slog.Info("deletion request processed", "patient_code", patientCode)
	return nil
}
