package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

type AlertService interface {
	List(ctx context.Context, status *models.AlertStatus) ([]*models.Alert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

type alertService struct {
	alertRepo repositories.AlertRepository
}

func NewAlertService(alertRepo repositories.AlertRepository) AlertService {
	return &alertService{alertRepo: alertRepo}
}

func (s *alertService) List(ctx context.Context, status *models.AlertStatus) ([]*models.Alert, error) {
	return s.alertRepo.List(ctx, status)
}

func (s *alertService) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	return s.alertRepo.GetByID(ctx, id)
}

// Resolve marks an alert RESOLVED with a resolution timestamp. Resolving an
// already resolved alert is a no-op that returns the record unchanged.
func (s *alertService) Resolve(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert.Status == models.AlertResolved {
		return alert, nil
	}

	now := time.Now()
	alert.Status = models.AlertResolved
	alert.ResolvedAt = &now
	alert.UpdatedAt = now
	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}
