package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

// LotUpdate is a partial patch for a lot.
type LotUpdate struct {
	ExpDate *time.Time
	Status  *models.LotStatus
}

type LotService interface {
	Create(ctx context.Context, lot *models.Lot) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lot, error)
	Update(ctx context.Context, id uuid.UUID, patch LotUpdate) (*models.Lot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.LotView, error)
}

type lotService struct {
	lotRepo     repositories.LotRepository
	productRepo repositories.ProductRepository
}

func NewLotService(lotRepo repositories.LotRepository, productRepo repositories.ProductRepository) LotService {
	return &lotService{lotRepo: lotRepo, productRepo: productRepo}
}

func (s *lotService) Create(ctx context.Context, lot *models.Lot) error {
	if lot.LotNo == "" {
		return fmt.Errorf("%w: lot number is required", common.ErrValidation)
	}
	if lot.TotalQty <= 0 {
		return fmt.Errorf("%w: total quantity must be greater than 0", common.ErrValidation)
	}
	if _, err := s.productRepo.GetByID(ctx, lot.ProductID); err != nil {
		return fmt.Errorf("product %s: %w", lot.ProductID, err)
	}

	lot.ID = uuid.New()
	lot.AvailableQty = lot.TotalQty
	if lot.Status == "" {
		lot.Status = models.LotActive
	}
	return s.lotRepo.Create(ctx, lot)
}

func (s *lotService) GetByID(ctx context.Context, id uuid.UUID) (*models.Lot, error) {
	return s.lotRepo.GetByID(ctx, id)
}

func (s *lotService) Update(ctx context.Context, id uuid.UUID, patch LotUpdate) (*models.Lot, error) {
	lot, err := s.lotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.ExpDate != nil {
		lot.ExpDate = *patch.ExpDate
	}
	if patch.Status != nil {
		lot.Status = *patch.Status
	}

	lot.UpdatedAt = time.Now()
	if err := s.lotRepo.Update(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// Delete refuses to remove a lot that is still partially stored; inventory
// rows must be removed first so location quantities stay consistent.
func (s *lotService) Delete(ctx context.Context, id uuid.UUID) error {
	lot, err := s.lotRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lot.AvailableQty != lot.TotalQty {
		return fmt.Errorf("%w: lot %s still has stored inventory", common.ErrConflict, lot.LotNo)
	}
	return s.lotRepo.Delete(ctx, id)
}

func (s *lotService) List(ctx context.Context) ([]*models.LotView, error) {
	return s.lotRepo.List(ctx)
}
