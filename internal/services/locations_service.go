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

// LocationUpdate is a partial patch for a location. Nil fields are left
// untouched.
type LocationUpdate struct {
	Code       *string
	MaxQty     *int
	CurrentQty *int
	Status     *models.LocationStatus
}

type LocationService interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	Update(ctx context.Context, id uuid.UUID, patch LocationUpdate) (*models.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, zoneID *uuid.UUID) ([]*models.Location, error)
}

type locationService struct {
	locationRepo  repositories.LocationRepository
	zoneRepo      repositories.ZoneRepository
	inventoryRepo repositories.InventoryRepository
}

func NewLocationService(locationRepo repositories.LocationRepository, zoneRepo repositories.ZoneRepository, inventoryRepo repositories.InventoryRepository) LocationService {
	return &locationService{
		locationRepo:  locationRepo,
		zoneRepo:      zoneRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *locationService) Create(ctx context.Context, location *models.Location) error {
	if location.Code == "" {
		return fmt.Errorf("%w: location code is required", common.ErrValidation)
	}
	if location.MaxQty <= 0 {
		return fmt.Errorf("%w: max quantity must be greater than 0", common.ErrValidation)
	}
	if location.CurrentQty < 0 || location.CurrentQty > location.MaxQty {
		return fmt.Errorf("%w: current quantity must be within [0, max]", common.ErrValidation)
	}
	if _, err := s.zoneRepo.GetByID(ctx, location.ZoneID); err != nil {
		return fmt.Errorf("zone %s: %w", location.ZoneID, err)
	}

	location.ID = uuid.New()
	if location.Status == "" {
		location.Status = models.DeriveLocationStatus(location.CurrentQty, location.MaxQty, "")
	}
	return s.locationRepo.Create(ctx, location)
}

func (s *locationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	return s.locationRepo.GetByID(ctx, id)
}

// Update merges the patch and recomputes the status whenever the quantity
// relationship changed, unless the patch assigns a status explicitly
// (operators setting RESERVED/BLOCKED).
func (s *locationService) Update(ctx context.Context, id uuid.UUID, patch LocationUpdate) (*models.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	qtyChanged := false
	if patch.Code != nil {
		location.Code = *patch.Code
	}
	if patch.MaxQty != nil {
		if *patch.MaxQty <= 0 {
			return nil, fmt.Errorf("%w: max quantity must be greater than 0", common.ErrValidation)
		}
		location.MaxQty = *patch.MaxQty
		qtyChanged = true
	}
	if patch.CurrentQty != nil {
		if *patch.CurrentQty < 0 {
			return nil, fmt.Errorf("%w: current quantity cannot be negative", common.ErrValidation)
		}
		location.CurrentQty = *patch.CurrentQty
		qtyChanged = true
	}
	if location.CurrentQty > location.MaxQty {
		return nil, fmt.Errorf("%w: current quantity %d exceeds max %d", common.ErrValidation, location.CurrentQty, location.MaxQty)
	}

	if patch.Status != nil {
		location.Status = *patch.Status
	} else if qtyChanged {
		location.Status = models.DeriveLocationStatus(location.CurrentQty, location.MaxQty, location.Status)
	}

	location.UpdatedAt = time.Now()
	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.inventoryRepo.ListByLocation(ctx, id)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return fmt.Errorf("%w: location still holds %d inventory records", common.ErrConflict, len(rows))
	}
	return s.locationRepo.Delete(ctx, id)
}

func (s *locationService) List(ctx context.Context, zoneID *uuid.UUID) ([]*models.Location, error) {
	if zoneID != nil {
		return s.locationRepo.ListByZone(ctx, *zoneID)
	}
	return s.locationRepo.List(ctx)
}
