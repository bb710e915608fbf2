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

// ZoneUpdate is a partial patch for a zone.
type ZoneUpdate struct {
	Name            *string
	TempMin         *float64
	TempMax         *float64
	TempTarget      *float64
	CapacityPallets *int
}

type ZoneService interface {
	Create(ctx context.Context, zone *models.Zone) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	Update(ctx context.Context, id uuid.UUID, patch ZoneUpdate) (*models.Zone, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.ZoneView, error)
}

type zoneService struct {
	zoneRepo      repositories.ZoneRepository
	warehouseRepo repositories.WarehouseRepository
	locationRepo  repositories.LocationRepository
}

func NewZoneService(zoneRepo repositories.ZoneRepository, warehouseRepo repositories.WarehouseRepository, locationRepo repositories.LocationRepository) ZoneService {
	return &zoneService{
		zoneRepo:      zoneRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
	}
}

func (s *zoneService) Create(ctx context.Context, zone *models.Zone) error {
	if zone.Name == "" || zone.Code == "" {
		return fmt.Errorf("%w: zone name and code are required", common.ErrValidation)
	}
	if zone.TempMin > zone.TempMax {
		return fmt.Errorf("%w: temp_min %.1f exceeds temp_max %.1f", common.ErrValidation, zone.TempMin, zone.TempMax)
	}
	if zone.TempTarget < zone.TempMin || zone.TempTarget > zone.TempMax {
		return fmt.Errorf("%w: temp_target must be within [temp_min, temp_max]", common.ErrValidation)
	}
	if _, err := s.warehouseRepo.GetByID(ctx, zone.WarehouseID); err != nil {
		return fmt.Errorf("warehouse %s: %w", zone.WarehouseID, err)
	}
	zone.ID = uuid.New()
	return s.zoneRepo.Create(ctx, zone)
}

func (s *zoneService) GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	return s.zoneRepo.GetByID(ctx, id)
}

func (s *zoneService) Update(ctx context.Context, id uuid.UUID, patch ZoneUpdate) (*models.Zone, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		zone.Name = *patch.Name
	}
	if patch.TempMin != nil {
		zone.TempMin = *patch.TempMin
	}
	if patch.TempMax != nil {
		zone.TempMax = *patch.TempMax
	}
	if patch.TempTarget != nil {
		zone.TempTarget = *patch.TempTarget
	}
	if patch.CapacityPallets != nil {
		zone.CapacityPallets = *patch.CapacityPallets
	}

	if zone.TempMin > zone.TempMax {
		return nil, fmt.Errorf("%w: temp_min %.1f exceeds temp_max %.1f", common.ErrValidation, zone.TempMin, zone.TempMax)
	}
	if zone.TempTarget < zone.TempMin || zone.TempTarget > zone.TempMax {
		return nil, fmt.Errorf("%w: temp_target must be within [temp_min, temp_max]", common.ErrValidation)
	}

	zone.UpdatedAt = time.Now()
	if err := s.zoneRepo.Update(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *zoneService) Delete(ctx context.Context, id uuid.UUID) error {
	locations, err := s.locationRepo.ListByZone(ctx, id)
	if err != nil {
		return err
	}
	if len(locations) > 0 {
		return fmt.Errorf("%w: zone still has %d locations", common.ErrConflict, len(locations))
	}
	return s.zoneRepo.Delete(ctx, id)
}

func (s *zoneService) List(ctx context.Context) ([]*models.ZoneView, error) {
	return s.zoneRepo.List(ctx)
}
