package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

type InventoryService interface {
	Create(ctx context.Context, lotID, locationID uuid.UUID, qty int) (*models.Inventory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error)
	UpdateQty(ctx context.Context, id uuid.UUID, qty int) (*models.Inventory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.InventoryView, error)
}

// inventoryService applies put-away and removal with their cross-entity side
// effects (location quantity/status, lot availability) inside a single
// transaction.
type inventoryService struct {
	db            *gorm.DB
	inventoryRepo repositories.InventoryRepository
}

func NewInventoryService(db *gorm.DB, inventoryRepo repositories.InventoryRepository) InventoryService {
	return &inventoryService{db: db, inventoryRepo: inventoryRepo}
}

func (s *inventoryService) Create(ctx context.Context, lotID, locationID uuid.UUID, qty int) (*models.Inventory, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", common.ErrValidation)
	}

	inventory := &models.Inventory{
		ID:         uuid.New(),
		LotID:      lotID,
		LocationID: locationID,
		Qty:        qty,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location models.Location
		if err := tx.First(&location, "id = ?", locationID).Error; err != nil {
			return fmt.Errorf("location %s: %w", locationID, common.ErrNotFound)
		}
		var lot models.Lot
		if err := tx.First(&lot, "id = ?", lotID).Error; err != nil {
			return fmt.Errorf("lot %s: %w", lotID, common.ErrNotFound)
		}

		if location.Status == models.LocationBlocked {
			return fmt.Errorf("%w: location %s is blocked", common.ErrValidation, location.Code)
		}
		if location.CurrentQty+qty > location.MaxQty {
			return fmt.Errorf("%w: location %s can hold %d more units, requested %d",
				common.ErrValidation, location.Code, location.MaxQty-location.CurrentQty, qty)
		}
		if lot.AvailableQty < qty {
			return fmt.Errorf("%w: lot %s has only %d units available", common.ErrValidation, lot.LotNo, lot.AvailableQty)
		}

		if err := tx.Create(inventory).Error; err != nil {
			return err
		}

		location.CurrentQty += qty
		location.Status = models.DeriveLocationStatus(location.CurrentQty, location.MaxQty, location.Status)
		location.UpdatedAt = time.Now()
		if err := tx.Save(&location).Error; err != nil {
			return err
		}

		lot.AvailableQty -= qty
		lot.UpdatedAt = time.Now()
		return tx.Save(&lot).Error
	})
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

func (s *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	return s.inventoryRepo.GetByID(ctx, id)
}

// UpdateQty moves an inventory record to a new quantity, applying the delta
// to the owning location and lot.
func (s *inventoryService) UpdateQty(ctx context.Context, id uuid.UUID, qty int) (*models.Inventory, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", common.ErrValidation)
	}

	var inventory models.Inventory
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inventory, "id = ?", id).Error; err != nil {
			return common.ErrNotFound
		}
		delta := qty - inventory.Qty
		if delta == 0 {
			return nil
		}

		var location models.Location
		if err := tx.First(&location, "id = ?", inventory.LocationID).Error; err != nil {
			return err
		}
		var lot models.Lot
		if err := tx.First(&lot, "id = ?", inventory.LotID).Error; err != nil {
			return err
		}

		if location.CurrentQty+delta > location.MaxQty {
			return fmt.Errorf("%w: location %s cannot hold %d units", common.ErrValidation, location.Code, location.CurrentQty+delta)
		}
		if delta > 0 && lot.AvailableQty < delta {
			return fmt.Errorf("%w: lot %s has only %d units available", common.ErrValidation, lot.LotNo, lot.AvailableQty)
		}

		inventory.Qty = qty
		inventory.UpdatedAt = time.Now()
		if err := tx.Save(&inventory).Error; err != nil {
			return err
		}

		location.CurrentQty += delta
		if location.CurrentQty < 0 {
			location.CurrentQty = 0
		}
		location.Status = models.DeriveLocationStatus(location.CurrentQty, location.MaxQty, location.Status)
		location.UpdatedAt = time.Now()
		if err := tx.Save(&location).Error; err != nil {
			return err
		}

		lot.AvailableQty -= delta
		if lot.AvailableQty > lot.TotalQty {
			lot.AvailableQty = lot.TotalQty
		}
		lot.UpdatedAt = time.Now()
		return tx.Save(&lot).Error
	})
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// Delete removes an inventory record and returns its quantity to the
// location (clamped at zero) and to the lot's availability.
func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inventory models.Inventory
		if err := tx.First(&inventory, "id = ?", id).Error; err != nil {
			return common.ErrNotFound
		}

		if err := tx.Delete(&models.Inventory{}, "id = ?", id).Error; err != nil {
			return err
		}

		var location models.Location
		if err := tx.First(&location, "id = ?", inventory.LocationID).Error; err == nil {
			location.CurrentQty -= inventory.Qty
			if location.CurrentQty < 0 {
				location.CurrentQty = 0
			}
			location.Status = models.DeriveLocationStatus(location.CurrentQty, location.MaxQty, location.Status)
			location.UpdatedAt = time.Now()
			if err := tx.Save(&location).Error; err != nil {
				return err
			}
		}

		var lot models.Lot
		if err := tx.First(&lot, "id = ?", inventory.LotID).Error; err == nil {
			lot.AvailableQty += inventory.Qty
			if lot.AvailableQty > lot.TotalQty {
				lot.AvailableQty = lot.TotalQty
			}
			lot.UpdatedAt = time.Now()
			if err := tx.Save(&lot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *inventoryService) List(ctx context.Context) ([]*models.InventoryView, error) {
	return s.inventoryRepo.List(ctx)
}
