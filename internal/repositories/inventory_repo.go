package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldmart/internal/models"
)

type InventoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error)
	List(ctx context.Context) ([]*models.InventoryView, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*models.Inventory, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := r.db.WithContext(ctx).First(&inventory, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &inventory, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]*models.InventoryView, error) {
	var views []*models.InventoryView
	err := r.db.WithContext(ctx).
		Table("inventories").
		Select(`inventories.*,
			lots.lot_no AS lot_no, lots.exp_date AS exp_date, lots.product_id AS product_id,
			products.name AS product_name, products.sku AS product_sku, products.temp_class AS temp_class,
			locations.code AS location_code, locations.zone_id AS zone_id,
			zones.name AS zone_name`).
		Joins("LEFT JOIN lots ON lots.id = inventories.lot_id").
		Joins("LEFT JOIN products ON products.id = lots.product_id").
		Joins("LEFT JOIN locations ON locations.id = inventories.location_id").
		Joins("LEFT JOIN zones ON zones.id = locations.zone_id").
		Order("locations.code").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *inventoryRepo) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*models.Inventory, error) {
	var rows []*models.Inventory
	if err := r.db.WithContext(ctx).Where("location_id = ?", locationID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
