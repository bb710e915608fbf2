package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldmart/internal/models"
)

type ZoneRepository interface {
	Create(ctx context.Context, zone *models.Zone) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	Update(ctx context.Context, zone *models.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.ZoneView, error)
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]*models.Zone, error)
}

type zoneRepo struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) ZoneRepository {
	return &zoneRepo{db: db}
}

func (r *zoneRepo) Create(ctx context.Context, zone *models.Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *zoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	var zone models.Zone
	if err := r.db.WithContext(ctx).First(&zone, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &zone, nil
}

func (r *zoneRepo) Update(ctx context.Context, zone *models.Zone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

func (r *zoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Zone{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *zoneRepo) List(ctx context.Context) ([]*models.ZoneView, error) {
	var views []*models.ZoneView
	err := r.db.WithContext(ctx).
		Table("zones").
		Select("zones.*, warehouses.name AS warehouse_name").
		Joins("LEFT JOIN warehouses ON warehouses.id = zones.warehouse_id").
		Order("zones.code").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *zoneRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]*models.Zone, error) {
	var zones []*models.Zone
	if err := r.db.WithContext(ctx).Where("warehouse_id = ?", warehouseID).Order("code").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}
