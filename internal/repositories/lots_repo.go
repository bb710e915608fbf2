package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldmart/internal/models"
)

type LotRepository interface {
	Create(ctx context.Context, lot *models.Lot) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lot, error)
	Update(ctx context.Context, lot *models.Lot) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.LotView, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

type lotRepo struct {
	db *gorm.DB
}

func NewLotRepository(db *gorm.DB) LotRepository {
	return &lotRepo{db: db}
}

func (r *lotRepo) Create(ctx context.Context, lot *models.Lot) error {
	return r.db.WithContext(ctx).Create(lot).Error
}

func (r *lotRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lot, error) {
	var lot models.Lot
	if err := r.db.WithContext(ctx).First(&lot, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &lot, nil
}

func (r *lotRepo) Update(ctx context.Context, lot *models.Lot) error {
	return r.db.WithContext(ctx).Save(lot).Error
}

func (r *lotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Lot{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *lotRepo) List(ctx context.Context) ([]*models.LotView, error) {
	var views []*models.LotView
	err := r.db.WithContext(ctx).
		Table("lots").
		Select("lots.*, products.name AS product_name, products.sku AS product_sku, products.temp_class AS temp_class").
		Joins("LEFT JOIN products ON products.id = lots.product_id").
		Order("lots.lot_no").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *lotRepo) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Lot{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
