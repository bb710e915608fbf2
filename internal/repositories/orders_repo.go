package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldmart/internal/models"
)

type InboundOrderRepository interface {
	Create(ctx context.Context, order *models.InboundOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InboundOrder, error)
	Update(ctx context.Context, order *models.InboundOrder) error
	List(ctx context.Context) ([]*models.InboundOrder, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type inboundOrderRepo struct {
	db *gorm.DB
}

func NewInboundOrderRepository(db *gorm.DB) InboundOrderRepository {
	return &inboundOrderRepo{db: db}
}

func (r *inboundOrderRepo) Create(ctx context.Context, order *models.InboundOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *inboundOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InboundOrder, error) {
	var order models.InboundOrder
	if err := r.db.WithContext(ctx).Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *inboundOrderRepo) Update(ctx context.Context, order *models.InboundOrder) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

func (r *inboundOrderRepo) List(ctx context.Context) ([]*models.InboundOrder, error) {
	var orders []*models.InboundOrder
	if err := r.db.WithContext(ctx).Preload("Lines").Order("order_no").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *inboundOrderRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InboundOrder{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

type OutboundOrderRepository interface {
	Create(ctx context.Context, order *models.OutboundOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error)
	Update(ctx context.Context, order *models.OutboundOrder) error
	List(ctx context.Context) ([]*models.OutboundOrder, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type outboundOrderRepo struct {
	db *gorm.DB
}

func NewOutboundOrderRepository(db *gorm.DB) OutboundOrderRepository {
	return &outboundOrderRepo{db: db}
}

func (r *outboundOrderRepo) Create(ctx context.Context, order *models.OutboundOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *outboundOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error) {
	var order models.OutboundOrder
	if err := r.db.WithContext(ctx).Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *outboundOrderRepo) Update(ctx context.Context, order *models.OutboundOrder) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

func (r *outboundOrderRepo) List(ctx context.Context) ([]*models.OutboundOrder, error) {
	var orders []*models.OutboundOrder
	if err := r.db.WithContext(ctx).Preload("Lines").Order("order_no").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *outboundOrderRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OutboundOrder{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
