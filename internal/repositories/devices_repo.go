package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldmart/internal/models"
)

type DeviceRepository interface {
	Create(ctx context.Context, device *models.Device) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Device, error)
	Update(ctx context.Context, device *models.Device) error
	List(ctx context.Context) ([]*models.Device, error)
}

type deviceRepo struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepo{db: db}
}

func (r *deviceRepo) Create(ctx context.Context, device *models.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *deviceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	var device models.Device
	if err := r.db.WithContext(ctx).First(&device, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &device, nil
}

func (r *deviceRepo) Update(ctx context.Context, device *models.Device) error {
	return r.db.WithContext(ctx).Save(device).Error
}

func (r *deviceRepo) List(ctx context.Context) ([]*models.Device, error) {
	var devices []*models.Device
	if err := r.db.WithContext(ctx).Order("name").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}
