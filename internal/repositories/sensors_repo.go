package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldmart/internal/models"
)

type SensorRepository interface {
	Create(ctx context.Context, sensor *models.Sensor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sensor, error)
	Update(ctx context.Context, sensor *models.Sensor) error
	List(ctx context.Context) ([]*models.SensorView, error)
	ListByType(ctx context.Context, sensorType models.SensorType) ([]*models.Sensor, error)
}

type sensorRepo struct {
	db *gorm.DB
}

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepo{db: db}
}

func (r *sensorRepo) Create(ctx context.Context, sensor *models.Sensor) error {
	return r.db.WithContext(ctx).Create(sensor).Error
}

func (r *sensorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Sensor, error) {
	var sensor models.Sensor
	if err := r.db.WithContext(ctx).First(&sensor, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sensor, nil
}

func (r *sensorRepo) Update(ctx context.Context, sensor *models.Sensor) error {
	return r.db.WithContext(ctx).Save(sensor).Error
}

func (r *sensorRepo) List(ctx context.Context) ([]*models.SensorView, error) {
	var views []*models.SensorView
	err := r.db.WithContext(ctx).
		Table("sensors").
		Select("sensors.*, zones.name AS zone_name").
		Joins("LEFT JOIN zones ON zones.id = sensors.zone_id").
		Order("sensors.name").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListByType returns sensors of one type ordered by id so simulator ticks
// are deterministic.
func (r *sensorRepo) ListByType(ctx context.Context, sensorType models.SensorType) ([]*models.Sensor, error) {
	var sensors []*models.Sensor
	if err := r.db.WithContext(ctx).Where("type = ?", sensorType).Order("id").Find(&sensors).Error; err != nil {
		return nil, err
	}
	return sensors, nil
}
