package jobs

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

// TelemetrySimulator emulates live cold-room telemetry: each tick nudges
// every temperature sensor around its zone's target, occasionally injects an
// excursion, and raises an alert when a reading leaves the permitted band.
type TelemetrySimulator struct {
	sensorRepo repositories.SensorRepository
	zoneRepo   repositories.ZoneRepository
	alertRepo  repositories.AlertRepository
	clock      clockwork.Clock
	logger     *zap.Logger

	excursionChance float64
	excursionDelta  float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTelemetrySimulator(
	sensorRepo repositories.SensorRepository,
	zoneRepo repositories.ZoneRepository,
	alertRepo repositories.AlertRepository,
	clock clockwork.Clock,
	logger *zap.Logger,
	excursionChance float64,
	seed int64,
) *TelemetrySimulator {
	return &TelemetrySimulator{
		sensorRepo:      sensorRepo,
		zoneRepo:        zoneRepo,
		alertRepo:       alertRepo,
		clock:           clock,
		logger:          logger,
		excursionChance: excursionChance,
		excursionDelta:  5,
		rng:             rand.New(rand.NewSource(seed)),
	}
}

// Tick runs one simulation pass over all temperature sensors. Sensors are
// processed in id order and the pass runs to completion; ticks never
// overlap.
func (t *TelemetrySimulator) Tick(ctx context.Context) error {
	sensors, err := t.sensorRepo.ListByType(ctx, models.SensorTemperature)
	if err != nil {
		return fmt.Errorf("list temperature sensors: %w", err)
	}

	now := t.clock.Now()
	for _, sensor := range sensors {
		zone, err := t.zoneRepo.GetByID(ctx, sensor.ZoneID)
		if err != nil {
			// Orphaned sensor: mark it faulty and move on.
			sensor.Status = models.SensorError
			sensor.LastUpdated = now
			if err := t.sensorRepo.Update(ctx, sensor); err != nil {
				t.logger.Warn("update orphaned sensor", zap.String("sensor", sensor.ID.String()), zap.Error(err))
			}
			continue
		}

		newValue := t.nextReading(zone)
		status := models.SensorOnline
		if newValue < zone.TempMin || newValue > zone.TempMax {
			status = models.SensorWarning
		}

		sensor.CurrentValue = newValue
		sensor.Status = status
		sensor.LastUpdated = now
		if err := t.sensorRepo.Update(ctx, sensor); err != nil {
			return fmt.Errorf("update sensor %s: %w", sensor.ID, err)
		}

		if status == models.SensorWarning {
			if err := t.raiseAlert(ctx, sensor, zone, newValue); err != nil {
				return err
			}
		}
	}
	return nil
}

// nextReading jitters around the zone target and, with a small probability,
// injects a full excursion to exercise the alerting path.
func (t *TelemetrySimulator) nextReading(zone *models.Zone) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	value := zone.TempTarget + (t.rng.Float64()*2 - 1)
	if t.rng.Float64() < t.excursionChance {
		if t.rng.Float64() < 0.5 {
			value = zone.TempTarget + t.excursionDelta
		} else {
			value = zone.TempTarget - t.excursionDelta
		}
	}
	return value
}

// raiseAlert creates a HIGH severity alert for an out-of-band reading unless
// the sensor already has one open.
func (t *TelemetrySimulator) raiseAlert(ctx context.Context, sensor *models.Sensor, zone *models.Zone, value float64) error {
	existing, err := t.alertRepo.FindOpenBySensor(ctx, sensor.ID)
	if err != nil {
		return fmt.Errorf("check open alert for sensor %s: %w", sensor.ID, err)
	}
	if existing != nil {
		return nil
	}

	alertType := models.AlertTempHigh
	if value < zone.TempMin {
		alertType = models.AlertTempLow
	}

	sensorID := sensor.ID
	zoneID := zone.ID
	alert := &models.Alert{
		ID:       uuid.New(),
		Type:     alertType,
		Severity: models.SeverityHigh,
		Message: fmt.Sprintf("%s reads %.1f%s, outside [%.1f, %.1f] in %s",
			sensor.Name, value, sensor.Unit, zone.TempMin, zone.TempMax, zone.Name),
		ZoneID:   &zoneID,
		SensorID: &sensorID,
		Status:   models.AlertOpen,
	}
	if err := t.alertRepo.Create(ctx, alert); err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	t.logger.Info("temperature alert raised",
		zap.String("sensor", sensor.Name),
		zap.String("zone", zone.Name),
		zap.Float64("value", value),
		zap.String("type", string(alertType)))
	return nil
}
