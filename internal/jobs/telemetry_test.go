package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coldmart/internal/models"
	"coldmart/internal/repositories"
	"coldmart/pkg/database"
)

type TelemetrySimulatorTestSuite struct {
	suite.Suite
	db         *gorm.DB
	sensorRepo repositories.SensorRepository
	zoneRepo   repositories.ZoneRepository
	alertRepo  repositories.AlertRepository
	clock      *clockwork.FakeClock
	ctx        context.Context
	zone       *models.Zone
	sensor     *models.Sensor
}

func (suite *TelemetrySimulatorTestSuite) SetupTest() {
	db, err := database.OpenTest()
	suite.Require().NoError(err)
	suite.db = db
	suite.sensorRepo = repositories.NewSensorRepository(db)
	suite.zoneRepo = repositories.NewZoneRepository(db)
	suite.alertRepo = repositories.NewAlertRepository(db)
	suite.clock = clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	suite.ctx = context.Background()

	warehouse := &models.Warehouse{ID: uuid.New(), Name: "DC-1", Code: "WH-1"}
	suite.Require().NoError(db.Create(warehouse).Error)

	// Band is narrower than the excursion delta so a forced excursion is
	// always out of range while normal jitter never is.
	suite.zone = &models.Zone{
		ID:          uuid.New(),
		WarehouseID: warehouse.ID,
		Name:        "Freezer 1",
		Code:        "Z-F1",
		TempMin:     -22,
		TempMax:     -18,
		TempTarget:  -20,
	}
	suite.Require().NoError(db.Create(suite.zone).Error)

	suite.sensor = &models.Sensor{
		ID:     uuid.New(),
		ZoneID: suite.zone.ID,
		Name:   "F1-TEMP-1",
		Type:   models.SensorTemperature,
		Unit:   "°C",
		Status: models.SensorOnline,
	}
	suite.Require().NoError(db.Create(suite.sensor).Error)
}

func (suite *TelemetrySimulatorTestSuite) newSimulator(excursionChance float64) *TelemetrySimulator {
	return NewTelemetrySimulator(
		suite.sensorRepo, suite.zoneRepo, suite.alertRepo,
		suite.clock, zap.NewNop(), excursionChance, 42,
	)
}

func (suite *TelemetrySimulatorTestSuite) openAlerts() []*models.Alert {
	open := models.AlertOpen
	alerts, err := suite.alertRepo.List(suite.ctx, &open)
	suite.Require().NoError(err)
	return alerts
}

func (suite *TelemetrySimulatorTestSuite) TestTick_InBandReadingStaysOnline() {
	sim := suite.newSimulator(0)

	suite.Require().NoError(sim.Tick(suite.ctx))

	sensor, err := suite.sensorRepo.GetByID(suite.ctx, suite.sensor.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.SensorOnline, sensor.Status)
	assert.GreaterOrEqual(suite.T(), sensor.CurrentValue, suite.zone.TempMin)
	assert.LessOrEqual(suite.T(), sensor.CurrentValue, suite.zone.TempMax)
	assert.True(suite.T(), sensor.LastUpdated.Equal(suite.clock.Now()))
	assert.Empty(suite.T(), suite.openAlerts())
}

func (suite *TelemetrySimulatorTestSuite) TestTick_ExcursionRaisesAlert() {
	sim := suite.newSimulator(1)

	suite.Require().NoError(sim.Tick(suite.ctx))

	sensor, err := suite.sensorRepo.GetByID(suite.ctx, suite.sensor.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.SensorWarning, sensor.Status)

	alerts := suite.openAlerts()
	suite.Require().Len(alerts, 1)
	alert := alerts[0]
	assert.Equal(suite.T(), models.SeverityHigh, alert.Severity)
	assert.Equal(suite.T(), suite.sensor.ID, *alert.SensorID)
	assert.Equal(suite.T(), suite.zone.ID, *alert.ZoneID)
	if sensor.CurrentValue > suite.zone.TempMax {
		assert.Equal(suite.T(), models.AlertTempHigh, alert.Type)
	} else {
		assert.Equal(suite.T(), models.AlertTempLow, alert.Type)
	}
}

func (suite *TelemetrySimulatorTestSuite) TestTick_OpenAlertIsNotDuplicated() {
	sim := suite.newSimulator(1)

	suite.Require().NoError(sim.Tick(suite.ctx))
	suite.Require().NoError(sim.Tick(suite.ctx))
	suite.Require().NoError(sim.Tick(suite.ctx))

	assert.Len(suite.T(), suite.openAlerts(), 1)
}

func (suite *TelemetrySimulatorTestSuite) TestTick_ResolvedAlertAllowsNewOne() {
	sim := suite.newSimulator(1)

	suite.Require().NoError(sim.Tick(suite.ctx))
	alerts := suite.openAlerts()
	suite.Require().Len(alerts, 1)

	now := time.Now()
	alerts[0].Status = models.AlertResolved
	alerts[0].ResolvedAt = &now
	suite.Require().NoError(suite.alertRepo.Update(suite.ctx, alerts[0]))

	suite.Require().NoError(sim.Tick(suite.ctx))
	assert.Len(suite.T(), suite.openAlerts(), 1)
}

func (suite *TelemetrySimulatorTestSuite) TestTick_OrphanedSensorMarkedError() {
	orphan := &models.Sensor{
		ID:     uuid.New(),
		ZoneID: uuid.New(),
		Name:   "GHOST-TEMP-1",
		Type:   models.SensorTemperature,
		Unit:   "°C",
		Status: models.SensorOnline,
	}
	suite.Require().NoError(suite.db.Create(orphan).Error)

	sim := suite.newSimulator(0)
	suite.Require().NoError(sim.Tick(suite.ctx))

	reloaded, err := suite.sensorRepo.GetByID(suite.ctx, orphan.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.SensorError, reloaded.Status)
}

func (suite *TelemetrySimulatorTestSuite) TestTick_IgnoresNonTemperatureSensors() {
	humidity := &models.Sensor{
		ID:     uuid.New(),
		ZoneID: suite.zone.ID,
		Name:   "F1-HUM-1",
		Type:   models.SensorHumidity,
		Unit:   "%",
		Status: models.SensorOnline,
	}
	suite.Require().NoError(suite.db.Create(humidity).Error)

	sim := suite.newSimulator(0)
	suite.Require().NoError(sim.Tick(suite.ctx))

	reloaded, err := suite.sensorRepo.GetByID(suite.ctx, humidity.ID)
	suite.Require().NoError(err)
	assert.Zero(suite.T(), reloaded.CurrentValue)
	assert.True(suite.T(), reloaded.LastUpdated.IsZero())
}

func TestTelemetrySimulatorTestSuite(t *testing.T) {
	suite.Run(t, new(TelemetrySimulatorTestSuite))
}
