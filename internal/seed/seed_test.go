package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coldmart/internal/models"
	"coldmart/pkg/database"
)

func seededDB(t *testing.T, randomSeed int64) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, New(db, randomSeed, zap.NewNop()).Run())
	return db
}

func TestRun_PopulatesAllCollections(t *testing.T) {
	db := seededDB(t, 1)

	var warehouses, zones, locations, products, lots, inventory, sensors, users, devices int64
	require.NoError(t, db.Model(&models.Warehouse{}).Count(&warehouses).Error)
	require.NoError(t, db.Model(&models.Zone{}).Count(&zones).Error)
	require.NoError(t, db.Model(&models.Location{}).Count(&locations).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Lot{}).Count(&lots).Error)
	require.NoError(t, db.Model(&models.Inventory{}).Count(&inventory).Error)
	require.NoError(t, db.Model(&models.Sensor{}).Count(&sensors).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Device{}).Count(&devices).Error)

	assert.EqualValues(t, 2, warehouses)
	assert.EqualValues(t, 6, zones)
	assert.EqualValues(t, 180, locations)
	assert.EqualValues(t, 12, products)
	assert.GreaterOrEqual(t, lots, int64(12))
	assert.Greater(t, inventory, int64(0))
	assert.EqualValues(t, 18, sensors) // 3 per zone
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 8, devices) // 2 per non-ambient zone
}

func TestRun_LocationQuantitiesMatchStatus(t *testing.T) {
	db := seededDB(t, 2)

	var locations []*models.Location
	require.NoError(t, db.Find(&locations).Error)
	require.NotEmpty(t, locations)

	for _, loc := range locations {
		assert.Greater(t, loc.MaxQty, 0, loc.Code)
		assert.GreaterOrEqual(t, loc.CurrentQty, 0, loc.Code)
		assert.LessOrEqual(t, loc.CurrentQty, loc.MaxQty, loc.Code)

		switch loc.Status {
		case models.LocationEmpty:
			assert.Zero(t, loc.CurrentQty, loc.Code)
		case models.LocationFull:
			assert.Equal(t, loc.MaxQty, loc.CurrentQty, loc.Code)
		case models.LocationOccupied:
			assert.Greater(t, loc.CurrentQty, 0, loc.Code)
			assert.Less(t, loc.CurrentQty, loc.MaxQty, loc.Code)
		}
	}
}

func TestRun_InventoryAgreesWithLocationsAndLots(t *testing.T) {
	db := seededDB(t, 3)

	var rows []*models.Inventory
	require.NoError(t, db.Find(&rows).Error)

	perLocation := make(map[string]int)
	perLot := make(map[string]int)
	for _, row := range rows {
		perLocation[row.LocationID.String()] += row.Qty
		perLot[row.LotID.String()] += row.Qty
	}

	var locations []*models.Location
	require.NoError(t, db.Find(&locations).Error)
	for _, loc := range locations {
		assert.Equal(t, loc.CurrentQty, perLocation[loc.ID.String()], loc.Code)
	}

	var lots []*models.Lot
	require.NoError(t, db.Find(&lots).Error)
	for _, lot := range lots {
		assert.Equal(t, lot.TotalQty-lot.AvailableQty, perLot[lot.ID.String()], lot.LotNo)
		assert.GreaterOrEqual(t, lot.AvailableQty, 0, lot.LotNo)
		assert.LessOrEqual(t, lot.AvailableQty, lot.TotalQty, lot.LotNo)
	}
}

func TestRun_SensorsReadNearZoneTarget(t *testing.T) {
	db := seededDB(t, 4)

	var sensors []*models.Sensor
	require.NoError(t, db.Where("type = ?", models.SensorTemperature).Find(&sensors).Error)
	require.NotEmpty(t, sensors)

	for _, sensor := range sensors {
		var zone models.Zone
		require.NoError(t, db.First(&zone, "id = ?", sensor.ZoneID).Error)
		assert.InDelta(t, zone.TempTarget, sensor.CurrentValue, 1.0, sensor.Name)
		assert.Equal(t, models.SensorOnline, sensor.Status)
	}
}

func TestRun_OrderTotalsAreConsistent(t *testing.T) {
	db := seededDB(t, 5)

	var inbound []*models.InboundOrder
	require.NoError(t, db.Preload("Lines").Find(&inbound).Error)
	require.Len(t, inbound, 2)
	for _, order := range inbound {
		total, received := 0, 0
		for _, line := range order.Lines {
			total += line.ExpectedQty
			received += line.ReceivedQty
		}
		assert.Equal(t, total, order.TotalQty, order.OrderNo)
		assert.Equal(t, received, order.ReceivedQty, order.OrderNo)
	}

	var outbound []*models.OutboundOrder
	require.NoError(t, db.Preload("Lines").Find(&outbound).Error)
	require.Len(t, outbound, 2)
	for _, order := range outbound {
		total, picked := 0, 0
		for _, line := range order.Lines {
			total += line.OrderedQty
			picked += line.PickedQty
		}
		assert.Equal(t, total, order.TotalQty, order.OrderNo)
		assert.Equal(t, picked, order.PickedQty, order.OrderNo)
	}
}

func TestRun_SameSeedSameDataset(t *testing.T) {
	listCodes := func(db *gorm.DB) []string {
		var locations []*models.Location
		require.NoError(t, db.Order("code").Find(&locations).Error)
		out := make([]string, 0, len(locations))
		for _, loc := range locations {
			out = append(out, loc.Code+":"+string(loc.Status))
		}
		return out
	}

	first := listCodes(seededDB(t, 7))
	second := listCodes(seededDB(t, 7))
	assert.Equal(t, first, second)
}
