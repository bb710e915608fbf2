package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"coldmart/internal/models"
	"coldmart/internal/repositories"
	"coldmart/pkg/database"
)

type KPIServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service KPIService
	ctx     context.Context
}

func (suite *KPIServiceTestSuite) SetupTest() {
	db, err := database.OpenTest()
	suite.Require().NoError(err)
	suite.db = db
	suite.service = NewKPIService(
		repositories.NewInboundOrderRepository(db),
		repositories.NewOutboundOrderRepository(db),
		repositories.NewInventoryRepository(db),
		repositories.NewLocationRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewAlertRepository(db),
	)
	suite.ctx = context.Background()

	warehouse := &models.Warehouse{ID: uuid.New(), Name: "DC-1", Code: "WH-1"}
	suite.Require().NoError(db.Create(warehouse).Error)
	zone := &models.Zone{
		ID:          uuid.New(),
		WarehouseID: warehouse.ID,
		Name:        "Freezer 1",
		Code:        "Z-F1",
		TempMin:     -25,
		TempMax:     -15,
		TempTarget:  -20,
	}
	suite.Require().NoError(db.Create(zone).Error)

	location := &models.Location{
		ID:         uuid.New(),
		ZoneID:     zone.ID,
		Code:       "F1-001",
		MaxQty:     100,
		CurrentQty: 50,
		Status:     models.LocationOccupied,
	}
	suite.Require().NoError(db.Create(location).Error)

	product := &models.Product{
		ID:        uuid.New(),
		SKU:       "FRZ-001",
		Name:      "Frozen Peas",
		TempClass: models.TempClassFrozen,
		UnitPrice: 2.50,
	}
	suite.Require().NoError(db.Create(product).Error)

	lot := &models.Lot{
		ID:           uuid.New(),
		ProductID:    product.ID,
		LotNo:        "LOT-001",
		ExpDate:      time.Now().AddDate(0, 6, 0),
		TotalQty:     50,
		AvailableQty: 0,
		Status:       models.LotActive,
	}
	suite.Require().NoError(db.Create(lot).Error)

	row := &models.Inventory{ID: uuid.New(), LotID: lot.ID, LocationID: location.ID, Qty: 50}
	suite.Require().NoError(db.Create(row).Error)

	alert := &models.Alert{
		ID: uuid.New(), Type: models.AlertTempHigh,
		Severity: models.SeverityHigh, Status: models.AlertOpen,
	}
	suite.Require().NoError(db.Create(alert).Error)

	inbound := &models.InboundOrder{
		ID: uuid.New(), OrderNo: "IN-001", SupplierName: "Polar Foods",
		Status: models.InboundPending, TotalQty: 100,
	}
	suite.Require().NoError(db.Create(inbound).Error)
}

func (suite *KPIServiceTestSuite) TestSnapshot() {
	snap, err := suite.service.Snapshot(suite.ctx)
	suite.Require().NoError(err)

	assert.EqualValues(suite.T(), 1, snap.InboundToday)
	assert.EqualValues(suite.T(), 0, snap.OutboundToday)
	assert.EqualValues(suite.T(), 1, snap.OpenAlerts)
	assert.Equal(suite.T(), 50, snap.OnHandByClass[models.TempClassFrozen])
	assert.Equal(suite.T(), 0, snap.OnHandByClass[models.TempClassChilled])
	assert.InDelta(suite.T(), 0.5, snap.OccupancyRate, 0.001)
}

func (suite *KPIServiceTestSuite) TestFinance_ValuesStockAtUnitPrice() {
	report, err := suite.service.Finance(suite.ctx)
	suite.Require().NoError(err)

	want := decimal.NewFromFloat(2.50).Mul(decimal.NewFromInt(50))
	assert.True(suite.T(), report.ValuationByClass[models.TempClassFrozen].Equal(want))
	assert.True(suite.T(), report.TotalValuation.Equal(want))
	assert.True(suite.T(), report.ValuationByClass[models.TempClassAmbient].IsZero())
}

func TestKPIServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KPIServiceTestSuite))
}
