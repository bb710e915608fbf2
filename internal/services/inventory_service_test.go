package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/repositories"
	"coldmart/pkg/database"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	service  InventoryService
	ctx      context.Context
	zone     *models.Zone
	location *models.Location
	lot      *models.Lot
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	db, err := database.OpenTest()
	suite.Require().NoError(err)
	suite.db = db
	suite.service = NewInventoryService(db, repositories.NewInventoryRepository(db))
	suite.ctx = context.Background()

	warehouse := &models.Warehouse{ID: uuid.New(), Name: "DC-1", Code: "WH-1"}
	suite.Require().NoError(db.Create(warehouse).Error)

	suite.zone = &models.Zone{
		ID:          uuid.New(),
		WarehouseID: warehouse.ID,
		Name:        "Freezer 1",
		Code:        "Z-F1",
		TempMin:     -25,
		TempMax:     -15,
		TempTarget:  -20,
	}
	suite.Require().NoError(db.Create(suite.zone).Error)

	suite.location = &models.Location{
		ID:     uuid.New(),
		ZoneID: suite.zone.ID,
		Code:   "F1-01-01",
		MaxQty: 100,
		Status: models.LocationEmpty,
	}
	suite.Require().NoError(db.Create(suite.location).Error)

	product := &models.Product{
		ID:        uuid.New(),
		SKU:       "FRZ-001",
		Name:      "Frozen Peas",
		TempClass: models.TempClassFrozen,
	}
	suite.Require().NoError(db.Create(product).Error)

	suite.lot = &models.Lot{
		ID:           uuid.New(),
		ProductID:    product.ID,
		LotNo:        "LOT-001",
		ExpDate:      time.Now().AddDate(0, 6, 0),
		TotalQty:     200,
		AvailableQty: 200,
		Status:       models.LotActive,
	}
	suite.Require().NoError(db.Create(suite.lot).Error)
}

func (suite *InventoryServiceTestSuite) reloadLocation() *models.Location {
	var loc models.Location
	suite.Require().NoError(suite.db.First(&loc, "id = ?", suite.location.ID).Error)
	return &loc
}

func (suite *InventoryServiceTestSuite) reloadLot() *models.Lot {
	var lot models.Lot
	suite.Require().NoError(suite.db.First(&lot, "id = ?", suite.lot.ID).Error)
	return &lot
}

func (suite *InventoryServiceTestSuite) TestCreate_AppliesSideEffects() {
	row, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 40)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 40, row.Qty)

	loc := suite.reloadLocation()
	assert.Equal(suite.T(), 40, loc.CurrentQty)
	assert.Equal(suite.T(), models.LocationOccupied, loc.Status)

	lot := suite.reloadLot()
	assert.Equal(suite.T(), 160, lot.AvailableQty)
}

func (suite *InventoryServiceTestSuite) TestCreate_FillsLocationToFull() {
	_, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 100)
	assert.NoError(suite.T(), err)

	loc := suite.reloadLocation()
	assert.Equal(suite.T(), 100, loc.CurrentQty)
	assert.Equal(suite.T(), models.LocationFull, loc.Status)
}

func (suite *InventoryServiceTestSuite) TestCreate_RejectsOverCapacity() {
	_, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 101)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)

	loc := suite.reloadLocation()
	assert.Equal(suite.T(), 0, loc.CurrentQty)
	assert.Equal(suite.T(), 200, suite.reloadLot().AvailableQty)
}

func (suite *InventoryServiceTestSuite) TestCreate_RejectsBlockedLocation() {
	suite.location.Status = models.LocationBlocked
	suite.Require().NoError(suite.db.Save(suite.location).Error)

	_, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 10)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestCreate_RejectsBeyondLotAvailability() {
	suite.lot.AvailableQty = 5
	suite.Require().NoError(suite.db.Save(suite.lot).Error)

	_, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 10)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestCreate_UnknownLocation() {
	_, err := suite.service.Create(suite.ctx, suite.lot.ID, uuid.New(), 10)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestUpdateQty_MovesDelta() {
	row, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 40)
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateQty(suite.ctx, row.ID, 25)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 25, updated.Qty)

	loc := suite.reloadLocation()
	assert.Equal(suite.T(), 25, loc.CurrentQty)
	assert.Equal(suite.T(), models.LocationOccupied, loc.Status)
	assert.Equal(suite.T(), 175, suite.reloadLot().AvailableQty)
}

func (suite *InventoryServiceTestSuite) TestDelete_RestoresLocationAndLot() {
	row, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 40)
	suite.Require().NoError(err)

	assert.NoError(suite.T(), suite.service.Delete(suite.ctx, row.ID))

	loc := suite.reloadLocation()
	assert.Equal(suite.T(), 0, loc.CurrentQty)
	assert.Equal(suite.T(), models.LocationEmpty, loc.Status)
	assert.Equal(suite.T(), 200, suite.reloadLot().AvailableQty)
}

func (suite *InventoryServiceTestSuite) TestDelete_KeepsBlockedStatus() {
	row, err := suite.service.Create(suite.ctx, suite.lot.ID, suite.location.ID, 40)
	suite.Require().NoError(err)

	loc := suite.reloadLocation()
	loc.Status = models.LocationBlocked
	suite.Require().NoError(suite.db.Save(loc).Error)

	assert.NoError(suite.T(), suite.service.Delete(suite.ctx, row.ID))

	loc = suite.reloadLocation()
	assert.Equal(suite.T(), 0, loc.CurrentQty)
	assert.Equal(suite.T(), models.LocationBlocked, loc.Status)
}

func (suite *InventoryServiceTestSuite) TestDelete_NotFound() {
	err := suite.service.Delete(suite.ctx, uuid.New())
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
