package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/repositories"
	"coldmart/pkg/database"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service OrderService
	ctx     context.Context
	product *models.Product
}

func (suite *OrderServiceTestSuite) SetupTest() {
	db, err := database.OpenTest()
	suite.Require().NoError(err)
	suite.db = db
	suite.service = NewOrderService(
		repositories.NewInboundOrderRepository(db),
		repositories.NewOutboundOrderRepository(db),
		repositories.NewProductRepository(db),
	)
	suite.ctx = context.Background()

	suite.product = &models.Product{
		ID:        uuid.New(),
		SKU:       "CHL-001",
		Name:      "Greek Yogurt",
		TempClass: models.TempClassChilled,
	}
	suite.Require().NoError(db.Create(suite.product).Error)
}

func (suite *OrderServiceTestSuite) TestCreateInbound_TotalsFromLines() {
	order, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, []InboundLineInput{
		{ProductID: suite.product.ID, LotNo: "LOT-A", ExpectedQty: 60},
		{ProductID: suite.product.ID, LotNo: "LOT-B", ExpectedQty: 40},
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InboundPending, order.Status)
	assert.Equal(suite.T(), 100, order.TotalQty)
	assert.Len(suite.T(), order.Lines, 2)
	assert.Contains(suite.T(), order.OrderNo, "IN-")
}

func (suite *OrderServiceTestSuite) TestCreateInbound_RejectsEmptyLines() {
	_, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, nil)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateInbound_UnknownProduct() {
	_, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, []InboundLineInput{
		{ProductID: uuid.New(), LotNo: "LOT-A", ExpectedQty: 10},
	})
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestReceiveInbound_PartialThenComplete() {
	order, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, []InboundLineInput{
		{ProductID: suite.product.ID, LotNo: "LOT-A", ExpectedQty: 60},
		{ProductID: suite.product.ID, LotNo: "LOT-B", ExpectedQty: 40},
	})
	suite.Require().NoError(err)

	updated, err := suite.service.ReceiveInbound(suite.ctx, order.ID, order.Lines[0].ID, 30)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InboundReceiving, updated.Status)
	assert.Equal(suite.T(), 30, updated.ReceivedQty)

	updated, err = suite.service.ReceiveInbound(suite.ctx, order.ID, order.Lines[0].ID, 30)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InboundReceiving, updated.Status)

	updated, err = suite.service.ReceiveInbound(suite.ctx, order.ID, order.Lines[1].ID, 40)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InboundCompleted, updated.Status)
	assert.Equal(suite.T(), 100, updated.ReceivedQty)
}

func (suite *OrderServiceTestSuite) TestReceiveInbound_ClampsAtExpected() {
	order, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, []InboundLineInput{
		{ProductID: suite.product.ID, LotNo: "LOT-A", ExpectedQty: 50},
	})
	suite.Require().NoError(err)

	updated, err := suite.service.ReceiveInbound(suite.ctx, order.ID, order.Lines[0].ID, 80)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 50, updated.ReceivedQty)
	assert.Equal(suite.T(), models.InboundCompleted, updated.Status)
}

func (suite *OrderServiceTestSuite) TestReceiveInbound_CompletedOrderRefuses() {
	order, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, []InboundLineInput{
		{ProductID: suite.product.ID, LotNo: "LOT-A", ExpectedQty: 10},
	})
	suite.Require().NoError(err)

	_, err = suite.service.ReceiveInbound(suite.ctx, order.ID, order.Lines[0].ID, 10)
	suite.Require().NoError(err)

	_, err = suite.service.ReceiveInbound(suite.ctx, order.ID, order.Lines[0].ID, 5)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestReceiveInbound_UnknownLine() {
	order, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, []InboundLineInput{
		{ProductID: suite.product.ID, LotNo: "LOT-A", ExpectedQty: 10},
	})
	suite.Require().NoError(err)

	_, err = suite.service.ReceiveInbound(suite.ctx, order.ID, uuid.New(), 5)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestCancelInbound_OnlyPending() {
	order, err := suite.service.CreateInbound(suite.ctx, "Arctic Foods", nil, []InboundLineInput{
		{ProductID: suite.product.ID, LotNo: "LOT-A", ExpectedQty: 10},
	})
	suite.Require().NoError(err)

	cancelled, err := suite.service.CancelInbound(suite.ctx, order.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InboundCancelled, cancelled.Status)

	_, err = suite.service.CancelInbound(suite.ctx, order.ID)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestOutboundLifecycle() {
	order, err := suite.service.CreateOutbound(suite.ctx, "Fresh Grocer", nil, []OutboundLineInput{
		{ProductID: suite.product.ID, OrderedQty: 30},
		{ProductID: suite.product.ID, OrderedQty: 20},
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OutboundPending, order.Status)
	assert.Equal(suite.T(), 50, order.TotalQty)
	assert.Contains(suite.T(), order.OrderNo, "OUT-")

	// Shipping before packing is refused.
	_, err = suite.service.ShipOutbound(suite.ctx, order.ID)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)

	updated, err := suite.service.PickOutbound(suite.ctx, order.ID, order.Lines[0].ID, 30)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OutboundPicking, updated.Status)

	updated, err = suite.service.PickOutbound(suite.ctx, order.ID, order.Lines[1].ID, 25)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OutboundPacked, updated.Status)
	assert.Equal(suite.T(), 50, updated.PickedQty)

	shipped, err := suite.service.ShipOutbound(suite.ctx, order.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OutboundShipped, shipped.Status)
	assert.Equal(suite.T(), 50, shipped.ShippedQty)

	_, err = suite.service.PickOutbound(suite.ctx, order.ID, order.Lines[0].ID, 1)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCancelOutbound_OnlyPending() {
	order, err := suite.service.CreateOutbound(suite.ctx, "Fresh Grocer", nil, []OutboundLineInput{
		{ProductID: suite.product.ID, OrderedQty: 10},
	})
	suite.Require().NoError(err)

	_, err = suite.service.PickOutbound(suite.ctx, order.ID, order.Lines[0].ID, 5)
	suite.Require().NoError(err)

	_, err = suite.service.CancelOutbound(suite.ctx, order.ID)
	assert.ErrorIs(suite.T(), err, common.ErrValidation)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
