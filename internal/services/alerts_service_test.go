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

type AlertServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service AlertService
	ctx     context.Context
}

func (suite *AlertServiceTestSuite) SetupTest() {
	db, err := database.OpenTest()
	suite.Require().NoError(err)
	suite.db = db
	suite.service = NewAlertService(repositories.NewAlertRepository(db))
	suite.ctx = context.Background()
}

func (suite *AlertServiceTestSuite) createAlert(status models.AlertStatus) *models.Alert {
	alert := &models.Alert{
		ID:       uuid.New(),
		Type:     models.AlertTempHigh,
		Severity: models.SeverityHigh,
		Message:  "temp excursion",
		Status:   status,
	}
	suite.Require().NoError(suite.db.Create(alert).Error)
	return alert
}

func (suite *AlertServiceTestSuite) TestResolve_SetsTimestamp() {
	alert := suite.createAlert(models.AlertOpen)

	resolved, err := suite.service.Resolve(suite.ctx, alert.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AlertResolved, resolved.Status)
	assert.NotNil(suite.T(), resolved.ResolvedAt)
}

func (suite *AlertServiceTestSuite) TestResolve_Idempotent() {
	alert := suite.createAlert(models.AlertOpen)

	first, err := suite.service.Resolve(suite.ctx, alert.ID)
	suite.Require().NoError(err)

	second, err := suite.service.Resolve(suite.ctx, alert.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AlertResolved, second.Status)
	assert.Equal(suite.T(), first.ResolvedAt.Unix(), second.ResolvedAt.Unix())
}

func (suite *AlertServiceTestSuite) TestResolve_NotFound() {
	_, err := suite.service.Resolve(suite.ctx, uuid.New())
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *AlertServiceTestSuite) TestList_FiltersByStatus() {
	suite.createAlert(models.AlertOpen)
	suite.createAlert(models.AlertOpen)
	suite.createAlert(models.AlertResolved)

	open := models.AlertOpen
	alerts, err := suite.service.List(suite.ctx, &open)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), alerts, 2)

	all, err := suite.service.List(suite.ctx, nil)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 3)
}

func TestAlertServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}
