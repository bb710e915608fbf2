package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coldmart/internal/models"
	"coldmart/internal/services"
)

// LotHandlers handles lot HTTP requests.
type LotHandlers struct {
	lotService services.LotService
}

func NewLotHandlers(lotService services.LotService) *LotHandlers {
	return &LotHandlers{lotService: lotService}
}

func (h *LotHandlers) ListLots(c echo.Context) error {
	lots, err := h.lotService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"lots": lots})
}

func (h *LotHandlers) GetLot(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	lot, err := h.lotService.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, lot)
}

// CreateLotRequest represents the lot creation payload.
type CreateLotRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	LotNo     string    `json:"lot_no" validate:"required"`
	ExpDate   time.Time `json:"exp_date" validate:"required"`
	TotalQty  int       `json:"total_qty" validate:"required,gt=0"`
}

func (h *LotHandlers) CreateLot(c echo.Context) error {
	var req CreateLotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lot := &models.Lot{
		ProductID: req.ProductID,
		LotNo:     req.LotNo,
		ExpDate:   req.ExpDate,
		TotalQty:  req.TotalQty,
	}
	if err := h.lotService.Create(c.Request().Context(), lot); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, lot)
}

// UpdateLotRequest represents a partial lot patch.
type UpdateLotRequest struct {
	ExpDate *time.Time        `json:"exp_date"`
	Status  *models.LotStatus `json:"status"`
}

func (h *LotHandlers) UpdateLot(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateLotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	lot, err := h.lotService.Update(c.Request().Context(), id, services.LotUpdate{
		ExpDate: req.ExpDate,
		Status:  req.Status,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, lot)
}

func (h *LotHandlers) DeleteLot(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.lotService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
