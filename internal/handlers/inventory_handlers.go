package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coldmart/internal/services"
)

// InventoryHandlers handles stock put-away and removal HTTP requests.
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	rows, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"inventory": rows})
}

func (h *InventoryHandlers) GetInventory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	row, err := h.inventoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// CreateInventoryRequest represents a put-away payload.
type CreateInventoryRequest struct {
	LotID      uuid.UUID `json:"lot_id" validate:"required"`
	LocationID uuid.UUID `json:"location_id" validate:"required"`
	Qty        int       `json:"qty" validate:"required,gt=0"`
}

func (h *InventoryHandlers) CreateInventory(c echo.Context) error {
	var req CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	row, err := h.inventoryService.Create(c.Request().Context(), req.LotID, req.LocationID, req.Qty)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, row)
}

// UpdateInventoryRequest adjusts the quantity on an existing stock row.
type UpdateInventoryRequest struct {
	Qty int `json:"qty" validate:"required,gt=0"`
}

func (h *InventoryHandlers) UpdateInventory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	row, err := h.inventoryService.UpdateQty(c.Request().Context(), id, req.Qty)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *InventoryHandlers) DeleteInventory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.inventoryService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
