package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coldmart/internal/repositories"
)

// WarehouseHandlers handles warehouse-related HTTP requests.
type WarehouseHandlers struct {
	warehouseRepo repositories.WarehouseRepository
}

func NewWarehouseHandlers(warehouseRepo repositories.WarehouseRepository) *WarehouseHandlers {
	return &WarehouseHandlers{warehouseRepo: warehouseRepo}
}

func (h *WarehouseHandlers) ListWarehouses(c echo.Context) error {
	warehouses, err := h.warehouseRepo.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"warehouses": warehouses})
}

func (h *WarehouseHandlers) GetWarehouse(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	warehouse, err := h.warehouseRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, warehouse)
}
