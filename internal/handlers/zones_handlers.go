package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coldmart/internal/models"
	"coldmart/internal/services"
)

// ZoneHandlers handles zone-related HTTP requests.
type ZoneHandlers struct {
	zoneService services.ZoneService
}

func NewZoneHandlers(zoneService services.ZoneService) *ZoneHandlers {
	return &ZoneHandlers{zoneService: zoneService}
}

func (h *ZoneHandlers) ListZones(c echo.Context) error {
	zones, err := h.zoneService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"zones": zones})
}

func (h *ZoneHandlers) GetZone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	zone, err := h.zoneService.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, zone)
}

// CreateZoneRequest represents the zone creation payload.
type CreateZoneRequest struct {
	WarehouseID     uuid.UUID `json:"warehouse_id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	Code            string    `json:"code" validate:"required"`
	TempMin         float64   `json:"temp_min"`
	TempMax         float64   `json:"temp_max"`
	TempTarget      float64   `json:"temp_target"`
	CapacityPallets int       `json:"capacity_pallets"`
}

func (h *ZoneHandlers) CreateZone(c echo.Context) error {
	var req CreateZoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	zone := &models.Zone{
		WarehouseID:     req.WarehouseID,
		Name:            req.Name,
		Code:            req.Code,
		TempMin:         req.TempMin,
		TempMax:         req.TempMax,
		TempTarget:      req.TempTarget,
		CapacityPallets: req.CapacityPallets,
	}
	if err := h.zoneService.Create(c.Request().Context(), zone); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, zone)
}

// UpdateZoneRequest represents a partial zone patch.
type UpdateZoneRequest struct {
	Name            *string  `json:"name"`
	TempMin         *float64 `json:"temp_min"`
	TempMax         *float64 `json:"temp_max"`
	TempTarget      *float64 `json:"temp_target"`
	CapacityPallets *int     `json:"capacity_pallets"`
}

func (h *ZoneHandlers) UpdateZone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateZoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	zone, err := h.zoneService.Update(c.Request().Context(), id, services.ZoneUpdate{
		Name:            req.Name,
		TempMin:         req.TempMin,
		TempMax:         req.TempMax,
		TempTarget:      req.TempTarget,
		CapacityPallets: req.CapacityPallets,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, zone)
}

func (h *ZoneHandlers) DeleteZone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.zoneService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
