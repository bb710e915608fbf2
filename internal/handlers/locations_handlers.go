package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coldmart/internal/models"
	"coldmart/internal/services"
)

// LocationHandlers handles storage location HTTP requests.
type LocationHandlers struct {
	locationService services.LocationService
}

func NewLocationHandlers(locationService services.LocationService) *LocationHandlers {
	return &LocationHandlers{locationService: locationService}
}

func (h *LocationHandlers) ListLocations(c echo.Context) error {
	var zoneID *uuid.UUID
	if raw := c.QueryParam("zone_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid zone_id")
		}
		zoneID = &id
	}
	locations, err := h.locationService.List(c.Request().Context(), zoneID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"locations": locations})
}

func (h *LocationHandlers) GetLocation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	location, err := h.locationService.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, location)
}

// CreateLocationRequest represents the location creation payload.
type CreateLocationRequest struct {
	ZoneID uuid.UUID `json:"zone_id" validate:"required"`
	Code   string    `json:"code" validate:"required"`
	MaxQty int       `json:"max_qty" validate:"required,gt=0"`
}

func (h *LocationHandlers) CreateLocation(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location := &models.Location{
		ZoneID: req.ZoneID,
		Code:   req.Code,
		MaxQty: req.MaxQty,
	}
	if err := h.locationService.Create(c.Request().Context(), location); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, location)
}

// UpdateLocationRequest represents a partial location patch.
type UpdateLocationRequest struct {
	Code       *string                `json:"code"`
	MaxQty     *int                   `json:"max_qty"`
	CurrentQty *int                   `json:"current_qty"`
	Status     *models.LocationStatus `json:"status"`
}

func (h *LocationHandlers) UpdateLocation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	location, err := h.locationService.Update(c.Request().Context(), id, services.LocationUpdate{
		Code:       req.Code,
		MaxQty:     req.MaxQty,
		CurrentQty: req.CurrentQty,
		Status:     req.Status,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, location)
}

func (h *LocationHandlers) DeleteLocation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.locationService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
