package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/services"
)

// DeviceHandlers handles device listing and control commands.
type DeviceHandlers struct {
	deviceService services.DeviceService
}

func NewDeviceHandlers(deviceService services.DeviceService) *DeviceHandlers {
	return &DeviceHandlers{deviceService: deviceService}
}

func (h *DeviceHandlers) ListDevices(c echo.Context) error {
	devices, err := h.deviceService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"devices": devices})
}

// ControlRequest carries a control command for one device.
type ControlRequest struct {
	Action string   `json:"action" validate:"required,oneof=START STOP OPEN CLOSE ON OFF SET"`
	Value  *float64 `json:"value"`
}

func (h *DeviceHandlers) ControlDevice(c echo.Context) error {
	// Viewers are read-only.
	if role, ok := common.GetRoleFromContext(c.Request().Context()); ok && role == string(models.RoleViewer) {
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req ControlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ack, err := h.deviceService.Control(c.Request().Context(), id, req.Action, req.Value)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ack)
}
