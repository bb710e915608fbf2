package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coldmart/internal/repositories"
)

// SensorHandlers exposes the sensor fleet as a read-only surface; readings
// are produced by the telemetry simulator, not by clients.
type SensorHandlers struct {
	sensorRepo repositories.SensorRepository
}

func NewSensorHandlers(sensorRepo repositories.SensorRepository) *SensorHandlers {
	return &SensorHandlers{sensorRepo: sensorRepo}
}

func (h *SensorHandlers) ListSensors(c echo.Context) error {
	sensors, err := h.sensorRepo.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"sensors": sensors})
}

func (h *SensorHandlers) GetSensor(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	sensor, err := h.sensorRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, sensor)
}
