package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coldmart/internal/services"
)

// EnergyHandlers serves the solar/energy snapshot endpoint.
type EnergyHandlers struct {
	energyService services.EnergyService
}

func NewEnergyHandlers(energyService services.EnergyService) *EnergyHandlers {
	return &EnergyHandlers{energyService: energyService}
}

func (h *EnergyHandlers) GetSolar(c echo.Context) error {
	return c.JSON(http.StatusOK, h.energyService.Solar())
}
