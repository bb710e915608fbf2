package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coldmart/internal/services"
)

// KPIHandlers serves dashboard KPI and finance report endpoints.
type KPIHandlers struct {
	kpiService services.KPIService
}

func NewKPIHandlers(kpiService services.KPIService) *KPIHandlers {
	return &KPIHandlers{kpiService: kpiService}
}

func (h *KPIHandlers) GetKPIs(c echo.Context) error {
	snapshot, err := h.kpiService.Snapshot(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

func (h *KPIHandlers) GetFinanceReport(c echo.Context) error {
	report, err := h.kpiService.Finance(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, report)
}
