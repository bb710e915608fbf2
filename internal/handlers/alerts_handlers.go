package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coldmart/internal/models"
	"coldmart/internal/services"
)

// AlertHandlers handles alert listing and resolution.
type AlertHandlers struct {
	alertService services.AlertService
}

func NewAlertHandlers(alertService services.AlertService) *AlertHandlers {
	return &AlertHandlers{alertService: alertService}
}

func (h *AlertHandlers) ListAlerts(c echo.Context) error {
	var status *models.AlertStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := models.AlertStatus(raw)
		if s != models.AlertOpen && s != models.AlertResolved {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status filter")
		}
		status = &s
	}
	alerts, err := h.alertService.List(c.Request().Context(), status)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"alerts": alerts})
}

func (h *AlertHandlers) GetAlert(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	alert, err := h.alertService.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, alert)
}

func (h *AlertHandlers) ResolveAlert(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	alert, err := h.alertService.Resolve(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, alert)
}
