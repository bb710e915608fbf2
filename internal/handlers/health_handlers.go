package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandlers serves liveness and readiness probes.
type HealthHandlers struct {
	db *gorm.DB
}

func NewHealthHandlers(db *gorm.DB) *HealthHandlers {
	return &HealthHandlers{db: db}
}

func (h *HealthHandlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
}

func (h *HealthHandlers) Ready(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "ready"})
}
