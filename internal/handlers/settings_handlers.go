package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Settings are display preferences kept in memory; the payload is accepted
// as-is and echoed back with a server timestamp.
type Settings struct {
	TemperatureUnit string    `json:"temperature_unit"`
	Language        string    `json:"language"`
	Theme           string    `json:"theme"`
	AlertSound      bool      `json:"alert_sound"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SettingsHandlers struct {
	mu       sync.Mutex
	settings Settings
}

func NewSettingsHandlers() *SettingsHandlers {
	return &SettingsHandlers{
		settings: Settings{
			TemperatureUnit: "C",
			Language:        "en",
			Theme:           "light",
			AlertSound:      true,
			UpdatedAt:       time.Now().UTC(),
		},
	}
}

func (h *SettingsHandlers) GetSettings(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return c.JSON(http.StatusOK, h.settings)
}

func (h *SettingsHandlers) UpdateSettings(c echo.Context) error {
	var req Settings
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	req.UpdatedAt = time.Now().UTC()
	h.settings = req
	return c.JSON(http.StatusOK, h.settings)
}
