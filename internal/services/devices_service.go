package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

// ControlAck acknowledges a device control command.
type ControlAck struct {
	DeviceID  uuid.UUID `json:"device_id"`
	Action    string    `json:"action"`
	State     string    `json:"state"`
	Accepted  bool      `json:"accepted"`
	Timestamp time.Time `json:"timestamp"`
}

type DeviceService interface {
	List(ctx context.Context) ([]*models.Device, error)
	Control(ctx context.Context, id uuid.UUID, action string, value *float64) (*ControlAck, error)
}

type deviceService struct {
	deviceRepo repositories.DeviceRepository
}

func NewDeviceService(deviceRepo repositories.DeviceRepository) DeviceService {
	return &deviceService{deviceRepo: deviceRepo}
}

// stateForAction maps a control action to the device state it leaves behind.
var stateForAction = map[string]string{
	"START": "RUNNING",
	"STOP":  "STOPPED",
	"OPEN":  "OPEN",
	"CLOSE": "CLOSED",
	"ON":    "ON",
	"OFF":   "OFF",
}

func (s *deviceService) List(ctx context.Context) ([]*models.Device, error) {
	return s.deviceRepo.List(ctx)
}

func (s *deviceService) Control(ctx context.Context, id uuid.UUID, action string, value *float64) (*ControlAck, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newState string
	if action == "SET" {
		if value == nil {
			return nil, fmt.Errorf("%w: SET requires a value", common.ErrValidation)
		}
		newState = fmt.Sprintf("SET:%.1f", *value)
	} else {
		state, ok := stateForAction[action]
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", common.ErrValidation, action)
		}
		newState = state
	}

	now := time.Now()
	device.State = newState
	device.LastCommandAt = &now
	device.UpdatedAt = now
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, err
	}

	return &ControlAck{
		DeviceID:  device.ID,
		Action:    action,
		State:     newState,
		Accepted:  true,
		Timestamp: now,
	}, nil
}
