package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveLocationStatus(t *testing.T) {
	tests := []struct {
		name       string
		currentQty int
		maxQty     int
		existing   LocationStatus
		want       LocationStatus
	}{
		{"empty at zero", 0, 100, LocationOccupied, LocationEmpty},
		{"occupied in between", 40, 100, LocationEmpty, LocationOccupied},
		{"full at max", 100, 100, LocationOccupied, LocationFull},
		{"full above max", 120, 100, LocationOccupied, LocationFull},
		{"reserved is sticky", 40, 100, LocationReserved, LocationReserved},
		{"blocked is sticky", 0, 100, LocationBlocked, LocationBlocked},
		{"reserved stays through full", 100, 100, LocationReserved, LocationReserved},
		{"negative clamps to empty", -5, 100, LocationOccupied, LocationEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveLocationStatus(tt.currentQty, tt.maxQty, tt.existing))
		})
	}
}
