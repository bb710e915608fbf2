package services

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestEnergyService_Solar(t *testing.T) {
	day := func(hour int) *SolarSnapshot {
		clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, hour, 0, 0, 0, time.UTC))
		return NewEnergyService(clock).Solar()
	}

	t.Run("noon peaks generation", func(t *testing.T) {
		snap := day(12)
		assert.InDelta(t, 120, snap.GenerationKW, 0.1)
		assert.Equal(t, 0.0, snap.GridDrawKW)
	})

	t.Run("night has no generation", func(t *testing.T) {
		snap := day(2)
		assert.Equal(t, 0.0, snap.GenerationKW)
		assert.Equal(t, snap.ConsumptionKW, snap.GridDrawKW)
	})

	t.Run("morning partially covers load", func(t *testing.T) {
		snap := day(8)
		assert.Greater(t, snap.GenerationKW, 0.0)
		assert.Less(t, snap.GenerationKW, 120.0)
		assert.InDelta(t, snap.ConsumptionKW-snap.GenerationKW, snap.GridDrawKW, 0.11)
	})

	t.Run("battery stays within bounds", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			snap := day(hour)
			assert.GreaterOrEqual(t, snap.BatteryPercent, 0.0)
			assert.LessOrEqual(t, snap.BatteryPercent, 100.0)
		}
	})
}
