package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForTrip(t *testing.T) {
	tests := []struct {
		name     string
		mode     TransportMode
		distance float64
		want     int
	}{
		{"short walk", ModeWalking, 2, 10},
		{"walk at bonus boundary", ModeWalking, 3, 15},
		{"long cycle gets bonus", ModeBicycle, 6, 34},
		{"long scooter ride", ModeScooter, 10, 46},
		{"bus ride rounds", ModeBus, 4.5, 9},
		{"carpool", ModeCarpool, 2.4, 2},
		{"solo car earns nothing", ModeCar, 12, 0},
		{"ambulance earns nothing", ModeAmbulance, 8, 0},
		{"zero distance", ModeWalking, 0, 0},
		{"negative distance", ModeBicycle, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForTrip(tt.mode, tt.distance))
		})
	}
}

func TestForTripNeverNegative(t *testing.T) {
	for mode := range pointsPerKM {
		for _, d := range []float64{-10, 0, 0.1, 3, 7.5, 100} {
			assert.GreaterOrEqual(t, ForTrip(mode, d), 0)
		}
	}
}

func TestValidMode(t *testing.T) {
	assert.True(t, ValidMode(ModeTrain))
	assert.False(t, ValidMode("hoverboard"))
}
