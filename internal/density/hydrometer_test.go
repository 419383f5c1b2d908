package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcocalc/internal/density"
)

func TestCorrectHydrometerReading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		reading, temp  float64
		wantTrue       float64
		wantCorrection float64
		wantOutside    bool
	}{
		{"warm sample reads high", 40, 25, 37.9, -2.1, false},
		{"cool sample reads low", 40, 15, 42.1, 2.1, false},
		{"reference temperature", 40, 20, 40, 0, false},
		{"cold cellar", 60, 5, 65.2, 5.2, true},
		{"hot still house", 96, 32, 93.3, -2.7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := density.CorrectHydrometerReading(tt.reading, tt.temp)
			assert.InDelta(t, tt.wantTrue, got.TrueABV, 1e-9)
			assert.InDelta(t, tt.wantCorrection, got.Correction, 1e-9)
			assert.Equal(t, tt.wantOutside, got.OutsideTableRange)
			assert.Equal(t, tt.reading, got.ReadingABV)
			assert.Equal(t, tt.temp, got.Temperature)
		})
	}
}

func TestCorrectHydrometerReading_IdentityAtReference(t *testing.T) {
	t.Parallel()

	for reading := 0.0; reading <= 100; reading += 2.5 {
		got := density.CorrectHydrometerReading(reading, 20)
		assert.InDelta(t, 0, got.Correction, 1e-9, "reading=%v", reading)
	}
}

func TestCorrectHydrometerReading_Sums(t *testing.T) {
	t.Parallel()

	for _, reading := range []float64{12.3, 40.05, 57.77, 88.8} {
		for _, temp := range []float64{8, 14.5, 22, 29.9} {
			got := density.CorrectHydrometerReading(reading, temp)
			assert.InDelta(t, got.TrueABV, got.ReadingABV+got.Correction, 1e-6)
		}
	}
}

func TestCorrectHydrometerReading_TableBand(t *testing.T) {
	t.Parallel()

	assert.False(t, density.CorrectHydrometerReading(40, 10).OutsideTableRange)
	assert.False(t, density.CorrectHydrometerReading(40, 30).OutsideTableRange)
	assert.True(t, density.CorrectHydrometerReading(40, 9.9).OutsideTableRange)
	assert.True(t, density.CorrectHydrometerReading(40, 30.1).OutsideTableRange)
}
