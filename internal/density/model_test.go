package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcocalc/internal/density"
	"alcocalc/internal/domain"
)

func TestDensity_ReferencePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		abv  float64
		want float64
	}{
		{"pure water", 0, 0.998201},
		{"pure ethanol", 100, 0.789239},
		{"rectified spirit", 96, 0.807419},
		{"vodka strength", 40, 0.948045},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := density.Density(density.AbvToMassFraction(tt.abv), 20)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestDensity_PureComponents(t *testing.T) {
	t.Parallel()

	for temp := -10.0; temp <= 50; temp += 2.5 {
		assert.Equal(t, density.WaterDensity(temp), density.Density(density.AbvToMassFraction(0), temp))
		assert.Equal(t, density.EthanolDensity(temp), density.Density(density.AbvToMassFraction(100), temp))
	}
	assert.InDelta(t, 0.997043, density.WaterDensity(25), 1e-5)
}

func TestDensity_Monotonic(t *testing.T) {
	t.Parallel()

	// Below ~4 °C water is anomalous, so temperature monotonicity is only
	// checked from 10 °C up.
	for i := 0; i <= 100; i++ {
		p := domain.MassFraction(float64(i) / 100)
		for temp := 10.0; temp < 50; temp++ {
			assert.LessOrEqual(t, density.Density(p, temp+1), density.Density(p, temp), "p=%v t=%v", p, temp)
		}
	}
	for temp := -10.0; temp <= 50; temp += 5 {
		for i := 0; i < 100; i++ {
			lo := domain.MassFraction(float64(i) / 100)
			hi := domain.MassFraction(float64(i+1) / 100)
			assert.LessOrEqual(t, density.Density(hi, temp), density.Density(lo, temp), "p=%v t=%v", lo, temp)
		}
	}
}

func TestDensity_ExpandsWithHeat(t *testing.T) {
	t.Parallel()

	p := density.AbvToMassFraction(96)
	assert.Less(t, density.Density(p, 25), density.Density(p, 20))
}

func TestContractionFactor(t *testing.T) {
	t.Parallel()

	for _, temp := range []float64{10, 20, 30} {
		assert.InDelta(t, 1.0, density.ContractionFactor(0, temp), 1e-12)
		assert.InDelta(t, 1.0, density.ContractionFactor(1, temp), 1e-12)
		for i := 1; i < 20; i++ {
			p := domain.MassFraction(float64(i) / 20)
			assert.Greater(t, density.ContractionFactor(p, temp), 1.0, "p=%v t=%v", p, temp)
		}
	}
	assert.InDelta(t, 1.0335, density.ContractionFactor(density.AbvToMassFraction(40), 20), 1e-4)
}

func TestDensity_Deterministic(t *testing.T) {
	t.Parallel()

	a := density.DensityAt(57.3, 17.25)
	b := density.DensityAt(57.3, 17.25)
	assert.Equal(t, a, b)
	assert.Equal(t, density.CorrectHydrometerReading(63.1, 12.4), density.CorrectHydrometerReading(63.1, 12.4))
}
