package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcocalc/internal/density"
)

func TestDensityAt(t *testing.T) {
	t.Parallel()

	got := density.DensityAt(96, 20)
	assert.Equal(t, 0.8074, got.Density)
	assert.Equal(t, 1.0098, got.ContractionFactor)
	assert.InDelta(t, 0.938384, got.MassFraction.Float64(), 1e-6)
	assert.Equal(t, 96.0, got.ABV)
	assert.Equal(t, 20.0, got.Temperature)

	assert.Equal(t, 0.9982, density.DensityAt(0, 20).Density)
	assert.Equal(t, 1.0, density.DensityAt(0, 20).ContractionFactor)
	assert.Less(t, density.DensityAt(96, 25).Density, got.Density)
}

func TestVolumeFromMass(t *testing.T) {
	t.Parallel()

	got := density.VolumeFromMass(1000, 40, 20)
	assert.Equal(t, 1054.8, got.VolumeML)
	assert.Equal(t, 0.948, got.Density)
	assert.Equal(t, 1000.0, got.MassG)

	water := density.VolumeFromMass(998.2, 0, 20)
	assert.InDelta(t, 1000, water.VolumeML, 0.01)
}

func TestMassFromVolume(t *testing.T) {
	t.Parallel()

	got := density.MassFromVolume(1000, 40, 20)
	assert.Equal(t, 948.05, got.MassG)
	assert.Equal(t, 1000.0, got.VolumeML)

	back := density.VolumeFromMass(got.MassG, 40, 20)
	assert.InDelta(t, 1000, back.VolumeML, 0.01)
}

func TestEthanolMass(t *testing.T) {
	t.Parallel()

	got := density.EthanolMass(1000, 40, 20)
	assert.Equal(t, 315.7, got.EthanolMassG)
	assert.Equal(t, 948.05, got.MassG)

	assert.Equal(t, 0.0, density.EthanolMass(1000, 0, 20).EthanolMassG)
	assert.Equal(t, 789.24, density.EthanolMass(1000, 100, 20).EthanolMassG)
}

func TestDilutionWater_Reference(t *testing.T) {
	t.Parallel()

	got := density.DilutionWater(1000, 96, 40)
	assert.Equal(t, 1818.0, got.WaterToAddG)
	assert.Equal(t, 2818.0, got.FinalMassG)
	assert.Equal(t, 938.38, got.EthanolMassG)
	assert.InDelta(t, 0.938384, got.SourceMassFraction.Float64(), 1e-6)
	assert.InDelta(t, 0.332996, got.TargetMassFraction.Float64(), 1e-6)
}

func TestDilutionWater_MassBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mass, source, target float64
	}{
		{1000, 96, 40},
		{250, 65, 45},
		{5000, 80, 20},
		{12.5, 55, 54},
		{750, 40, 5},
	}

	for _, tt := range tests {
		got := density.DilutionWater(tt.mass, tt.source, tt.target)
		conserved := got.FinalMassG * got.TargetMassFraction.Float64()
		assert.InDelta(t, got.EthanolMassG, conserved, 0.01, "%+v", tt)
		assert.InDelta(t, tt.mass*got.SourceMassFraction.Float64(), got.EthanolMassG, 0.01, "%+v", tt)
		assert.InDelta(t, got.FinalMassG-tt.mass, got.WaterToAddG, 0.06, "%+v", tt)
		assert.Positive(t, got.WaterToAddG, "%+v", tt)
	}
}
