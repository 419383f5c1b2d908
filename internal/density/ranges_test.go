package density_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"alcocalc/internal/density"
	"alcocalc/internal/domain"
)

func TestValidateTemperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		temp      float64
		wantLevel domain.WarningLevel
		wantValid bool
	}{
		{20, domain.WarningNone, true},
		{15, domain.WarningNone, true},
		{25, domain.WarningNone, true},
		{14.9, domain.WarningCaution, true},
		{25.1, domain.WarningCaution, true},
		{10, domain.WarningCaution, true},
		{30, domain.WarningCaution, true},
		{9.9, domain.WarningDanger, true},
		{30.1, domain.WarningDanger, true},
		{-10, domain.WarningDanger, true},
		{50, domain.WarningDanger, true},
		{-10.5, domain.WarningDanger, false},
		{51, domain.WarningDanger, false},
		{math.NaN(), domain.WarningDanger, false},
	}

	for _, tt := range tests {
		got := density.ValidateTemperature(tt.temp)
		assert.Equal(t, tt.wantLevel, got.Level, "t=%v", tt.temp)
		assert.Equal(t, tt.wantValid, got.Valid, "t=%v", tt.temp)
		if tt.wantLevel == domain.WarningNone {
			assert.Empty(t, got.Message, "t=%v", tt.temp)
		} else {
			assert.NotEmpty(t, got.Message, "t=%v", tt.temp)
		}
	}
}
