package density

import (
	"fmt"
	"math"

	"alcocalc/internal/domain"
)

// Temperatures accepted as calculator input, in °C.
const (
	MinTemperature = -10.0
	MaxTemperature = 50.0
)

const (
	cautionMinTemperature = 15.0
	cautionMaxTemperature = 25.0
)

// ValidateTemperature classifies t for display warnings. It does not affect
// any computed value.
func ValidateTemperature(t float64) domain.TemperatureCheck {
	check := domain.TemperatureCheck{
		Temperature: t,
		Valid:       !math.IsNaN(t) && t >= MinTemperature && t <= MaxTemperature,
		Level:       WarningLevel(t),
	}

	switch {
	case math.IsNaN(t):
		check.Message = "temperature is not a number"
	case !check.Valid:
		check.Message = fmt.Sprintf("%.1f °C is outside the supported range of %g to %g °C", t, MinTemperature, MaxTemperature)
	case check.Level == domain.WarningDanger:
		check.Message = fmt.Sprintf("%.1f °C is outside the %g-%g °C correction table range; results are less reliable", t, TableMinTemperature, TableMaxTemperature)
	case check.Level == domain.WarningCaution:
		check.Message = fmt.Sprintf("%.1f °C is far from the 20 °C reference; measure closer to 20 °C for best accuracy", t)
	}
	return check
}

// WarningLevel is the bare band classification used by ValidateTemperature.
func WarningLevel(t float64) domain.WarningLevel {
	switch {
	case math.IsNaN(t), t < TableMinTemperature, t > TableMaxTemperature:
		return domain.WarningDanger
	case t < cautionMinTemperature, t > cautionMaxTemperature:
		return domain.WarningCaution
	default:
		return domain.WarningNone
	}
}
