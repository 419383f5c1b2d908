package density

import "alcocalc/internal/domain"

const (
	hydrometerIterations = 30

	// Correction tables are traditionally published for 10..30 °C only.
	TableMinTemperature = 10.0
	TableMaxTemperature = 30.0
)

// CorrectHydrometerReading recovers the true ABV at 20 °C from a hydrometer
// reading taken at temperature t.
//
// The instrument is engraved for 20 °C, so the reading names the density
// ρ(reading, 20). The true strength is the ABV whose density at t equals it.
// Outside 10..30 °C the result is still returned, flagged OutsideTableRange.
func CorrectHydrometerReading(readingAbv, t float64) domain.HydrometerCorrection {
	target := Density(AbvToMassFraction(readingAbv), ReferenceTemperature)

	lo, hi := 0.0, 100.0
	for range hydrometerIterations {
		mid := (lo + hi) / 2
		// Density falls as strength rises.
		if Density(AbvToMassFraction(mid), t) > target {
			lo = mid
		} else {
			hi = mid
		}
	}
	// TrueABV is derived from the rounded correction so the two always add up.
	correction := round((lo+hi)/2-readingAbv, PlacesCorrection)

	return domain.HydrometerCorrection{
		ReadingABV:        readingAbv,
		Temperature:       t,
		TrueABV:           round(readingAbv+correction, PlacesFraction),
		Correction:        correction,
		OutsideTableRange: t < TableMinTemperature || t > TableMaxTemperature,
	}
}
