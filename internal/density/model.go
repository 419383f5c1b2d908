package density

import "alcocalc/internal/domain"

// ReferenceTemperature is the calibration point of the model and of ABV, in °C.
const ReferenceTemperature = 20.0

// Density returns the density in g/mL of an ethanol-water mixture with mass
// fraction p at temperature t (°C).
//
// The model is a smooth polynomial: it is defined for any t and never fails,
// but loses physical meaning well outside -10..50 °C.
func Density(p domain.MassFraction, t float64) float64 {
	return densityKg(float64(p), t) / 1000
}

func densityKg(p, t float64) float64 {
	dt := t - ReferenceTemperature

	var rho float64
	pk := 1.0
	for _, a := range coeffA {
		rho += a * pk
		pk *= p
	}

	dtk := dt
	for _, b := range coeffB {
		rho += b * dtk
		dtk *= dt
	}

	dti := dt
	for _, row := range coeffC {
		pk := p
		for _, c := range row {
			rho += c * pk * dti
			pk *= p
		}
		dti *= dt
	}
	return rho
}

// WaterDensity is the density of pure water at t, in g/mL.
func WaterDensity(t float64) float64 { return Density(0, t) }

// EthanolDensity is the density of pure ethanol at t, in g/mL.
func EthanolDensity(t float64) float64 { return Density(1, t) }

// ContractionFactor is the ratio of the ideal volume (each component at its
// own pure density) to the real mixture volume, both at t. It is 1 for pure
// water or pure ethanol and above 1 in between.
func ContractionFactor(p domain.MassFraction, t float64) float64 {
	f := float64(p)
	ideal := f/EthanolDensity(t) + (1-f)/WaterDensity(t)
	return Density(p, t) * ideal
}
