package density

import "alcocalc/internal/domain"

// fractionIterations fixes the bisection depth of AbvToMassFraction.
// 2^-40 on p is far below anything the rounding policy can show.
const fractionIterations = 40

// AbvToMassFraction converts an alcohol-by-volume percentage (defined at
// 20 °C) to a mass fraction by bisecting the implied volume fraction
// p·ρ(p,20)/ρ(1,20).
func AbvToMassFraction(abv float64) domain.MassFraction {
	if abv <= 0 {
		return 0
	}
	if abv >= 100 {
		return 1
	}

	target := abv / 100
	lo, hi := 0.0, 1.0
	for range fractionIterations {
		mid := (lo + hi) / 2
		if volumeFraction(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return domain.MassFraction((lo + hi) / 2)
}

// MassFractionToAbv is the closed-form inverse of AbvToMassFraction.
func MassFractionToAbv(p domain.MassFraction) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 100
	}
	return 100 * volumeFraction(float64(p))
}

func volumeFraction(p float64) float64 {
	return p * densityKg(p, ReferenceTemperature) / densityKg(1, ReferenceTemperature)
}
