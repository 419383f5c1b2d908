package density

import (
	"math"

	"github.com/shopspring/decimal"
)

// Decimal places of each returned quantity.
const (
	PlacesQuantity   = 2 // grams, millilitres
	PlacesDensity    = 4 // g/mL, contraction factor
	PlacesFraction   = 6 // mass fractions
	PlacesABV        = 4 // %vol from a mass fraction
	PlacesWater      = 1 // water to add
	PlacesCorrection = 1 // hydrometer ABV and correction
)

// round rounds half away from zero in decimal, so 0.125 at two places is
// 0.13 whatever its binary representation.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
