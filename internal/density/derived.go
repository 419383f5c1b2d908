package density

import "alcocalc/internal/domain"

// DensityAt returns the density and contraction factor of a mixture of the
// given ABV at temperature t.
func DensityAt(abv, t float64) domain.DensityResult {
	p := AbvToMassFraction(abv)
	return domain.DensityResult{
		ABV:               abv,
		Temperature:       t,
		MassFraction:      domain.MassFraction(round(float64(p), PlacesFraction)),
		Density:           round(Density(p, t), PlacesDensity),
		ContractionFactor: round(ContractionFactor(p, t), PlacesDensity),
	}
}

// ConvertAbv pairs abv with its mass fraction.
func ConvertAbv(abv float64) domain.FractionConversion {
	p := AbvToMassFraction(abv)
	return domain.FractionConversion{
		ABV:          abv,
		MassFraction: domain.MassFraction(round(float64(p), PlacesFraction)),
	}
}

// ConvertMassFraction pairs p with its ABV at 20 °C.
func ConvertMassFraction(p domain.MassFraction) domain.FractionConversion {
	return domain.FractionConversion{
		ABV:          round(MassFractionToAbv(p), PlacesABV),
		MassFraction: p,
	}
}

// VolumeFromMass returns the volume in mL occupied by massG grams of spirit.
func VolumeFromMass(massG, abv, t float64) domain.VolumeResult {
	rho := Density(AbvToMassFraction(abv), t)
	return domain.VolumeResult{
		MassG:       massG,
		VolumeML:    round(massG/rho, PlacesQuantity),
		ABV:         abv,
		Temperature: t,
		Density:     round(rho, PlacesDensity),
	}
}

// MassFromVolume returns the mass in grams of volumeML millilitres of spirit.
func MassFromVolume(volumeML, abv, t float64) domain.VolumeResult {
	rho := Density(AbvToMassFraction(abv), t)
	return domain.VolumeResult{
		MassG:       round(volumeML*rho, PlacesQuantity),
		VolumeML:    volumeML,
		ABV:         abv,
		Temperature: t,
		Density:     round(rho, PlacesDensity),
	}
}

// EthanolMass returns the mass of pure ethanol in volumeML of spirit.
func EthanolMass(volumeML, abv, t float64) domain.EthanolMassResult {
	p := AbvToMassFraction(abv)
	mass := volumeML * Density(p, t)
	return domain.EthanolMassResult{
		VolumeML:     volumeML,
		ABV:          abv,
		Temperature:  t,
		MassG:        round(mass, PlacesQuantity),
		EthanolMassG: round(mass*float64(p), PlacesQuantity),
	}
}

// DilutionWater computes how much water to add, by weight, to bring
// sourceMassG grams at sourceAbv down to targetAbv. Ethanol mass is conserved.
//
// targetAbv must be lower than sourceAbv and above zero. The caller checks
// this; otherwise the result is negative or infinite.
func DilutionWater(sourceMassG, sourceAbv, targetAbv float64) domain.DilutionResult {
	p1 := AbvToMassFraction(sourceAbv)
	p2 := AbvToMassFraction(targetAbv)

	ethanol := sourceMassG * float64(p1)
	final := ethanol / float64(p2)

	return domain.DilutionResult{
		WaterToAddG:        round(final-sourceMassG, PlacesWater),
		FinalMassG:         round(final, PlacesQuantity),
		EthanolMassG:       round(ethanol, PlacesQuantity),
		SourceMassFraction: domain.MassFraction(round(float64(p1), PlacesFraction)),
		TargetMassFraction: domain.MassFraction(round(float64(p2), PlacesFraction)),
	}
}
