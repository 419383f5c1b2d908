// Package density implements the OIML R 22 alcoholometry engine for
// ethanol-water mixtures.
//
// Contents
//
//   - The polynomial density model ρ(p, t) over mass fraction and temperature
//     (Density, ContractionFactor) with its coefficient tables
//     (Coefficients, TableFingerprint)
//   - ABV ↔ mass fraction conversion (AbvToMassFraction by fixed-depth
//     bisection, MassFractionToAbv in closed form)
//   - Derived quantities: DensityAt, VolumeFromMass, MassFromVolume,
//     EthanolMass and gravimetric DilutionWater
//   - Hydrometer temperature correction (CorrectHydrometerReading)
//   - Advisory temperature banding (ValidateTemperature)
//
// # Notes
//
// Every function is pure and safe for concurrent use. Inputs are not
// validated: out-of-range values produce a number, never an error. Solvers run
// a fixed number of bisection steps, so identical inputs give bit-identical
// outputs. Returned quantities are rounded to the Places* constants.
package density
