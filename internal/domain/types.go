package domain

// MassFraction is the ethanol share of total mixture mass, in [0, 1].
type MassFraction float64

// Float64 returns the fraction as a plain float.
func (p MassFraction) Float64() float64 { return float64(p) }

// WarningLevel classifies how far a temperature is from the 20 °C reference.
type WarningLevel string

const (
	WarningNone    WarningLevel = "none"
	WarningCaution WarningLevel = "caution"
	WarningDanger  WarningLevel = "danger"
)

// String returns the string form of the level.
func (l WarningLevel) String() string { return string(l) }

// DensityResult is the density of a mixture at a given strength and temperature.
type DensityResult struct {
	ABV               float64      `json:"abv" yaml:"abv"`
	Temperature       float64      `json:"temperature" yaml:"temperature"`
	MassFraction      MassFraction `json:"mass_fraction" yaml:"mass_fraction"`
	Density           float64      `json:"density" yaml:"density"` // g/mL
	ContractionFactor float64      `json:"contraction_factor" yaml:"contraction_factor"`
}

// VolumeResult relates mass and volume of a mixture at temperature.
type VolumeResult struct {
	MassG       float64 `json:"mass_g" yaml:"mass_g"`
	VolumeML    float64 `json:"volume_ml" yaml:"volume_ml"`
	ABV         float64 `json:"abv" yaml:"abv"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Density     float64 `json:"density" yaml:"density"`
}

// EthanolMassResult is the pure ethanol contained in a volume of spirit.
type EthanolMassResult struct {
	VolumeML     float64 `json:"volume_ml" yaml:"volume_ml"`
	ABV          float64 `json:"abv" yaml:"abv"`
	Temperature  float64 `json:"temperature" yaml:"temperature"`
	MassG        float64 `json:"mass_g" yaml:"mass_g"`
	EthanolMassG float64 `json:"ethanol_mass_g" yaml:"ethanol_mass_g"`
}

// DilutionRequest describes a gravimetric dilution.
type DilutionRequest struct {
	SourceMassG float64 `json:"source_mass_g" yaml:"source_mass_g"`
	SourceABV   float64 `json:"source_abv" yaml:"source_abv"`
	TargetABV   float64 `json:"target_abv" yaml:"target_abv"`
}

// DilutionResult is the outcome of diluting by weight.
//
// Ethanol mass is conserved: EthanolMassG = source × SourceMassFraction =
// FinalMassG × TargetMassFraction, and WaterToAddG = FinalMassG − source.
type DilutionResult struct {
	WaterToAddG        float64      `json:"water_to_add_g" yaml:"water_to_add_g"`
	FinalMassG         float64      `json:"final_mass_g" yaml:"final_mass_g"`
	EthanolMassG       float64      `json:"ethanol_mass_g" yaml:"ethanol_mass_g"`
	SourceMassFraction MassFraction `json:"source_mass_fraction" yaml:"source_mass_fraction"`
	TargetMassFraction MassFraction `json:"target_mass_fraction" yaml:"target_mass_fraction"`
}

// HydrometerCorrection is a reading reinterpreted at the 20 °C reference.
type HydrometerCorrection struct {
	ReadingABV        float64 `json:"reading_abv" yaml:"reading_abv"`
	Temperature       float64 `json:"temperature" yaml:"temperature"`
	TrueABV           float64 `json:"true_abv" yaml:"true_abv"`
	Correction        float64 `json:"correction" yaml:"correction"`
	OutsideTableRange bool    `json:"outside_table_range" yaml:"outside_table_range"`
}

// TemperatureCheck is advisory; it never blocks a calculation.
type TemperatureCheck struct {
	Temperature float64      `json:"temperature" yaml:"temperature"`
	Valid       bool         `json:"valid" yaml:"valid"`
	Level       WarningLevel `json:"level" yaml:"level"`
	Message     string       `json:"message" yaml:"message"`
}

// FractionConversion pairs an ABV with its mass fraction.
type FractionConversion struct {
	ABV          float64      `json:"abv" yaml:"abv"`
	MassFraction MassFraction `json:"mass_fraction" yaml:"mass_fraction"`
}

// CoefficientTables describes the compiled-in density model.
type CoefficientTables struct {
	Name        string      `json:"name" yaml:"name"`
	Fingerprint string      `json:"fingerprint" yaml:"fingerprint"`
	A           []float64   `json:"a" yaml:"a"`
	B           []float64   `json:"b" yaml:"b"`
	C           [][]float64 `json:"c" yaml:"c"`
}
