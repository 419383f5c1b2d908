package domain

import "context"

// Calculator is the alcoholometry surface shared by the local engine and the
// remote HTTP client.
type Calculator interface {
	Density(ctx context.Context, abv, temperature float64) (DensityResult, error)
	AbvToMassFraction(ctx context.Context, abv float64) (FractionConversion, error)
	MassFractionToAbv(ctx context.Context, p MassFraction) (FractionConversion, error)

	VolumeFromMass(ctx context.Context, massG, abv, temperature float64) (VolumeResult, error)
	MassFromVolume(ctx context.Context, volumeML, abv, temperature float64) (VolumeResult, error)
	EthanolMass(ctx context.Context, volumeML, abv, temperature float64) (EthanolMassResult, error)
	Dilute(ctx context.Context, req DilutionRequest) (DilutionResult, error)

	CorrectHydrometer(ctx context.Context, readingABV, temperature float64) (HydrometerCorrection, error)
	CheckTemperature(ctx context.Context, temperature float64) (TemperatureCheck, error)

	Tables(ctx context.Context) (CoefficientTables, error)
}
