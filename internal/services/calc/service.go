package calc

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"alcocalc/internal/density"
	"alcocalc/internal/domain"
)

// Service runs the density engine on validated input.
//
// The engine accepts anything and degrades gracefully; this service is the
// caller that enforces its preconditions:
//   - ABV in [0, 100] and mass fractions in [0, 1].
//   - Temperatures in the calculator band of -10..50 °C.
//   - Positive masses and volumes.
//   - Dilutions that lower the strength.
type Service struct {
	log *slog.Logger
}

// New returns a Service logging to logger, or to slog.Default when nil.
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{log: logger.With("component", "calc")}
}

// Density returns the density and contraction factor at abv and temperature.
func (s *Service) Density(ctx context.Context, abv, temperature float64) (domain.DensityResult, error) {
	if err := checkABV(abv); err != nil {
		return domain.DensityResult{}, err
	}
	if err := checkTemperature(temperature); err != nil {
		return domain.DensityResult{}, err
	}
	res := density.DensityAt(abv, temperature)
	s.log.DebugContext(ctx, "density", "abv", abv, "temperature", temperature, "density", res.Density)
	return res, nil
}

// AbvToMassFraction converts ABV to mass fraction.
func (s *Service) AbvToMassFraction(ctx context.Context, abv float64) (domain.FractionConversion, error) {
	if err := checkABV(abv); err != nil {
		return domain.FractionConversion{}, err
	}
	res := density.ConvertAbv(abv)
	s.log.DebugContext(ctx, "abv to mass fraction", "abv", abv, "mass_fraction", float64(res.MassFraction))
	return res, nil
}

// MassFractionToAbv converts mass fraction to ABV.
func (s *Service) MassFractionToAbv(ctx context.Context, p domain.MassFraction) (domain.FractionConversion, error) {
	if math.IsNaN(float64(p)) || p < 0 || p > 1 {
		return domain.FractionConversion{}, fmt.Errorf("mass fraction %v: %w", float64(p), domain.ErrInvalidMassFraction)
	}
	res := density.ConvertMassFraction(p)
	s.log.DebugContext(ctx, "mass fraction to abv", "mass_fraction", float64(p), "abv", res.ABV)
	return res, nil
}

// VolumeFromMass returns the volume of massG grams of spirit.
func (s *Service) VolumeFromMass(ctx context.Context, massG, abv, temperature float64) (domain.VolumeResult, error) {
	if err := checkInputs(massG, abv, temperature); err != nil {
		return domain.VolumeResult{}, err
	}
	res := density.VolumeFromMass(massG, abv, temperature)
	s.log.DebugContext(ctx, "volume from mass", "mass_g", massG, "abv", abv, "temperature", temperature, "volume_ml", res.VolumeML)
	return res, nil
}

// MassFromVolume returns the mass of volumeML millilitres of spirit.
func (s *Service) MassFromVolume(ctx context.Context, volumeML, abv, temperature float64) (domain.VolumeResult, error) {
	if err := checkInputs(volumeML, abv, temperature); err != nil {
		return domain.VolumeResult{}, err
	}
	res := density.MassFromVolume(volumeML, abv, temperature)
	s.log.DebugContext(ctx, "mass from volume", "volume_ml", volumeML, "abv", abv, "temperature", temperature, "mass_g", res.MassG)
	return res, nil
}

// EthanolMass returns the pure ethanol mass in volumeML of spirit.
func (s *Service) EthanolMass(ctx context.Context, volumeML, abv, temperature float64) (domain.EthanolMassResult, error) {
	if err := checkInputs(volumeML, abv, temperature); err != nil {
		return domain.EthanolMassResult{}, err
	}
	res := density.EthanolMass(volumeML, abv, temperature)
	s.log.DebugContext(ctx, "ethanol mass", "volume_ml", volumeML, "abv", abv, "ethanol_mass_g", res.EthanolMassG)
	return res, nil
}

// Dilute computes the water to add by weight to reach the target strength.
func (s *Service) Dilute(ctx context.Context, req domain.DilutionRequest) (domain.DilutionResult, error) {
	if err := checkQuantity(req.SourceMassG); err != nil {
		return domain.DilutionResult{}, err
	}
	if err := checkABV(req.SourceABV); err != nil {
		return domain.DilutionResult{}, fmt.Errorf("source: %w", err)
	}
	if err := checkABV(req.TargetABV); err != nil {
		return domain.DilutionResult{}, fmt.Errorf("target: %w", err)
	}
	if req.TargetABV <= 0 || req.TargetABV >= req.SourceABV {
		return domain.DilutionResult{}, fmt.Errorf("%v%% to %v%%: %w", req.SourceABV, req.TargetABV, domain.ErrNotDiluting)
	}
	res := density.DilutionWater(req.SourceMassG, req.SourceABV, req.TargetABV)
	s.log.DebugContext(ctx, "dilute",
		"source_mass_g", req.SourceMassG,
		"source_abv", req.SourceABV,
		"target_abv", req.TargetABV,
		"water_to_add_g", res.WaterToAddG,
	)
	return res, nil
}

// CorrectHydrometer recovers the true ABV from a reading taken at temperature.
// Temperatures outside the correction tables are flagged, not rejected.
func (s *Service) CorrectHydrometer(ctx context.Context, readingABV, temperature float64) (domain.HydrometerCorrection, error) {
	if err := checkABV(readingABV); err != nil {
		return domain.HydrometerCorrection{}, err
	}
	if err := checkTemperature(temperature); err != nil {
		return domain.HydrometerCorrection{}, err
	}
	res := density.CorrectHydrometerReading(readingABV, temperature)
	if res.OutsideTableRange {
		s.log.WarnContext(ctx, "hydrometer reading outside correction table range", "temperature", temperature)
	}
	s.log.DebugContext(ctx, "hydrometer", "reading_abv", readingABV, "temperature", temperature, "true_abv", res.TrueABV)
	return res, nil
}

// CheckTemperature classifies temperature; it never fails.
func (s *Service) CheckTemperature(_ context.Context, temperature float64) (domain.TemperatureCheck, error) {
	return density.ValidateTemperature(temperature), nil
}

// Tables describes the compiled-in coefficient set.
func (s *Service) Tables(context.Context) (domain.CoefficientTables, error) {
	a, b, c := density.Coefficients()
	return domain.CoefficientTables{
		Name:        density.TableName,
		Fingerprint: density.TableFingerprint(),
		A:           a,
		B:           b,
		C:           c,
	}, nil
}

func checkInputs(quantity, abv, temperature float64) error {
	if err := checkQuantity(quantity); err != nil {
		return err
	}
	if err := checkABV(abv); err != nil {
		return err
	}
	return checkTemperature(temperature)
}

func checkABV(abv float64) error {
	if math.IsNaN(abv) || abv < 0 || abv > 100 {
		return fmt.Errorf("abv %v: %w", abv, domain.ErrInvalidABV)
	}
	return nil
}

func checkTemperature(t float64) error {
	if !density.ValidateTemperature(t).Valid {
		return fmt.Errorf("temperature %v: %w", t, domain.ErrInvalidTemperature)
	}
	return nil
}

func checkQuantity(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return fmt.Errorf("quantity %v: %w", q, domain.ErrInvalidQuantity)
	}
	return nil
}

// Compile-time assertion that Service implements domain.Calculator.
var _ domain.Calculator = (*Service)(nil)
