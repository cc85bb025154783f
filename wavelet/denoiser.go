package wavelet

import (
	"fmt"

	"github.com/278261631/kats-noise-agument/util"
)

// Config carries everything one denoise invocation needs besides the image.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	Basis           Basis
	Levels          int
	ThresholdFactor float64
	Mode            Mode
	Method          Method

	// Sigma overrides the estimated global noise level when positive.
	Sigma float64
}

// DefaultConfig mirrors the tuning the denoiser ships with: a biorthogonal
// basis suited to sharp features, six levels, and gentle soft thresholding.
func DefaultConfig() Config {
	return Config{
		Basis:           BasisBior44,
		Levels:          6,
		ThresholdFactor: 0.1,
		Mode:            ModeSoft,
		Method:          MethodAdaptive,
	}
}

// Observer receives per-call diagnostics. Implementations must not retain
// the values across calls; a nil Observer disables diagnostics entirely.
type Observer interface {
	// EstimatedSigma reports the global noise estimate, once per call,
	// only when no caller-supplied sigma was given.
	EstimatedSigma(sigma float64)
	// SubbandThreshold reports each threshold as it is applied.
	SubbandThreshold(level int, orientation Orientation, threshold float64)
}

// Validate checks the configuration against the image dimensions without
// doing any transform work.
func (c Config) Validate(height int, width int) error {
	if _, err := c.Basis.bank(); err != nil {
		return err
	}
	if c.ThresholdFactor <= 0 {
		return fmt.Errorf("%w: threshold factor must be positive, got %g",
			ErrInvalidConfiguration, c.ThresholdFactor)
	}
	if c.Sigma < 0 {
		return fmt.Errorf("%w: sigma must not be negative, got %g",
			ErrInvalidConfiguration, c.Sigma)
	}
	switch c.Mode {
	case ModeSoft, ModeHard:
	default:
		return fmt.Errorf("%w: unknown threshold mode %v", ErrInvalidConfiguration, c.Mode)
	}
	switch c.Method {
	case MethodAdaptive, MethodBayes, MethodSure:
	default:
		return fmt.Errorf("%w: unknown threshold method %v", ErrInvalidConfiguration, c.Method)
	}
	return validateLevels(height, width, c.Basis, c.Levels)
}

// Denoise separates img into a denoised estimate and the removed noise,
// both the same shape as img. img must be free of non-finite values; it is
// never modified.
func Denoise(img *util.Matrix[float64], cfg Config, obs Observer) (denoised, noise *util.Matrix[float64], err error) {
	if err := cfg.Validate(int(img.Height), int(img.Width)); err != nil {
		return nil, nil, err
	}

	sigma := cfg.Sigma
	if sigma == 0 {
		if sigma, err = EstimateGlobalSigma(img, cfg.Basis); err != nil {
			return nil, nil, err
		}
		if obs != nil {
			obs.EstimatedSigma(sigma)
		}
	}

	tree, err := Decompose(img, cfg.Basis, cfg.Levels)
	if err != nil {
		return nil, nil, err
	}

	pixels := int(img.Height) * int(img.Width)
	for level := 1; level <= tree.Levels(); level++ {
		for _, orientation := range detailOrientations {
			sb := tree.DetailAt(level, orientation)

			bandSigma := sigma
			if cfg.Method == MethodAdaptive {
				bandSigma = EstimateSigma(sb.Data)
			}
			threshold := Threshold(cfg.Method, level, orientation, cfg.ThresholdFactor, bandSigma, pixels)
			if obs != nil {
				obs.SubbandThreshold(level, orientation, threshold)
			}
			sb.Data = Shrink(sb.Data, threshold, cfg.Mode)
		}
	}

	denoised, err = Reconstruct(tree, cfg.Basis)
	if err != nil {
		return nil, nil, err
	}

	noise = util.New2DMatrix[float64](img.Height, img.Width)
	for i, v := range img.Data {
		noise.Data[i] = v - denoised.Data[i]
	}
	return denoised, noise, nil
}
