package options

import (
	"fmt"
	"strings"

	"github.com/278261631/kats-noise-agument/wavelet"
)

// DenoiseOptions bundles the tunables a caller hands the denoiser.
type DenoiseOptions struct {
	Basis           wavelet.Basis
	Levels          int
	ThresholdFactor float64
	Mode            wavelet.Mode
	Method          wavelet.Method
	Sigma           float64
}

// NewDenoiseOptions returns the defaults, overridden by any non-nil base.
func NewDenoiseOptions(base *DenoiseOptions) *DenoiseOptions {
	opt := &DenoiseOptions{
		Basis:           wavelet.BasisBior44,
		Levels:          6,
		ThresholdFactor: 0.1,
		Mode:            wavelet.ModeSoft,
		Method:          wavelet.MethodAdaptive,
	}
	if base != nil {
		*opt = *base
	}
	return opt
}

// Config converts the options into the engine's configuration record.
func (o *DenoiseOptions) Config() wavelet.Config {
	return wavelet.Config{
		Basis:           o.Basis,
		Levels:          o.Levels,
		ThresholdFactor: o.ThresholdFactor,
		Mode:            o.Mode,
		Method:          o.Method,
		Sigma:           o.Sigma,
	}
}

// Presets tuned for small sharp noise points on astronomical frames.
// "sharp" trades a deeper decomposition and hard thresholding for crisper
// stars; "ultrasharp" pushes both further and suits large well-sampled
// frames only.
func Preset(name string) (*DenoiseOptions, error) {
	switch strings.ToLower(name) {
	case "default":
		return NewDenoiseOptions(nil), nil
	case "sharp":
		return &DenoiseOptions{
			Basis:           wavelet.BasisBior44,
			Levels:          8,
			ThresholdFactor: 0.03,
			Mode:            wavelet.ModeHard,
			Method:          wavelet.MethodAdaptive,
		}, nil
	case "ultrasharp":
		return &DenoiseOptions{
			Basis:           wavelet.BasisCoif1,
			Levels:          10,
			ThresholdFactor: 0.005,
			Mode:            wavelet.ModeHard,
			Method:          wavelet.MethodAdaptive,
		}, nil
	}
	return nil, fmt.Errorf("unknown preset %q", name)
}
