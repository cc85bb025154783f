package wavelet

import (
	"fmt"
	"math"
	"strings"
)

// Method selects how per-subband thresholds are derived.
type Method int

const (
	// MethodAdaptive scales a per-subband noise estimate by level and
	// orientation, preserving sharp features at finer levels.
	MethodAdaptive Method = iota
	// MethodBayes applies one universal threshold per level from the
	// global noise estimate.
	MethodBayes
	// MethodSure behaves identically to MethodBayes.
	MethodSure
)

func (m Method) String() string {
	switch m {
	case MethodAdaptive:
		return "adaptive"
	case MethodBayes:
		return "bayes"
	case MethodSure:
		return "sure"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "adaptive":
		return MethodAdaptive, nil
	case "bayes":
		return MethodBayes, nil
	case "sure":
		return MethodSure, nil
	}
	return 0, fmt.Errorf("%w: unknown threshold method %q", ErrInvalidConfiguration, name)
}

// Mode selects the shrinkage rule applied below/around the threshold.
type Mode int

const (
	ModeSoft Mode = iota
	ModeHard
)

func (m Mode) String() string {
	switch m {
	case ModeSoft:
		return "soft"
	case ModeHard:
		return "hard"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "soft":
		return ModeSoft, nil
	case "hard":
		return ModeHard, nil
	}
	return 0, fmt.Errorf("%w: unknown threshold mode %q", ErrInvalidConfiguration, name)
}

// orientationFactor weights diagonal subbands more heavily: they carry
// proportionally more isotropic noise and less edge signal.
func orientationFactor(orientation Orientation) float64 {
	if orientation == Diagonal {
		return 2.0
	}
	return 1.5
}

// Threshold computes the scalar threshold for one detail subband. level is
// 1-based with 1 the coarsest. For MethodAdaptive, sigma is the subband's
// own local estimate; for MethodBayes/MethodSure it is the single global
// estimate and pixels is the original image's total pixel count.
func Threshold(method Method, level int, orientation Orientation, factor float64, sigma float64, pixels int) float64 {
	switch method {
	case MethodAdaptive:
		levelFactor := factor * math.Pow(0.5, float64(level-1))
		return sigma * levelFactor * orientationFactor(orientation)
	default:
		return sigma * factor * math.Sqrt(2*math.Log(float64(pixels)))
	}
}
