package testcommon

import (
	"math/rand"

	"github.com/278261631/kats-noise-agument/util"
	"github.com/278261631/kats-noise-agument/wavelet"
)

// ThresholdRecord is one observer callback captured during a denoise call.
type ThresholdRecord struct {
	Level       int
	Orientation wavelet.Orientation
	Threshold   float64
}

// ObserverRecorder records every diagnostic the engine emits so tests can
// assert against them.
type ObserverRecorder struct {
	SigmaData     []float64
	ThresholdData []ThresholdRecord
}

func NewObserverRecorder() *ObserverRecorder {
	return &ObserverRecorder{}
}

func (o *ObserverRecorder) EstimatedSigma(sigma float64) {
	o.SigmaData = append(o.SigmaData, sigma)
}

func (o *ObserverRecorder) SubbandThreshold(level int, orientation wavelet.Orientation, threshold float64) {
	o.ThresholdData = append(o.ThresholdData, ThresholdRecord{
		Level:       level,
		Orientation: orientation,
		Threshold:   threshold,
	})
}

// ThresholdFor returns the recorded threshold for one subband, or -1.
func (o *ObserverRecorder) ThresholdFor(level int, orientation wavelet.Orientation) float64 {
	for _, rec := range o.ThresholdData {
		if rec.Level == level && rec.Orientation == orientation {
			return rec.Threshold
		}
	}
	return -1
}

// ConstantImage builds a height x width image of one value.
func ConstantImage(height, width int32, value float64) *util.Matrix[float64] {
	m := util.New2DMatrix[float64](height, width)
	m.Fill(value)
	return m
}

// NoisyImage builds a deterministic pseudo-random image: a smooth gradient
// plus uniform noise of the given amplitude.
func NoisyImage(height, width int32, amplitude float64, seed int64) *util.Matrix[float64] {
	rng := rand.New(rand.NewSource(seed))
	m := util.New2DMatrix[float64](height, width)
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			base := float64(y)*0.5 + float64(x)*0.25
			m.Set(y, x, base+amplitude*(rng.Float64()*2-1))
		}
	}
	return m
}

// ImpulseImage builds an all-zero image with a single bright pixel.
func ImpulseImage(height, width, y, x int32, value float64) *util.Matrix[float64] {
	m := util.New2DMatrix[float64](height, width)
	m.Set(y, x, value)
	return m
}
