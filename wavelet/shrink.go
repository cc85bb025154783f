package wavelet

import (
	"github.com/278261631/kats-noise-agument/util"
)

// Shrink applies the thresholding rule elementwise and returns a new
// matrix of the same shape. A threshold of 0 leaves every coefficient
// unchanged under both modes.
func Shrink(subband *util.Matrix[float64], threshold float64, mode Mode) *util.Matrix[float64] {
	out := util.New2DMatrix[float64](subband.Height, subband.Width)
	switch mode {
	case ModeHard:
		for i, v := range subband.Data {
			if v > threshold || v < -threshold {
				out.Data[i] = v
			}
		}
	default:
		for i, v := range subband.Data {
			switch {
			case v > threshold:
				out.Data[i] = v - threshold
			case v < -threshold:
				out.Data[i] = v + threshold
			}
		}
	}
	return out
}
