package wavelet

import (
	"github.com/278261631/kats-noise-agument/util"
)

// madScale converts the median absolute deviation of zero-mean Gaussian
// samples into a standard deviation.
const madScale = 0.6745

// EstimateSigma returns the robust noise level of one subband,
// median(|coefficients|) / 0.6745. A constant subband gives 0, which
// downstream thresholds treat as "suppress nothing".
func EstimateSigma(subband *util.Matrix[float64]) float64 {
	abs := make([]float64, len(subband.Data))
	for i, v := range subband.Data {
		if v < 0 {
			abs[i] = -v
		} else {
			abs[i] = v
		}
	}
	return util.Median(abs) / madScale
}

// EstimateGlobalSigma estimates the image-wide noise level from a one-level
// decomposition, pooling the magnitudes of all three detail subbands.
func EstimateGlobalSigma(img *util.Matrix[float64], basis Basis) (float64, error) {
	tree, err := Decompose(img, basis, 1)
	if err != nil {
		return 0, err
	}
	var abs []float64
	for _, sb := range tree.Detail[0] {
		for _, v := range sb.Data.Data {
			if v < 0 {
				v = -v
			}
			abs = append(abs, v)
		}
	}
	return util.Median(abs) / madScale, nil
}
