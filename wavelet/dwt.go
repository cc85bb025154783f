package wavelet

import (
	"fmt"

	"github.com/278261631/kats-noise-agument/util"
)

// The 1-D transform extends the signal symmetrically (half-sample: the edge
// value repeats) and keeps the odd-indexed samples of the full valid
// convolution, so a signal of length n yields subbands of length
// (n+F-1)/2. The extra boundary coefficients are what make the inverse an
// exact round trip for every supported basis.

// symIndex folds an out-of-range index back into [0, n) by repeated
// half-sample reflection.
func symIndex(k int, n int) int {
	for k < 0 || k >= n {
		if k < 0 {
			k = -k - 1
		}
		if k >= n {
			k = 2*n - 1 - k
		}
	}
	return k
}

func subbandLength(n int, filterLen int) int {
	return (n + filterLen - 1) / 2
}

// dwt1d convolves the symmetrically extended signal with both analysis
// filters and decimates by two. lo and hi must each have length
// subbandLength(len(x), F).
func dwt1d(x []float64, fb *filterBank, lo []float64, hi []float64) {
	n := len(x)
	f := fb.length()
	for o := range lo {
		i := 2*o + 1
		var sumLo, sumHi float64
		for j := 0; j < f; j++ {
			v := x[symIndex(i-j, n)]
			sumLo += fb.decLo[j] * v
			sumHi += fb.decHi[j] * v
		}
		lo[o] = sumLo
		hi[o] = sumHi
	}
}

// idwt1d merges one approximation/detail pair back into a signal of length
// 2*len(lo) - F + 2, keeping only the samples every analysis coefficient of
// which is present in the subbands.
func idwt1d(lo []float64, hi []float64, fb *filterBank, out []float64) {
	c := len(lo)
	f := fb.length()
	for k := range out {
		n := k + f - 2
		oMin := 0
		if n-f+1 > 0 {
			oMin = (n - f + 2) / 2
		}
		oMax := n / 2
		if oMax > c-1 {
			oMax = c - 1
		}
		var sum float64
		for o := oMin; o <= oMax; o++ {
			sum += lo[o]*fb.recLo[n-2*o] + hi[o]*fb.recHi[n-2*o]
		}
		out[k] = sum
	}
}

// dwt2d performs one separable decomposition step: rows first, then
// columns, giving the approximation plus the three oriented detail bands.
// Horizontal detail is highpass along y, vertical is highpass along x.
func dwt2d(img *util.Matrix[float64], fb *filterBank) (ll, lh, hl, hh *util.Matrix[float64]) {
	h := int(img.Height)
	w := int(img.Width)
	cw := subbandLength(w, fb.length())
	ch := subbandLength(h, fb.length())

	rowLo := util.New2DMatrix[float64](int32(h), int32(cw))
	rowHi := util.New2DMatrix[float64](int32(h), int32(cw))
	for y := 0; y < h; y++ {
		dwt1d(img.GetRow(int32(y)), fb, rowLo.GetRow(int32(y)), rowHi.GetRow(int32(y)))
	}

	ll = util.New2DMatrix[float64](int32(ch), int32(cw))
	lh = util.New2DMatrix[float64](int32(ch), int32(cw))
	hl = util.New2DMatrix[float64](int32(ch), int32(cw))
	hh = util.New2DMatrix[float64](int32(ch), int32(cw))

	col := make([]float64, h)
	colLo := make([]float64, ch)
	colHi := make([]float64, ch)
	for x := 0; x < cw; x++ {
		rowLo.GetColumn(int32(x), col)
		dwt1d(col, fb, colLo, colHi)
		ll.SetColumn(int32(x), colLo)
		lh.SetColumn(int32(x), colHi)

		rowHi.GetColumn(int32(x), col)
		dwt1d(col, fb, colLo, colHi)
		hl.SetColumn(int32(x), colLo)
		hh.SetColumn(int32(x), colHi)
	}
	return ll, lh, hl, hh
}

// idwt2d inverts one decomposition step: columns first, then rows.
func idwt2d(ll, lh, hl, hh *util.Matrix[float64], fb *filterBank) *util.Matrix[float64] {
	f := fb.length()
	ch := int(ll.Height)
	cw := int(ll.Width)
	outH := 2*ch - f + 2
	outW := 2*cw - f + 2

	rowLo := util.New2DMatrix[float64](int32(outH), int32(cw))
	rowHi := util.New2DMatrix[float64](int32(outH), int32(cw))

	colLo := make([]float64, ch)
	colHi := make([]float64, ch)
	colOut := make([]float64, outH)
	for x := 0; x < cw; x++ {
		ll.GetColumn(int32(x), colLo)
		lh.GetColumn(int32(x), colHi)
		idwt1d(colLo, colHi, fb, colOut)
		rowLo.SetColumn(int32(x), colOut)

		hl.GetColumn(int32(x), colLo)
		hh.GetColumn(int32(x), colHi)
		idwt1d(colLo, colHi, fb, colOut)
		rowHi.SetColumn(int32(x), colOut)
	}

	out := util.New2DMatrix[float64](int32(outH), int32(outW))
	for y := 0; y < outH; y++ {
		idwt1d(rowLo.GetRow(int32(y)), rowHi.GetRow(int32(y)), fb, out.GetRow(int32(y)))
	}
	return out
}

// Decompose runs a levels-deep 2-D transform, decomposing the approximation
// band at each step. The returned tree orders detail levels coarsest first.
func Decompose(img *util.Matrix[float64], basis Basis, levels int) (*CoefficientTree, error) {
	fb, err := basis.bank()
	if err != nil {
		return nil, err
	}
	if err := validateLevels(int(img.Height), int(img.Width), basis, levels); err != nil {
		return nil, err
	}

	tree := &CoefficientTree{
		Detail:      make([][]*Subband, levels),
		imageHeight: img.Height,
		imageWidth:  img.Width,
	}

	approx := img
	// Step k produces the detail bands for level levels-k+1: the last
	// decomposition step yields the coarsest level, slot 0.
	for step := 0; step < levels; step++ {
		ll, lh, hl, hh := dwt2d(approx, &fb)
		level := levels - step
		tree.Detail[level-1] = []*Subband{
			{Level: level, Orientation: Horizontal, Data: lh},
			{Level: level, Orientation: Vertical, Data: hl},
			{Level: level, Orientation: Diagonal, Data: hh},
		}
		approx = ll
	}
	tree.Approx = &Subband{Level: 0, Orientation: Approx, Data: approx}
	return tree, nil
}

// Reconstruct inverts Decompose with the same basis. The regrown
// approximation can come out one sample larger than the next finer detail
// bands along either axis; it is cropped top-left to match, and the final
// image is cropped top-left to the original dimensions.
func Reconstruct(tree *CoefficientTree, basis Basis) (*util.Matrix[float64], error) {
	fb, err := basis.bank()
	if err != nil {
		return nil, err
	}

	approx := tree.Approx.Data
	for i := range tree.Detail {
		level := i + 1
		lh := tree.DetailAt(level, Horizontal).Data
		hl := tree.DetailAt(level, Vertical).Data
		hh := tree.DetailAt(level, Diagonal).Data
		if approx.Height < lh.Height || approx.Width < lh.Width {
			return nil, fmt.Errorf("%w: approximation %dx%d smaller than detail %dx%d",
				ErrShapeMismatch, approx.Height, approx.Width, lh.Height, lh.Width)
		}
		if approx.Height > lh.Height || approx.Width > lh.Width {
			approx = approx.Crop(lh.Height, lh.Width)
		}
		approx = idwt2d(approx, lh, hl, hh, &fb)
	}

	if approx.Height < tree.imageHeight || approx.Width < tree.imageWidth {
		return nil, fmt.Errorf("%w: reconstruction %dx%d cannot cover image %dx%d",
			ErrShapeMismatch, approx.Height, approx.Width, tree.imageHeight, tree.imageWidth)
	}
	if approx.Height > tree.imageHeight || approx.Width > tree.imageWidth {
		approx = approx.Crop(tree.imageHeight, tree.imageWidth)
	}
	return approx, nil
}

// validateLevels walks the per-level subband dimensions and rejects a level
// count that would shrink either dimension below the filter length.
func validateLevels(height int, width int, basis Basis, levels int) error {
	if levels < 1 {
		return fmt.Errorf("%w: levels must be >= 1, got %d", ErrInvalidConfiguration, levels)
	}
	f := basis.FilterLength()
	h, w := height, width
	for level := 1; level <= levels; level++ {
		if h < f || w < f {
			return fmt.Errorf("%w: level %d subband %dx%d below %v filter length %d",
				ErrInvalidConfiguration, level, h, w, basis, f)
		}
		h = subbandLength(h, f)
		w = subbandLength(w, f)
	}
	return nil
}
