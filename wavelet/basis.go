package wavelet

import (
	"fmt"
	"strings"
)

// Basis selects the filter pair used for decomposition and reconstruction.
type Basis int

const (
	BasisHaar Basis = iota
	BasisDB2
	BasisDB4
	BasisCoif1
	BasisBior22
	BasisBior44
)

func (b Basis) String() string {
	switch b {
	case BasisHaar:
		return "haar"
	case BasisDB2:
		return "db2"
	case BasisDB4:
		return "db4"
	case BasisCoif1:
		return "coif1"
	case BasisBior22:
		return "bior2.2"
	case BasisBior44:
		return "bior4.4"
	}
	return fmt.Sprintf("basis(%d)", int(b))
}

// ParseBasis maps the wavelet names used on the command line to a Basis.
func ParseBasis(name string) (Basis, error) {
	switch strings.ToLower(name) {
	case "haar", "bior1.1":
		return BasisHaar, nil
	case "db2":
		return BasisDB2, nil
	case "db4":
		return BasisDB4, nil
	case "coif1":
		return BasisCoif1, nil
	case "bior2.2":
		return BasisBior22, nil
	case "bior4.4":
		return BasisBior44, nil
	}
	return 0, fmt.Errorf("%w: unknown wavelet basis %q", ErrInvalidConfiguration, name)
}

// filterBank holds the four filters of a biorthogonal pair. All filters have
// the same even length, padded so the halfband product of the two lowpass
// filters is centred at index len-1. That alignment is what makes the
// decimation/reconstruction indexing in dwt.go an exact inverse.
type filterBank struct {
	decLo []float64
	decHi []float64
	recLo []float64
	recHi []float64
}

func (fb *filterBank) length() int {
	return len(fb.decLo)
}

// orthogonalBank builds a filter bank from an orthonormal scaling filter h:
// reconstruction lowpass is h itself, decomposition lowpass its reverse.
func orthogonalBank(h []float64) filterBank {
	n := len(h)
	decLo := make([]float64, n)
	for i, v := range h {
		decLo[n-1-i] = v
	}
	return deriveHighpass(decLo, h)
}

// biorthogonalBank builds a filter bank from an analysis/synthesis lowpass
// pair, already zero-padded to a common even length.
func biorthogonalBank(decLo, recLo []float64) filterBank {
	return deriveHighpass(decLo, recLo)
}

// deriveHighpass applies the alternating-flip construction:
// recHi[k] = (-1)^k decLo[k], decHi[k] = (-1)^(k+1) recLo[k].
func deriveHighpass(decLo, recLo []float64) filterBank {
	n := len(decLo)
	decHi := make([]float64, n)
	recHi := make([]float64, n)
	for k := 0; k < n; k++ {
		if k%2 == 0 {
			recHi[k] = decLo[k]
			decHi[k] = -recLo[k]
		} else {
			recHi[k] = -decLo[k]
			decHi[k] = recLo[k]
		}
	}
	return filterBank{decLo: decLo, decHi: decHi, recLo: recLo, recHi: recHi}
}

var filterBanks = map[Basis]filterBank{
	BasisHaar: orthogonalBank([]float64{
		0.7071067811865476, 0.7071067811865476,
	}),
	BasisDB2: orthogonalBank([]float64{
		0.48296291314469025, 0.8365163037378079,
		0.22414386804185735, -0.12940952255092145,
	}),
	BasisDB4: orthogonalBank([]float64{
		0.23037781330885523, 0.7148465705525415,
		0.6308807679295904, -0.02798376941698385,
		-0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	}),
	BasisCoif1: orthogonalBank([]float64{
		-0.01565572813546454, -0.0727326195128539,
		0.38486484686420286, 0.8525720202122554,
		0.3378976624578092, -0.0727326195128539,
	}),
	// LeGall 5/3: lowpass pair sqrt2*[-1/8,1/4,3/4,1/4,-1/8] / sqrt2*[1/4,1/2,1/4].
	BasisBior22: biorthogonalBank(
		[]float64{
			0,
			-0.17677669529663689, 0.35355339059327379,
			1.06066017177982119, 0.35355339059327379,
			-0.17677669529663689,
		},
		[]float64{
			0,
			0.35355339059327379, 0.70710678118654757,
			0.35355339059327379, 0, 0,
		},
	),
	// CDF 9/7, the JPEG2000 irrational pair.
	BasisBior44: biorthogonalBank(
		[]float64{
			0,
			0.03782845550699535, -0.02384946501937986,
			-0.11062440441842342, 0.37740285561265380,
			0.85269867900940344, 0.37740285561265380,
			-0.11062440441842342, -0.02384946501937986,
			0.03782845550699535,
		},
		[]float64{
			0,
			-0.06453888262893856, -0.04068941760955867,
			0.41809227322221221, 0.78848561640566030,
			0.41809227322221221, -0.04068941760955867,
			-0.06453888262893856, 0, 0,
		},
	),
}

// FilterLength reports the filter length of the basis, which bounds the
// smallest subband dimension the transform supports.
func (b Basis) FilterLength() int {
	fb, ok := filterBanks[b]
	if !ok {
		return 0
	}
	return fb.length()
}

func (b Basis) bank() (filterBank, error) {
	fb, ok := filterBanks[b]
	if !ok {
		return filterBank{}, fmt.Errorf("%w: unknown wavelet basis %v", ErrInvalidConfiguration, b)
	}
	return fb, nil
}
