package wavelet

import (
	"fmt"

	"github.com/278261631/kats-noise-agument/util"
)

// Orientation tags a subband with the detail direction it carries.
type Orientation int

const (
	Approx Orientation = iota
	Horizontal
	Vertical
	Diagonal
)

func (o Orientation) String() string {
	switch o {
	case Approx:
		return "approx"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// detailOrientations is the fixed iteration order within a level.
var detailOrientations = []Orientation{Horizontal, Vertical, Diagonal}

// Subband is one coefficient array at a given level and orientation.
// Level 1 is the coarsest detail level; the approximation subband uses
// level 0.
type Subband struct {
	Level       int
	Orientation Orientation
	Data        *util.Matrix[float64]
}

// CoefficientTree holds the full multi-level decomposition of one image:
// a single approximation subband plus, per level from coarsest to finest,
// the three oriented detail subbands. The original image dimensions are
// kept so reconstruction can crop back to them.
type CoefficientTree struct {
	Approx *Subband
	Detail [][]*Subband

	imageHeight int32
	imageWidth  int32
}

// Levels reports the number of detail levels in the tree.
func (t *CoefficientTree) Levels() int {
	return len(t.Detail)
}

// DetailAt returns the subband at the given 1-based level and orientation.
func (t *CoefficientTree) DetailAt(level int, orientation Orientation) *Subband {
	for _, sb := range t.Detail[level-1] {
		if sb.Orientation == orientation {
			return sb
		}
	}
	return nil
}
