package wavelet

import "errors"

// ErrInvalidConfiguration covers unknown basis/method/mode values,
// non-positive levels or threshold factor, and level counts the image
// dimensions cannot support. It is always returned before any transform
// work begins.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrShapeMismatch signals that reconstruction produced an image smaller
// than the shape it must be cropped to. It indicates a defect in a filter
// bank definition rather than bad caller input.
var ErrShapeMismatch = errors.New("shape mismatch")
