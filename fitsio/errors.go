package fitsio

import "errors"

var ErrMalformedHeader = errors.New("malformed FITS header")
var ErrUnsupportedBitpix = errors.New("unsupported BITPIX")
var ErrTruncatedData = errors.New("truncated FITS data")
