package converter

import "github.com/pkg/errors"

var (
	ErrUnsupportedFractionalValue = errors.New("unsupported fractional value")
	ErrMalformedBinary            = errors.New("malformed binary value")
)
