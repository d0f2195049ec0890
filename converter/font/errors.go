package font

import "github.com/pkg/errors"

var (
	ErrInvalidSizeFormat   = errors.New("font: invalid size format")
	ErrUnknownGraphicsUnit = errors.New("font: unknown graphics unit")
)
