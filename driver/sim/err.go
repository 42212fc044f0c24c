package sim

import (
	"errors"

	"github.com/ezrec/fpgamat/translate"
)

var f = translate.From

var (
	// Lifecycle errors
	ErrAlreadyOpen = errors.New(f("hardware already open"))
	ErrNotOpen     = errors.New(f("hardware not open"))
	ErrNoData      = errors.New(f("no data sent"))
)

// ErrScalarRange is a scalar wider than the control word's scalar field.
type ErrScalarRange uint32

func (err ErrScalarRange) Error() string {
	return f("invalid scalar: %d", uint32(err))
}
