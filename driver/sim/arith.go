package sim

import (
	"math"

	"github.com/ezrec/fpgamat/driver"
)

// saturate clamps a value to the int8 range.
func saturate(value int64) (result int8, saturated bool) {
	switch {
	case value > math.MaxInt8:
		return math.MaxInt8, true
	case value < math.MinInt8:
		return math.MinInt8, true
	default:
		return int8(value), false
	}
}

// compute returns one interior cell of the result.
func (acc *Accelerator) compute(row, col int) (value int8, saturated bool) {
	size := acc.Control.Size()
	a := int64(acc.a.At(size, row, col))
	b := int64(acc.b.At(size, row, col))

	var wide int64
	switch acc.Control.Operation() {
	case driver.OP_ADD:
		wide = a + b
	case driver.OP_SUBTRACT:
		wide = a - b
	case driver.OP_SCALAR:
		wide = a * int64(acc.Control.Scalar())
	case driver.OP_MULTIPLY:
		for k := range int(size) {
			wide += int64(acc.a.At(size, row, k)) * int64(acc.b.At(size, k, col))
		}
	case driver.OP_NEGATE:
		wide = -a
	default:
		// Reserved operations yield zero.
	}

	return saturate(wide)
}
