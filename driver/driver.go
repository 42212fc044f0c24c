// Package driver defines the contract between the console and a matrix
// accelerator, and validates job parameters before any hardware access.
package driver

import (
	"github.com/ezrec/fpgamat/matrix"
)

// Status is the result code of a driver call.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_SUCCESS   = Status(0)  // success
	STATUS_INIT_FAIL = Status(-1) // init fail
	STATUS_SEND_FAIL = Status(-2) // send fail
	STATUS_READ_FAIL = Status(-3) // read fail
)

// Operation selects the arithmetic performed by the accelerator.
type Operation uint32

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_ADD        = Operation(0) // add
	OP_SUBTRACT   = Operation(1) // subtract
	OP_SCALAR     = Operation(2) // scalar-multiply
	OP_MULTIPLY   = Operation(3) // matrix-multiply
	OP_NEGATE     = Operation(4) // negate
	OP_RESERVED_5 = Operation(5) // reserved-5
	OP_RESERVED_6 = Operation(6) // reserved-6
	OP_RESERVED_7 = Operation(7) // reserved-7

	OP_MAX = OP_RESERVED_7 // Largest accepted operation code.
)

// Params is one accelerator job. Matrices are held by value, so a driver
// cannot modify the caller's copy.
type Params struct {
	A         matrix.Buffer // First operand.
	B         matrix.Buffer // Second operand.
	Operation Operation     // Operation to perform.
	Size      uint32        // Size code, 1 to matrix.SIZE_MAX.
	Scalar    uint32        // Scalar operand for OP_SCALAR.
}

// Driver is an accelerator. All calls are synchronous.
//
// Initialize must succeed before any other call, and Close must be called
// once after a successful Initialize. Send starts a computation, and
// Receive blocks until it completes.
type Driver interface {
	// Initialize opens the accelerator's control interface.
	Initialize() error
	// Send transfers the job parameters and starts the computation.
	Send(params Params) error
	// Receive waits for the computation, and copies out the result.
	// Overflow is set if any element saturated.
	Receive(result *matrix.Buffer) (overflow bool, err error)
	// Close releases the accelerator.
	Close() error
}

// Validate checks the operation and size codes of a job.
func Validate(op Operation, size uint32) (err error) {
	if op > OP_MAX {
		err = ErrOperationRange(op)
		return
	}

	if size > matrix.SIZE_MAX {
		err = ErrSizeRange(size)
		return
	}

	return
}
