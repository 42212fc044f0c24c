package sim

import (
	"github.com/ezrec/fpgamat/driver"
)

// Control is the accelerator's 32-bit control word.
type Control uint32

const (
	CONTROL_OPCODE_SHIFT = 16
	CONTROL_OPCODE_MASK  = 0x7
	CONTROL_SIZE_SHIFT   = 19
	CONTROL_SIZE_MASK    = 0x3
	CONTROL_SCALAR_SHIFT = 21
	CONTROL_SCALAR_MASK  = 0xff

	CONTROL_RESET = Control(1 << 29) // Clear the datapath.
	CONTROL_START = Control(1 << 30) // Begin computation.
	CONTROL_HPS   = Control(1 << 31) // Host owns the control word.

	STATUS_ACK = uint32(1 << 31) // Computation complete.
)

// NewControl encodes the job fields of a control word. Fields wider than
// their slot are truncated.
func NewControl(op driver.Operation, size uint32, scalar uint32) Control {
	return Control((uint32(op)&CONTROL_OPCODE_MASK)<<CONTROL_OPCODE_SHIFT |
		(size&CONTROL_SIZE_MASK)<<CONTROL_SIZE_SHIFT |
		(scalar&CONTROL_SCALAR_MASK)<<CONTROL_SCALAR_SHIFT)
}

// Operation decodes the opcode field.
func (c Control) Operation() driver.Operation {
	return driver.Operation((uint32(c) >> CONTROL_OPCODE_SHIFT) & CONTROL_OPCODE_MASK)
}

// Size decodes the size field.
func (c Control) Size() uint32 {
	return (uint32(c) >> CONTROL_SIZE_SHIFT) & CONTROL_SIZE_MASK
}

// Scalar decodes the scalar field as a signed byte.
func (c Control) Scalar() int8 {
	return int8(uint8((uint32(c) >> CONTROL_SCALAR_SHIFT) & CONTROL_SCALAR_MASK))
}

// Started is set while a computation is in progress.
func (c Control) Started() bool {
	return c&CONTROL_START != 0
}
