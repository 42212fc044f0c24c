// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim is a software model of the matrix accelerator.
//
// The model keeps a control word with the opcode, size and scalar fields of
// the FPGA, and computes one interior cell of the result per tick. All
// arithmetic saturates to the int8 range.
package sim

import (
	"log"

	"github.com/ezrec/fpgamat/driver"
	"github.com/ezrec/fpgamat/matrix"
)

var _ driver.Driver = (*Accelerator)(nil)

// Accelerator state.
type Accelerator struct {
	Verbose bool // If set, enables verbose logging.
	Ticks   int  // Cells computed since the last Send.

	Control Control // Control word, as last written by the host.
	Status  uint32  // Status word, as last written by the device.

	open     bool
	sent     bool
	a        matrix.Buffer
	b        matrix.Buffer
	result   matrix.Buffer
	overflow bool
	cell     int
}

// NewAccelerator creates a closed accelerator.
func NewAccelerator() (acc *Accelerator) {
	acc = &Accelerator{}
	return
}

func (acc *Accelerator) logf(format string, args ...any) {
	if acc.Verbose {
		log.Printf("sim: "+format, args...)
	}
}

// Initialize opens the accelerator, and pulses reset.
func (acc *Accelerator) Initialize() (err error) {
	if acc.open {
		err = driver.Fail(driver.STATUS_INIT_FAIL, ErrAlreadyOpen)
		return
	}

	acc.open = true
	acc.Control = CONTROL_HPS | CONTROL_RESET
	acc.reset()
	acc.Control = CONTROL_HPS

	acc.logf("open, control 0x%08x", uint32(acc.Control))

	return
}

func (acc *Accelerator) reset() {
	acc.Status = 0
	acc.Ticks = 0
	acc.sent = false
	acc.a.Zero()
	acc.b.Zero()
	acc.result.Zero()
	acc.overflow = false
	acc.cell = 0
}

// Send loads the operands, and starts the computation.
func (acc *Accelerator) Send(params driver.Params) (err error) {
	if !acc.open {
		err = driver.Fail(driver.STATUS_SEND_FAIL, ErrNotOpen)
		return
	}

	err = driver.Validate(params.Operation, params.Size)
	if err != nil {
		err = driver.Fail(driver.STATUS_SEND_FAIL, err)
		return
	}

	if params.Scalar > CONTROL_SCALAR_MASK {
		err = driver.Fail(driver.STATUS_SEND_FAIL, ErrScalarRange(params.Scalar))
		return
	}

	acc.reset()
	acc.a = params.A
	acc.b = params.B
	acc.sent = true
	acc.Control = CONTROL_HPS | NewControl(params.Operation, params.Size, params.Scalar) | CONTROL_START

	acc.logf("send %v size %d scalar %d, control 0x%08x",
		acc.Control.Operation(), acc.Control.Size(), acc.Control.Scalar(), uint32(acc.Control))

	return
}

// Done is set once the result is complete.
func (acc *Accelerator) Done() bool {
	return acc.Status&STATUS_ACK != 0
}

// Tick computes the next interior cell of the result.
func (acc *Accelerator) Tick() (done bool, err error) {
	if !acc.sent {
		err = ErrNoData
		return
	}

	if acc.Done() {
		done = true
		return
	}

	size := acc.Control.Size()
	n := int(size)

	if acc.cell < n*n {
		row, col := acc.cell/n, acc.cell%n
		value, saturated := acc.compute(row, col)
		acc.result.Set(size, row, col, value)
		acc.overflow = acc.overflow || saturated
		acc.cell++
		acc.Ticks++

		acc.logf("tick %d: [%d,%d] = %d", acc.Ticks, row, col, value)
	}

	if acc.cell >= n*n {
		acc.Control &^= CONTROL_START
		acc.Status |= STATUS_ACK
		done = true
	}

	return
}

// Receive ticks until the computation completes, and copies out the result.
func (acc *Accelerator) Receive(result *matrix.Buffer) (overflow bool, err error) {
	if !acc.open {
		err = driver.Fail(driver.STATUS_READ_FAIL, ErrNotOpen)
		return
	}

	for done := false; !done; {
		done, err = acc.Tick()
		if err != nil {
			err = driver.Fail(driver.STATUS_READ_FAIL, err)
			return
		}
	}

	*result = acc.result
	overflow = acc.overflow
	acc.sent = false

	acc.logf("receive after %d ticks, overflow %v", acc.Ticks, overflow)

	return
}

// Close the accelerator.
func (acc *Accelerator) Close() (err error) {
	if !acc.open {
		err = ErrNotOpen
		return
	}

	acc.sent = false
	acc.Control = 0
	acc.open = false

	acc.logf("close")

	return
}
