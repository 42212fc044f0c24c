// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package session runs one accelerator job from the operator console.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/ezrec/fpgamat/driver"
	"github.com/ezrec/fpgamat/job"
	"github.com/ezrec/fpgamat/matrix"
	"github.com/ezrec/fpgamat/translate"
)

var f = translate.From

// State of a session.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE        = State(0) // idle
	STATE_MENU        = State(1) // menu
	STATE_INPUT       = State(2) // input
	STATE_VALIDATED   = State(3) // validated
	STATE_INITIALIZED = State(4) // initialized
	STATE_SENT        = State(5) // sent
	STATE_RECEIVED    = State(6) // received
	STATE_DISPLAYED   = State(7) // displayed
	STATE_CLOSED      = State(8) // closed
	STATE_FAILED      = State(9) // failed
)

// Session is a single pass from menu to close.
type Session struct {
	Driver driver.Driver // Accelerator to use.
	Job    *job.Job      // Operands; the default job if nil.
	Input  io.Reader     // Operator input.
	Output io.Writer     // Operator console.

	trace []State
}

// Trace returns the states visited, in order.
func (s *Session) Trace() []State {
	return s.trace
}

// State returns the current state.
func (s *Session) State() State {
	if len(s.trace) == 0 {
		return STATE_IDLE
	}
	return s.trace[len(s.trace)-1]
}

func (s *Session) enter(state State) {
	s.trace = append(s.trace, state)
}

func (s *Session) println(key string, args ...any) {
	fmt.Fprintln(s.Output, f(key, args...))
}

// ShowMenu prints the operation menu and prompt.
func (s *Session) ShowMenu() {
	fmt.Fprintln(s.Output)
	s.println("=== MENU ===")
	s.println("0 - Add")
	s.println("1 - Subtract")
	s.println("2 - Scalar multiply")
	s.println("3 - Matrix multiply")
	s.println("4 - Negate")
	fmt.Fprint(s.Output, f("Enter the operation: "))
}

// ReadOperation reads one unsigned decimal operation code.
func (s *Session) ReadOperation() (op driver.Operation, err error) {
	var code uint32
	_, err = fmt.Fscan(s.Input, &code)
	if err != nil {
		err = driver.ErrInput{Err: err}
		return
	}
	op = driver.Operation(code)
	return
}

// Run the session. Once the driver has been initialized, it is closed
// exactly once on every return path.
func (s *Session) Run() (err error) {
	if s.Job == nil {
		s.Job = job.Default()
	}

	initialized := false
	defer func() {
		if err != nil {
			s.enter(STATE_FAILED)
		}
		if initialized {
			s.close()
		}
	}()

	s.enter(STATE_MENU)
	s.ShowMenu()

	op, err := s.ReadOperation()
	if err != nil {
		return
	}
	s.enter(STATE_INPUT)

	params := driver.Params{
		A:         s.Job.A,
		B:         s.Job.B,
		Operation: op,
		Size:      s.Job.Size,
		Scalar:    s.Job.Scalar,
	}

	err = driver.Validate(params.Operation, params.Size)
	if err != nil {
		return
	}
	s.enter(STATE_VALIDATED)

	s.println("Initializing hardware...")
	err = s.Driver.Initialize()
	if err != nil {
		err = driver.Fail(driver.STATUS_INIT_FAIL, err)
		return
	}
	initialized = true
	s.enter(STATE_INITIALIZED)

	s.println("Sending data...")
	err = s.Driver.Send(params)
	if err != nil {
		err = driver.Fail(driver.STATUS_SEND_FAIL, err)
		return
	}
	s.enter(STATE_SENT)

	s.println("Processing on the FPGA...")
	var result matrix.Buffer
	result.Zero()
	overflow, err := s.Driver.Receive(&result)
	if err != nil {
		err = driver.Fail(driver.STATUS_READ_FAIL, err)
		return
	}
	s.enter(STATE_RECEIVED)

	s.display(&params, &result, overflow)
	s.enter(STATE_DISPLAYED)

	return
}

func (s *Session) display(params *driver.Params, result *matrix.Buffer, overflow bool) {
	w := bufio.NewWriter(s.Output)
	defer w.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, f("Matrix A"))
	matrix.Display(w, &params.A, params.Size)
	fmt.Fprintln(w, f("Matrix B"))
	matrix.Display(w, &params.B, params.Size)
	fmt.Fprintln(w, f("Result"))
	matrix.Display(w, result, params.Size)
	if overflow {
		fmt.Fprintln(w, f("Overflow detected"))
	}
}

// close releases the driver. A close failure is logged, and does not fail
// the session.
func (s *Session) close() {
	err := s.Driver.Close()
	if err != nil {
		log.Print(f("close: %v", err))
	}
	s.enter(STATE_CLOSED)
}

// ExitCode maps the result of Run to a process exit code.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
