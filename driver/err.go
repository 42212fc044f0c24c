package driver

import (
	"errors"

	"github.com/ezrec/fpgamat/translate"
)

var f = translate.From

var (
	// Parameter errors
	ErrValidation = errors.New(f("invalid parameters"))

	// Lifecycle errors
	ErrInitialize = errors.New(f("hardware init failed"))
	ErrSend       = errors.New(f("send failed"))
	ErrReceive    = errors.New(f("receive failed"))
)

// ErrOperationRange is an operation code above OP_MAX.
type ErrOperationRange Operation

func (err ErrOperationRange) Error() string {
	return f("invalid operation: %d", uint32(err))
}

func (err ErrOperationRange) Is(target error) bool {
	return target == ErrValidation
}

// ErrSizeRange is a size code above matrix.SIZE_MAX.
type ErrSizeRange uint32

func (err ErrSizeRange) Error() string {
	return f("invalid matrix size: %d", uint32(err))
}

func (err ErrSizeRange) Is(target error) bool {
	return target == ErrValidation
}

// ErrInput is an operation code that could not be read.
type ErrInput struct {
	Err error
}

func (err ErrInput) Error() string {
	return f("operation input: %v", err.Err)
}

func (err ErrInput) Unwrap() error {
	return err.Err
}

func (err ErrInput) Is(target error) bool {
	return target == ErrValidation
}

// ErrHardware is a failed driver call, tagged with its status.
type ErrHardware struct {
	Status Status
	Err    error
}

func (err *ErrHardware) Error() string {
	msg := err.Status.String()
	if cause := err.Status.Err(); cause != nil {
		msg = cause.Error()
	}
	if err.Err == nil {
		return msg
	}
	return f("%v: %v", msg, err.Err)
}

func (err *ErrHardware) Unwrap() error {
	return err.Err
}

func (err *ErrHardware) Is(target error) bool {
	return target == err.Status.Err()
}

// Fail tags err with a failure status. An error already carrying that
// status is returned as is.
func Fail(status Status, err error) error {
	var hw *ErrHardware
	if errors.As(err, &hw) && hw.Status == status {
		return err
	}
	return &ErrHardware{Status: status, Err: err}
}

// Err returns the lifecycle error for a failure status, or nil for
// STATUS_SUCCESS.
func (status Status) Err() (err error) {
	switch status {
	case STATUS_SUCCESS:
	case STATUS_INIT_FAIL:
		err = ErrInitialize
	case STATUS_SEND_FAIL:
		err = ErrSend
	case STATUS_READ_FAIL:
		err = ErrReceive
	default:
		err = errors.New(status.String())
	}
	return
}

// StatusOf classifies an error into a driver status. Validation failures
// belong to the send class, as does any unclassified error.
func StatusOf(err error) Status {
	var hw *ErrHardware
	switch {
	case err == nil:
		return STATUS_SUCCESS
	case errors.As(err, &hw):
		return hw.Status
	case errors.Is(err, ErrInitialize):
		return STATUS_INIT_FAIL
	case errors.Is(err, ErrReceive):
		return STATUS_READ_FAIL
	default:
		return STATUS_SEND_FAIL
	}
}
