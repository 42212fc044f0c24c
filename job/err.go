package job

import (
	"errors"

	"github.com/ezrec/fpgamat/translate"
)

var f = translate.From

var (
	ErrInvalid = errors.New(f("invalid job value"))
)

// ErrJob is a job file that failed to execute.
type ErrJob struct {
	Filename string
	Err      error
}

func (err *ErrJob) Error() string {
	return f("job %v: %v", err.Filename, err.Err)
}

func (err *ErrJob) Unwrap() error {
	return err.Err
}

// ErrJobValue is a job global with an unusable value.
type ErrJobValue struct {
	Name  string
	Value string
}

func (err ErrJobValue) Error() string {
	return f("job value %v: %v", err.Name, err.Value)
}

func (err ErrJobValue) Is(target error) bool {
	return target == ErrInvalid
}
