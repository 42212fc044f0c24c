// Package job describes the matrices and constants of an accelerator run.
//
// A job file is a Starlark program whose globals override the defaults:
//
//	size = 2
//	scalar = 5
//	a = [1, 2, 3, 4]
//	b = [x * 2 for x in a]
//
// The lists hold the interior cells of a matrix in row-major order.
package job

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fpgamat/matrix"
)

const (
	DEFAULT_SIZE   = 3 // Matrix size code.
	DEFAULT_SCALAR = 3 // Scalar operand.
	DEFAULT_B      = 2 // Fill value for matrix B.

	SCALAR_MAX = 0xff // Widest scalar the accelerator accepts.
)

// Job is the operands of a single run.
type Job struct {
	A      matrix.Buffer
	B      matrix.Buffer
	Size   uint32
	Scalar uint32
}

// Default returns the built-in job: A counts up from 1, and B is all 2s.
func Default() *Job {
	return sized(DEFAULT_SIZE, DEFAULT_SCALAR)
}

func sized(size uint32, scalar uint32) *Job {
	n := int(size * size)
	count := make([]int8, n)
	for i := range count {
		count[i] = int8(i + 1)
	}

	return &Job{
		A:      matrix.Embed(size, count...),
		B:      matrix.Fill(size, DEFAULT_B),
		Size:   size,
		Scalar: scalar,
	}
}

// Load executes a job file. If src is nil, the file is read from filename.
func Load(filename string, src any) (job *Job, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"MAX_SIZE": starlark.MakeInt(matrix.SIZE_MAX),
	}

	dict, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		err = &ErrJob{Filename: filename, Err: err}
		return
	}

	size, err := uintOf(dict, "size", DEFAULT_SIZE)
	if err != nil {
		return
	}
	if size > matrix.SIZE_MAX {
		err = ErrJobValue{Name: "size", Value: dict["size"].String()}
		return
	}

	scalar, err := uintOf(dict, "scalar", DEFAULT_SCALAR)
	if err != nil {
		return
	}
	if scalar > SCALAR_MAX {
		err = ErrJobValue{Name: "scalar", Value: dict["scalar"].String()}
		return
	}

	job = sized(size, scalar)

	operands := []struct {
		name string
		buf  *matrix.Buffer
	}{
		{"a", &job.A},
		{"b", &job.B},
	}

	for _, operand := range operands {
		name, buf := operand.name, operand.buf
		value, ok := dict[name]
		if !ok {
			continue
		}
		var cells []int8
		cells, err = cellsOf(name, value, int(size*size))
		if err != nil {
			job = nil
			return
		}
		*buf = matrix.Embed(size, cells...)
	}

	return
}

// uintOf returns a global as a non-negative 32-bit integer.
func uintOf(dict starlark.StringDict, name string, def uint32) (value uint32, err error) {
	st_value, ok := dict[name]
	if !ok {
		value = def
		return
	}

	st_int, ok := st_value.(starlark.Int)
	if !ok {
		err = ErrJobValue{Name: name, Value: st_value.String()}
		return
	}

	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffffffff {
		err = ErrJobValue{Name: name, Value: st_value.String()}
		return
	}

	value = uint32(st_uint64)
	return
}

// cellsOf converts a list or tuple of length n to int8 cells.
func cellsOf(name string, value starlark.Value, n int) (cells []int8, err error) {
	seq, ok := value.(starlark.Indexable)
	if !ok || seq.Len() != n {
		err = ErrJobValue{Name: name, Value: value.String()}
		return
	}

	cells = make([]int8, n)
	for i := range n {
		item := seq.Index(i)
		st_int, ok := item.(starlark.Int)
		if !ok {
			err = ErrJobValue{Name: name, Value: item.String()}
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok || st_int64 < -128 || st_int64 > 127 {
			err = ErrJobValue{Name: name, Value: item.String()}
			return
		}
		cells[i] = int8(st_int64)
	}

	return
}
