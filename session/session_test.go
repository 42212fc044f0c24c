package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fpgamat/driver"
	"github.com/ezrec/fpgamat/driver/sim"
	"github.com/ezrec/fpgamat/job"
	"github.com/ezrec/fpgamat/matrix"
	"github.com/ezrec/fpgamat/translate"
)

func TestMain(m *testing.M) {
	translate.Use("en-US")
	os.Exit(m.Run())
}

// recorder is a driver that logs calls, and fails on request.
type recorder struct {
	calls    []string
	params   []driver.Params
	fail     map[string]error
	result   matrix.Buffer
	overflow bool
}

func (r *recorder) call(name string) error {
	r.calls = append(r.calls, name)
	return r.fail[name]
}

func (r *recorder) Initialize() error {
	return r.call("initialize")
}

func (r *recorder) Send(params driver.Params) error {
	r.params = append(r.params, params)
	return r.call("send")
}

func (r *recorder) Receive(result *matrix.Buffer) (overflow bool, err error) {
	err = r.call("receive")
	if err == nil {
		*result = r.result
		overflow = r.overflow
	}
	return
}

func (r *recorder) Close() error {
	return r.call("close")
}

func doSession(drv driver.Driver, input string) (s *Session, output string, err error) {
	out := &bytes.Buffer{}
	s = &Session{
		Driver: drv,
		Input:  strings.NewReader(input),
		Output: out,
	}
	err = s.Run()
	output = out.String()
	return
}

func TestSession_Add(t *testing.T) {
	assert := assert.New(t)

	r := &recorder{result: matrix.Embed(3, 3, 4, 5, 6, 7, 8, 9, 10, 11)}
	s, output, err := doSession(r, "0\n")
	assert.NoError(err)
	assert.Equal(0, ExitCode(err))

	assert.Equal([]string{"initialize", "send", "receive", "close"}, r.calls)
	assert.Equal([]State{
		STATE_MENU, STATE_INPUT, STATE_VALIDATED, STATE_INITIALIZED,
		STATE_SENT, STATE_RECEIVED, STATE_DISPLAYED, STATE_CLOSED,
	}, s.Trace())
	assert.Equal(STATE_CLOSED, s.State())

	assert.Len(r.params, 1)
	assert.Equal(driver.Params{
		A:         matrix.Embed(3, 1, 2, 3, 4, 5, 6, 7, 8, 9),
		B:         matrix.Fill(3, 2),
		Operation: driver.OP_ADD,
		Size:      3,
		Scalar:    3,
	}, r.params[0])

	assert.Contains(output, "=== MENU ===")
	assert.Contains(output, "4 - Negate")
	assert.Contains(output, "Enter the operation: ")
	assert.Contains(output, "Result\n"+r.result.Format(3))
	assert.NotContains(output, "Overflow detected")

	// Progress precedes the matrices.
	assert.Less(strings.Index(output, "Initializing hardware..."), strings.Index(output, "Sending data..."))
	assert.Less(strings.Index(output, "Sending data..."), strings.Index(output, "Processing on the FPGA..."))
	assert.Less(strings.Index(output, "Processing on the FPGA..."), strings.Index(output, "Matrix A"))
}

func TestSession_Overflow(t *testing.T) {
	assert := assert.New(t)

	r := &recorder{overflow: true}
	_, output, err := doSession(r, "3")
	assert.NoError(err)
	assert.Contains(output, "Overflow detected")
}

func TestSession_Accepted(t *testing.T) {
	assert := assert.New(t)

	for op := range driver.OP_MAX + 1 {
		for size := range uint32(matrix.SIZE_MAX + 1) {
			r := &recorder{}
			s := &Session{
				Driver: r,
				Job:    &job.Job{Size: size, Scalar: 3},
				Input:  strings.NewReader(fmt.Sprintf(" %d\n", uint32(op))),
				Output: &bytes.Buffer{},
			}
			err := s.Run()
			assert.NoError(err, "op %v size %v", op, size)
			assert.Equal("initialize", r.calls[0])
			assert.Equal(op, r.params[0].Operation)
			assert.Equal(size, r.params[0].Size)
		}
	}
}

func TestSession_InvalidOperation(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"8", "9", "4294967295"} {
		r := &recorder{}
		s, _, err := doSession(r, input)
		assert.ErrorIs(err, driver.ErrValidation, input)
		assert.Equal(driver.STATUS_SEND_FAIL, driver.StatusOf(err))
		assert.NotEqual(0, ExitCode(err))
		assert.Empty(r.calls, input)
		assert.Equal([]State{STATE_MENU, STATE_INPUT, STATE_FAILED}, s.Trace())
	}
}

func TestSession_InvalidSize(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []uint32{4, 5, 1000} {
		r := &recorder{}
		s := &Session{
			Driver: r,
			Job:    &job.Job{Size: size},
			Input:  strings.NewReader("0"),
			Output: &bytes.Buffer{},
		}
		err := s.Run()
		assert.Equal(driver.ErrSizeRange(size), err)
		assert.Empty(r.calls)
		assert.Equal(STATE_FAILED, s.State())
	}
}

func TestSession_BadInput(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"", "add", "-1", "99999999999"} {
		r := &recorder{}
		s, _, err := doSession(r, input)
		assert.ErrorIs(err, driver.ErrValidation, input)
		assert.Empty(r.calls, input)
		assert.Equal([]State{STATE_MENU, STATE_FAILED}, s.Trace())
	}
}

func TestSession_Failures(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("bus fault")

	table := []struct {
		fail   string
		status driver.Status
		calls  []string
		trace  []State
	}{
		{"initialize", driver.STATUS_INIT_FAIL,
			[]string{"initialize"},
			[]State{STATE_MENU, STATE_INPUT, STATE_VALIDATED, STATE_FAILED}},
		{"send", driver.STATUS_SEND_FAIL,
			[]string{"initialize", "send", "close"},
			[]State{STATE_MENU, STATE_INPUT, STATE_VALIDATED, STATE_INITIALIZED,
				STATE_FAILED, STATE_CLOSED}},
		{"receive", driver.STATUS_READ_FAIL,
			[]string{"initialize", "send", "receive", "close"},
			[]State{STATE_MENU, STATE_INPUT, STATE_VALIDATED, STATE_INITIALIZED,
				STATE_SENT, STATE_FAILED, STATE_CLOSED}},
	}

	for _, entry := range table {
		r := &recorder{fail: map[string]error{entry.fail: cause}}
		s, output, err := doSession(r, "1")
		assert.ErrorIs(err, cause, entry.fail)
		assert.ErrorIs(err, entry.status.Err(), entry.fail)
		assert.Equal(entry.status, driver.StatusOf(err), entry.fail)
		assert.Equal(1, ExitCode(err))
		assert.Equal(entry.calls, r.calls, entry.fail)
		assert.Equal(entry.trace, s.Trace(), entry.fail)
		assert.NotContains(output, "Result", entry.fail)
	}
}

func TestSession_CloseFailure(t *testing.T) {
	assert := assert.New(t)

	r := &recorder{fail: map[string]error{"close": errors.New("stuck")}}
	s, _, err := doSession(r, "4")
	assert.NoError(err)
	assert.Equal(0, ExitCode(err))
	assert.Equal(STATE_CLOSED, s.State())
	assert.Equal([]string{"initialize", "send", "receive", "close"}, r.calls)
}

func TestSession_Accelerator(t *testing.T) {
	assert := assert.New(t)

	acc := sim.NewAccelerator()
	s, output, err := doSession(acc, "0")
	assert.NoError(err)
	assert.Equal(STATE_CLOSED, s.State())
	assert.Equal(9, acc.Ticks)

	expected := matrix.Embed(3, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	assert.Contains(output, "Result\n"+expected.Format(3))

	// The accelerator was closed, so it can be opened again.
	_, _, err = doSession(acc, "2")
	assert.NoError(err)

	_, _, err = doSession(acc, "9")
	assert.ErrorIs(err, driver.ErrValidation)
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("idle", STATE_IDLE.String())
	assert.Equal("initialized", STATE_INITIALIZED.String())
	assert.Equal("failed", STATE_FAILED.String())
	assert.Equal("State(10)", State(10).String())
	assert.Equal(STATE_IDLE, (&Session{}).State())
}

func TestSession_Menu_ptBR(t *testing.T) {
	assert := assert.New(t)

	translate.Use("pt-BR")
	defer translate.Use("en-US")

	out := &bytes.Buffer{}
	s := &Session{Output: out}
	s.ShowMenu()

	output := out.String()
	assert.Contains(output, "=== MENU ===")
	assert.Contains(output, "0 - Soma\n")
	assert.Contains(output, "1 - Subtração\n")
	assert.Contains(output, "4 - Matriz oposta\n")
	assert.True(strings.HasSuffix(output, "Digite a operação: "), output)
	assert.NotContains(output, "Add")
}

func TestSession_ScalarRange(t *testing.T) {
	assert := assert.New(t)

	jb, err := job.Load("wide.star", "scalar = 256")
	assert.ErrorIs(err, job.ErrInvalid)
	assert.Nil(jb)

	jb = job.Default()
	jb.Scalar = 256

	acc := sim.NewAccelerator()
	out := &bytes.Buffer{}
	s := &Session{
		Driver: acc,
		Job:    jb,
		Input:  strings.NewReader("2"),
		Output: out,
	}
	err = s.Run()
	assert.ErrorIs(err, sim.ErrScalarRange(256))
	assert.Equal(driver.STATUS_SEND_FAIL, driver.StatusOf(err))
	assert.Equal(1, ExitCode(err))
	assert.Equal(STATE_CLOSED, s.State())
	assert.NotContains(out.String(), "Result")

	// Closed on the failure path, so it opens again.
	assert.NoError(acc.Initialize())
	assert.NoError(acc.Close())
}
