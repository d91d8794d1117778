package taivm

import (
	"errors"
	"fmt"

	"github.com/reusee/taibf/taitape"
)

var ErrIO = errors.New("I/O failure")

// RuntimeError describes the instruction that stopped the VM.
type RuntimeError struct {
	Err         error
	PC          int
	Instruction Instruction
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %04d (%s): %v", e.PC, e.Instruction, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

func (e *RuntimeError) ExitStatus() ExitStatus {
	switch {
	case errors.Is(e.Err, taitape.ErrLimitExceeded):
		return ExitTapeLimit
	case errors.Is(e.Err, ErrIO):
		return ExitIOFailure
	}
	return ExitFailure
}

type ExitStatus int

const (
	ExitHalted ExitStatus = iota
	ExitFailure
	ExitCompileError
	ExitTapeLimit
	ExitIOFailure
)

func (s ExitStatus) String() string {
	switch s {
	case ExitHalted:
		return "halted"
	case ExitFailure:
		return "failure"
	case ExitCompileError:
		return "compile error"
	case ExitTapeLimit:
		return "tape limit exceeded"
	case ExitIOFailure:
		return "I/O failure"
	}
	return fmt.Sprintf("exit status %d", int(s))
}

// StatusOf maps an error from compiling or running to its exit status.
// Errors that know their status implement ExitStatus() ExitStatus.
func StatusOf(err error) ExitStatus {
	if err == nil {
		return ExitHalted
	}
	var s interface {
		ExitStatus() ExitStatus
	}
	if errors.As(err, &s) {
		return s.ExitStatus()
	}
	if errors.Is(err, ErrIO) {
		return ExitIOFailure
	}
	return ExitFailure
}
