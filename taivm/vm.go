package taivm

import (
	"bytes"
	"io"

	"github.com/reusee/taibf/taitape"
)

type VM struct {
	Program *Program
	Tape    *taitape.Tape
	Input   io.ByteReader
	Output  io.Writer
	PC      int
	Steps   uint64
	out     [1]byte
}

// NewVM binds a program to a tape. A nil input behaves as an empty stream,
// a nil output discards.
func NewVM(program *Program, tape *taitape.Tape, input io.ByteReader, output io.Writer) *VM {
	if input == nil {
		input = bytes.NewReader(nil)
	}
	if output == nil {
		output = io.Discard
	}
	return &VM{
		Program: program,
		Tape:    tape,
		Input:   input,
		Output:  output,
	}
}
