package taivm

import (
	"errors"
	"fmt"
	"io"
)

var ErrBadProgram = errors.New("bad program")

type Instruction struct {
	Op  OpCode
	Arg int
}

func (i Instruction) String() string {
	if i.Op.HasArg() {
		return fmt.Sprintf("%s %d", i.Op, i.Arg)
	}
	return i.Op.String()
}

// Program is immutable once built. Jump operands are absolute indices into Code.
type Program struct {
	Name string
	Code []Instruction
}

// Validate checks the structural guarantees the compiler provides, for programs
// that did not come from the compiler.
func (p *Program) Validate() error {
	n := len(p.Code)
	if n == 0 {
		return fmt.Errorf("%w: empty", ErrBadProgram)
	}
	if op := p.Code[n-1].Op; op != OpHalt {
		return fmt.Errorf("%w: ends with %s", ErrBadProgram, op)
	}
	for i, inst := range p.Code {
		switch inst.Op {

		case OpRight, OpLeft, OpAdd, OpSub:
			if inst.Arg < 1 {
				return fmt.Errorf("%w: bad count at %d: %s", ErrBadProgram, i, inst)
			}

		case OpJumpZero:
			target := inst.Arg
			if target <= i || target >= n {
				return fmt.Errorf("%w: jump out of range at %d: %s", ErrBadProgram, i, inst)
			}
			if pair := p.Code[target]; pair.Op != OpJumpNonZero || pair.Arg != i {
				return fmt.Errorf("%w: unpaired jump at %d: %s", ErrBadProgram, i, inst)
			}

		case OpJumpNonZero:
			target := inst.Arg
			if target < 0 || target >= i {
				return fmt.Errorf("%w: jump out of range at %d: %s", ErrBadProgram, i, inst)
			}
			if pair := p.Code[target]; pair.Op != OpJumpZero || pair.Arg != i {
				return fmt.Errorf("%w: unpaired jump at %d: %s", ErrBadProgram, i, inst)
			}

		case OpOutput, OpInput, OpSetZero, OpHalt:

		default:
			return fmt.Errorf("%w: unknown opcode at %d: %s", ErrBadProgram, i, inst.Op)
		}
	}
	return nil
}

// Dump writes a listing, one instruction per line.
func (p *Program) Dump(w io.Writer) error {
	for i, inst := range p.Code {
		var err error
		if inst.Op.HasArg() {
			_, err = fmt.Fprintf(w, "%04d  %-4s  %d\n", i, inst.Op, inst.Arg)
		} else {
			_, err = fmt.Fprintf(w, "%04d  %s\n", i, inst.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
