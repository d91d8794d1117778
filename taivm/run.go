package taivm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/taibf/taitape"
)

// Run executes from the current PC until halt or the first runtime error.
// Errors are terminal; output already written stays written.
func (v *VM) Run() error {
	code := v.Program.Code
	tape := v.Tape
	for {
		if v.PC < 0 || v.PC >= len(code) {
			return nil
		}

		inst := code[v.PC]
		v.Steps++

		switch inst.Op {
		case OpRight:
			if err := tape.Step(taitape.Right, inst.Arg); err != nil {
				return v.fail(inst, err)
			}

		case OpLeft:
			if err := tape.Step(taitape.Left, inst.Arg); err != nil {
				return v.fail(inst, err)
			}

		case OpAdd:
			*tape.Current() += byte(inst.Arg)

		case OpSub:
			*tape.Current() -= byte(inst.Arg)

		case OpOutput:
			v.out[0] = tape.Read()
			n, err := v.Output.Write(v.out[:])
			if err == nil && n != 1 {
				err = io.ErrShortWrite
			}
			if err != nil {
				return v.fail(inst, fmt.Errorf("%w: write: %w", ErrIO, err))
			}

		case OpInput:
			b, err := v.Input.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					return v.fail(inst, fmt.Errorf("%w: read: %w", ErrIO, err))
				}
				// end of stream leaves the cell as is
			} else {
				tape.Write(b)
			}

		case OpJumpZero:
			if tape.Read() == 0 {
				v.PC = inst.Arg
				continue
			}

		case OpJumpNonZero:
			if tape.Read() != 0 {
				v.PC = inst.Arg
				continue
			}

		case OpSetZero:
			tape.Write(0)

		case OpHalt:
			return nil

		default:
			return v.fail(inst, fmt.Errorf("%w: unknown opcode %s", ErrBadProgram, inst.Op))
		}

		v.PC++
	}
}

func (v *VM) fail(inst Instruction, err error) error {
	return &RuntimeError{
		Err:         err,
		PC:          v.PC,
		Instruction: inst,
	}
}
