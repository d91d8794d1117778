package taivm

import "strconv"

type OpCode uint8

const (
	OpRight OpCode = iota + 1
	OpLeft
	OpAdd
	OpSub
	OpOutput
	OpInput
	OpJumpZero
	OpJumpNonZero
	OpSetZero
	OpHalt
)

func (o OpCode) With(arg int) Instruction {
	return Instruction{
		Op:  o,
		Arg: arg,
	}
}

var opNames = [...]string{
	OpRight:       "right",
	OpLeft:        "left",
	OpAdd:         "add",
	OpSub:         "sub",
	OpOutput:      "out",
	OpInput:       "in",
	OpJumpZero:    "jz",
	OpJumpNonZero: "jnz",
	OpSetZero:     "zero",
	OpHalt:        "halt",
}

func (o OpCode) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// HasArg reports whether the operand of o carries meaning.
func (o OpCode) HasArg() bool {
	switch o {
	case OpRight, OpLeft, OpAdd, OpSub, OpJumpZero, OpJumpNonZero:
		return true
	}
	return false
}
