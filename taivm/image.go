package taivm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const imageVersion = 1

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("taivm: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

type image struct {
	Version int               `cbor:"1,keyasint"`
	Name    string            `cbor:"2,keyasint,omitempty"`
	Code    []wireInstruction `cbor:"3,keyasint"`
}

type wireInstruction struct {
	_   struct{} `cbor:",toarray"`
	Op  OpCode
	Arg int
}

// MarshalProgram serializes a Program to a bytecode image.
func MarshalProgram(p *Program) ([]byte, error) {
	img := image{
		Version: imageVersion,
		Name:    p.Name,
		Code:    make([]wireInstruction, len(p.Code)),
	}
	for i, inst := range p.Code {
		img.Code[i] = wireInstruction{
			Op:  inst.Op,
			Arg: inst.Arg,
		}
	}
	return cborEncMode.Marshal(img)
}

// UnmarshalProgram deserializes and validates a bytecode image.
func UnmarshalProgram(data []byte) (*Program, error) {
	var img image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("taivm: unmarshal image: %w", err)
	}
	if img.Version != imageVersion {
		return nil, fmt.Errorf("taivm: unsupported image version %d", img.Version)
	}
	p := &Program{
		Name: img.Name,
		Code: make([]Instruction, len(img.Code)),
	}
	for i, inst := range img.Code {
		p.Code[i] = inst.Op.With(inst.Arg)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
