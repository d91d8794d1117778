package taibf

import (
	"io"

	"github.com/reusee/taibf/taitape"
	"github.com/reusee/taibf/taivm"
)

// NewVM compiles source and binds it to a fresh tape.
func NewVM(name string, source io.Reader, config taitape.Config, input io.ByteReader, output io.Writer) (*taivm.VM, error) {
	program, err := Compile(name, source)
	if err != nil {
		return nil, err
	}
	tape, err := taitape.New(config)
	if err != nil {
		return nil, err
	}
	return taivm.NewVM(program, tape, input, output), nil
}
