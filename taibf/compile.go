package taibf

import (
	"io"

	"github.com/reusee/taibf/taivm"
)

// DefaultMaxDepth bounds loop nesting when no option says otherwise.
const DefaultMaxDepth = 4096

type Option func(*compiler)

func WithMaxDepth(n int) Option {
	return func(c *compiler) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

func Compile(name string, source io.Reader, options ...Option) (*taivm.Program, error) {
	src, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return CompileBytes(name, src, options...)
}

func CompileBytes(name string, source []byte, options ...Option) (*taivm.Program, error) {
	c := newCompiler(name, source)
	for _, option := range options {
		option(c)
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	c.emit(taivm.OpHalt.With(0))
	return c.toProgram(), nil
}
