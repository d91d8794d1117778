package taibf

import (
	"github.com/reusee/taibf/taivm"
)

type compiler struct {
	name     string
	source   []byte
	code     []taivm.Instruction
	loops    []openLoop
	maxDepth int
}

type openLoop struct {
	ip  int
	pos int
}

var foldOps = [256]taivm.OpCode{
	'>': taivm.OpRight,
	'<': taivm.OpLeft,
	'+': taivm.OpAdd,
	'-': taivm.OpSub,
}

func newCompiler(name string, source []byte) *compiler {
	return &compiler{
		name:     name,
		source:   source,
		code:     make([]taivm.Instruction, 0, len(source)/2+1),
		maxDepth: DefaultMaxDepth,
	}
}

func (c *compiler) toProgram() *taivm.Program {
	return &taivm.Program{
		Name: c.name,
		Code: c.code,
	}
}

func (c *compiler) emit(inst taivm.Instruction) {
	c.code = append(c.code, inst)
}

func (c *compiler) currentIP() int {
	return len(c.code)
}

func (c *compiler) patchJump(ip int, target int) {
	c.code[ip].Arg = target
}

func (c *compiler) compile() error {
	src := c.source
	for i := 0; i < len(src); i++ {
		switch ch := src[i]; ch {

		case '>', '<', '+', '-':
			n := c.runLength(i)
			c.emit(foldOps[ch].With(n))
			i += n - 1

		case '.':
			c.emit(taivm.OpOutput.With(0))

		case ',':
			c.emit(taivm.OpInput.With(0))

		case '[':
			if i+2 < len(src) &&
				(src[i+1] == '-' || src[i+1] == '+') &&
				src[i+2] == ']' {
				c.emit(taivm.OpSetZero.With(0))
				i += 2
				continue
			}
			if len(c.loops) >= c.maxDepth {
				return c.errorAt(ErrLoopNestingTooDeep, i)
			}
			c.loops = append(c.loops, openLoop{
				ip:  c.currentIP(),
				pos: i,
			})
			// target patched at the matching ']'
			c.emit(taivm.OpJumpZero.With(0))

		case ']':
			if len(c.loops) == 0 {
				return c.errorAt(ErrUnmatchedClose, i)
			}
			open := c.loops[len(c.loops)-1]
			c.loops = c.loops[:len(c.loops)-1]
			c.patchJump(open.ip, c.currentIP())
			c.emit(taivm.OpJumpNonZero.With(open.ip))

		}
	}

	if len(c.loops) > 0 {
		return c.errorAt(ErrUnmatchedOpen, c.loops[len(c.loops)-1].pos)
	}
	return nil
}

func (c *compiler) runLength(i int) int {
	ch := c.source[i]
	n := 1
	for i+n < len(c.source) && c.source[i+n] == ch {
		n++
	}
	return n
}
