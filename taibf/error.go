package taibf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/taibf/taivm"
)

var (
	ErrUnmatchedOpen      = errors.New("unmatched '['")
	ErrUnmatchedClose     = errors.New("unmatched ']'")
	ErrLoopNestingTooDeep = errors.New("loop nesting too deep")
)

type PosError struct {
	Err    error
	Name   string
	Offset int
	Line   int
	Column int
	// Text is the source line holding Offset, possibly clipped around Column.
	Text       string
	TextColumn int
}

func (p *PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(p.Err.Error())
	sb.WriteString(" at ")
	if p.Name != "" {
		sb.WriteString(p.Name)
		sb.WriteString(":")
	}
	fmt.Fprintf(&sb, "%d:%d", p.Line, p.Column)

	if p.Text != "" {
		sb.WriteString("\n")
		sb.WriteString(p.Text)
		sb.WriteString("\n")
		// caret
		for _, r := range p.Text[:p.TextColumn-1] {
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^")
	}

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

func (p *PosError) ExitStatus() taivm.ExitStatus {
	return taivm.ExitCompileError
}

const (
	clipBefore = 40
	clipAfter  = 20
)

func (c *compiler) errorAt(err error, offset int) error {
	src := c.source
	line := 1 + bytes.Count(src[:offset], []byte("\n"))
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := len(src)
	if i := bytes.IndexByte(src[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	column := offset - start + 1

	// long lines are clipped to a window around the offending byte
	textStart := max(start, offset-clipBefore)
	textEnd := min(end, offset+clipAfter+1)
	text := strings.TrimRight(string(src[textStart:textEnd]), "\r")

	return &PosError{
		Err:        err,
		Name:       c.name,
		Offset:     offset,
		Line:       line,
		Column:     column,
		Text:       text,
		TextColumn: offset - textStart + 1,
	}
}
