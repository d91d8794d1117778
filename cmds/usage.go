package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	// aliases share one *Command
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range p.commands {
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, cmd := range order {
		line := strings.Join(names[cmd], ", ")
		if cmd.Func.IsValid() {
			for i, max := 0, cmd.Func.Type().NumIn(); i < max; i++ {
				line += " <" + cmd.Func.Type().In(i).String() + ">"
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
	}
}
