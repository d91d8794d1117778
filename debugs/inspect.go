package debugs

import (
	"context"
	"strings"

	"github.com/reusee/taibf/taivm"
)

// Inspect opens a shell over the final state of a finished run.
type Inspect func(ctx context.Context, vm *taivm.VM, runErr error)

func (Module) Inspect(
	tap Tap,
) Inspect {
	return func(ctx context.Context, vm *taivm.VM, runErr error) {
		tap(ctx, "post-mortem", inspection(vm, runErr))
	}
}

func inspection(vm *taivm.VM, runErr error) map[string]any {
	tape := vm.Tape
	cells := tape.Cells()

	errText := ""
	if runErr != nil {
		errText = runErr.Error()
	}

	var listing strings.Builder
	vm.Program.Dump(&listing)

	return map[string]any{
		"name":     vm.Program.Name,
		"pc":       vm.PC,
		"steps":    vm.Steps,
		"status":   taivm.StatusOf(runErr).String(),
		"error":    errText,
		"position": tape.Position(),
		"total":    tape.Total(),
		"limit":    tape.Limit(),
		"chunks":   tape.Chunks(),
		"listing":  listing.String(),

		// cell(i) reads a cell relative to the cursor
		"cell": func(i int) int {
			pos := tape.Position() + i
			if pos < 0 || pos >= len(cells) {
				return 0
			}
			return int(cells[pos])
		},

		// window(n) returns n cells on each side of the cursor
		"window": func(n int) []int {
			n = max(n, 0)
			pos := tape.Position()
			ret := make([]int, 0, n*2+1)
			for i := pos - n; i <= pos+n; i++ {
				if i < 0 || i >= len(cells) {
					ret = append(ret, 0)
					continue
				}
				ret = append(ret, int(cells[i]))
			}
			return ret
		},

		"instruction": func(pc int) string {
			if pc < 0 || pc >= len(vm.Program.Code) {
				return ""
			}
			return vm.Program.Code[pc].String()
		},
	}
}
