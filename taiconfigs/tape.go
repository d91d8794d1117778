package taiconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// Zero values mean "use the engine default".
type (
	InitialCells int
	MaxCells     int
	GrowCells    int
)

var (
	initialCellsFlag = cmds.Var[int]("-size")
	maxCellsFlag     = cmds.Var[int]("-max")
	growCellsFlag    = cmds.Var[int]("-grow")
)

func init() {
	cmds.GlobalExecutor.Describe("-size", "initial tape size in cells (1024 cells default)")
	cmds.GlobalExecutor.Describe("-max", "max tape length in cells (30000 cells default)")
	cmds.GlobalExecutor.Describe("-grow", "cells allocated per tape growth (1024 cells default)")
}

func (Module) InitialCells(
	loader configs.Loader,
) InitialCells {
	return InitialCells(vars.FirstNonZero(
		*initialCellsFlag,
		configs.First[int](loader, "tape.initial_cells"),
	))
}

func (Module) MaxCells(
	loader configs.Loader,
) MaxCells {
	return MaxCells(vars.FirstNonZero(
		*maxCellsFlag,
		configs.First[int](loader, "tape.max_cells"),
	))
}

func (Module) GrowCells(
	loader configs.Loader,
) GrowCells {
	return GrowCells(vars.FirstNonZero(
		*growCellsFlag,
		configs.First[int](loader, "tape.grow_cells"),
	))
}
