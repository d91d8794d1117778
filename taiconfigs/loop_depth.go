package taiconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type MaxLoopDepth int

var maxLoopDepthFlag = cmds.Var[int]("-depth")

func init() {
	cmds.GlobalExecutor.Describe("-depth", "max loop nesting depth (4096 default)")
}

func (Module) MaxLoopDepth(
	loader configs.Loader,
) MaxLoopDepth {
	return MaxLoopDepth(vars.FirstNonZero(
		*maxLoopDepthFlag,
		configs.First[int](loader, "compiler.max_loop_depth"),
	))
}
