package taibf

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taiconfigs"
	"github.com/reusee/taibf/taivm"
)

type Module struct {
	dscope.Module
	Configs taiconfigs.Module
	Logs    logs.Module
}

type CompileSource func(name string, source []byte) (*taivm.Program, error)

func (Module) CompileSource(
	maxDepth taiconfigs.MaxLoopDepth,
	logger logs.Logger,
) CompileSource {
	return func(name string, source []byte) (*taivm.Program, error) {
		program, err := CompileBytes(name, source, WithMaxDepth(int(maxDepth)))
		if err != nil {
			return nil, err
		}
		logger.Debug("compiled",
			"name", name,
			"bytes", len(source),
			"ops", len(program.Code),
		)
		return program, nil
	}
}
