package taitape

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taiconfigs"
)

type Module struct {
	dscope.Module
	Configs taiconfigs.Module
	Logs    logs.Module
}

func (Module) Config(
	initial taiconfigs.InitialCells,
	max taiconfigs.MaxCells,
	grow taiconfigs.GrowCells,
) Config {
	return Config{
		InitialCells: int(initial),
		MaxCells:     int(max),
		GrowCells:    int(grow),
	}.withDefaults()
}

type NewTape func() (*Tape, error)

func (Module) NewTape(
	config Config,
	logger logs.Logger,
) NewTape {
	return func() (*Tape, error) {
		tape, err := New(config)
		if err != nil {
			return nil, err
		}
		logger.Debug("new tape",
			"initial", config.InitialCells,
			"max", config.MaxCells,
			"grow", config.GrowCells,
		)
		return tape, nil
	}
}
