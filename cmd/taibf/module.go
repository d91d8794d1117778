package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/taibf"
	"github.com/reusee/taibf/taitape"
)

type Module struct {
	dscope.Module
	Bf     taibf.Module
	Tape   taitape.Module
	Debugs debugs.Module
}
