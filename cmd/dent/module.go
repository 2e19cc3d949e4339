package main

import (
	"github.com/reusee/dent/dentconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs dentconfigs.Module
}
