package dentconfigs

import (
	"github.com/reusee/dent/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
