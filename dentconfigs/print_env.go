package dentconfigs

import (
	"github.com/reusee/dent/cmds"
	"github.com/reusee/dent/configs"
)

// PrintEnv controls whether the driver prints the final variable
// bindings after a successful run.
type PrintEnv bool

var printEnvFlag = cmds.Switch("-print-env")

func (Module) PrintEnv(
	loader configs.Loader,
) PrintEnv {
	if *printEnvFlag {
		return true
	}
	return PrintEnv(configs.First[bool](loader, "print_env"))
}
