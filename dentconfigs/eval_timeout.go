package dentconfigs

import (
	"fmt"
	"time"

	"github.com/reusee/dent/cmds"
	"github.com/reusee/dent/configs"
	"github.com/reusee/dent/vars"
)

// EvalTimeout bounds one evaluation wall-clock-wise. The evaluator
// itself never bounds loops, so the driver enforces this around it.
// Zero means no bound.
type EvalTimeout time.Duration

var evalTimeoutFlag = cmds.Var[string]("-timeout")

func (Module) EvalTimeout(
	loader configs.Loader,
) EvalTimeout {
	str := vars.FirstNonZero(
		*evalTimeoutFlag,
		configs.First[string](loader, "eval_timeout"),
	)
	if str == "" {
		return 0
	}
	duration, err := time.ParseDuration(str)
	if err != nil {
		panic(fmt.Errorf("parse eval_timeout %q: %w", str, err))
	}
	return EvalTimeout(duration)
}
