package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/reusee/dent/cmds"
	"github.com/reusee/dent/dentconfigs"
	"github.com/reusee/dent/dentlang"
	"github.com/reusee/dent/logs"
	"github.com/reusee/dent/modes"
	"github.com/reusee/dent/vars"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Define("run", cmds.Func(runFile).
		Desc("run a program file, or stdin when no path is given"))
	cmds.Define("eval", cmds.Func(runSource).
		Desc("run a program given as the argument"))
	cmds.Define("repl", cmds.Func(repl).
		Desc("interactive session"))
}

func main() {
	if len(os.Args) <= 1 {
		if err := runFile(nil); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFile(path *string) error {
	name := vars.DerefOrZero(path)
	var content []byte
	var err error
	if name == "" {
		name = "<stdin>"
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}
	return runProgram(name, string(content))
}

func runSource(src string) error {
	return runProgram("<eval>", src)
}

func runProgram(name string, src string) (retErr error) {
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		printEnv dentconfigs.PrintEnv,
		timeout dentconfigs.EvalTimeout,
	) {
		ctx, _ := newSpan(context.Background(), "")
		logger.DebugContext(ctx, "run program",
			"name", name,
		)

		env, err := runBounded(name, src, time.Duration(timeout))
		if err != nil {
			retErr = logs.WrapSpan(ctx, err)
			return
		}

		if printEnv {
			for _, varName := range env.Names() {
				val, _ := env.Get(varName)
				fmt.Printf("%s = %d\n", varName, val)
			}
		}
	})
	return
}

// runBounded enforces the driver-side evaluation bound. The language
// itself never limits loops, so a program that does not finish within
// the configured timeout is abandoned. The evaluation goroutine is
// leaked on timeout and only dies with the process; do not call this
// from a long-lived server.
func runBounded(name string, src string, timeout time.Duration) (*dentlang.Env, error) {
	if timeout <= 0 {
		return dentlang.Run(name, src)
	}

	type result struct {
		env *dentlang.Env
		err error
	}
	done := make(chan result, 1)
	go func() {
		env, err := dentlang.Run(name, src)
		done <- result{
			env: env,
			err: err,
		}
	}()

	select {
	case res := <-done:
		return res.env, res.err
	case <-time.After(timeout):
		return nil, fmt.Errorf("evaluation did not finish within %v", timeout)
	}
}
