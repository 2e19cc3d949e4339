package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/dent/dentlang"
)

// repl reads statements interactively against one persistent
// environment. A line ending in ':' opens a block; the block is
// submitted on the first blank line.
func repl() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	env := dentlang.NewEnv()
	var block []string

	for {
		if block != nil {
			rl.SetPrompt("... ")
		} else {
			rl.SetPrompt("> ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			block = nil
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if block != nil {
			if strings.TrimSpace(line) == "" {
				submit(env, strings.Join(block, "\n"))
				block = nil
			} else {
				block = append(block, line)
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasSuffix(strings.TrimRight(line, " \t"), ":") {
			block = []string{line}
			continue
		}
		submit(env, line)
	}
}

func submit(env *dentlang.Env, src string) {
	tokens, err := dentlang.Tokenize(dentlang.NewSource("repl", src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	program, err := dentlang.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	// a single bare expression prints its value
	if len(program.Stmts) == 1 {
		if stmt, ok := program.Stmts[0].(*dentlang.ExprStmt); ok {
			val, err := env.Eval(stmt.Expr)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(val)
			return
		}
	}

	if err := env.Evaluate(program); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
