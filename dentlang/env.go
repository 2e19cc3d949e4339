package dentlang

import "sort"

// Env is the variable state of one program run. The language has a
// single flat scope: blocks do not introduce children, assignment always
// writes the one mapping.
type Env struct {
	Vars map[string]int64
}

func NewEnv() *Env {
	return &Env{
		Vars: make(map[string]int64),
	}
}

func (e *Env) Get(name string) (int64, bool) {
	v, ok := e.Vars[name]
	return v, ok
}

func (e *Env) Set(name string, val int64) {
	e.Vars[name] = val
}

func (e *Env) Names() []string {
	names := make([]string, 0, len(e.Vars))
	for name := range e.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
