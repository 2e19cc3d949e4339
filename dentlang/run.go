package dentlang

// Run tokenizes, parses, and evaluates a source text against a fresh
// environment, returning the final variable bindings or the first error.
func Run(name string, src string) (*Env, error) {
	tokens, err := Tokenize(NewSource(name, src))
	if err != nil {
		return nil, err
	}
	program, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	env := NewEnv()
	if err := env.Evaluate(program); err != nil {
		return nil, err
	}
	return env, nil
}
