package dentlang

import "fmt"

// Evaluate executes the program against the environment, statement by
// statement, stopping at the first runtime error. Truth is non-zero. A
// while loop with an always-true condition runs forever; bounding it is
// the caller's concern.
func (e *Env) Evaluate(program *Program) error {
	return e.execStmts(program.Stmts)
}

func (e *Env) execStmts(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := e.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Env) execStmt(stmt Stmt) error {
	switch stmt := stmt.(type) {

	case *Assign:
		val, err := e.Eval(stmt.Expr)
		if err != nil {
			return err
		}
		e.Set(stmt.Name, val)
		return nil

	case *If:
		cond, err := e.Eval(stmt.Cond)
		if err != nil {
			return err
		}
		if cond != 0 {
			return e.execStmts(stmt.Then.Stmts)
		}
		if stmt.Else != nil {
			return e.execStmts(stmt.Else.Stmts)
		}
		return nil

	case *While:
		for {
			cond, err := e.Eval(stmt.Cond)
			if err != nil {
				return err
			}
			if cond == 0 {
				return nil
			}
			if err := e.execStmts(stmt.Body.Stmts); err != nil {
				return err
			}
		}

	case *ExprStmt:
		_, err := e.Eval(stmt.Expr)
		return err

	}

	panic(fmt.Sprintf("unexpected statement type: %T", stmt))
}

// Eval folds an expression to its value without touching the environment
// except for variable reads.
func (e *Env) Eval(expr Expr) (int64, error) {
	switch expr := expr.(type) {

	case *Number:
		return expr.Value, nil

	case *Variable:
		val, ok := e.Get(expr.Name)
		if !ok {
			return 0, &RuntimeError{
				Kind: RunUndefinedVariable,
				Name: expr.Name,
				Pos:  expr.Pos,
			}
		}
		return val, nil

	case *BinaryOp:
		left, err := e.Eval(expr.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.Eval(expr.Right)
		if err != nil {
			return 0, err
		}

		switch expr.Op {
		case TokenAdd:
			return left + right, nil
		case TokenSub:
			return left - right, nil
		case TokenMul:
			return left * right, nil
		case TokenDiv:
			if right == 0 {
				return 0, &RuntimeError{
					Kind: RunDivisionByZero,
					Pos:  expr.Pos,
				}
			}
			// int64 division, truncating toward zero
			return left / right, nil
		case TokenLt:
			return boolToInt(left < right), nil
		case TokenGt:
			return boolToInt(left > right), nil
		case TokenLe:
			return boolToInt(left <= right), nil
		case TokenGe:
			return boolToInt(left >= right), nil
		case TokenEq:
			return boolToInt(left == right), nil
		case TokenNe:
			return boolToInt(left != right), nil
		}
		panic(fmt.Sprintf("unexpected operator: %s", expr.Op))

	}

	panic(fmt.Sprintf("unexpected expression type: %T", expr))
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
