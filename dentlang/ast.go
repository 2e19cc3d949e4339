package dentlang

// The node set is closed: statements and expressions are sealed by
// unexported marker methods so the evaluator's type switches stay
// exhaustive. Nodes are built once by the parser and never mutated.

type Program struct {
	Stmts []Stmt
}

// Block is a non-empty statement sequence delimited by INDENT/DEDENT.
type Block struct {
	Stmts []Stmt
}

type Stmt interface {
	isStmt()
}

type Assign struct {
	Name string
	Expr Expr
	Pos  Pos
}

type If struct {
	Cond Expr
	Then *Block
	Else *Block
}

type While struct {
	Cond Expr
	Body *Block
}

type ExprStmt struct {
	Expr Expr
}

func (*Assign) isStmt()   {}
func (*If) isStmt()       {}
func (*While) isStmt()    {}
func (*ExprStmt) isStmt() {}

type Expr interface {
	isExpr()
}

type Number struct {
	Value int64
	Pos   Pos
}

type Variable struct {
	Name string
	Pos  Pos
}

type BinaryOp struct {
	Op    TokenKind
	Left  Expr
	Right Expr
	Pos   Pos
}

func (*Number) isExpr()   {}
func (*Variable) isExpr() {}
func (*BinaryOp) isExpr() {}
