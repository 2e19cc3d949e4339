package dentlang

import (
	"errors"
	"reflect"
	"testing"
)

func parse(t *testing.T, src string) *Program {
	t.Helper()
	tokens := tokenize(t, src)
	program, err := Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	return program
}

func TestParseAssign(t *testing.T) {
	program := parse(t, "x = 42\n")
	if len(program.Stmts) != 1 {
		t.Fatalf("got %d statements", len(program.Stmts))
	}
	assign, ok := program.Stmts[0].(*Assign)
	if !ok {
		t.Fatalf("got %T", program.Stmts[0])
	}
	if assign.Name != "x" {
		t.Fatalf("got %q", assign.Name)
	}
	num, ok := assign.Expr.(*Number)
	if !ok || num.Value != 42 {
		t.Fatalf("got %#v", assign.Expr)
	}
}

func TestPrecedenceStructure(t *testing.T) {
	program := parse(t, "x = 1 + 2 * 3\n")
	assign := program.Stmts[0].(*Assign)
	add, ok := assign.Expr.(*BinaryOp)
	if !ok || add.Op != TokenAdd {
		t.Fatalf("got %#v", assign.Expr)
	}
	mul, ok := add.Right.(*BinaryOp)
	if !ok || mul.Op != TokenMul {
		t.Fatalf("got %#v", add.Right)
	}
}

func TestLeftAssociativeStructure(t *testing.T) {
	program := parse(t, "x = 10 - 3 - 2\n")
	assign := program.Stmts[0].(*Assign)
	outer, ok := assign.Expr.(*BinaryOp)
	if !ok || outer.Op != TokenSub {
		t.Fatalf("got %#v", assign.Expr)
	}
	inner, ok := outer.Left.(*BinaryOp)
	if !ok || inner.Op != TokenSub {
		t.Fatalf("got %#v", outer.Left)
	}
	if right, ok := outer.Right.(*Number); !ok || right.Value != 2 {
		t.Fatalf("got %#v", outer.Right)
	}
}

func TestComparisonBelowArithmetic(t *testing.T) {
	program := parse(t, "x = 1 + 2 < 3 * 4\n")
	assign := program.Stmts[0].(*Assign)
	cmp, ok := assign.Expr.(*BinaryOp)
	if !ok || cmp.Op != TokenLt {
		t.Fatalf("got %#v", assign.Expr)
	}
	if left, ok := cmp.Left.(*BinaryOp); !ok || left.Op != TokenAdd {
		t.Fatalf("got %#v", cmp.Left)
	}
	if right, ok := cmp.Right.(*BinaryOp); !ok || right.Op != TokenMul {
		t.Fatalf("got %#v", cmp.Right)
	}
}

func TestParseIfElse(t *testing.T) {
	program := parse(t, `
if x:
    y = 1
else:
    y = 0
    z = 2
`)
	stmt, ok := program.Stmts[0].(*If)
	if !ok {
		t.Fatalf("got %T", program.Stmts[0])
	}
	if len(stmt.Then.Stmts) != 1 {
		t.Fatalf("got %d", len(stmt.Then.Stmts))
	}
	if stmt.Else == nil || len(stmt.Else.Stmts) != 2 {
		t.Fatalf("got %#v", stmt.Else)
	}
}

func TestParseNestedBlocks(t *testing.T) {
	program := parse(t, `
while a:
    if b:
        c = 1
    d = 2
`)
	loop, ok := program.Stmts[0].(*While)
	if !ok {
		t.Fatalf("got %T", program.Stmts[0])
	}
	if len(loop.Body.Stmts) != 2 {
		t.Fatalf("got %d", len(loop.Body.Stmts))
	}
	inner, ok := loop.Body.Stmts[0].(*If)
	if !ok {
		t.Fatalf("got %T", loop.Body.Stmts[0])
	}
	if len(inner.Then.Stmts) != 1 {
		t.Fatalf("got %d", len(inner.Then.Stmts))
	}
}

func TestMissingBlock(t *testing.T) {
	tokens := tokenize(t, "if x:\ny = 1\n")
	_, err := Parse(tokens)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if parseErr.Expected != TokenIndent.String() {
		t.Fatalf("got %q", parseErr.Expected)
	}
}

func TestEmptyBlock(t *testing.T) {
	// the tokenizer cannot produce INDENT DEDENT with nothing between, so
	// build the sequence by hand
	tokens := []*Token{
		{Kind: TokenIf},
		{Kind: TokenNumber, Value: 1},
		{Kind: TokenColon},
		{Kind: TokenNewline},
		{Kind: TokenIndent},
		{Kind: TokenDedent},
		{Kind: TokenEOF},
	}
	_, err := Parse(tokens)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if parseErr.Expected != "statement" {
		t.Fatalf("got %q", parseErr.Expected)
	}
}

func TestMissingTrailingNewlineAtEOF(t *testing.T) {
	tokens := []*Token{
		{Kind: TokenIdent, Text: "x"},
		{Kind: TokenAssign},
		{Kind: TokenNumber, Value: 1},
		{Kind: TokenEOF},
	}
	program, err := Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if len(program.Stmts) != 1 {
		t.Fatalf("got %d", len(program.Stmts))
	}
}

func TestUnexpectedToken(t *testing.T) {
	tokens := tokenize(t, "x = * 2\n")
	_, err := Parse(tokens)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if parseErr.Found.Kind != TokenMul {
		t.Fatalf("got %v", parseErr.Found.Kind)
	}
}

func TestParseDeterministic(t *testing.T) {
	src := `
x = 0
while x < 10:
    if x - 5:
        x = x + 1
    else:
        x = x + 2
`
	tokens := tokenize(t, src)
	first, err := Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("parsing the same tokens twice diverged")
	}
}
