package dentlang

import (
	"errors"
	"testing"
)

func tokenize(t *testing.T, src string) []*Token {
	t.Helper()
	tokens, err := Tokenize(NewSource("test", src))
	if err != nil {
		t.Fatal(err)
	}
	return tokens
}

func kinds(tokens []*Token) []TokenKind {
	ret := make([]TokenKind, 0, len(tokens))
	for _, token := range tokens {
		ret = append(ret, token.Kind)
	}
	return ret
}

func expectKinds(t *testing.T, got []TokenKind, want ...TokenKind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got, want)
		}
	}
}

func TestTokenizeStatement(t *testing.T) {
	tokens := tokenize(t, "x = 1 + 23")
	expectKinds(t, kinds(tokens),
		TokenIdent, TokenAssign, TokenNumber, TokenAdd, TokenNumber,
		TokenNewline, TokenEOF,
	)
	if tokens[0].Text != "x" {
		t.Fatalf("got %q", tokens[0].Text)
	}
	if tokens[4].Value != 23 {
		t.Fatalf("got %d", tokens[4].Value)
	}
	if tokens[4].Pos.Line != 1 || tokens[4].Pos.Column != 9 {
		t.Fatalf("got %d:%d", tokens[4].Pos.Line, tokens[4].Pos.Column)
	}
}

func TestNewlineSuppressedAfterColon(t *testing.T) {
	tokens := tokenize(t, "if x:\n    y = 1\n")
	expectKinds(t, kinds(tokens),
		TokenIf, TokenIdent, TokenColon,
		TokenIndent, TokenIdent, TokenAssign, TokenNumber, TokenNewline,
		TokenDedent, TokenEOF,
	)
}

func TestIndentDedentNesting(t *testing.T) {
	tokens := tokenize(t, `
while a:
    b = 1
    if b:
        c = 2
d = 3
`)
	var indents, dedents int
	for _, token := range tokens {
		switch token.Kind {
		case TokenIndent:
			indents++
		case TokenDedent:
			dedents++
		}
	}
	if indents != 2 || dedents != 2 {
		t.Fatalf("got %d indents, %d dedents", indents, dedents)
	}
}

func TestDedentFlushAtEOF(t *testing.T) {
	tokens := tokenize(t, "if a:\n    if b:\n        c = 1")
	n := len(tokens)
	expectKinds(t, kinds(tokens[n-3:]),
		TokenDedent, TokenDedent, TokenEOF,
	)
}

func TestBlankLinesEmitNothing(t *testing.T) {
	plain := tokenize(t, "x = 1\ny = 2\n")
	spaced := tokenize(t, "x = 1\n\n   \n\t\ny = 2\n")
	expectKinds(t, kinds(spaced), kinds(plain)...)
}

func TestTabIndent(t *testing.T) {
	// a tab and eight spaces are the same indentation level
	tokens := tokenize(t, "if a:\n\tb = 1\n        c = 2\n")
	var indents, dedents int
	for _, token := range tokens {
		switch token.Kind {
		case TokenIndent:
			indents++
		case TokenDedent:
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Fatalf("got %d indents, %d dedents", indents, dedents)
	}
}

func TestComparisonOperators(t *testing.T) {
	tokens := tokenize(t, "a <= b >= c < d > e == f != g")
	expectKinds(t, kinds(tokens),
		TokenIdent, TokenLe, TokenIdent, TokenGe, TokenIdent,
		TokenLt, TokenIdent, TokenGt, TokenIdent,
		TokenEq, TokenIdent, TokenNe, TokenIdent,
		TokenNewline, TokenEOF,
	)
}

func TestInconsistentIndentation(t *testing.T) {
	_, err := Tokenize(NewSource("test", "if a:\n        b = 1\n    c = 2\n"))
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Kind != LexInconsistentIndentation {
		t.Fatalf("got %v", lexErr.Kind)
	}
	if lexErr.Pos.Line != 3 {
		t.Fatalf("got line %d", lexErr.Pos.Line)
	}
}

func TestInvalidCharacter(t *testing.T) {
	for _, src := range []string{
		"x = $",
		"x = 1 ! 2",
		"x = @y",
	} {
		_, err := Tokenize(NewSource("test", src))
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Fatalf("%s: got %v", src, err)
		}
		if lexErr.Kind != LexInvalidCharacter {
			t.Fatalf("%s: got %v", src, lexErr.Kind)
		}
	}
}

func TestInvalidNumber(t *testing.T) {
	_, err := Tokenize(NewSource("test", "x = 99999999999999999999"))
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Kind != LexInvalidNumber {
		t.Fatalf("got %v", lexErr.Kind)
	}
}

func TestKeywordsBeforeIdents(t *testing.T) {
	tokens := tokenize(t, "ifx = 1\nwhile ifx:\n    ifx = 0\n")
	if tokens[0].Kind != TokenIdent || tokens[0].Text != "ifx" {
		t.Fatalf("got %v %q", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[4].Kind != TokenWhile {
		t.Fatalf("got %v", tokens[4].Kind)
	}
}
