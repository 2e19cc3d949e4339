package dentlang

import (
	"fmt"
	"strings"
)

type LexErrorKind uint8

const (
	LexInvalidCharacter LexErrorKind = iota
	LexInconsistentIndentation
	// LexUnterminatedToken is reserved for token forms with a closing
	// delimiter; no current token form can be left open.
	LexUnterminatedToken
	LexInvalidNumber
)

func (k LexErrorKind) String() string {
	switch k {
	case LexInvalidCharacter:
		return "invalid character"
	case LexInconsistentIndentation:
		return "inconsistent indentation"
	case LexUnterminatedToken:
		return "unterminated token"
	case LexInvalidNumber:
		return "invalid number"
	}
	return "unknown"
}

type LexError struct {
	Kind LexErrorKind
	Text string
	Pos  Pos
}

func (e *LexError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Text != "" {
		fmt.Fprintf(&sb, " %q", e.Text)
	}
	writePos(&sb, e.Pos)
	return sb.String()
}

type ParseError struct {
	Expected string
	Found    *Token
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "expected %s, got %s", e.Expected, e.Found.Kind)
	writePos(&sb, e.Found.Pos)
	return sb.String()
}

type RuntimeErrorKind uint8

const (
	RunUndefinedVariable RuntimeErrorKind = iota
	RunDivisionByZero
)

type RuntimeError struct {
	Kind RuntimeErrorKind
	Name string
	Pos  Pos
}

func (e *RuntimeError) Error() string {
	var sb strings.Builder
	switch e.Kind {
	case RunUndefinedVariable:
		fmt.Fprintf(&sb, "undefined variable: %s", e.Name)
	case RunDivisionByZero:
		sb.WriteString("division by zero")
	}
	writePos(&sb, e.Pos)
	return sb.String()
}

// writePos appends "at name:line:col", the source line, and a caret under
// the offending column.
func writePos(sb *strings.Builder, pos Pos) {
	if pos.Source == nil {
		return
	}

	fmt.Fprintf(sb, " at %s:%d:%d\n", pos.Source.Name, pos.Line, pos.Column)

	lines := pos.Source.Lines
	idx := pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return
	}
	line := lines[idx]
	sb.WriteString(line)
	sb.WriteString("\n")

	col := pos.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for k := 0; k < runeWidth(r); k++ {
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("^")
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
