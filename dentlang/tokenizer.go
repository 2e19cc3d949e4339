package dentlang

import (
	"strconv"
	"unicode"
)

// tabWidth is the fixed tab policy: a tab at the start of a line advances
// the indentation width to the next multiple of 8.
const tabWidth = 8

type tokenizer struct {
	src     *Source
	tokens  []*Token
	indents []int
}

// Tokenize scans the whole source and returns the token sequence,
// terminated by an EOF token. NEWLINE marks the end of each logical line
// that produced at least one token, except lines ending in ':' where the
// following INDENT already carries the boundary. INDENT and DEDENT are
// synthesized from leading-whitespace changes against a stack of widths.
func Tokenize(src *Source) ([]*Token, error) {
	t := &tokenizer{
		src:     src,
		indents: []int{0},
	}

	for i, line := range src.Lines {
		if err := t.scanLine(i+1, line); err != nil {
			return nil, err
		}
	}

	endPos := t.pos(len(src.Lines), 1)
	for len(t.indents) > 1 {
		t.indents = t.indents[:len(t.indents)-1]
		t.emit(&Token{Kind: TokenDedent, Pos: endPos})
	}
	t.emit(&Token{Kind: TokenEOF, Pos: endPos})

	return t.tokens, nil
}

func (t *tokenizer) pos(line int, column int) Pos {
	return Pos{
		Source: t.src,
		Line:   line,
		Column: column,
	}
}

func (t *tokenizer) emit(token *Token) {
	t.tokens = append(t.tokens, token)
}

func (t *tokenizer) scanLine(lineNo int, line string) error {
	runes := []rune(line)

	width := 0
	i := 0
	for i < len(runes) {
		switch runes[i] {
		case ' ':
			width++
		case '\t':
			width += tabWidth - width%tabWidth
		case '\r':
			// tolerate CRLF line endings
		default:
			goto indentDone
		}
		i++
	}
	// blank or whitespace-only line, no structural tokens
	return nil

indentDone:
	if err := t.applyIndent(width, t.pos(lineNo, 1)); err != nil {
		return err
	}

	emitted := false
	for i < len(runes) {
		r := runes[i]
		startCol := i + 1
		pos := t.pos(lineNo, startCol)

		switch {

		case r == ' ' || r == '\t' || r == '\r':
			i++
			continue

		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			text := string(runes[i:j])
			value, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return &LexError{
					Kind: LexInvalidNumber,
					Text: text,
					Pos:  pos,
				}
			}
			t.emit(&Token{
				Kind:  TokenNumber,
				Text:  text,
				Value: value,
				Pos:   pos,
			})
			i = j

		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			text := string(runes[i:j])
			kind := TokenIdent
			if k, ok := keywords[text]; ok {
				kind = k
			}
			t.emit(&Token{
				Kind: kind,
				Text: text,
				Pos:  pos,
			})
			i = j

		default:
			kind := TokenInvalid
			text := string(r)
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}

			switch r {
			case '+':
				kind = TokenAdd
			case '-':
				kind = TokenSub
			case '*':
				kind = TokenMul
			case '/':
				kind = TokenDiv
			case '(':
				kind = TokenLParen
			case ')':
				kind = TokenRParen
			case ':':
				kind = TokenColon
			case '=':
				if next == '=' {
					kind, text = TokenEq, "=="
				} else {
					kind = TokenAssign
				}
			case '<':
				if next == '=' {
					kind, text = TokenLe, "<="
				} else {
					kind = TokenLt
				}
			case '>':
				if next == '=' {
					kind, text = TokenGe, ">="
				} else {
					kind = TokenGt
				}
			case '!':
				if next == '=' {
					kind, text = TokenNe, "!="
				}
			}

			if kind == TokenInvalid {
				return &LexError{
					Kind: LexInvalidCharacter,
					Text: text,
					Pos:  pos,
				}
			}
			t.emit(&Token{
				Kind: kind,
				Text: text,
				Pos:  pos,
			})
			i += len(text)
		}

		emitted = true
	}

	if emitted && t.tokens[len(t.tokens)-1].Kind != TokenColon {
		t.emit(&Token{
			Kind: TokenNewline,
			Pos:  t.pos(lineNo, len(runes)+1),
		})
	}

	return nil
}

func (t *tokenizer) applyIndent(width int, pos Pos) error {
	top := t.indents[len(t.indents)-1]

	if width > top {
		t.indents = append(t.indents, width)
		t.emit(&Token{Kind: TokenIndent, Pos: pos})
		return nil
	}

	for width < t.indents[len(t.indents)-1] {
		t.indents = t.indents[:len(t.indents)-1]
		t.emit(&Token{Kind: TokenDedent, Pos: pos})
	}
	if width != t.indents[len(t.indents)-1] {
		return &LexError{
			Kind: LexInconsistentIndentation,
			Pos:  pos,
		}
	}
	return nil
}
