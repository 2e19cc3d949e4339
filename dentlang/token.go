package dentlang

type Token struct {
	Kind  TokenKind
	Text  string
	Value int64
	Pos   Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenIdent
	TokenIf
	TokenElse
	TokenWhile
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenLt
	TokenGt
	TokenLe
	TokenGe
	TokenEq
	TokenNe
	TokenAssign
	TokenColon
	TokenLParen
	TokenRParen
	TokenNewline
	TokenIndent
	TokenDedent
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid: "invalid",
	TokenNumber:  "number",
	TokenIdent:   "identifier",
	TokenIf:      "'if'",
	TokenElse:    "'else'",
	TokenWhile:   "'while'",
	TokenAdd:     "'+'",
	TokenSub:     "'-'",
	TokenMul:     "'*'",
	TokenDiv:     "'/'",
	TokenLt:      "'<'",
	TokenGt:      "'>'",
	TokenLe:      "'<='",
	TokenGe:      "'>='",
	TokenEq:      "'=='",
	TokenNe:      "'!='",
	TokenAssign:  "'='",
	TokenColon:   "':'",
	TokenLParen:  "'('",
	TokenRParen:  "')'",
	TokenNewline: "newline",
	TokenIndent:  "indent",
	TokenDedent:  "dedent",
	TokenEOF:     "end of input",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

var keywords = map[string]TokenKind{
	"if":    TokenIf,
	"else":  TokenElse,
	"while": TokenWhile,
}
