package dentlang

// TokenStream is a read-only cursor over a token sequence. Consuming
// advances the cursor, never the underlying tokens, so the same slice can
// be parsed any number of times.
type TokenStream interface {
	Current() *Token
	Peek() *Token
	Consume()
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() *Token {
	if s.idx >= len(s.tokens) {
		return &Token{Kind: TokenEOF}
	}
	return s.tokens[s.idx]
}

func (s *SliceTokenStream) Peek() *Token {
	if s.idx+1 >= len(s.tokens) {
		return &Token{Kind: TokenEOF}
	}
	return s.tokens[s.idx+1]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
