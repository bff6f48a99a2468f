package lexer

type TokenScanner interface {
	Read() *Token
	Peek() *Token
	HasTokens() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

// NewTokenScanner expects tokens to end with an EOF token. Reading past it
// keeps returning EOF.
func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
		pos:    -1,
	}
}

func (s *SimpleTokenScanner) Read() *Token {
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}

	return &s.tokens[s.pos]
}

// Peek returns the token after the current one without consuming it.
func (s *SimpleTokenScanner) Peek() *Token {
	if s.pos < len(s.tokens)-1 {
		return &s.tokens[s.pos+1]
	}

	return &s.tokens[len(s.tokens)-1]
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)-1
}
