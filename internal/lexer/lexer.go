package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/banglascript/transpiler/internal/compiler_errors"
	"github.com/banglascript/transpiler/internal/transliteration"
	"golang.org/x/text/unicode/norm"
)

type Lexer struct {
	src string
	pos int

	line, col int

	eh compiler_errors.ErrorHandler
}

// NewLexer normalizes src to NFC; every offset the lexer reports refers to
// the normalized text, see Source.
func NewLexer(src string, eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		src: norm.NFC.String(src),
		pos: 0,

		line: 1,
		col:  1,

		eh: eh,
	}
}

func (l *Lexer) Source() string {
	return l.src
}

func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)

	for l.hasChars() {
		switch r := l.read(); {
		case isSkippable(r):
			l.advance()

		case r == '/' && l.peek() == '/':
			l.skipOneLineComment()

		case r == '/' && l.peek() == '*':
			l.skipMultiLineComment()

		case transliteration.IsSourceDigit(r):
			tokens = append(tokens, l.processNumber())

		case transliteration.IsSourceLetter(r):
			tokens = append(tokens, l.processIdentifier())

		case r == '"':
			tokens = append(tokens, l.processStringLiteral())

		case isPunctuation(r):
			tokens = append(tokens, l.processPunctuation())

		default:
			l.fail(fmt.Sprintf("unexpected character '%c'", r), string(r))
		}
	}

	tokens = append(tokens, Token{
		Kind:     EOF,
		Metadata: l.mark(),
	})

	return tokens
}

func isSkippable(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\uFEFF':
		return true
	}

	return false
}

func isPunctuation(r rune) bool {
	switch r {
	case '=', '!', '<', '>', '+', '-', '*', '/', '%', '(', ')', '{', '}', '[', ']', ';', ',', '.':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	start := l.mark()
	for l.hasChars() {
		r := l.read()
		if !transliteration.IsSourceLetter(r) && !transliteration.IsSourceDigit(r) && !transliteration.IsSourceJoiner(r) {
			break
		}
		l.advance()
	}
	identifier := l.src[start.Offset:l.pos]

	kind, ok := LookupKeyword(identifier)
	if !ok {
		kind = IDENT
	}

	return l.token(kind, identifier, start)
}

func (l *Lexer) processNumber() Token {
	start := l.mark()
	l.skipDigits()

	if l.hasChars() && l.read() == '.' && transliteration.IsSourceDigit(l.peek()) {
		l.advance()
		l.skipDigits()
	}

	return l.token(NUMBER, l.src[start.Offset:l.pos], start)
}

func (l *Lexer) skipDigits() {
	for l.hasChars() && transliteration.IsSourceDigit(l.read()) {
		l.advance()
	}
}

func (l *Lexer) processStringLiteral() Token {
	start := l.mark()
	l.advance()

	for l.hasChars() {
		switch l.read() {
		case '"':
			value := l.src[start.Offset+1 : l.pos]
			l.advance()
			return l.token(STRING, value, start)
		case '\\':
			l.advance()
			if !l.hasChars() || l.read() == '\n' {
				l.failAt(start, "unterminated string literal", "\"")
			}
		case '\n':
			l.failAt(start, "unterminated string literal", "\"")
		}
		l.advance()
	}

	l.failAt(start, "unterminated string literal", "\"")
	panic("unreachable")
}

func (l *Lexer) skipOneLineComment() {
	for l.hasChars() && l.read() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipMultiLineComment() {
	start := l.mark()
	l.advance()
	l.advance()

	for l.hasChars() {
		if l.read() == '*' && l.peek() == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}

	l.failAt(start, "unterminated comment", "/*")
}

func (l *Lexer) processPunctuation() Token {
	start := l.mark()
	r := l.read()
	l.advance()

	withEquals := func(single, double TokenKind) Token {
		if l.hasChars() && l.read() == '=' {
			l.advance()
			return l.token(double, l.src[start.Offset:l.pos], start)
		}
		return l.token(single, string(r), start)
	}

	switch r {
	case '=':
		return withEquals(ASSIGN, EQ)
	case '<':
		return withEquals(LT, LEQ)
	case '>':
		return withEquals(GT, GEQ)
	case '!':
		if l.hasChars() && l.read() == '=' {
			l.advance()
			return l.token(NEQ, "!=", start)
		}
		l.failAt(start, "unexpected character '!'", "!")
	case '+':
		return l.token(PLUS, "+", start)
	case '-':
		return l.token(MINUS, "-", start)
	case '*':
		return l.token(ASTERISK, "*", start)
	case '/':
		return l.token(SLASH, "/", start)
	case '%':
		return l.token(PERCENT, "%", start)
	case '(':
		return l.token(LPAREN, "(", start)
	case ')':
		return l.token(RPAREN, ")", start)
	case '{':
		return l.token(LBRACE, "{", start)
	case '}':
		return l.token(RBRACE, "}", start)
	case '[':
		return l.token(LBRACKET, "[", start)
	case ']':
		return l.token(RBRACKET, "]", start)
	case ';':
		return l.token(SEMICOLON, ";", start)
	case ',':
		return l.token(COMMA, ",", start)
	case '.':
		return l.token(DOT, ".", start)
	}

	panic("unreachable")
}

func (l *Lexer) token(kind TokenKind, value string, start Metadata) Token {
	start.Length = l.pos - start.Offset
	return Token{
		Kind:     kind,
		Value:    value,
		Metadata: start,
	}
}

func (l *Lexer) mark() Metadata {
	return Metadata{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

func (l *Lexer) fail(detail string, found string) {
	l.failAt(l.mark(), detail, found)
}

func (l *Lexer) failAt(at Metadata, detail string, found string) {
	l.eh.AddError(&compiler_errors.SyntaxError{
		Position: compiler_errors.Position{
			Offset: at.Offset,
			Line:   at.Line,
			Column: at.Column,
		},
		Found:   found,
		Snippet: compiler_errors.LineSnippet(l.src, at.Offset),
		Detail:  detail,
	})
	l.eh.FailNow()
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.src)
}

func (l *Lexer) read() rune {
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *Lexer) peek() rune {
	_, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if l.pos+size >= len(l.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos+size:])
	return r
}

func (l *Lexer) advance() {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
		return
	}
	l.col++
}
