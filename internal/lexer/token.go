package lexer

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

type TokenKind int

const (
	EOF TokenKind = iota

	NUMBER
	BOOL
	STRING

	IDENT
	TYPE // one of the six type keywords

	ASSIGN // =

	EQ  // ==
	NEQ // !=
	LT  // <
	GT  // >
	LEQ // <=
	GEQ // >=

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	PERCENT  // %

	LPAREN   // (
	LBRACE   // {
	LBRACKET // [

	RPAREN   // )
	RBRACE   // }
	RBRACKET // ]

	SEMICOLON // ;
	COMMA     // ,
	DOT       // .

	PRINT  // দেখাও
	LET    // ধরি
	IF     // যদি
	ELSEIF // নয়তোযদি
	ELSE   // নয়তো
	FOR    // জন্য
	WHILE  // যতক্ষণ
	DO     // কর
	FUNC   // কাঠামো
	RETURN // ফেরত
	CLASS  // শ্রেণী
	CTOR   // নির্মাতা
	METHOD // পদ্ধতি
	NEW    // নতুন
)

var keywords = map[string]TokenKind{
	"দেখাও":    PRINT,
	"ধরি":      LET,
	"যদি":      IF,
	"নয়তোযদি":  ELSEIF,
	"নয়তো":     ELSE,
	"জন্য":     FOR,
	"যতক্ষণ":   WHILE,
	"কর":       DO,
	"কাঠামো":   FUNC,
	"ফেরত":     RETURN,
	"শ্রেণী":   CLASS,
	"নির্মাতা": CTOR,
	"পদ্ধতি":   METHOD,
	"নতুন":     NEW,

	"সত্য":   BOOL,
	"মিথ্যা": BOOL,

	"সংখ্যা":         TYPE,
	"হাছামিছা":       TYPE,
	"দড়ি":           TYPE,
	"বিন্যাস":        TYPE,
	"সংখ্যা_বিন্যাস": TYPE,
	"দড়ি_বিন্যাস":   TYPE,
}

// TrueKeyword is the boolean keyword that renders as true; every other BOOL
// token is false.
var TrueKeyword = norm.NFC.String("সত্য")

func init() {
	normalized := make(map[string]TokenKind, len(keywords))
	for word, kind := range keywords {
		normalized[norm.NFC.String(word)] = kind
	}
	keywords = normalized
}

func LookupKeyword(word string) (TokenKind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case BOOL:
		return "BOOL"
	case STRING:
		return "STRING"
	case IDENT:
		return "IDENT"
	case TYPE:
		return "TYPE"
	case ASSIGN:
		return "ASSIGN"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LEQ:
		return "LEQ"
	case GEQ:
		return "GEQ"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case PERCENT:
		return "PERCENT"
	case LPAREN:
		return "LPAREN"
	case LBRACE:
		return "LBRACE"
	case LBRACKET:
		return "LBRACKET"
	case RPAREN:
		return "RPAREN"
	case RBRACE:
		return "RBRACE"
	case RBRACKET:
		return "RBRACKET"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case PRINT:
		return "PRINT"
	case LET:
		return "LET"
	case IF:
		return "IF"
	case ELSEIF:
		return "ELSEIF"
	case ELSE:
		return "ELSE"
	case FOR:
		return "FOR"
	case WHILE:
		return "WHILE"
	case DO:
		return "DO"
	case FUNC:
		return "FUNC"
	case RETURN:
		return "RETURN"
	case CLASS:
		return "CLASS"
	case CTOR:
		return "CTOR"
	case METHOD:
		return "METHOD"
	case NEW:
		return "NEW"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// Describe names the kind the way diagnostics show it to a user.
func (tk TokenKind) Describe() string {
	switch tk {
	case EOF:
		return "end of input"
	case NUMBER:
		return "number"
	case BOOL:
		return "boolean"
	case STRING:
		return "string"
	case IDENT:
		return "identifier"
	case TYPE:
		return "type keyword"
	case ASSIGN:
		return "'='"
	case EQ:
		return "'=='"
	case NEQ:
		return "'!='"
	case LT:
		return "'<'"
	case GT:
		return "'>'"
	case LEQ:
		return "'<='"
	case GEQ:
		return "'>='"
	case PLUS:
		return "'+'"
	case MINUS:
		return "'-'"
	case ASTERISK:
		return "'*'"
	case SLASH:
		return "'/'"
	case PERCENT:
		return "'%'"
	case LPAREN:
		return "'('"
	case LBRACE:
		return "'{'"
	case LBRACKET:
		return "'['"
	case RPAREN:
		return "')'"
	case RBRACE:
		return "'}'"
	case RBRACKET:
		return "']'"
	case SEMICOLON:
		return "';'"
	case COMMA:
		return "','"
	case DOT:
		return "'.'"
	}

	for word, kind := range keywords {
		if kind == tk {
			return fmt.Sprintf("'%s'", word)
		}
	}

	return tk.String()
}

type Metadata struct {
	Offset int
	Line   int
	Column int
	Length int
}

type Token struct {
	Kind     TokenKind
	Value    string
	Metadata Metadata
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, BOOL, STRING, IDENT, TYPE:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// Describe renders the token for a diagnostic.
func (t *Token) Describe() string {
	switch t.Kind {
	case EOF:
		return t.Kind.Describe()
	case STRING:
		return fmt.Sprintf("string \"%s\"", t.Value)
	case IDENT, NUMBER, BOOL, TYPE:
		return fmt.Sprintf("%s '%s'", t.Kind.Describe(), t.Value)
	}

	return fmt.Sprintf("'%s'", t.Value)
}
