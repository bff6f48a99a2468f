package compiler_errors

import (
	"fmt"
	"strings"
)

// Position is a location in the NFC-normalized source. Offset is in bytes,
// Line and Column are 1-based and Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type SyntaxError struct {
	Position

	Expected []string
	Found    string
	Snippet  string
	Detail   string
}

func (e *SyntaxError) GetMessage() string {
	var sb strings.Builder
	sb.WriteString("syntax error: ")

	if e.Detail != "" {
		sb.WriteString(e.Detail)
	} else {
		fmt.Fprintf(&sb, "unexpected %s", e.Found)
		switch len(e.Expected) {
		case 0:
		case 1:
			fmt.Fprintf(&sb, ", expected %s", e.Expected[0])
		default:
			fmt.Fprintf(&sb, ", expected one of: %s", strings.Join(e.Expected, ", "))
		}
	}

	fmt.Fprintf(&sb, " at line %d, column %d", e.Line, e.Column)
	return sb.String()
}

func (e *SyntaxError) GetPosition() Position { return e.Position }
func (e *SyntaxError) Error() string         { return e.GetMessage() }

type Construct int

const (
	ConstructIdentifier Construct = iota
	ConstructVariable
	ConstructParameter
	ConstructFunction
	ConstructClass
	ConstructField
	ConstructMethod
	ConstructObject
	ConstructType
	ConstructElse
)

func (c Construct) String() string {
	switch c {
	case ConstructIdentifier:
		return "identifier"
	case ConstructVariable:
		return "variable"
	case ConstructParameter:
		return "parameter"
	case ConstructFunction:
		return "function"
	case ConstructClass:
		return "class"
	case ConstructField:
		return "field"
	case ConstructMethod:
		return "method"
	case ConstructObject:
		return "object"
	case ConstructType:
		return "type"
	case ConstructElse:
		return "else"
	default:
		panic(fmt.Sprintf("Construct.String(): received illegal construct: %d", c))
	}
}

type SemanticError struct {
	Position

	Construct Construct
	// Source is the offending text exactly as written in the source program.
	Source  string
	Message string
}

func NewInvalidNameError(construct Construct, source string, pos Position) *SemanticError {
	return &SemanticError{
		Position:  pos,
		Construct: construct,
		Source:    source,
		Message: fmt.Sprintf(
			"'%s' is not a valid %s name: it must transliterate to a Latin letter or '_' followed by letters, digits or '_'",
			source,
			construct),
	}
}

func (e *SemanticError) GetMessage() string {
	return fmt.Sprintf("semantic error: %s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func (e *SemanticError) GetPosition() Position { return e.Position }
func (e *SemanticError) Error() string         { return e.GetMessage() }

// LineSnippet returns the source line containing offset, without its line
// terminator.
func LineSnippet(src string, offset int) string {
	offset = min(max(offset, 0), len(src))

	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}

	return strings.TrimRight(src[start:end], "\r")
}
