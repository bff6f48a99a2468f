// Package transpiler translates BanglaScript, a programming language with
// Bengali keywords, into TypeScript.
//
// Transpile is the whole pipeline. Every call builds and drops its own
// syntax tree, so the package is safe for concurrent use.
//
//	out, err := transpiler.Transpile(`দেখাও("Hello World!");`)
//	// out == `console.log("Hello World!");`
//
// Errors are either a *SyntaxError, whose message starts with "syntax error:",
// or a *SemanticError, whose message starts with "semantic error:" and quotes
// the offending source text.
package transpiler

import (
	"github.com/banglascript/transpiler/internal/ast"
	"github.com/banglascript/transpiler/internal/compiler_errors"
	"github.com/banglascript/transpiler/internal/emitter"
	"github.com/banglascript/transpiler/internal/parser"
)

type (
	Program       = ast.Program
	SyntaxError   = compiler_errors.SyntaxError
	SemanticError = compiler_errors.SemanticError
	Option        = emitter.Option
)

// WithIndent sets the string used for one level of indentation. The default
// is two spaces.
func WithIndent(indent string) Option {
	return emitter.WithIndent(indent)
}

func Transpile(src string, opts ...Option) (string, error) {
	program, err := Parse(src)
	if err != nil {
		return "", err
	}

	return TranspileProgram(program, opts...)
}

func Parse(src string) (*Program, error) {
	return parser.Parse(src)
}

func TranspileProgram(program *Program, opts ...Option) (string, error) {
	return emitter.NewEmitter(program, opts...).Emit()
}
