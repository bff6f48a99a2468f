package ast

import "github.com/banglascript/transpiler/internal/lexer"

type NumberExpr struct {
	StartToken *lexer.Token

	// Digits is the literal as written, Bengali digits included.
	Digits string
}

type BoolExpr struct {
	StartToken *lexer.Token

	Value bool
}

type StringExpr struct {
	StartToken *lexer.Token

	// Raw is everything between the quotes, escapes untouched.
	Raw string
}

type ArrayExpr struct {
	StartToken *lexer.Token

	Elements []Expr
}

type IdentExpr struct {
	StartToken *lexer.Token

	// Value is the untransliterated source text.
	Value string
}

type Comparison struct {
	StartToken *lexer.Token

	Left  Expr
	Op    Operator
	Right Expr
}

type Arithmetic struct {
	StartToken *lexer.Token

	Left  Expr
	Op    Operator
	Right Expr
}

type CallExpr struct {
	StartToken *lexer.Token

	Name *IdentExpr
	Args []Expr
}

func (NumberExpr) AstNode() {}
func (BoolExpr) AstNode()   {}
func (StringExpr) AstNode() {}
func (ArrayExpr) AstNode()  {}
func (IdentExpr) AstNode()  {}
func (Comparison) AstNode() {}
func (Arithmetic) AstNode() {}
func (CallExpr) AstNode()   {}

func (e *NumberExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *BoolExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *StringExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *ArrayExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *IdentExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *Comparison) FirstToken() *lexer.Token { return e.StartToken }
func (e *Arithmetic) FirstToken() *lexer.Token { return e.StartToken }
func (e *CallExpr) FirstToken() *lexer.Token   { return e.StartToken }

func (NumberExpr) ExprNode() {}
func (BoolExpr) ExprNode()   {}
func (StringExpr) ExprNode() {}
func (ArrayExpr) ExprNode()  {}
func (IdentExpr) ExprNode()  {}
func (Comparison) ExprNode() {}
func (Arithmetic) ExprNode() {}
func (CallExpr) ExprNode()   {}
