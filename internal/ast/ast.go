package ast

import "github.com/banglascript/transpiler/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Program is the root of a parsed source file. Top-level declarations are
// ordinary statements; functions and classes are statements too.
type Program struct {
	Stmts []Stmt
}

type Stmt interface {
	AstNode
	StmtNode()
}

type Expr interface {
	AstNode
	ExprNode()
}
