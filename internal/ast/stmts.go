package ast

import "github.com/banglascript/transpiler/internal/lexer"

type ScopeStmt struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

type PrintStmt struct {
	StartToken *lexer.Token

	Expr Expr
}

type VarDeclStmt struct {
	StartToken *lexer.Token

	Type  VarType
	Name  *IdentExpr
	Value Expr
}

type ElseIf struct {
	StartToken *lexer.Token

	Cond Expr
	Body *ScopeStmt
}

type IfStmt struct {
	StartToken *lexer.Token

	Cond   Expr
	Body   *ScopeStmt
	ElseIf []ElseIf
	Else   *ScopeStmt
}

// Assignment is `target = value`. Inside a for header the value is limited
// to an identifier or a single identifier-op-identifier arithmetic.
type Assignment struct {
	StartToken *lexer.Token

	Target *IdentExpr
	Value  Expr
}

type ForStmt struct {
	StartToken *lexer.Token

	Init *VarDeclStmt
	Cond *Comparison
	Step *Assignment
	Body *ScopeStmt
}

type WhileStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Body *ScopeStmt
}

type DoWhileStmt struct {
	StartToken *lexer.Token

	Body *ScopeStmt
	Cond Expr
}

type Param struct {
	Type VarType
	Name *IdentExpr
}

type FuncDeclStmt struct {
	StartToken *lexer.Token

	Name   *IdentExpr
	Params []Param
	Body   *ScopeStmt
}

type ReturnStmt struct {
	StartToken *lexer.Token

	Expr Expr
}

type Constructor struct {
	StartToken *lexer.Token

	Params []Param
	Body   *ScopeStmt
}

type MethodDecl struct {
	StartToken *lexer.Token

	Name   *IdentExpr
	Params []Param
	Body   *ScopeStmt
}

type ClassDeclStmt struct {
	StartToken *lexer.Token

	Name    *IdentExpr
	Fields  []*VarDeclStmt
	Ctor    *Constructor
	Methods []*MethodDecl
}

type ObjectInstantiationStmt struct {
	StartToken *lexer.Token

	VarName   *IdentExpr
	ClassName *IdentExpr
	Args      []Expr
}

type MethodCallStmt struct {
	StartToken *lexer.Token

	Receiver *IdentExpr
	Method   *IdentExpr
	Args     []Expr
}

type AssignStmt struct {
	*Assignment
}

type CallStmt struct {
	Call *CallExpr
}

func (s *ScopeStmt) AstNode()               {}
func (p *PrintStmt) AstNode()               {}
func (v *VarDeclStmt) AstNode()             {}
func (i *IfStmt) AstNode()                  {}
func (a *Assignment) AstNode()              {}
func (f *ForStmt) AstNode()                 {}
func (w *WhileStmt) AstNode()               {}
func (d *DoWhileStmt) AstNode()             {}
func (f *FuncDeclStmt) AstNode()            {}
func (r *ReturnStmt) AstNode()              {}
func (c *ClassDeclStmt) AstNode()           {}
func (o *ObjectInstantiationStmt) AstNode() {}
func (m *MethodCallStmt) AstNode()          {}
func (a *AssignStmt) AstNode()              {}
func (c *CallStmt) AstNode()                {}

func (s *ScopeStmt) FirstToken() *lexer.Token               { return s.StartToken }
func (p *PrintStmt) FirstToken() *lexer.Token               { return p.StartToken }
func (v *VarDeclStmt) FirstToken() *lexer.Token             { return v.StartToken }
func (i *IfStmt) FirstToken() *lexer.Token                  { return i.StartToken }
func (a *Assignment) FirstToken() *lexer.Token              { return a.StartToken }
func (f *ForStmt) FirstToken() *lexer.Token                 { return f.StartToken }
func (w *WhileStmt) FirstToken() *lexer.Token               { return w.StartToken }
func (d *DoWhileStmt) FirstToken() *lexer.Token             { return d.StartToken }
func (f *FuncDeclStmt) FirstToken() *lexer.Token            { return f.StartToken }
func (r *ReturnStmt) FirstToken() *lexer.Token              { return r.StartToken }
func (c *ClassDeclStmt) FirstToken() *lexer.Token           { return c.StartToken }
func (o *ObjectInstantiationStmt) FirstToken() *lexer.Token { return o.StartToken }
func (m *MethodCallStmt) FirstToken() *lexer.Token          { return m.StartToken }
func (a *AssignStmt) FirstToken() *lexer.Token              { return a.Assignment.StartToken }
func (c *CallStmt) FirstToken() *lexer.Token                { return c.Call.StartToken }

func (s *ScopeStmt) StmtNode()               {}
func (p *PrintStmt) StmtNode()               {}
func (v *VarDeclStmt) StmtNode()             {}
func (i *IfStmt) StmtNode()                  {}
func (f *ForStmt) StmtNode()                 {}
func (w *WhileStmt) StmtNode()               {}
func (d *DoWhileStmt) StmtNode()             {}
func (f *FuncDeclStmt) StmtNode()            {}
func (r *ReturnStmt) StmtNode()              {}
func (c *ClassDeclStmt) StmtNode()           {}
func (o *ObjectInstantiationStmt) StmtNode() {}
func (m *MethodCallStmt) StmtNode()          {}
func (a *AssignStmt) StmtNode()              {}
func (c *CallStmt) StmtNode()                {}
