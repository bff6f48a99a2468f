package parser

import (
	"fmt"
	"slices"

	"github.com/banglascript/transpiler/internal/ast"
	"github.com/banglascript/transpiler/internal/compiler_errors"
	"github.com/banglascript/transpiler/internal/lexer"
	"golang.org/x/text/unicode/norm"
)

type Parser struct {
	src string

	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	curr *lexer.Token
}

var varTypeLookup = make(map[string]ast.VarType)

var operatorLookup = map[lexer.TokenKind]ast.Operator{
	lexer.EQ:       ast.OpEq,
	lexer.NEQ:      ast.OpNeq,
	lexer.LT:       ast.OpLt,
	lexer.GT:       ast.OpGt,
	lexer.LEQ:      ast.OpLeq,
	lexer.GEQ:      ast.OpGeq,
	lexer.PLUS:     ast.OpAdd,
	lexer.MINUS:    ast.OpSub,
	lexer.ASTERISK: ast.OpMul,
	lexer.SLASH:    ast.OpDiv,
	lexer.PERCENT:  ast.OpMod,
}

var comparisonKinds = []lexer.TokenKind{
	lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ,
}

var arithmeticKinds = []lexer.TokenKind{
	lexer.PLUS, lexer.MINUS, lexer.ASTERISK, lexer.SLASH, lexer.PERCENT,
}

var statementKinds = []lexer.TokenKind{
	lexer.PRINT, lexer.LET, lexer.IF, lexer.FOR, lexer.WHILE, lexer.DO,
	lexer.FUNC, lexer.RETURN, lexer.LBRACE, lexer.IDENT,
}

var operandKinds = []lexer.TokenKind{
	lexer.NUMBER, lexer.BOOL, lexer.STRING, lexer.LBRACKET, lexer.IDENT,
}

var (
	operatorKinds    = slices.Concat(comparisonKinds, arithmeticKinds)
	declarationKinds = slices.Concat(statementKinds, []lexer.TokenKind{lexer.CLASS, lexer.EOF})
	blockKinds       = slices.Concat(statementKinds, []lexer.TokenKind{lexer.RBRACE})
)

func init() {
	for _, t := range ast.VarTypes() {
		varTypeLookup[norm.NFC.String(t.String())] = t
	}
}

// Parse lexes and parses src. On failure the error is a
// *compiler_errors.SyntaxError, or a *compiler_errors.SemanticError for an
// else clause without an if, and the program is nil.
func Parse(src string) (program *ast.Program, err error) {
	eh := compiler_errors.NewErrorHandler()
	defer compiler_errors.Catch(eh, &err)

	l := lexer.NewLexer(src, eh)
	tokens := l.Tokenize()

	p := NewParser(l.Source(), lexer.NewTokenScanner(tokens), eh)
	return p.Parse(), nil
}

// NewParser takes the normalized source the tokens were produced from; it
// is only used to quote the offending line in diagnostics.
func NewParser(src string, scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler) *Parser {
	return &Parser{
		src:     src,
		scanner: scanner,
		eh:      eh,
		curr:    scanner.Read(),
	}
}

func (p *Parser) Parse() *ast.Program {
	stmts := make([]ast.Stmt, 0)
	for p.scanner.HasTokens() {
		stmts = append(stmts, p.parseDeclaration())
	}

	return &ast.Program{
		Stmts: stmts,
	}
}

func (p *Parser) parseDeclaration() ast.Stmt {
	if p.curr.Kind == lexer.CLASS {
		return p.parseClassDeclStmt()
	}

	return p.parseStmt(declarationKinds)
}

// parseStmt dispatches on the current token. expected is what the enclosing
// context accepts here, reported when no statement starts.
func (p *Parser) parseStmt(expected []lexer.TokenKind) ast.Stmt {
	switch p.curr.Kind {
	case lexer.PRINT:
		return p.parsePrintStmt()
	case lexer.LET:
		return p.parseVarDeclStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.ELSE, lexer.ELSEIF:
		p.danglingElse()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.DO:
		return p.parseDoWhileStmt()
	case lexer.FUNC:
		return p.parseFuncDeclStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.LBRACE:
		return p.parseScopeStmt()
	case lexer.IDENT:
		return p.parseIdentStmt()
	}

	p.expectAny(expected...)
	panic("unreachable")
}

func (p *Parser) parsePrintStmt() *ast.PrintStmt {
	p.expect(lexer.PRINT)
	startToken := p.curr
	p.read()

	expr := p.parseParenExpr()

	p.expect(lexer.SEMICOLON)
	p.read()

	return &ast.PrintStmt{
		StartToken: startToken,

		Expr: expr,
	}
}

func (p *Parser) parseVarDeclStmt() *ast.VarDeclStmt {
	p.expect(lexer.LET)
	startToken := p.curr
	p.read()

	varType := p.parseVarType()
	name := p.parseIdentExpr()

	p.expect(lexer.ASSIGN)
	p.read()

	value := p.parseExpr()

	p.expectAfterExpr(value, lexer.SEMICOLON)
	p.read()

	return &ast.VarDeclStmt{
		StartToken: startToken,

		Type:  varType,
		Name:  name,
		Value: value,
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	p.expect(lexer.IF)
	startToken := p.curr
	p.read()

	cond := p.parseParenExpr()
	body := p.parseScopeStmt()

	var elseIfs []ast.ElseIf
	for p.curr.Kind == lexer.ELSEIF {
		startElseIfToken := p.curr
		p.read()

		cond := p.parseParenExpr()
		body := p.parseScopeStmt()
		elseIfs = append(elseIfs, ast.ElseIf{
			StartToken: startElseIfToken,

			Cond: cond,
			Body: body,
		})
	}

	var elseBody *ast.ScopeStmt
	if p.curr.Kind == lexer.ELSE {
		p.read()
		elseBody = p.parseScopeStmt()
	}

	return &ast.IfStmt{
		StartToken: startToken,

		Cond:   cond,
		Body:   body,
		ElseIf: elseIfs,
		Else:   elseBody,
	}
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	p.expect(lexer.FOR)
	startToken := p.curr
	p.read()

	p.expect(lexer.LPAREN)
	p.read()

	init := p.parseVarDeclStmt()
	cond := p.parseCondition()

	p.expect(lexer.SEMICOLON)
	p.read()

	step := p.parseStep()

	if _, ok := step.Value.(*ast.IdentExpr); ok {
		p.expectAny(slices.Concat(arithmeticKinds, []lexer.TokenKind{lexer.RPAREN})...)
	} else {
		p.expect(lexer.RPAREN)
	}
	p.read()

	body := p.parseScopeStmt()

	return &ast.ForStmt{
		StartToken: startToken,

		Init: init,
		Cond: cond,
		Step: step,
		Body: body,
	}
}

// parseCondition parses the for-loop condition, which is limited to
// identifier, comparison operator, identifier.
func (p *Parser) parseCondition() *ast.Comparison {
	left := p.parseIdentExpr()

	p.expectAny(comparisonKinds...)
	op := operatorLookup[p.curr.Kind]
	p.read()

	right := p.parseIdentExpr()

	return &ast.Comparison{
		StartToken: left.StartToken,

		Left:  left,
		Op:    op,
		Right: right,
	}
}

// parseStep parses the for-loop step: identifier = identifier, optionally
// followed by an arithmetic operator and another identifier.
func (p *Parser) parseStep() *ast.Assignment {
	target := p.parseIdentExpr()

	p.expect(lexer.ASSIGN)
	p.read()

	var value ast.Expr = p.parseIdentExpr()
	if op, ok := operatorLookup[p.curr.Kind]; ok && op.IsArithmetic() {
		p.read()

		value = &ast.Arithmetic{
			StartToken: value.FirstToken(),

			Left:  value,
			Op:    op,
			Right: p.parseIdentExpr(),
		}
	}

	return &ast.Assignment{
		StartToken: target.StartToken,

		Target: target,
		Value:  value,
	}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	p.expect(lexer.WHILE)
	startToken := p.curr
	p.read()

	cond := p.parseParenExpr()
	body := p.parseScopeStmt()

	return &ast.WhileStmt{
		StartToken: startToken,

		Cond: cond,
		Body: body,
	}
}

func (p *Parser) parseDoWhileStmt() *ast.DoWhileStmt {
	p.expect(lexer.DO)
	startToken := p.curr
	p.read()

	body := p.parseScopeStmt()

	p.expect(lexer.WHILE)
	p.read()

	cond := p.parseParenExpr()

	p.expect(lexer.SEMICOLON)
	p.read()

	return &ast.DoWhileStmt{
		StartToken: startToken,

		Body: body,
		Cond: cond,
	}
}

func (p *Parser) parseFuncDeclStmt() *ast.FuncDeclStmt {
	p.expect(lexer.FUNC)
	startToken := p.curr
	p.read()

	name := p.parseIdentExpr()
	params := p.parseParams()
	body := p.parseScopeStmt()

	return &ast.FuncDeclStmt{
		StartToken: startToken,

		Name:   name,
		Params: params,
		Body:   body,
	}
}

func (p *Parser) parseParams() []ast.Param {
	p.expect(lexer.LPAREN)
	p.read()

	params := make([]ast.Param, 0)
	for p.curr.Kind != lexer.RPAREN {
		p.expectAny(lexer.TYPE, lexer.RPAREN)
		varType := p.parseVarType()
		name := p.parseIdentExpr()
		params = append(params, ast.Param{
			Type: varType,
			Name: name,
		})

		if p.curr.Kind != lexer.COMMA {
			break
		}
		p.read()
	}

	p.expectAny(lexer.COMMA, lexer.RPAREN)
	p.read()

	return params
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	p.expect(lexer.RETURN)
	startToken := p.curr
	p.read()

	if p.curr.Kind == lexer.SEMICOLON {
		p.read()
		return &ast.ReturnStmt{
			StartToken: startToken,
		}
	}

	p.expectAny(slices.Concat(operandKinds, []lexer.TokenKind{lexer.SEMICOLON})...)
	expr := p.parseExpr()
	p.expectAfterExpr(expr, lexer.SEMICOLON)
	p.read()

	return &ast.ReturnStmt{
		StartToken: startToken,

		Expr: expr,
	}
}

func (p *Parser) parseClassDeclStmt() *ast.ClassDeclStmt {
	p.expect(lexer.CLASS)
	startToken := p.curr
	p.read()

	name := p.parseIdentExpr()

	p.expect(lexer.LBRACE)
	p.read()

	classDeclStmt := &ast.ClassDeclStmt{
		StartToken: startToken,

		Name:    name,
		Fields:  make([]*ast.VarDeclStmt, 0),
		Methods: make([]*ast.MethodDecl, 0),
	}

	for p.curr.Kind == lexer.LET {
		classDeclStmt.Fields = append(classDeclStmt.Fields, p.parseVarDeclStmt())
	}

	if p.curr.Kind == lexer.CTOR {
		ctorToken := p.curr
		p.read()

		params := p.parseParams()
		body := p.parseScopeStmt()

		classDeclStmt.Ctor = &ast.Constructor{
			StartToken: ctorToken,

			Params: params,
			Body:   body,
		}
	}

	for p.curr.Kind == lexer.METHOD {
		methodToken := p.curr
		p.read()

		name := p.parseIdentExpr()
		params := p.parseParams()
		body := p.parseScopeStmt()

		classDeclStmt.Methods = append(classDeclStmt.Methods, &ast.MethodDecl{
			StartToken: methodToken,

			Name:   name,
			Params: params,
			Body:   body,
		})
	}

	switch {
	case classDeclStmt.Ctor == nil && len(classDeclStmt.Methods) == 0:
		p.expectAny(lexer.LET, lexer.CTOR, lexer.METHOD, lexer.RBRACE)
	default:
		p.expectAny(lexer.METHOD, lexer.RBRACE)
	}
	p.read()

	return classDeclStmt
}

// parseIdentStmt parses the statements that start with an identifier:
// object instantiation, assignment, method call and function call.
func (p *Parser) parseIdentStmt() ast.Stmt {
	startToken := p.curr
	name := p.parseIdentExpr()

	p.expectAny(lexer.ASSIGN, lexer.DOT, lexer.LPAREN)
	switch p.curr.Kind {
	case lexer.ASSIGN:
		p.read()

		if p.curr.Kind == lexer.NEW {
			p.read()

			className := p.parseIdentExpr()
			args := p.parseArgs()

			p.expect(lexer.SEMICOLON)
			p.read()

			return &ast.ObjectInstantiationStmt{
				StartToken: startToken,

				VarName:   name,
				ClassName: className,
				Args:      args,
			}
		}

		p.expectAny(slices.Concat(operandKinds, []lexer.TokenKind{lexer.NEW})...)
		value := p.parseExpr()

		p.expectAfterExpr(value, lexer.SEMICOLON)
		p.read()

		return &ast.AssignStmt{
			Assignment: &ast.Assignment{
				StartToken: startToken,

				Target: name,
				Value:  value,
			},
		}
	case lexer.DOT:
		p.read()

		method := p.parseIdentExpr()
		args := p.parseArgs()

		p.expect(lexer.SEMICOLON)
		p.read()

		return &ast.MethodCallStmt{
			StartToken: startToken,

			Receiver: name,
			Method:   method,
			Args:     args,
		}
	default:
		args := p.parseArgs()

		p.expect(lexer.SEMICOLON)
		p.read()

		return &ast.CallStmt{
			Call: &ast.CallExpr{
				StartToken: startToken,

				Name: name,
				Args: args,
			},
		}
	}
}

func (p *Parser) parseScopeStmt() *ast.ScopeStmt {
	p.expect(lexer.LBRACE)
	startToken := p.curr
	p.read()

	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.RBRACE {
		stmts = append(stmts, p.parseStmt(blockKinds))
	}
	p.read()

	return &ast.ScopeStmt{
		StartToken: startToken,

		Stmts: stmts,
	}
}

func (p *Parser) parseVarType() ast.VarType {
	p.expect(lexer.TYPE)

	varType, ok := varTypeLookup[p.curr.Value]
	if !ok {
		panic(fmt.Sprintf("type keyword %q missing from lookup", p.curr.Value))
	}
	p.read()

	return varType
}

// parseExpr parses an operand optionally followed by a single binary
// operator and a second operand. Operators do not chain.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseOperand()

	op, ok := operatorLookup[p.curr.Kind]
	if !ok {
		return left
	}
	p.read()

	right := p.parseOperand()

	if op.IsComparison() {
		return &ast.Comparison{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}

	return &ast.Arithmetic{
		StartToken: left.FirstToken(),

		Left:  left,
		Op:    op,
		Right: right,
	}
}

func (p *Parser) parseParenExpr() ast.Expr {
	p.expect(lexer.LPAREN)
	p.read()

	expr := p.parseExpr()

	p.expectAfterExpr(expr, lexer.RPAREN)
	p.read()

	return expr
}

// expectAfterExpr checks for one of kinds after expr. A bare operand may
// still be followed by a binary operator; a binary expression may not.
func (p *Parser) expectAfterExpr(expr ast.Expr, kinds ...lexer.TokenKind) {
	switch expr.(type) {
	case *ast.Comparison, *ast.Arithmetic:
		p.expectAny(kinds...)
	default:
		p.expectAny(slices.Concat(operatorKinds, kinds)...)
	}
}

func (p *Parser) parseOperand() ast.Expr {
	switch p.curr.Kind {
	case lexer.NUMBER:
		return p.parseNumberExpr()
	case lexer.BOOL:
		return p.parseBoolExpr()
	case lexer.STRING:
		return p.parseStringExpr()
	case lexer.LBRACKET:
		return p.parseArrayExpr()
	case lexer.IDENT:
		if p.scanner.Peek().Kind == lexer.LPAREN {
			return p.parseCallExpr()
		}
		return p.parseIdentExpr()
	}

	p.expectAny(operandKinds...)
	panic("unreachable")
}

func (p *Parser) parseArrayExpr() *ast.ArrayExpr {
	p.expect(lexer.LBRACKET)
	startToken := p.curr
	p.read()

	elements := p.parseExprList(lexer.RBRACKET)

	return &ast.ArrayExpr{
		StartToken: startToken,

		Elements: elements,
	}
}

func (p *Parser) parseCallExpr() *ast.CallExpr {
	startToken := p.curr
	name := p.parseIdentExpr()
	args := p.parseArgs()

	return &ast.CallExpr{
		StartToken: startToken,

		Name: name,
		Args: args,
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expect(lexer.LPAREN)
	p.read()

	return p.parseExprList(lexer.RPAREN)
}

// parseExprList parses comma-separated expressions up to and including
// closing. A trailing comma is allowed.
func (p *Parser) parseExprList(closing lexer.TokenKind) []ast.Expr {
	exprs := make([]ast.Expr, 0)

	var last ast.Expr
	for p.curr.Kind != closing {
		p.expectAny(slices.Concat(operandKinds, []lexer.TokenKind{closing})...)
		last = p.parseExpr()
		exprs = append(exprs, last)

		if p.curr.Kind != lexer.COMMA {
			break
		}
		p.read()
	}

	if last != nil {
		p.expectAfterExpr(last, lexer.COMMA, closing)
	}
	p.read()

	return exprs
}

func (p *Parser) parseIdentExpr() *ast.IdentExpr {
	p.expect(lexer.IDENT)

	startToken := p.curr
	p.read()

	return &ast.IdentExpr{
		StartToken: startToken,

		Value: startToken.Value,
	}
}

func (p *Parser) parseNumberExpr() *ast.NumberExpr {
	p.expect(lexer.NUMBER)
	startToken := p.curr
	p.read()

	return &ast.NumberExpr{
		StartToken: startToken,

		Digits: startToken.Value,
	}
}

func (p *Parser) parseBoolExpr() *ast.BoolExpr {
	p.expect(lexer.BOOL)
	startToken := p.curr
	p.read()

	return &ast.BoolExpr{
		StartToken: startToken,

		Value: startToken.Value == lexer.TrueKeyword,
	}
}

func (p *Parser) parseStringExpr() *ast.StringExpr {
	p.expect(lexer.STRING)
	startToken := p.curr
	p.read()

	return &ast.StringExpr{
		StartToken: startToken,

		Raw: startToken.Value,
	}
}

func (p *Parser) read() *lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) expect(kind lexer.TokenKind) {
	if p.curr.Kind != kind {
		p.unexpected(kind)
	}
}

func (p *Parser) expectAny(kinds ...lexer.TokenKind) {
	if p.isCurrAny(kinds...) {
		return
	}

	p.unexpected(kinds...)
}

func (p *Parser) unexpected(expected ...lexer.TokenKind) {
	names := make([]string, 0, len(expected))
	for _, kind := range expected {
		if kind == lexer.TYPE {
			for _, t := range ast.VarTypes() {
				names = append(names, fmt.Sprintf("'%s'", t))
			}
			continue
		}
		names = append(names, kind.Describe())
	}

	p.eh.AddError(&compiler_errors.SyntaxError{
		Position: p.position(p.curr),
		Expected: names,
		Found:    p.curr.Describe(),
		Snippet:  compiler_errors.LineSnippet(p.src, p.curr.Metadata.Offset),
	})
	p.eh.FailNow()
}

func (p *Parser) danglingElse() {
	p.eh.AddError(&compiler_errors.SemanticError{
		Position:  p.position(p.curr),
		Construct: compiler_errors.ConstructElse,
		Source:    p.curr.Value,
		Message:   fmt.Sprintf("'%s' has no preceding 'যদি' in the same block", p.curr.Value),
	})
	p.eh.FailNow()
}

func (p *Parser) position(token *lexer.Token) compiler_errors.Position {
	return compiler_errors.Position{
		Offset: token.Metadata.Offset,
		Line:   token.Metadata.Line,
		Column: token.Metadata.Column,
	}
}
