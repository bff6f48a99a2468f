package emitter

import (
	"fmt"
	"strings"

	"github.com/banglascript/transpiler/internal/ast"
	"github.com/banglascript/transpiler/internal/compiler_errors"
	"github.com/banglascript/transpiler/internal/transliteration"
	"github.com/banglascript/transpiler/internal/types"
)

// Namer turns a source identifier into a target identifier and reports
// whether the result is usable.
type Namer func(src string) (string, bool)

type Option func(*Emitter)

func WithIndent(indent string) Option {
	return func(e *Emitter) {
		e.indent = indent
	}
}

func WithNamer(namer Namer) Option {
	return func(e *Emitter) {
		e.namer = namer
	}
}

// Emitter renders a program as TypeScript. Every node's text is built only
// from the text of its children; the emitter keeps no state between nodes.
type Emitter struct {
	program *ast.Program

	indent string
	namer  Namer

	eh compiler_errors.ErrorHandler
}

func NewEmitter(program *ast.Program, opts ...Option) *Emitter {
	e := &Emitter{
		program: program,

		indent: "  ",
		namer:  transliteration.Transliterate,

		eh: compiler_errors.NewErrorHandler(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Emit returns the generated source, or the first *compiler_errors.SemanticError
// met during the walk.
func (e *Emitter) Emit() (out string, err error) {
	defer compiler_errors.Catch(e.eh, &err)

	return e.emitForProgram(e.program), nil
}

func (e *Emitter) emitForProgram(program *ast.Program) string {
	stmts := make([]string, 0, len(program.Stmts))
	for _, stmt := range program.Stmts {
		stmts = append(stmts, e.emitForStmt(stmt))
	}

	return strings.Join(stmts, "\n")
}

func (e *Emitter) emitForStmt(stmt ast.Stmt) string {
	switch stmt := stmt.(type) {
	case *ast.PrintStmt:
		return e.emitForPrintStmt(stmt)
	case *ast.VarDeclStmt:
		return e.emitForVarDeclStmt(stmt)
	case *ast.IfStmt:
		return e.emitForIfStmt(stmt)
	case *ast.ForStmt:
		return e.emitForForStmt(stmt)
	case *ast.WhileStmt:
		return e.emitForWhileStmt(stmt)
	case *ast.DoWhileStmt:
		return e.emitForDoWhileStmt(stmt)
	case *ast.FuncDeclStmt:
		return e.emitForFuncDeclStmt(stmt)
	case *ast.ReturnStmt:
		return e.emitForReturnStmt(stmt)
	case *ast.ClassDeclStmt:
		return e.emitForClassDeclStmt(stmt)
	case *ast.ObjectInstantiationStmt:
		return e.emitForObjectInstantiationStmt(stmt)
	case *ast.MethodCallStmt:
		return e.emitForMethodCallStmt(stmt)
	case *ast.AssignStmt:
		return e.emitForAssignment(stmt.Assignment) + ";"
	case *ast.CallStmt:
		return e.emitForCallExpr(stmt.Call) + ";"
	case *ast.ScopeStmt:
		return e.emitForScopeStmt(stmt)
	default:
		panic(fmt.Sprintf("emitForStmt(): unknown statement %T", stmt))
	}
}

func (e *Emitter) emitForPrintStmt(printStmt *ast.PrintStmt) string {
	return fmt.Sprintf("console.log(%s);", e.emitForExpr(printStmt.Expr))
}

func (e *Emitter) emitForVarDeclStmt(varDeclStmt *ast.VarDeclStmt) string {
	return "let " + e.emitForBinding(varDeclStmt, compiler_errors.ConstructVariable)
}

// emitForBinding renders `name: type = value;`, shared by variables and
// class fields.
func (e *Emitter) emitForBinding(varDeclStmt *ast.VarDeclStmt, construct compiler_errors.Construct) string {
	name := e.name(varDeclStmt.Name, construct)
	tsType := e.emitForType(varDeclStmt.Type, varDeclStmt.Name)
	value := e.emitForExpr(varDeclStmt.Value)

	return fmt.Sprintf("%s: %s = %s;", name, tsType, value)
}

func (e *Emitter) emitForType(varType ast.VarType, owner *ast.IdentExpr) string {
	if !varType.IsValid() {
		e.eh.AddError(&compiler_errors.SemanticError{
			Position:  position(owner),
			Construct: compiler_errors.ConstructType,
			Source:    owner.Value,
			Message:   fmt.Sprintf("'%s' is declared with an unknown type (%d)", owner.Value, varType),
		})
		e.eh.FailNow()
	}

	return types.MapType(varType)
}

func (e *Emitter) emitForIfStmt(ifStmt *ast.IfStmt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "if (%s) %s", e.emitForExpr(ifStmt.Cond), e.emitForScopeStmt(ifStmt.Body))

	for _, elseIf := range ifStmt.ElseIf {
		fmt.Fprintf(&sb, "\nelse if (%s) %s", e.emitForExpr(elseIf.Cond), e.emitForScopeStmt(elseIf.Body))
	}

	if ifStmt.Else != nil {
		fmt.Fprintf(&sb, "\nelse %s", e.emitForScopeStmt(ifStmt.Else))
	}

	return sb.String()
}

func (e *Emitter) emitForForStmt(forStmt *ast.ForStmt) string {
	return fmt.Sprintf("for (%s %s; %s) %s",
		e.emitForVarDeclStmt(forStmt.Init),
		e.emitForExpr(forStmt.Cond),
		e.emitForAssignment(forStmt.Step),
		e.emitForScopeStmt(forStmt.Body))
}

func (e *Emitter) emitForWhileStmt(whileStmt *ast.WhileStmt) string {
	return fmt.Sprintf("while (%s) %s", e.emitForExpr(whileStmt.Cond), e.emitForScopeStmt(whileStmt.Body))
}

func (e *Emitter) emitForDoWhileStmt(doWhileStmt *ast.DoWhileStmt) string {
	return fmt.Sprintf("do %s while (%s);", e.emitForScopeStmt(doWhileStmt.Body), e.emitForExpr(doWhileStmt.Cond))
}

func (e *Emitter) emitForFuncDeclStmt(funcDeclStmt *ast.FuncDeclStmt) string {
	name := e.name(funcDeclStmt.Name, compiler_errors.ConstructFunction)
	return fmt.Sprintf("function %s(%s) %s",
		name,
		e.emitForParams(funcDeclStmt.Params),
		e.emitForScopeStmt(funcDeclStmt.Body))
}

func (e *Emitter) emitForParams(params []ast.Param) string {
	rendered := make([]string, 0, len(params))
	for _, param := range params {
		name := e.name(param.Name, compiler_errors.ConstructParameter)
		rendered = append(rendered, fmt.Sprintf("%s: %s", name, e.emitForType(param.Type, param.Name)))
	}

	return strings.Join(rendered, ", ")
}

func (e *Emitter) emitForReturnStmt(returnStmt *ast.ReturnStmt) string {
	if returnStmt.Expr == nil {
		return "return;"
	}

	return fmt.Sprintf("return %s;", e.emitForExpr(returnStmt.Expr))
}

func (e *Emitter) emitForClassDeclStmt(classDeclStmt *ast.ClassDeclStmt) string {
	name := e.name(classDeclStmt.Name, compiler_errors.ConstructClass)

	members := make([]string, 0, len(classDeclStmt.Fields)+len(classDeclStmt.Methods)+1)
	for _, field := range classDeclStmt.Fields {
		members = append(members, e.emitForBinding(field, compiler_errors.ConstructField))
	}

	if ctor := classDeclStmt.Ctor; ctor != nil {
		members = append(members, fmt.Sprintf("constructor(%s) %s",
			e.emitForParams(ctor.Params),
			e.emitForScopeStmt(ctor.Body)))
	}

	for _, method := range classDeclStmt.Methods {
		methodName := e.name(method.Name, compiler_errors.ConstructMethod)
		members = append(members, fmt.Sprintf("%s(%s) %s",
			methodName,
			e.emitForParams(method.Params),
			e.emitForScopeStmt(method.Body)))
	}

	return fmt.Sprintf("class %s %s", name, e.block(members))
}

func (e *Emitter) emitForObjectInstantiationStmt(stmt *ast.ObjectInstantiationStmt) string {
	varName := e.name(stmt.VarName, compiler_errors.ConstructObject)
	className := e.name(stmt.ClassName, compiler_errors.ConstructClass)

	return fmt.Sprintf("let %s = new %s(%s);", varName, className, e.emitForArgs(stmt.Args))
}

func (e *Emitter) emitForMethodCallStmt(stmt *ast.MethodCallStmt) string {
	receiver := e.name(stmt.Receiver, compiler_errors.ConstructObject)
	method := e.name(stmt.Method, compiler_errors.ConstructMethod)

	return fmt.Sprintf("%s.%s(%s);", receiver, method, e.emitForArgs(stmt.Args))
}

func (e *Emitter) emitForAssignment(assignment *ast.Assignment) string {
	target := e.name(assignment.Target, compiler_errors.ConstructVariable)
	return fmt.Sprintf("%s = %s", target, e.emitForExpr(assignment.Value))
}

func (e *Emitter) emitForScopeStmt(scopeStmt *ast.ScopeStmt) string {
	stmts := make([]string, 0, len(scopeStmt.Stmts))
	for _, stmt := range scopeStmt.Stmts {
		stmts = append(stmts, e.emitForStmt(stmt))
	}

	return e.block(stmts)
}

// block wraps already rendered statements in braces, one level deeper.
func (e *Emitter) block(stmts []string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range stmts {
		for _, line := range strings.Split(stmt, "\n") {
			if line != "" {
				sb.WriteString(e.indent)
				sb.WriteString(line)
			}
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("}")

	return sb.String()
}

func (e *Emitter) emitForExpr(expr ast.Expr) string {
	switch expr := expr.(type) {
	case *ast.NumberExpr:
		return transliteration.Digits(expr.Digits)
	case *ast.BoolExpr:
		if expr.Value {
			return "true"
		}
		return "false"
	case *ast.StringExpr:
		return `"` + expr.Raw + `"`
	case *ast.ArrayExpr:
		return "[" + e.emitForArgs(expr.Elements) + "]"
	case *ast.IdentExpr:
		return e.name(expr, compiler_errors.ConstructIdentifier)
	case *ast.Comparison:
		return fmt.Sprintf("%s %s %s", e.emitForExpr(expr.Left), expr.Op, e.emitForExpr(expr.Right))
	case *ast.Arithmetic:
		return fmt.Sprintf("%s %s %s", e.emitForExpr(expr.Left), expr.Op, e.emitForExpr(expr.Right))
	case *ast.CallExpr:
		return e.emitForCallExpr(expr)
	default:
		panic(fmt.Sprintf("emitForExpr(): unknown expression %T", expr))
	}
}

func (e *Emitter) emitForCallExpr(callExpr *ast.CallExpr) string {
	name := e.name(callExpr.Name, compiler_errors.ConstructFunction)
	return fmt.Sprintf("%s(%s)", name, e.emitForArgs(callExpr.Args))
}

func (e *Emitter) emitForArgs(args []ast.Expr) string {
	rendered := make([]string, 0, len(args))
	for _, arg := range args {
		rendered = append(rendered, e.emitForExpr(arg))
	}

	return strings.Join(rendered, ", ")
}

// name transliterates ident and stops the walk if the result is not a
// valid identifier. The error quotes the source spelling.
func (e *Emitter) name(ident *ast.IdentExpr, construct compiler_errors.Construct) string {
	name, ok := e.namer(ident.Value)
	if !ok {
		e.eh.AddError(compiler_errors.NewInvalidNameError(construct, ident.Value, position(ident)))
		e.eh.FailNow()
	}

	return name
}

func position(node ast.AstNode) compiler_errors.Position {
	token := node.FirstToken()
	if token == nil {
		return compiler_errors.Position{}
	}

	return compiler_errors.Position{
		Offset: token.Metadata.Offset,
		Line:   token.Metadata.Line,
		Column: token.Metadata.Column,
	}
}
