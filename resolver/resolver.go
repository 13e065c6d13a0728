/*
File    : lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs the static scope-resolution pass between
// parsing and interpretation. For every variable reference it counts how
// many scopes out its declaration lives and records that hop count keyed
// by the expression node's own identity, the same `map[Expr]int` idiom the
// retrieved Go Lox ports (mna-nenuphar's lang/resolver, tejas0709's
// interpreter, marcuscaisey's lox) all use. The scope-stack shape itself
// (a stack of name->bool maps, a FunctionType enum tracking whether
// `return` is currently legal) is grounded on original_source/Resolver.cpp
// and .h.
package resolver

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunc
)

// Resolver walks the tree once, before interpretation. It never evaluates
// anything; it only tracks declarations and records lookup distances.
type Resolver struct {
	locals      map[ast.Expr]int
	scopes      []map[string]bool
	currentFunc functionType
	report      *loxerr.Reporter
}

// New creates a Resolver that reports static errors through rep.
func New(rep *loxerr.Reporter) *Resolver {
	return &Resolver{locals: make(map[ast.Expr]int), report: rep}
}

// Locals returns the hop-count side table built by Resolve, ready to be
// handed to the interpreter.
func (r *Resolver) Locals() map[ast.Expr]int {
	return r.locals
}

// Resolve walks a whole program (top-level statement list).
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report.ErrorAtToken(name.Line, false, name.Lexeme, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: treated as global, left out of the side table
}

func (r *Resolver) resolveFunction(decl *ast.Function, typ functionType) {
	enclosingFunc := r.currentFunc
	r.currentFunc = typ
	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(decl.Body)
	r.endScope()
	r.currentFunc = enclosingFunc
}

// --- ast.StmtVisitor ---

func (r *Resolver) VisitBlockStmt(s *ast.Block) error {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.Expression) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, functionFunc)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) error {
	if r.currentFunc == functionNone {
		r.report.ErrorAtToken(s.Keyword.Line, false, s.Keyword.Lexeme, "Can't return from top-level code.")
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) error {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

// --- ast.ExprVisitor ---

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.report.ErrorAtToken(e.Name.Line, false, e.Name.Lexeme, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}
