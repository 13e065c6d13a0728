/*
File    : lox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the syntax tree the parser builds and the resolver
// and interpreter walk. Every node is a pointer type: its address is the
// stable identity the resolver's side table keys variable references on,
// the same way the resolver packages in the retrieved Lox ports key a
// `locals map[Expr]int` off the Expr interface's dynamic pointer.
package ast

import "github.com/akashmaji946/lox/token"

// Expr is implemented by every expression node. Accept dispatches to the
// matching method on the visitor, the standard double-dispatch idiom the
// teacher's node.go uses for its own Node/NodeVisitor pair.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented by anything that walks expression trees
// (the resolver and the interpreter).
type ExprVisitor interface {
	VisitAssignExpr(e *Assign) (interface{}, error)
	VisitBinaryExpr(e *Binary) (interface{}, error)
	VisitCallExpr(e *Call) (interface{}, error)
	VisitGroupingExpr(e *Grouping) (interface{}, error)
	VisitLiteralExpr(e *Literal) (interface{}, error)
	VisitLogicalExpr(e *Logical) (interface{}, error)
	VisitUnaryExpr(e *Unary) (interface{}, error)
	VisitVariableExpr(e *Variable) (interface{}, error)
}

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Binary is `left operator right` for arithmetic, comparison and equality.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Call is `callee(arguments...)`. Paren is the closing `)`, kept so runtime
// errors at a call site (wrong arity, not callable) report the call's line.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// Grouping is a parenthesized expression, kept as its own node so `(1+2)*3`
// still associates correctly without the parser needing precedence climbing
// tricks at the call site.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Literal is a scanned constant: nil, a bool, a float64, or a string.
type Literal struct {
	Value interface{}
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Logical is `left and right` / `left or right`. Kept distinct from Binary
// because the two short-circuit instead of always evaluating both operands.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Unary is `! right` or `- right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Variable is a reference to a name; Name.Lexeme is the looked-up identifier.
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }
