/*
File    : lox/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the tree-walking evaluator: an Evaluator-shaped struct
// wrapping the live scope and an output writer, executing the AST the
// parser built and consulting the resolver's hop-count side table wherever
// a variable is referenced. Variables resolve via the resolver's distances
// instead of walking the scope chain by name every time, and `return`
// threads through the visitor as a typed, explicit result (returnSignal)
// instead of a bare panic/recover pair — a return must never be confused
// with a genuine runtime error, and keeping both as distinct Go types down
// the same error-return path makes that guarantee mechanical instead of a
// recover()-site review.
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/loxfunc"
	"github.com/akashmaji946/lox/loxvalue"
	"github.com/akashmaji946/lox/token"
)

// Callable is anything invocable from a Lox call expression: the native
// clock() builtin and every user-declared function.
type Callable interface {
	Arity() int
	Call(i *Interpreter, arguments []interface{}) (interface{}, error)
	String() string
}

// returnSignal is the explicit, typed control-flow result a `return`
// statement produces. It satisfies error only so it can travel through
// the same Stmt.Accept/error-returning plumbing every other statement
// uses; VisitReturnStmt is the only place that constructs it and
// userFunction.Call the only place that unwraps it (executeBlock just
// passes it on), so it can never leak out as a user-visible runtime error.
type returnSignal struct {
	value interface{}
}

func (returnSignal) Error() string { return "return" }

// Interpreter walks the tree produced by parser.Parse, after resolver.Resolve
// has annotated it.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	locals  map[ast.Expr]int
	report  *loxerr.Reporter
	out     io.Writer
}

// New creates an Interpreter with a fresh global scope, registers the
// clock() native, and wires diagnostics through rep and `print` output
// through out (normally os.Stdout).
func New(locals map[ast.Expr]int, rep *loxerr.Reporter, out io.Writer) *Interpreter {
	globals := environment.New()
	globals.Define("clock", clockBuiltin{})
	return &Interpreter{globals: globals, env: globals, locals: locals, report: rep, out: out}
}

// SetLocals replaces the resolver side table, used by the REPL which
// re-resolves and re-interprets against the same Interpreter on every line.
func (i *Interpreter) SetLocals(locals map[ast.Expr]int) {
	i.locals = locals
}

// Interpret runs a whole program. Any runtime error is reported through
// the Reporter (never returned to the caller): the caller only needs to
// check Reporter.HadRuntimeError() after.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			i.reportRuntimeError(err)
			return
		}
	}
}

func (i *Interpreter) reportRuntimeError(err error) {
	if rt, ok := err.(*loxerr.RuntimeError); ok {
		i.report.RuntimeError(rt)
		return
	}
	i.report.RuntimeError(loxerr.NewRuntimeError(0, err.Error()))
}

func (i *Interpreter) execute(s ast.Stmt) error {
	return s.Accept(i)
}

func (i *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	return e.Accept(i)
}

// executeBlock runs statements against a fresh environment, restoring the
// caller's environment afterward even if a return signal or runtime error
// unwinds through it.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- ast.StmtVisitor ---

func (i *Interpreter) VisitBlockStmt(s *ast.Block) error {
	return i.executeBlock(s.Statements, environment.NewEnclosed(i.env))
}

func (i *Interpreter) VisitExpressionStmt(s *ast.Expression) error {
	_, err := i.evaluate(s.Expression)
	return err
}

func (i *Interpreter) VisitFunctionStmt(s *ast.Function) error {
	fn := loxfunc.New(s, i.env)
	i.env.Define(s.Name.Lexeme, userFunction{fn: fn})
	return nil
}

func (i *Interpreter) VisitIfStmt(s *ast.If) error {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if loxvalue.IsTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

func (i *Interpreter) VisitPrintStmt(s *ast.Print) error {
	value, err := i.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, loxvalue.Stringify(value))
	return nil
}

func (i *Interpreter) VisitReturnStmt(s *ast.Return) error {
	var value interface{}
	if s.Value != nil {
		v, err := i.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return returnSignal{value: value}
}

func (i *Interpreter) VisitVarStmt(s *ast.Var) error {
	var value interface{}
	if s.Initializer != nil {
		v, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	i.env.Define(s.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) VisitWhileStmt(s *ast.While) error {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !loxvalue.IsTruthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

// --- ast.ExprVisitor ---

func (i *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := i.locals[e]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, value)
	} else if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, loxerr.NewRuntimeError(e.Name.Line, "%s", err.Error())
	}
	return value, nil
}

func (i *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.SLASH:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, loxerr.NewRuntimeError(e.Operator.Line, "Division by zero.")
		}
		return l / r, nil
	case token.STAR:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.NewRuntimeError(e.Operator.Line, "Operands must be two numbers or two strings.")
	case token.GREATER:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.LESS:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case token.BANG_EQUAL:
		return !loxvalue.IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return loxvalue.IsEqual(left, right), nil
	}
	return nil, loxerr.NewRuntimeError(e.Operator.Line, "Unknown operator '%s'.", e.Operator.Lexeme)
}

func (i *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	var arguments []interface{}
	for _, argExpr := range e.Arguments {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}
	callable, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	return callable.Call(i, arguments)
}

func (i *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return i.evaluate(e.Expression)
}

func (i *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (i *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if loxvalue.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !loxvalue.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !loxvalue.IsTruthy(right), nil
	}
	return nil, loxerr.NewRuntimeError(e.Operator.Line, "Unknown operator '%s'.", e.Operator.Lexeme)
}

func (i *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return i.lookupVariable(e.Name, e)
}

func (i *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	value, err := i.globals.Get(name.Lexeme)
	if err != nil {
		return nil, loxerr.NewRuntimeError(name.Line, "%s", err.Error())
	}
	return value, nil
}

func numberOperands(operator token.Token, left, right interface{}) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, loxerr.NewRuntimeError(operator.Line, "Operands must be numbers.")
	}
	return l, r, nil
}
