/*
File: rlox/interpreter/interpreter.go
*/

// Package interpreter walks the AST and evaluates it against a mutable
// environment chain, the only stage with observable side effects beyond
// returning diagnostics.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/rlox/ast"
	"github.com/akashmaji946/rlox/environment"
	"github.com/akashmaji946/rlox/token"
)

// Interpreter implements ast.ExprVisitor and ast.StmtVisitor. It holds a
// globals environment that persists across statements (and, for a REPL
// driver, across lines) and a current environment that block statements
// temporarily swap in.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	writer  io.Writer
}

// New creates an interpreter with a fresh globals environment, writing
// print output to os.Stdout until SetWriter overrides it.
func New() *Interpreter {
	globals := environment.New()
	return &Interpreter{globals: globals, env: globals, writer: os.Stdout}
}

// SetWriter redirects print output.
func (it *Interpreter) SetWriter(w io.Writer) { it.writer = w }

// Interpret runs each statement in order. A runtime error aborts the
// current top-level statement and every statement after it; the caller
// decides whether to continue (REPL) or exit non-zero (file mode).
func (it *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(it)
}

func (it *Interpreter) evaluate(expr ast.Expr) (token.Literal, error) {
	result, err := expr.Accept(it)
	if err != nil {
		return nil, err
	}
	return result.(token.Literal), nil
}

// executeBlock runs statements in env, restoring the previously current
// environment on every exit path - normal completion or runtime error -
// via defer, so the enclosing environment's identity is never lost.
func (it *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range statements {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Statement visitors.

func (it *Interpreter) VisitExpression(s *ast.Expression) error {
	_, err := it.evaluate(s.Inner)
	return err
}

func (it *Interpreter) VisitPrint(s *ast.Print) error {
	value, err := it.evaluate(s.Inner)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.writer, value.String())
	return nil
}

func (it *Interpreter) VisitVar(s *ast.Var) error {
	value := token.Nil
	if s.Initializer != nil {
		v, err := it.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	it.env.Define(s.Name.Lexeme, value)
	return nil
}

func (it *Interpreter) VisitBlock(s *ast.Block) error {
	return it.executeBlock(s.Statements, environment.NewEnclosed(it.env))
}

// Expression visitors.

func (it *Interpreter) VisitLiteral(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (it *Interpreter) VisitGrouping(e *ast.Grouping) (interface{}, error) {
	return it.evaluate(e.Inner)
}

func (it *Interpreter) VisitUnary(e *ast.Unary) (interface{}, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Minus:
		num, ok := right.(token.NumberValue)
		if !ok {
			return nil, &TokenError{Token: e.Operator, Message: "Invalid operand for unary minus"}
		}
		return -num, nil
	case token.Bang:
		return token.BooleanValue(!token.Truthy(right)), nil
	default:
		panic("interpreter: unreachable unary operator " + e.Operator.Kind.String())
	}
}

func (it *Interpreter) VisitBinary(e *ast.Binary) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Minus, token.Star:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &TokenError{Token: e.Operator, Message: "Operands must be numbers."}
		}
		if e.Operator.Kind == token.Minus {
			return ln - rn, nil
		}
		return ln * rn, nil
	case token.Slash:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &TokenError{Token: e.Operator, Message: "Operands must be numbers."}
		}
		if rn == 0 {
			return nil, &TokenError{Token: e.Operator, Message: "Cannot divide by zero."}
		}
		return ln / rn, nil
	case token.Plus:
		if ln, rn, ok := bothNumbers(left, right); ok {
			return ln + rn, nil
		}
		if ls, rs, ok := bothStrings(left, right); ok {
			return ls + rs, nil
		}
		return nil, &TokenError{Token: e.Operator, Message: "Operands must be two numbers or two strings."}
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &TokenError{Token: e.Operator, Message: "Operands must be numbers."}
		}
		return token.BooleanValue(compare(e.Operator.Kind, ln, rn)), nil
	case token.BangEqual:
		return token.BooleanValue(!token.Equal(left, right)), nil
	case token.EqualEqual:
		return token.BooleanValue(token.Equal(left, right)), nil
	default:
		panic("interpreter: unreachable binary operator " + e.Operator.Kind.String())
	}
}

func (it *Interpreter) VisitVariable(e *ast.Variable) (interface{}, error) {
	return it.env.Get(e.Name.Lexeme)
}

func (it *Interpreter) VisitAssign(e *ast.Assign) (interface{}, error) {
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := it.env.Assign(e.Name.Lexeme, value); err != nil {
		return nil, err
	}
	return value, nil
}

func bothNumbers(left, right token.Literal) (token.NumberValue, token.NumberValue, bool) {
	ln, lok := left.(token.NumberValue)
	rn, rok := right.(token.NumberValue)
	return ln, rn, lok && rok
}

func bothStrings(left, right token.Literal) (token.StringValue, token.StringValue, bool) {
	ls, lok := left.(token.StringValue)
	rs, rok := right.(token.StringValue)
	return ls, rs, lok && rok
}

func compare(kind token.Kind, left, right token.NumberValue) bool {
	switch kind {
	case token.Greater:
		return left > right
	case token.GreaterEqual:
		return left >= right
	case token.Less:
		return left < right
	case token.LessEqual:
		return left <= right
	default:
		panic("interpreter: unreachable comparison operator " + kind.String())
	}
}
