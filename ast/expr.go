/*
File: rlox/ast/expr.go
*/

// Package ast defines the expression and statement tagged unions and a
// double-dispatch Accept mechanism so evaluators can be written as one
// handler per variant, with no variant silently dropped.
package ast

import "github.com/akashmaji946/rlox/token"

// Expr is any expression node. Accept performs the variant discrimination
// against an ExprVisitor.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor has one handler per expression variant.
type ExprVisitor interface {
	VisitBinary(e *Binary) (interface{}, error)
	VisitGrouping(e *Grouping) (interface{}, error)
	VisitLiteral(e *Literal) (interface{}, error)
	VisitUnary(e *Unary) (interface{}, error)
	VisitVariable(e *Variable) (interface{}, error)
	VisitAssign(e *Assign) (interface{}, error)
}

// Binary is a left-operator-right expression, e.g. `a + b`.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinary(e) }

// Grouping is a parenthesized expression, e.g. `(a + b)`.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGrouping(e) }

// Literal is a constant value appearing directly in source.
type Literal struct {
	Value token.Literal
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteral(e) }

// Unary is a prefix operator applied to a single operand, e.g. `!a`, `-a`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnary(e) }

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariable(e) }

// Assign evaluates Value and writes it to the nearest enclosing binding
// named Name, yielding the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssign(e) }
