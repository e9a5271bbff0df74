/*
File: rlox/ast/stmt.go
*/

package ast

import "github.com/akashmaji946/rlox/token"

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor has one handler per statement variant.
type StmtVisitor interface {
	VisitExpression(s *Expression) error
	VisitPrint(s *Print) error
	VisitVar(s *Var) error
	VisitBlock(s *Block) error
}

// Expression evaluates Inner and discards the result.
type Expression struct {
	Inner Expr
}

func (s *Expression) Accept(v StmtVisitor) error { return v.VisitExpression(s) }

// Print evaluates Inner and writes its display form to standard output.
type Print struct {
	Inner Expr
}

func (s *Print) Accept(v StmtVisitor) error { return v.VisitPrint(s) }

// Var declares Name in the innermost environment, optionally initialized
// by Initializer (defaults to nil when absent).
type Var struct {
	Name        token.Token
	Initializer Expr // nil when the declaration has no initializer
}

func (s *Var) Accept(v StmtVisitor) error { return v.VisitVar(s) }

// Block runs Statements in a new environment enclosing the current one.
type Block struct {
	Statements []Stmt
}

func (s *Block) Accept(v StmtVisitor) error { return v.VisitBlock(s) }
