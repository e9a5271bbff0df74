/*
File: rlox/ast/printer.go
*/

package ast

import "strings"

// printer renders an expression in parenthesized prefix form, operator
// first, e.g. `-123 * (45.67)` prints as `(* (- 123) (group 45.67))`.
type printer struct{}

// Print renders expr in parenthesized prefix form. The printed form is a
// display notation, not Lox source: the parser does not accept it, so it
// cannot be parsed back into an AST.
func Print(expr Expr) string {
	result, _ := expr.Accept(&printer{})
	return result.(string)
}

func (p *printer) VisitBinary(e *Binary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *printer) VisitGrouping(e *Grouping) (interface{}, error) {
	return p.parenthesize("group", e.Inner), nil
}

func (p *printer) VisitLiteral(e *Literal) (interface{}, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return e.Value.String(), nil
}

func (p *printer) VisitUnary(e *Unary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right), nil
}

func (p *printer) VisitVariable(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *printer) VisitAssign(e *Assign) (interface{}, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (p *printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		result, _ := e.Accept(p)
		b.WriteString(result.(string))
	}
	b.WriteByte(')')
	return b.String()
}
