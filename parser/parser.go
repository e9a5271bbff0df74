/*
File: rlox/parser/parser.go
*/

// Package parser implements the recursive-descent grammar that turns a
// token vector into an ordered sequence of statements.
package parser

import (
	"github.com/akashmaji946/rlox/ast"
	"github.com/akashmaji946/rlox/token"
)

// Parser walks a fixed token vector (terminated by EOF) with a single
// current index. Errors are collected rather than raised immediately, so
// a single run can surface more than one ParseError.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []error
}

// New prepares a Parser over an already-scanned token sequence.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether parsing encountered any grammar violation.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every ParseError collected during Parse, in the order
// encountered.
func (p *Parser) Errors() []error { return p.errors }

// Parse consumes the entire token vector and returns one statement per
// declaration, including a placeholder for each declaration that failed
// and was recovered via synchronize, so the statement count matches the
// count of top-level declarations attempted.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	return statements
}

func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.declarationOrError()
	if err != nil {
		p.errors = append(p.errors, err)
		p.synchronize()
		return &ast.Expression{Inner: &ast.Literal{Value: token.Nil}}
	}
	return stmt
}

func (p *Parser) declarationOrError() (ast.Stmt, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expected variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expected ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	if p.match(token.Print) {
		return p.printStatement()
	}
	if p.match(token.LeftBrace) {
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: statements}, nil
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after print statement."); err != nil {
		return nil, err
	}
	return &ast.Print{Inner: value}, nil
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	if _, err := p.consume(token.RightBrace, "Expected '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.Expression{Inner: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment is right-associative: it parses an equality first, and if
// the next token is '=' it recursively parses the right-hand side and
// requires the left-hand side to be a Variable. A non-Variable left-hand
// side is reported but does not abort parsing - the expression's value
// is the original left-hand side.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}, nil
		}
		p.errors = append(p.errors, &Error{Token: equals, Message: "Invalid assignment target"})
		return expr, nil
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.Slash, token.Star)
}

// leftAssocBinary implements the shared left-associative binary-operator
// loop shared by equality/comparison/term/factor: parse one operand at
// next, then fold in `(operator operand)*`.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.advance()
	switch tok.Kind {
	case token.False:
		return &ast.Literal{Value: token.BooleanValue(false)}, nil
	case token.True:
		return &ast.Literal{Value: token.BooleanValue(true)}, nil
	case token.Nil:
		return &ast.Literal{Value: token.Nil}, nil
	case token.Number, token.String:
		return &ast.Literal{Value: tok.Literal}, nil
	case token.Identifier:
		return &ast.Variable{Name: tok}, nil
	case token.LeftParen:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: expr}, nil
	default:
		return nil, &Error{Token: tok, Message: "expected expression"}
	}
}

// synchronize discards tokens until the start of the next statement, so
// that a single syntax error doesn't cascade into spurious follow-on
// errors from the parser losing its place.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, &Error{Token: p.peek(), Message: message}
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}
