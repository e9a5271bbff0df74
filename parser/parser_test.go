package parser

import (
	"testing"

	"github.com/akashmaji946/rlox/ast"
	"github.com/akashmaji946/rlox/scanner"
	"github.com/akashmaji946/rlox/token"
	"github.com/stretchr/testify/assert"
)

func parseSource(t *testing.T, src string) *Parser {
	t.Helper()
	toks, err := scanner.New(src).ScanTokens()
	assert.NoError(t, err)
	return New(toks)
}

func TestParse_ExpressionStatement(t *testing.T) {
	p := parseSource(t, "1 + 2;")
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ast.Expression)
	assert.True(t, ok)
	assert.Equal(t, "(+ 1 2)", ast.Print(exprStmt.Inner))
}

func TestParse_PrintStatement(t *testing.T) {
	p := parseSource(t, `print "hi";`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	printStmt, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
	assert.Equal(t, "hi", ast.Print(printStmt.Inner))
}

func TestParse_VarDeclarationWithInitializer(t *testing.T) {
	p := parseSource(t, "var a = 1;")
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	varStmt, ok := stmts[0].(*ast.Var)
	assert.True(t, ok)
	assert.Equal(t, "a", varStmt.Name.Lexeme)
	assert.Equal(t, "1", ast.Print(varStmt.Initializer))
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	p := parseSource(t, "var a;")
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	varStmt := stmts[0].(*ast.Var)
	assert.Nil(t, varStmt.Initializer)
}

func TestParse_Block(t *testing.T) {
	p := parseSource(t, "{ var a = 1; print a; }")
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	block, ok := stmts[0].(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	p := parseSource(t, "a = b = 5;")
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	exprStmt := stmts[0].(*ast.Expression)
	assign, ok := exprStmt.Inner.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsNonFatal(t *testing.T) {
	p := parseSource(t, "1 = 2;")
	stmts := p.Parse()
	assert.True(t, p.HasErrors())
	assert.Equal(t, "Invalid assignment target", lastMessage(t, p))
	// parsing continues with the LHS as the expression's value.
	exprStmt := stmts[0].(*ast.Expression)
	assert.Equal(t, "1", ast.Print(exprStmt.Inner))
}

func TestParse_PrecedenceAndAssociativity(t *testing.T) {
	p := parseSource(t, "1 + 2 * 3 - 4;")
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	exprStmt := stmts[0].(*ast.Expression)
	assert.Equal(t, "(- (+ 1 (* 2 3)) 4)", ast.Print(exprStmt.Inner))
}

func TestParse_MissingExpressionReportsError(t *testing.T) {
	p := parseSource(t, "print ;")
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParse_SynchronizeInsertsPlaceholder(t *testing.T) {
	p := parseSource(t, "var ; print 1;")
	stmts := p.Parse()
	assert.True(t, p.HasErrors())
	assert.Len(t, stmts, 2)
	placeholder, ok := stmts[0].(*ast.Expression)
	assert.True(t, ok)
	lit, ok := placeholder.Inner.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, token.Nil, lit.Value)
}

func TestParse_ErrorFormat_AtToken(t *testing.T) {
	p := parseSource(t, "var ;")
	p.Parse()
	assert.Equal(t, "1 at ;: Expected variable name.", p.Errors()[0].Error())
}

func TestParse_ErrorFormat_AtEnd(t *testing.T) {
	p := parseSource(t, "print 1")
	p.Parse()
	assert.Equal(t, "1 at end: Expected ';' after print statement.", p.Errors()[0].Error())
}

// The parenthesized-prefix printer is a pure function of the AST: parsing
// a source once and printing the result twice must produce identical
// text, and distinct expressions must not collapse onto the same
// printed form.
func TestParse_PrintIsStableAndDistinguishing(t *testing.T) {
	sources := map[string]string{
		`-123 * (45.67);`:    "(* (- 123) (group 45.67))",
		`1 + 2 * 3 - 4 / 2;`: "(- (+ 1 (* 2 3)) (/ 4 2))",
		`!!true;`:            "(! (! true))",
		`"a" + "b";`:         `(+ a b)`,
		`a;`:                 "a",
	}
	seen := map[string]string{}
	for src, want := range sources {
		expr := parseSource(t, src).Parse()[0].(*ast.Expression).Inner
		printed := ast.Print(expr)
		assert.Equal(t, want, printed, "printed form for %q", src)
		assert.Equal(t, printed, ast.Print(expr), "printing the same AST twice must be stable")
		if other, ok := seen[printed]; ok {
			t.Fatalf("%q and %q both print as %q", src, other, printed)
		}
		seen[printed] = src
	}
}

func lastMessage(t *testing.T, p *Parser) string {
	t.Helper()
	errs := p.Errors()
	assert.NotEmpty(t, errs)
	perr, ok := errs[len(errs)-1].(*Error)
	assert.True(t, ok)
	return perr.Message
}
