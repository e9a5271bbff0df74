package scanner

import (
	"testing"

	"github.com/akashmaji946/rlox/token"
	"github.com/stretchr/testify/assert"
)

type wantToken struct {
	kind    token.Kind
	lexeme  string
	literal token.Literal
}

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := New(src).ScanTokens()
	assert.NoError(t, err)
	return toks
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks := scanAll(t, "(){},.-+;*/")
	want := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Slash, token.EOF,
	}
	assert.Equal(t, len(want), len(toks))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestScanTokens_CompoundOperators(t *testing.T) {
	toks := scanAll(t, "! != = == < <= > >=")
	want := []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.EOF,
	}
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestScanTokens_LineComment(t *testing.T) {
	toks := scanAll(t, "1 // a comment\n2")
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, token.EOF, toks[2].Kind)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_BlockComment(t *testing.T) {
	toks := scanAll(t, "1 /* a\nblock */ 2")
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, err := New("/* never closes").ScanTokens()
	assert.Error(t, err)
	assert.Equal(t, "[line 1] Error: Unterminated comment.", err.Error())
}

func TestScanTokens_String(t *testing.T) {
	toks := scanAll(t, `"hello world"`)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, token.StringValue("hello world"), toks[0].Literal)
}

func TestScanTokens_StringSpanningLines(t *testing.T) {
	toks := scanAll(t, "\"line1\nline2\" 1")
	assert.Equal(t, token.StringValue("line1\nline2"), toks[0].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, err := New(`"never closes`).ScanTokens()
	assert.Error(t, err)
	assert.Equal(t, "[line 1] Error: Unterminated string.", err.Error())
}

func TestScanTokens_Number(t *testing.T) {
	toks := scanAll(t, "123 1.5")
	assert.Equal(t, token.NumberValue(123), toks[0].Literal)
	assert.Equal(t, token.NumberValue(1.5), toks[1].Literal)
}

func TestScanTokens_TrailingDotNotConsumed(t *testing.T) {
	toks := scanAll(t, "1.")
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, token.NumberValue(1), toks[0].Literal)
	assert.Equal(t, token.Dot, toks[1].Kind)
	assert.Equal(t, token.EOF, toks[2].Kind)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	toks := scanAll(t, "var foo = true; print nil;")
	want := []token.Kind{
		token.Var, token.Identifier, token.Equal, token.True, token.Semicolon,
		token.Print, token.Nil, token.Semicolon, token.EOF,
	}
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "index %d", i)
	}
	assert.Equal(t, token.BooleanValue(true), toks[3].Literal)
	assert.Equal(t, token.Nil, toks[6].Literal)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, err := New("@").ScanTokens()
	assert.Error(t, err)
	assert.Equal(t, "[line 1] Error: Unexpected character.", err.Error())
}

func TestScanTokens_EOFLexemeEmpty(t *testing.T) {
	toks := scanAll(t, "1 + 1")
	last := toks[len(toks)-1]
	assert.Equal(t, token.EOF, last.Kind)
	assert.Equal(t, "", last.Lexeme)
}

func TestScanTokens_LineTracking(t *testing.T) {
	toks := scanAll(t, "1\n2\n3")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}
