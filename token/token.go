/*
File: rlox/token/token.go
*/

// Package token defines the shared value types that flow through every
// stage of the interpreter: the token kind enumeration, the token record
// itself, and the four-variant literal value union.
package token

import "fmt"

// Kind identifies the lexical category of a token. The set is closed and
// mirrors exactly the grammar in use: grouping punctuation, separators,
// arithmetic and comparison operators, the three literal kinds, the
// reserved words (several of which the parser accepts as keywords but
// rejects in expression position, since this core has no classes,
// functions, or control flow), and EOF.
type Kind int

const (
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	Identifier
	String
	Number

	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var kindNames = map[Kind]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Minus:        "Minus",
	Plus:         "Plus",
	Semicolon:    "Semicolon",
	Slash:        "Slash",
	Star:         "Star",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Identifier:   "Identifier",
	String:       "String",
	Number:       "Number",
	And:          "And",
	Class:        "Class",
	Else:         "Else",
	False:        "False",
	Fun:          "Fun",
	For:          "For",
	If:           "If",
	Nil:          "Nil",
	Or:           "Or",
	Print:        "Print",
	Return:       "Return",
	Super:        "Super",
	This:         "This",
	True:         "True",
	Var:          "Var",
	While:        "While",
	EOF:          "EOF",
}

// String renders the kind's identifier name, e.g. "Plus", "Minus". This is
// the exact form runtime-error messages embed as <TokenKindDebug>.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved-word lexemes to their keyword kind.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is a single lexical unit produced by the scanner and consumed by
// the parser. Lexeme is the exact source substring that produced the
// token (empty for EOF). Literal is populated only for String, Number,
// and the keyword-literals true/false/nil; it is nil otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal Literal
	Line    int
}

// New builds a Token with no literal payload.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral builds a Token carrying a literal payload.
func NewLiteral(kind Kind, lexeme string, literal Literal, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// String renders the token the way a runtime error embeds it:
// "<KindDebug> <lexeme>".
func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Kind, t.Lexeme)
}
