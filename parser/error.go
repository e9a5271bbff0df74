/*
File: rlox/parser/error.go
*/

package parser

import (
	"fmt"

	"github.com/akashmaji946/rlox/token"
)

// Error reports a grammar violation at a specific token. Display follows
// "<line> at <lexeme>: <message>", or "<line> at end: <message>" when the
// offending token is EOF.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	if e.Token.Kind == token.EOF {
		return fmt.Sprintf("%d at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("%d at %s: %s", e.Token.Line, e.Token.Lexeme, e.Message)
}
