/*
File: rlox/interpreter/error.go
*/

package interpreter

import (
	"fmt"

	"github.com/akashmaji946/rlox/environment"
	"github.com/akashmaji946/rlox/token"
)

// TokenError reports an operand-type violation or other runtime failure
// tied to a specific token, e.g. "Minus -: Operands must be numbers."
type TokenError struct {
	Token   token.Token
	Message string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Token, e.Message)
}

// UndefinedVariable reports a read or assignment against a name with no
// binding anywhere in the environment chain. It is a re-export of
// environment.UndefinedVariable so callers can match on a single type
// from this package.
type UndefinedVariable = environment.UndefinedVariable
