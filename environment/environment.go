/*
File: rlox/environment/environment.go
*/

// Package environment implements the chain of mutable name-to-value
// scopes the evaluator reads and writes as it walks the AST.
package environment

import (
	"fmt"

	"github.com/akashmaji946/rlox/token"
)

// UndefinedVariable reports a failed assign or get against a name that
// does not exist anywhere in the environment chain.
type UndefinedVariable struct {
	Name string
}

func (e *UndefinedVariable) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is a mapping from variable name to value, plus an optional
// reference to an enclosing environment. Environments form a
// single-parent chain rooted at a globals environment shared for the
// life of the interpreter; block environments are created on block entry
// and discarded on block exit, including exit by error.
type Environment struct {
	values    map[string]token.Literal
	enclosing *Environment
}

// New creates a root environment with no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]token.Literal)}
}

// NewEnclosed creates an environment whose enclosing scope is parent.
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{values: make(map[string]token.Literal), enclosing: parent}
}

// Define writes to this environment's map unconditionally. Redefinition
// is always allowed - "when in doubt, do what Scheme does" - so
// shadowing an outer binding or redeclaring one in the same scope never
// fails.
func (e *Environment) Define(name string, value token.Literal) {
	e.values[name] = value
}

// Assign walks outward from this environment and overwrites the nearest
// one that already contains name. It fails with UndefinedVariable,
// without mutating any environment in the chain, if no environment
// defines name.
func (e *Environment) Assign(name string, value token.Literal) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &UndefinedVariable{Name: name}
}

// Get walks outward from this environment and returns the first binding
// for name, or fails with UndefinedVariable if none exists.
func (e *Environment) Get(name string) (token.Literal, error) {
	if value, ok := e.values[name]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &UndefinedVariable{Name: name}
}
