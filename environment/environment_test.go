package environment

import (
	"testing"

	"github.com/akashmaji946/rlox/token"
	"github.com/stretchr/testify/assert"
)

func TestDefine_Redefinition(t *testing.T) {
	env := New()
	env.Define("a", token.NumberValue(1))
	env.Define("a", token.NumberValue(2))
	v, err := env.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, token.NumberValue(2), v)
}

func TestGet_WalksOutward(t *testing.T) {
	outer := New()
	outer.Define("a", token.NumberValue(1))
	inner := NewEnclosed(outer)
	v, err := inner.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, token.NumberValue(1), v)
}

func TestGet_Undefined(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	assert.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestAssign_WalksOutwardToNearestDefinition(t *testing.T) {
	outer := New()
	outer.Define("a", token.NumberValue(1))
	inner := NewEnclosed(outer)
	err := inner.Assign("a", token.NumberValue(9))
	assert.NoError(t, err)

	outerValue, _ := outer.Get("a")
	assert.Equal(t, token.NumberValue(9), outerValue)
}

func TestAssign_UndefinedDoesNotMutateChain(t *testing.T) {
	outer := New()
	outer.Define("a", token.NumberValue(1))
	inner := NewEnclosed(outer)

	err := inner.Assign("b", token.NumberValue(9))
	assert.Error(t, err)
	assert.Equal(t, "Undefined variable 'b'.", err.Error())

	_, innerHasB := inner.values["b"]
	_, outerHasB := outer.values["b"]
	assert.False(t, innerHasB)
	assert.False(t, outerHasB)
}

func TestAssign_ShadowingLeavesOuterUntouched(t *testing.T) {
	outer := New()
	outer.Define("a", token.NumberValue(1))
	inner := NewEnclosed(outer)
	inner.Define("a", token.NumberValue(2))

	err := inner.Assign("a", token.NumberValue(3))
	assert.NoError(t, err)

	innerValue, _ := inner.Get("a")
	outerValue, _ := outer.Get("a")
	assert.Equal(t, token.NumberValue(3), innerValue)
	assert.Equal(t, token.NumberValue(1), outerValue)
}
