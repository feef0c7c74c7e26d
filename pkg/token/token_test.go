package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("lambda"))
	assert.True(t, IsKeyword("None"))
	assert.False(t, IsKeyword("match"), "soft keywords are identifiers")
	assert.False(t, IsKeyword("print"))
	assert.Len(t, Keywords(), 35)
}

func TestTokenPredicates(t *testing.T) {
	assert.True(t, P("(").IsOpen())
	assert.True(t, P("}").IsClose())
	assert.False(t, W("(").IsOpen(), "only punctuation brackets count")
	assert.True(t, W("from").IsKeyword())
	assert.False(t, S("'from'").IsKeyword())
	assert.True(t, PrefixOp("**").Prefix)
	assert.True(t, TightP("=").Tight)
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `WORD("x")`, W("x").String())
	assert.Equal(t, "INDENT", INDENT.String())
	assert.Equal(t, "KIND(99)", Kind(99).String())
}
