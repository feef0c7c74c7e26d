package format

import "github.com/leapstack-labs/pyemit/pkg/token"

// Space reports whether a space goes between prev and next on one line.
// The specific rules come first and override the default policy.
func Space(prev, next token.Token) bool {
	switch {
	case prev.Prefix && (prev.Text == "*" || prev.Text == "**"):
		// splat binds to its operand: *args, **kwargs
		return false
	case prev.Is(token.Word, "from") && next.Is(token.Punct, "."):
		// from . import x, not from. import x
		return true
	case prev.Is(token.Punct, ".") && next.Is(token.Punct, "."):
		// relative dots stay together: ...pkg
		return false
	}
	return defaultSpace(prev, next)
}

func defaultSpace(prev, next token.Token) bool {
	switch {
	case prev.Prefix, prev.Tight, next.Tight:
		return false
	case prev.IsOpen(), next.IsClose():
		return false
	case next.Kind == token.Punct && (next.Text == "," || next.Text == ":" || next.Text == ";"):
		return false
	case next.Is(token.Punct, "."):
		return prev.IsKeyword()
	case prev.Is(token.Punct, "."):
		return next.IsKeyword()
	case next.Is(token.Punct, "(") || next.Is(token.Punct, "["):
		// call or subscript when it follows an operand
		operand := (prev.Kind == token.Word && !prev.IsKeyword()) || prev.Kind == token.String || prev.IsClose()
		return !operand
	}
	return true
}
