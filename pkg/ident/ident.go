// Package ident validates and sanitizes Python identifiers.
//
// Python normalizes identifiers to NFKC while parsing, so two spellings that
// normalize to the same text name the same variable. Names are normalized
// here before they are compared or written to disk.
package ident

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/pyemit/pkg/token"
	"golang.org/x/text/unicode/norm"
)

// Error reports an invalid identifier.
type Error struct {
	Name   string
	Reason string
}

func (e *Error) Error() string {
	return "invalid identifier " + quote(e.Name) + ": " + e.Reason
}

func quote(s string) string {
	return "\"" + s + "\""
}

func isStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isContinue(r rune) bool {
	return isStart(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// Normalize returns name in NFKC form.
func Normalize(name string) string {
	return norm.NFKC.String(name)
}

// Validate returns an *Error if name is not a usable Python identifier.
// Keywords are rejected.
func Validate(name string) error {
	if name == "" {
		return &Error{Name: name, Reason: "empty"}
	}
	for i, r := range name {
		if i == 0 && !isStart(r) {
			return &Error{Name: name, Reason: "cannot start with " + quote(string(r))}
		}
		if !isContinue(r) {
			return &Error{Name: name, Reason: "contains " + quote(string(r))}
		}
	}
	if token.IsKeyword(name) {
		return &Error{Name: name, Reason: "reserved word"}
	}
	return nil
}

// Valid reports whether name is a usable Python identifier.
func Valid(name string) bool {
	return Validate(name) == nil
}

// Sanitize turns an arbitrary file or module name into a valid identifier:
// it normalizes to NFKC, drops characters that cannot appear in an
// identifier, prefixes a leading digit with an underscore and appends an
// underscore to reserved words.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range Normalize(name) {
		if !isContinue(r) {
			continue
		}
		if b.Len() == 0 && !isStart(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	out := b.String()
	switch {
	case out == "":
		return "_"
	case token.IsKeyword(out):
		return out + "_"
	}
	return out
}
