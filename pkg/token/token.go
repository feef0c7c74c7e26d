// Package token defines the classified tokens the Python printer consumes.
//
// The expression walker in pkg/format produces a flat token stream; the
// printer turns it into text by applying spacing and line-break policy.
package token

import "fmt"

// Kind classifies a token for spacing purposes.
type Kind int

const (
	// Word is an identifier, keyword or number.
	Word Kind = iota
	// Punct is an operator or delimiter.
	Punct
	// String is a complete, already-escaped string literal.
	String
	// Comment is a # comment; its text excludes the leading #.
	Comment
	// Newline ends a logical line.
	Newline
	// Indent opens a block one level deeper.
	Indent
	// Dedent closes the innermost block.
	Dedent
)

var kindNames = map[Kind]string{
	Word:    "WORD",
	Punct:   "PUNCT",
	String:  "STRING",
	Comment: "COMMENT",
	Newline: "NEWLINE",
	Indent:  "INDENT",
	Dedent:  "DEDENT",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Token is a single classified token.
type Token struct {
	Kind Kind
	Text string
	// Prefix marks a unary operator or a * / ** splat marker that binds to the
	// following operand.
	Prefix bool
	// Tight marks a token printed without surrounding spaces, such as the =
	// of a keyword argument.
	Tight bool
}

// String implements fmt.Stringer for debugging.
func (t Token) String() string {
	switch t.Kind {
	case Newline, Indent, Dedent:
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// W returns a word token.
func W(text string) Token { return Token{Kind: Word, Text: text} }

// P returns a punctuation token.
func P(text string) Token { return Token{Kind: Punct, Text: text} }

// S returns a string-literal token.
func S(text string) Token { return Token{Kind: String, Text: text} }

// C returns a comment token.
func C(text string) Token { return Token{Kind: Comment, Text: text} }

// PrefixOp returns a prefix operator or splat marker token.
func PrefixOp(text string) Token { return Token{Kind: Punct, Text: text, Prefix: true} }

// TightP returns punctuation printed without surrounding spaces.
func TightP(text string) Token { return Token{Kind: Punct, Text: text, Tight: true} }

// Structural tokens.
var (
	NL     = Token{Kind: Newline}
	INDENT = Token{Kind: Indent}
	DEDENT = Token{Kind: Dedent}
)

// IsOpen reports whether t is an opening bracket.
func (t Token) IsOpen() bool {
	return t.Kind == Punct && (t.Text == "(" || t.Text == "[" || t.Text == "{")
}

// IsClose reports whether t is a closing bracket.
func (t Token) IsClose() bool {
	return t.Kind == Punct && (t.Text == ")" || t.Text == "]" || t.Text == "}")
}

// IsKeyword reports whether t is a word token spelling a Python keyword.
func (t Token) IsKeyword() bool {
	return t.Kind == Word && IsKeyword(t.Text)
}

// Is reports whether t has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}
