// Package format renders Python source from the ast subset.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/pyemit/pkg/token"
)

const indentSize = 4

// Printer turns a classified token stream into text.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
	prev        token.Token
}

// NewPrinter returns an empty printer.
func NewPrinter() *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the rendered text, ending in exactly one newline unless
// nothing was printed.
func (p *Printer) String() string {
	out := strings.TrimRight(p.output.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

// Print renders toks.
func (p *Printer) Print(toks ...token.Token) {
	for _, t := range toks {
		p.printToken(t)
	}
}

func (p *Printer) printToken(t token.Token) {
	switch t.Kind {
	case token.Newline:
		p.writeln()
	case token.Indent:
		p.depth++
		p.breakLine()
	case token.Dedent:
		if p.depth > 0 {
			p.depth--
		}
		p.breakLine()
	case token.Comment:
		if !p.atLineStart {
			p.output.WriteString("  ")
		}
		if t.Text == "" {
			p.write("#")
		} else {
			p.write("# " + t.Text)
		}
	default:
		if !p.atLineStart && Space(p.prev, t) {
			p.space()
		}
		p.write(t.Text)
		p.prev = t
	}
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
	p.prev = token.Token{}
}

// breakLine ends the current line unless it is empty.
func (p *Printer) breakLine() {
	if !p.atLineStart {
		p.writeln()
	}
}

func (p *Printer) writeIndent() {
	p.output.WriteString(strings.Repeat(" ", p.depth*indentSize))
	p.atLineStart = false
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// Render prints toks with a fresh printer.
func Render(toks []token.Token) string {
	p := NewPrinter()
	p.Print(toks...)
	return p.String()
}
