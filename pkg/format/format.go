package format

import (
	"github.com/leapstack-labs/pyemit/pkg/ast"
	"github.com/leapstack-labs/pyemit/pkg/token"
)

// Module renders a whole source file. An empty module renders as "".
func Module(m *ast.Module) (string, error) {
	toks, err := ModuleTokens(m)
	if err != nil {
		return "", err
	}
	return Render(toks), nil
}

// ModuleTokens returns the token stream for m without printing it.
func ModuleTokens(m *ast.Module) ([]token.Token, error) {
	w := &walker{imported: moduleImports(m.Body)}
	w.body(m.Body, true)
	if w.err != nil {
		return nil, w.err
	}
	return w.toks, nil
}

// Expr renders a single expression in a delimited position, such as the
// right-hand side of an assignment.
func Expr(e ast.Expr) (string, error) {
	w := &walker{}
	w.delimited(e)
	if w.err != nil {
		return "", w.err
	}
	p := NewPrinter()
	p.Print(w.toks...)
	return p.output.String(), nil
}

// Stmt renders a single statement at depth zero.
func Stmt(s ast.Stmt) (string, error) {
	w := &walker{}
	w.stmt(s)
	if w.err != nil {
		return "", w.err
	}
	return Render(w.toks), nil
}
