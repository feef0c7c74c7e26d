package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/pyemit/pkg/ast"
	"github.com/leapstack-labs/pyemit/pkg/dotted"
	"github.com/leapstack-labs/pyemit/pkg/ident"
	"github.com/leapstack-labs/pyemit/pkg/ops"
	"github.com/leapstack-labs/pyemit/pkg/token"
)

// Blank lines around def and class statements, PEP 8 style.
const (
	topLevelGap = 2
	nestedGap   = 1
)

func isDef(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.FunctionDef, *ast.ClassDef:
		return true
	}
	return false
}

// body prints a statement sequence at the current depth.
func (w *walker) body(stmts []ast.Stmt, topLevel bool) {
	gap := nestedGap
	if topLevel {
		gap = topLevelGap
	}
	for i, s := range stmts {
		if i > 0 {
			prev := stmts[i-1]
			_, afterComment := prev.(*ast.Comment)
			if isDef(prev) || (isDef(s) && !afterComment) {
				for range gap {
					w.emit(token.NL)
				}
			}
		}
		w.stmt(s)
	}
}

// block prints ": <indented body>". An empty body becomes pass.
func (w *walker) block(stmts []ast.Stmt) {
	w.emit(token.P(":"), token.INDENT)
	if len(stmts) == 0 {
		w.emit(token.W("pass"), token.NL)
	} else {
		w.body(stmts, false)
	}
	w.emit(token.DEDENT)
}

func (w *walker) name(name string) {
	if err := ident.Validate(name); err != nil {
		w.fail(err)
		return
	}
	w.emit(token.W(name))
}

func (w *walker) stmt(s ast.Stmt) {
	if w.err != nil {
		return
	}

	switch s := s.(type) {
	case *ast.ExprStmt:
		w.delimited(s.Value)
	case *ast.Assign:
		if len(s.Targets) == 0 {
			w.fail(errors.New("assignment without a target"))
			return
		}
		for _, t := range s.Targets {
			w.delimited(t)
			w.emit(token.P("="))
		}
		w.delimited(s.Value)
	case *ast.AugAssign:
		if ops.Get(s.Op).Kind != ops.AugAssign {
			w.fail(fmt.Errorf("%s is not an augmented assignment", s.Op))
			return
		}
		w.delimited(s.Target)
		w.emit(token.P(s.Op.Token()))
		w.delimited(s.Value)
	case *ast.Return:
		w.emit(token.W("return"))
		if _, ok := s.Value.(*ast.Yield); ok {
			w.wrapUnless(false, s.Value)
		} else if s.Value != nil {
			w.delimited(s.Value)
		}
	case *ast.Pass:
		w.emit(token.W("pass"))
	case *ast.Import:
		w.importStmt(s)
	case *ast.ImportFrom:
		w.importFrom(s)
	case *ast.FunctionDef:
		w.emit(token.W("def"))
		w.name(s.Name)
		w.emit(token.P("("))
		w.params(s.Params)
		w.emit(token.P(")"))
		w.block(s.Body)
		return
	case *ast.ClassDef:
		w.emit(token.W("class"))
		w.name(s.Name)
		if len(s.Bases) > 0 {
			w.emit(token.P("("))
			w.args(s.Bases)
			w.emit(token.P(")"))
		}
		w.block(s.Body)
		return
	case *ast.If:
		w.ifStmt(s, "if")
		return
	case *ast.Delete:
		if len(s.Targets) == 0 {
			w.fail(errors.New("del without a target"))
			return
		}
		w.emit(token.W("del"))
		w.items(s.Targets)
	case *ast.Comment:
		w.comment(s.Text)
		return
	case nil:
		w.fail(errors.New("missing statement"))
		return
	default:
		w.fail(fmt.Errorf("unsupported statement %T", s))
		return
	}
	w.emit(token.NL)
}

// comment prints one # line per line of text.
func (w *walker) comment(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, line := range strings.Split(text, "\n") {
		w.emit(token.C(line), token.NL)
	}
}

// condition prints the test of an if or elif. A bare tuple or yield
// there is a syntax error.
func (w *walker) condition(e ast.Expr) {
	w.wrapUnless(ops.CanNest(ops.PrecedenceOf(ops.Yield), ops.PrecedenceOf(ast.Slot(e)), 1), e)
}

func (w *walker) ifStmt(s *ast.If, keyword string) {
	w.emit(token.W(keyword))
	w.condition(s.Test)
	w.block(s.Body)

	switch {
	case len(s.OrElse) == 0:
	case len(s.OrElse) == 1:
		if elif, ok := s.OrElse[0].(*ast.If); ok {
			w.ifStmt(elif, "elif")
			return
		}
		fallthrough
	default:
		w.emit(token.W("else"))
		w.block(s.OrElse)
	}
}

func (w *walker) importStmt(s *ast.Import) {
	if len(s.Names) == 0 {
		w.fail(errors.New("import without a module"))
		return
	}
	w.emit(token.W("import"))
	for i, a := range s.Names {
		if i > 0 {
			w.emit(token.P(","))
		}
		if a.Module.IsEmpty() || a.Module.IsRelative() {
			w.fail(fmt.Errorf("import %q: module must be absolute", a.Module.String()))
			return
		}
		w.moduleName(a.Module)
		if a.AsName != "" {
			w.emit(token.W("as"))
			w.name(a.AsName)
		}
	}
}

func (w *walker) importFrom(s *ast.ImportFrom) {
	switch {
	case s.Level < 0:
		w.fail(fmt.Errorf("from-import level %d is negative", s.Level))
		return
	case s.Level == 0 && s.Module.IsEmpty():
		w.fail(errors.New("from-import without a module"))
		return
	case s.Level > 0 && s.Module.IsRelative():
		w.fail(fmt.Errorf("from-import of %s: module carries parent steps and a level", s.Module))
		return
	}
	if len(s.Names) == 0 {
		w.fail(fmt.Errorf("from %s import: no names", strings.Repeat(".", s.Level)+s.Module.String()))
		return
	}
	w.emit(token.W("from"))
	if s.Level == 0 {
		w.moduleName(s.Module)
	} else {
		for range s.Level {
			w.emit(token.P("."))
		}
		for i, name := range s.Module.Names() {
			if i > 0 {
				w.emit(token.P("."))
			}
			w.emit(token.W(name))
		}
	}
	w.emit(token.W("import"))
	for i, a := range s.Names {
		if i > 0 {
			w.emit(token.P(","))
		}
		if a.Name == "*" {
			w.emit(token.P("*"))
			continue
		}
		w.name(a.Name)
		if a.AsName != "" {
			w.emit(token.W("as"))
			w.name(a.AsName)
		}
	}
}

// moduleImports collects the modules bound by unaliased import statements
// at module scope. Refs are spelled relative to these.
func moduleImports(body []ast.Stmt) []dotted.Identifier {
	var out []dotted.Identifier
	for _, s := range body {
		switch s := s.(type) {
		case *ast.Import:
			for _, a := range s.Names {
				if a.AsName == "" && !a.Module.IsRelative() {
					out = append(out, a.Module)
				}
			}
		case *ast.If:
			out = append(out, moduleImports(s.Body)...)
			out = append(out, moduleImports(s.OrElse)...)
		}
	}
	return out
}
