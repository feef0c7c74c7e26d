package format

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pyemit/pkg/argcheck"
	"github.com/leapstack-labs/pyemit/pkg/ast"
	"github.com/leapstack-labs/pyemit/pkg/dotted"
	"github.com/leapstack-labs/pyemit/pkg/ops"
	"github.com/leapstack-labs/pyemit/pkg/pystr"
	"github.com/leapstack-labs/pyemit/pkg/token"
)

// walker flattens the tree into tokens. The first error stops emission.
type walker struct {
	toks     []token.Token
	err      error
	imported []dotted.Identifier // plain "import a.b" modules, for Ref
}

func (w *walker) emit(toks ...token.Token) {
	w.toks = append(w.toks, toks...)
}

func (w *walker) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// needsParens decides whether child must be wrapped at slot index of parent.
func needsParens(parent ops.ID, child ast.Expr, index int) bool {
	inner := ast.Slot(child)
	if ops.IsComparison(parent) && ops.IsComparison(inner) {
		// a < b < c is a chain, not (a < b) < c
		return true
	}
	return !ops.CanNestID(parent, inner, index)
}

func (w *walker) child(parent ops.ID, e ast.Expr, index int) {
	w.wrapUnless(!needsParens(parent, e, index), e)
}

// delimited prints e where the surrounding syntax already delimits it.
func (w *walker) delimited(e ast.Expr) {
	w.wrapUnless(ops.CanNest(ops.Lowest, ops.PrecedenceOf(ast.Slot(e)), 0), e)
}

func (w *walker) wrapUnless(bare bool, e ast.Expr) {
	if bare {
		w.expr(e)
		return
	}
	w.emit(token.P("("))
	w.expr(e)
	w.emit(token.P(")"))
}

// item prints one element of a comma-separated list, where a bare tuple
// would be misread. A yield there always needs its own parentheses.
func (w *walker) item(e ast.Expr) {
	if _, ok := e.(*ast.Yield); ok {
		w.wrapUnless(false, e)
		return
	}
	w.child(ops.Tuple, e, 1)
}

func (w *walker) items(es []ast.Expr) {
	for i, e := range es {
		if i > 0 {
			w.emit(token.P(","))
		}
		w.item(e)
	}
}

func (w *walker) opToken(id ops.ID) {
	op := ops.Get(id)
	if op.Words() {
		for _, word := range strings.Fields(op.Token) {
			w.emit(token.W(word))
		}
		return
	}
	w.emit(token.P(op.Token))
}

func (w *walker) moduleName(id dotted.Identifier) {
	for i, part := range id.Parts() {
		switch {
		case part.Parent:
			w.emit(token.P("."))
		case i > 0:
			w.emit(token.P("."), token.W(part.Name))
		default:
			w.emit(token.W(part.Name))
		}
	}
}

func (w *walker) expr(e ast.Expr) {
	if w.err != nil {
		return
	}

	switch e := e.(type) {
	case *ast.Name:
		w.name(e.ID)
	case *ast.Constant:
		w.constant(e)
	case *ast.Ref:
		w.ref(e)
	case *ast.BinOp:
		w.child(e.Op, e.Left, 0)
		w.opToken(e.Op)
		w.child(e.Op, e.Right, 1)
	case *ast.UnaryOp:
		w.unary(e)
	case *ast.Compare:
		w.compare(e)
	case *ast.Call:
		w.call(e)
	case *ast.Attribute:
		if c, ok := e.Value.(*ast.Constant); ok && c.Kind == ast.ConstInt {
			// 1.real would lex as a float
			w.wrapUnless(false, c)
		} else {
			w.child(ops.Attribute, e.Value, 0)
		}
		w.emit(token.P("."))
		w.name(e.Attr)
	case *ast.Subscript:
		w.child(ops.Subscript, e.Value, 0)
		w.emit(token.P("["))
		w.delimited(e.Index)
		w.emit(token.P("]"))
	case *ast.Lambda:
		w.lambda(e)
	case *ast.Tuple:
		w.tuple(e)
	case *ast.List:
		w.emit(token.P("["))
		w.items(e.Elts)
		w.emit(token.P("]"))
	case *ast.Yield:
		w.emit(token.W("yield"))
		if e.Value != nil {
			// yield yield a does not parse
			w.child(ops.Yield, e.Value, 1)
		}
	case *ast.IfExp:
		w.child(ops.IfExp, e.Body, 0)
		w.emit(token.W("if"))
		// the test cannot itself be an unparenthesized conditional
		w.child(ops.IfExp, e.Test, 0)
		w.emit(token.W("else"))
		w.child(ops.IfExp, e.OrElse, 2)
	case *ast.Starred:
		w.emit(token.PrefixOp("*"))
		w.child(ops.Starred, e.Value, 0)
	case nil:
		w.fail(fmt.Errorf("missing expression"))
	default:
		w.fail(fmt.Errorf("unsupported expression %T", e))
	}
}

func (w *walker) constant(c *ast.Constant) {
	switch c.Kind {
	case ast.ConstNone:
		w.emit(token.W("None"))
	case ast.ConstBool:
		if c.Value == "True" || c.Value == "true" {
			w.emit(token.W("True"))
		} else {
			w.emit(token.W("False"))
		}
	case ast.ConstStr:
		lit, err := pystr.Quote(c.Value)
		if err != nil {
			w.fail(err)
			return
		}
		w.emit(token.S(lit))
	case ast.ConstEllipsis:
		w.emit(token.W("..."))
	default:
		w.emit(token.W(c.Value))
	}
}

func (w *walker) unary(e *ast.UnaryOp) {
	op := ops.Get(e.Op)
	if op.Kind != ops.Unary {
		w.fail(fmt.Errorf("%s is not a unary operator", op.Name))
		return
	}
	if op.Words() {
		w.emit(token.W(op.Token))
	} else {
		w.emit(token.PrefixOp(op.Token))
	}
	w.child(e.Op, e.Operand, 0)
}

func (w *walker) compare(e *ast.Compare) {
	if len(e.Ops) == 0 || len(e.Ops) != len(e.Comparators) {
		w.fail(fmt.Errorf("comparison has %d operators and %d operands", len(e.Ops), len(e.Comparators)))
		return
	}
	w.child(e.Ops[0], e.Left, 0)
	for i, op := range e.Ops {
		w.opToken(op)
		w.child(op, e.Comparators[i], 1)
	}
}

func (w *walker) ref(e *ast.Ref) {
	base, steps, ok := dotted.Nearest(w.imported, e.Module)
	if !ok {
		w.fail(fmt.Errorf("reference to %s.%s: module %s is not imported", e.Module, e.Name, e.Module))
		return
	}
	w.moduleName(base)
	for _, step := range steps {
		w.emit(token.P("."), token.W(step))
	}
	w.emit(token.P("."), token.W(e.Name))
}

func (w *walker) args(args []ast.Arg) {
	if err := argcheck.CheckCall(args); err != nil {
		w.fail(err)
		return
	}
	for i, a := range args {
		if i > 0 {
			w.emit(token.P(","))
		}
		switch {
		case a.Kind == ast.ArgStar:
			w.emit(token.PrefixOp("*"))
			w.child(ops.Starred, a.Value, 0)
		case a.Kind == ast.ArgDoubleStar:
			w.emit(token.PrefixOp("**"))
			w.item(a.Value)
		case a.IsKeyword():
			w.name(a.Keyword)
			w.emit(token.TightP("="))
			w.item(a.Value)
		default:
			w.item(a.Value)
		}
	}
}

func (w *walker) call(e *ast.Call) {
	w.child(ops.Call, e.Func, 0)
	w.emit(token.P("("))
	w.args(e.Args)
	w.emit(token.P(")"))
}

func (w *walker) params(params []ast.Param) {
	if err := argcheck.CheckParams(params); err != nil {
		w.fail(err)
		return
	}
	for i, p := range params {
		if i > 0 {
			w.emit(token.P(","))
		}
		switch p.Kind {
		case ast.ArgStar:
			w.emit(token.PrefixOp("*"))
			if p.Name != "" {
				w.name(p.Name)
			}
		case ast.ArgDoubleStar:
			w.emit(token.PrefixOp("**"))
			w.name(p.Name)
		default:
			w.name(p.Name)
			if p.Default != nil {
				w.emit(token.TightP("="))
				w.item(p.Default)
			}
		}
	}
}

func (w *walker) lambda(e *ast.Lambda) {
	w.emit(token.W("lambda"))
	w.params(e.Params)
	w.emit(token.P(":"))
	w.child(ops.Lambda, e.Body, 0)
}

func (w *walker) tuple(e *ast.Tuple) {
	switch len(e.Elts) {
	case 0:
		w.emit(token.P("("), token.P(")"))
	case 1:
		w.item(e.Elts[0])
		w.emit(token.P(","))
	default:
		w.items(e.Elts)
	}
}
