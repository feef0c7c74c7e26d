// Package ast is the subset of the typed intermediate tree the Python
// printer understands. Node names follow Python's own ast module.
package ast

import (
	"github.com/leapstack-labs/pyemit/pkg/dotted"
	"github.com/leapstack-labs/pyemit/pkg/ops"
)

// Node is any tree node.
type Node interface {
	node()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// ---------- Expression Types ----------

// Name is a variable reference.
type Name struct {
	ID string
}

// ConstKind classifies constants.
type ConstKind int

// ConstKind values.
const (
	ConstNone ConstKind = iota
	ConstBool
	ConstInt
	ConstFloat
	ConstStr
	ConstEllipsis
)

// Constant is a literal. Value holds the source spelling for numbers,
// "True"/"False" for booleans and the raw (unescaped) text for strings.
type Constant struct {
	Kind  ConstKind
	Value string
}

// BinOp is a binary operation, including and/or.
type BinOp struct {
	Left  Expr
	Op    ops.ID
	Right Expr
}

// UnaryOp is a prefix operation.
type UnaryOp struct {
	Op      ops.ID
	Operand Expr
}

// Compare is a comparison chain: Left Ops[0] Comparators[0] Ops[1] ...
type Compare struct {
	Left        Expr
	Ops         []ops.ID
	Comparators []Expr
}

// ArgKind tags arguments and parameters.
type ArgKind int

// ArgKind values.
const (
	ArgPlain ArgKind = iota
	ArgStar
	ArgDoubleStar
)

// String returns the kind name.
func (k ArgKind) String() string {
	switch k {
	case ArgStar:
		return "star"
	case ArgDoubleStar:
		return "double-star"
	default:
		return "plain"
	}
}

// Arg is a call-site argument. A plain argument with a Keyword is a
// keyword argument; one without is positional.
type Arg struct {
	Kind    ArgKind
	Keyword string
	Value   Expr
}

// IsKeyword reports whether a is a keyword argument.
func (a Arg) IsKeyword() bool { return a.Kind == ArgPlain && a.Keyword != "" }

// Param is a function or lambda parameter. A Star parameter with an empty
// Name is the bare * keyword-only marker.
type Param struct {
	Kind    ArgKind
	Name    string
	Default Expr
}

// Call is a function call.
type Call struct {
	Func Expr
	Args []Arg
}

// Attribute is value.attr.
type Attribute struct {
	Value Expr
	Attr  string
}

// Subscript is value[index].
type Subscript struct {
	Value Expr
	Index Expr
}

// Lambda is an anonymous function.
type Lambda struct {
	Params []Param
	Body   Expr
}

// Tuple is a tuple display. Parens are added only where needed, and always
// for the empty tuple.
type Tuple struct {
	Elts []Expr
}

// List is a list display.
type List struct {
	Elts []Expr
}

// Yield is a yield expression; Value may be nil.
type Yield struct {
	Value Expr
}

// IfExp is body if test else orelse.
type IfExp struct {
	Test   Expr
	Body   Expr
	OrElse Expr
}

// Starred is *value inside a display or call.
type Starred struct {
	Value Expr
}

// Ref names a module-level symbol in another module. It is printed as an
// attribute chain from the nearest module the file imports, so no import
// statement is generated for it.
type Ref struct {
	Module dotted.Identifier
	Name   string
}

func (*Name) node() {}
func (*Ref) node() {}
func (*Constant) node() {}
func (*BinOp) node() {}
func (*UnaryOp) node() {}
func (*Compare) node() {}
func (*Call) node() {}
func (*Attribute) node() {}
func (*Subscript) node() {}
func (*Lambda) node() {}
func (*Tuple) node() {}
func (*List) node() {}
func (*Yield) node() {}
func (*IfExp) node() {}
func (*Starred) node() {}

func (*Name) exprNode() {}
func (*Ref) exprNode() {}
func (*Constant) exprNode() {}
func (*BinOp) exprNode() {}
func (*UnaryOp) exprNode() {}
func (*Compare) exprNode() {}
func (*Call) exprNode() {}
func (*Attribute) exprNode() {}
func (*Subscript) exprNode() {}
func (*Lambda) exprNode() {}
func (*Tuple) exprNode() {}
func (*List) exprNode() {}
func (*Yield) exprNode() {}
func (*IfExp) exprNode() {}
func (*Starred) exprNode() {}

// Slot returns the precedence identifier of an expression: its operator
// for operations, otherwise the syntactic slot it occupies.
func Slot(e Expr) ops.ID {
	switch e := e.(type) {
	case *BinOp:
		return e.Op
	case *UnaryOp:
		return e.Op
	case *Compare:
		if len(e.Ops) > 0 {
			return e.Ops[0]
		}
		return ops.Eq
	case *Constant:
		if (e.Kind == ConstInt || e.Kind == ConstFloat) && len(e.Value) > 0 && e.Value[0] == '-' {
			return ops.USub
		}
		return ops.Atom
	case *Ref:
		return ops.Attribute
	case *Call:
		return ops.Call
	case *Attribute:
		return ops.Attribute
	case *Subscript:
		return ops.Subscript
	case *Lambda:
		return ops.Lambda
	case *Tuple:
		if len(e.Elts) == 0 {
			return ops.Atom
		}
		return ops.Tuple
	case *Yield:
		return ops.Yield
	case *IfExp:
		return ops.IfExp
	case *Starred:
		return ops.Starred
	default:
		return ops.Atom
	}
}
