package ast

import (
	"github.com/leapstack-labs/pyemit/pkg/dotted"
	"github.com/leapstack-labs/pyemit/pkg/ops"
)

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// ---------- Statement Types ----------

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	Value Expr
}

// Assign is t1 = t2 = value.
type Assign struct {
	Targets []Expr
	Value   Expr
}

// AugAssign is target op= value; Op is one of the ops.Aug* identifiers.
type AugAssign struct {
	Target Expr
	Op     ops.ID
	Value  Expr
}

// Return returns Value, which may be nil.
type Return struct {
	Value Expr
}

// Pass is the pass statement.
type Pass struct{}

// Alias is one imported name with an optional local alias.
type Alias struct {
	Name   string
	AsName string
}

// Bound returns the name the alias binds locally.
func (a Alias) Bound() string {
	if a.AsName != "" {
		return a.AsName
	}
	return a.Name
}

// ModuleAlias is one module in an import statement.
type ModuleAlias struct {
	Module dotted.Identifier
	AsName string
}

// Import is import a.b [as c], ...
type Import struct {
	Names []ModuleAlias
}

// ImportFrom is from module import name [as alias], ...
// Level is the number of leading dots written before Module, so
// "from . import x" has Level 1 and an empty Module. With Level 0 a
// relative Module prints in its own parent-step form.
type ImportFrom struct {
	Level  int
	Module dotted.Identifier
	Names  []Alias
}

// FunctionDef is a def statement.
type FunctionDef struct {
	Name   string
	Params []Param
	Body   []Stmt
}

// ClassDef is a class statement.
type ClassDef struct {
	Name  string
	Bases []Arg
	Body  []Stmt
}

// If is an if statement. An OrElse holding a single If renders as elif.
type If struct {
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

// Delete is del t1, t2.
type Delete struct {
	Targets []Expr
}

// Comment is a standalone # comment line.
type Comment struct {
	Text string
}

func (*ExprStmt) node() {}
func (*Assign) node() {}
func (*AugAssign) node() {}
func (*Return) node() {}
func (*Pass) node() {}
func (*Import) node() {}
func (*ImportFrom) node() {}
func (*FunctionDef) node() {}
func (*ClassDef) node() {}
func (*If) node() {}
func (*Delete) node() {}
func (*Comment) node() {}

func (*ExprStmt) stmtNode() {}
func (*Assign) stmtNode() {}
func (*AugAssign) stmtNode() {}
func (*Return) stmtNode() {}
func (*Pass) stmtNode() {}
func (*Import) stmtNode() {}
func (*ImportFrom) stmtNode() {}
func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode() {}
func (*If) stmtNode() {}
func (*Delete) stmtNode() {}
func (*Comment) stmtNode() {}
