// Package ops defines the Python operator catalog and the precedence table
// used to decide when a nested expression needs parentheses.
//
// Operators and the non-operator syntactic slots (tuple displays, lambdas,
// calls, atoms and so on) share one identifier space so that any two tree
// positions can be compared. The catalog maps identifiers to rendering data;
// precedence lives in a separate table keyed by the same identifiers.
package ops

import "fmt"

// ID identifies an operator or a syntactic slot.
type ID int

//nolint:revive // names mirror Python's ast module
const (
	Invalid ID = iota

	// Binary operators
	Add
	Sub
	Mult
	MatMult
	Div
	FloorDiv
	Mod
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
	And
	Or
	Eq
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn

	// Unary operators
	UAdd
	USub
	Invert
	Not

	// Augmented assignment
	AugAdd
	AugSub
	AugMult
	AugMatMult
	AugDiv
	AugFloorDiv
	AugMod
	AugPow
	AugLShift
	AugRShift
	AugBitOr
	AugBitXor
	AugBitAnd

	// Syntactic slots
	Tuple
	Yield
	Lambda
	IfExp
	Starred
	Await
	Attribute
	Call
	Subscript
	Grouping
	Atom

	numIDs
)

// Kind classifies catalog operators.
type Kind int

const (
	// Slot is a syntactic position that is not an operator.
	Slot Kind = iota
	// Binary is an infix operator.
	Binary
	// Unary is a prefix operator.
	Unary
	// AugAssign is an augmented assignment such as +=.
	AugAssign
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Slot:
		return "slot"
	case Binary:
		return "binary"
	case Unary:
		return "unary"
	case AugAssign:
		return "augassign"
	default:
		return "unknown"
	}
}

// Operator is a catalog entry.
type Operator struct {
	ID    ID
	Kind  Kind
	Name  string // stable lookup name, e.g. "Add"
	Token string // rendered token, e.g. "+"
}

// Words reports whether the rendered token is a keyword sequence
// (and, not in, is not, ...) rather than punctuation.
func (o Operator) Words() bool {
	return len(o.Token) > 0 && o.Token[0] >= 'a' && o.Token[0] <= 'z'
}

var catalog = [numIDs]Operator{
	Add:      {Add, Binary, "Add", "+"},
	Sub:      {Sub, Binary, "Sub", "-"},
	Mult:     {Mult, Binary, "Mult", "*"},
	MatMult:  {MatMult, Binary, "MatMult", "@"},
	Div:      {Div, Binary, "Div", "/"},
	FloorDiv: {FloorDiv, Binary, "FloorDiv", "//"},
	Mod:      {Mod, Binary, "Mod", "%"},
	Pow:      {Pow, Binary, "Pow", "**"},
	LShift:   {LShift, Binary, "LShift", "<<"},
	RShift:   {RShift, Binary, "RShift", ">>"},
	BitOr:    {BitOr, Binary, "BitOr", "|"},
	BitXor:   {BitXor, Binary, "BitXor", "^"},
	BitAnd:   {BitAnd, Binary, "BitAnd", "&"},
	And:      {And, Binary, "And", "and"},
	Or:       {Or, Binary, "Or", "or"},
	Eq:       {Eq, Binary, "Eq", "=="},
	NotEq:    {NotEq, Binary, "NotEq", "!="},
	Lt:       {Lt, Binary, "Lt", "<"},
	LtE:      {LtE, Binary, "LtE", "<="},
	Gt:       {Gt, Binary, "Gt", ">"},
	GtE:      {GtE, Binary, "GtE", ">="},
	Is:       {Is, Binary, "Is", "is"},
	IsNot:    {IsNot, Binary, "IsNot", "is not"},
	In:       {In, Binary, "In", "in"},
	NotIn:    {NotIn, Binary, "NotIn", "not in"},

	UAdd:   {UAdd, Unary, "UAdd", "+"},
	USub:   {USub, Unary, "USub", "-"},
	Invert: {Invert, Unary, "Invert", "~"},
	Not:    {Not, Unary, "Not", "not"},

	AugAdd:      {AugAdd, AugAssign, "AugAdd", "+="},
	AugSub:      {AugSub, AugAssign, "AugSub", "-="},
	AugMult:     {AugMult, AugAssign, "AugMult", "*="},
	AugMatMult:  {AugMatMult, AugAssign, "AugMatMult", "@="},
	AugDiv:      {AugDiv, AugAssign, "AugDiv", "/="},
	AugFloorDiv: {AugFloorDiv, AugAssign, "AugFloorDiv", "//="},
	AugMod:      {AugMod, AugAssign, "AugMod", "%="},
	AugPow:      {AugPow, AugAssign, "AugPow", "**="},
	AugLShift:   {AugLShift, AugAssign, "AugLShift", "<<="},
	AugRShift:   {AugRShift, AugAssign, "AugRShift", ">>="},
	AugBitOr:    {AugBitOr, AugAssign, "AugBitOr", "|="},
	AugBitXor:   {AugBitXor, AugAssign, "AugBitXor", "^="},
	AugBitAnd:   {AugBitAnd, AugAssign, "AugBitAnd", "&="},

	Tuple:     {Tuple, Slot, "Tuple", ","},
	Yield:     {Yield, Slot, "Yield", "yield"},
	Lambda:    {Lambda, Slot, "Lambda", "lambda"},
	IfExp:     {IfExp, Slot, "IfExp", "if"},
	Starred:   {Starred, Slot, "Starred", "*"},
	Await:     {Await, Slot, "Await", "await"},
	Attribute: {Attribute, Slot, "Attribute", "."},
	Call:      {Call, Slot, "Call", "("},
	Subscript: {Subscript, Slot, "Subscript", "["},
	Grouping:  {Grouping, Slot, "Grouping", "("},
	Atom:      {Atom, Slot, "Atom", ""},
}

// byName is built once at init and read-only afterwards.
var byName = func() map[string]ID {
	m := make(map[string]ID, numIDs)
	for i := Invalid + 1; i < numIDs; i++ {
		m[catalog[i].Name] = i
	}
	return m
}()

// augBase maps augmented assignments to the binary operator they apply.
var augBase = map[ID]ID{
	AugAdd:      Add,
	AugSub:      Sub,
	AugMult:     Mult,
	AugMatMult:  MatMult,
	AugDiv:      Div,
	AugFloorDiv: FloorDiv,
	AugMod:      Mod,
	AugPow:      Pow,
	AugLShift:   LShift,
	AugRShift:   RShift,
	AugBitOr:    BitOr,
	AugBitXor:   BitXor,
	AugBitAnd:   BitAnd,
}

// Get returns the catalog entry for id. It panics on an identifier outside
// the catalog, which can only come from a corrupted tree.
func Get(id ID) Operator {
	if id <= Invalid || id >= numIDs {
		panic(fmt.Sprintf("ops: unknown operator id %d", int(id)))
	}
	return catalog[id]
}

// String returns the operator's lookup name.
func (id ID) String() string {
	if id <= Invalid || id >= numIDs {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return catalog[id].Name
}

// Token returns the rendered token for id.
func (id ID) Token() string { return Get(id).Token }

// Lookup finds an operator by its stable name.
func Lookup(name string) (Operator, bool) {
	id, ok := byName[name]
	if !ok {
		return Operator{}, false
	}
	return catalog[id], true
}

// MustLookup is like Lookup but panics when name is not in the catalog.
// A miss means the caller's operator table is out of sync with this one.
func MustLookup(name string) Operator {
	op, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("ops: no operator named %q", name))
	}
	return op
}

// BaseOf returns the binary operator an augmented assignment applies.
func BaseOf(id ID) (ID, bool) {
	b, ok := augBase[id]
	return b, ok
}

// IsComparison reports whether id is a comparison operator. Python chains
// comparisons, so they never nest inside one another without parentheses.
func IsComparison(id ID) bool {
	switch id {
	case Eq, NotEq, Lt, LtE, Gt, GtE, Is, IsNot, In, NotIn:
		return true
	}
	return false
}

// All returns every catalog entry of the given kind, in identifier order.
func All(kind Kind) []Operator {
	var out []Operator
	for i := Invalid + 1; i < numIDs; i++ {
		if catalog[i].Kind == kind {
			out = append(out, catalog[i])
		}
	}
	return out
}
