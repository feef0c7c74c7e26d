package ops

// Assoc is the associativity used to break precedence ties.
type Assoc int

const (
	// Left associativity: a - b - c groups as (a - b) - c.
	Left Assoc = iota
	// Right associativity: a ** b ** c groups as a ** (b ** c).
	Right
)

// Precedence is a rank and associativity. Higher ranks bind tighter.
type Precedence struct {
	Rank  int
	Assoc Assoc
}

// Python ranks, lowest to highest.
// See https://docs.python.org/3/reference/expressions.html#operator-precedence.
const (
	RankAssign = iota + 1
	RankTuple
	RankYield
	RankLambda
	RankIfExp
	RankOr
	RankAnd
	RankNot
	RankCompare
	RankBitOr
	RankBitXor
	RankBitAnd
	RankShift
	RankArith
	RankTerm
	RankUnary
	RankPow
	RankAwait
	RankPostfix
	RankAtom
)

var precedence = [numIDs]Precedence{
	AugAdd:      {RankAssign, Right},
	AugSub:      {RankAssign, Right},
	AugMult:     {RankAssign, Right},
	AugMatMult:  {RankAssign, Right},
	AugDiv:      {RankAssign, Right},
	AugFloorDiv: {RankAssign, Right},
	AugMod:      {RankAssign, Right},
	AugPow:      {RankAssign, Right},
	AugLShift:   {RankAssign, Right},
	AugRShift:   {RankAssign, Right},
	AugBitOr:    {RankAssign, Right},
	AugBitXor:   {RankAssign, Right},
	AugBitAnd:   {RankAssign, Right},

	Tuple:  {RankTuple, Left},
	Yield:  {RankYield, Left},
	Lambda: {RankLambda, Left},
	IfExp:  {RankIfExp, Right},

	Or:  {RankOr, Left},
	And: {RankAnd, Left},
	Not: {RankNot, Left},

	Eq:    {RankCompare, Left},
	NotEq: {RankCompare, Left},
	Lt:    {RankCompare, Left},
	LtE:   {RankCompare, Left},
	Gt:    {RankCompare, Left},
	GtE:   {RankCompare, Left},
	Is:    {RankCompare, Left},
	IsNot: {RankCompare, Left},
	In:    {RankCompare, Left},
	NotIn: {RankCompare, Left},

	// *x takes a bitwise-or expression as its operand
	Starred: {RankBitOr, Left},
	BitOr:   {RankBitOr, Left},
	BitXor:  {RankBitXor, Left},
	BitAnd:  {RankBitAnd, Left},
	LShift:  {RankShift, Left},
	RShift:  {RankShift, Left},

	Add: {RankArith, Left},
	Sub: {RankArith, Left},

	Mult:     {RankTerm, Left},
	MatMult:  {RankTerm, Left},
	Div:      {RankTerm, Left},
	FloorDiv: {RankTerm, Left},
	Mod:      {RankTerm, Left},

	UAdd:   {RankUnary, Left},
	USub:   {RankUnary, Left},
	Invert: {RankUnary, Left},

	Pow:   {RankPow, Right},
	Await: {RankAwait, Left},

	Attribute: {RankPostfix, Left},
	Call:      {RankPostfix, Left},
	Subscript: {RankPostfix, Left},

	Grouping: {RankAtom, Left},
	Atom:     {RankAtom, Left},
}

// PrecedenceOf returns the precedence entry for id.
func PrecedenceOf(id ID) Precedence {
	Get(id) // panics on unknown ids
	return precedence[id]
}

// Lowest is below every entry in the table. Children rendered in a context
// that is already delimited (brackets, statement position) use it as their
// outer precedence so they never get parenthesized.
var Lowest = Precedence{Rank: 0, Assoc: Left}

// CanNest reports whether inner may appear at slot childIndex of outer
// without parentheses.
func CanNest(outer, inner Precedence, childIndex int) bool {
	switch {
	case outer.Rank < inner.Rank:
		return true
	case outer.Rank > inner.Rank:
		return false
	case outer.Assoc == Left:
		return childIndex == 0
	default:
		return childIndex != 0
	}
}

// CanNestID is CanNest over catalog identifiers.
func CanNestID(outer, inner ID, childIndex int) bool {
	return CanNest(PrecedenceOf(outer), PrecedenceOf(inner), childIndex)
}
