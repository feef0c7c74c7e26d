package dotted

// Relation is the outcome of Find.
type Relation int

const (
	// Unrelated means the base is not a prefix of the target.
	Unrelated Relation = iota
	// Identical means base and target are the same path.
	Identical
	// Descend means the target lies below the base; Result.Next is the
	// name part to step into.
	Descend
)

// String returns the relation name.
func (r Relation) String() string {
	switch r {
	case Identical:
		return "identical"
	case Descend:
		return "descend"
	default:
		return "unrelated"
	}
}

// Result is returned by Find.
type Result struct {
	Relation Relation
	Next     string
}

// Find compares id, expected to be a prefix of target, against target part
// by part. Shared positions must both be name parts with identical text.
func (id Identifier) Find(target Identifier) Result {
	if len(id.parts) > len(target.parts) {
		return Result{Relation: Unrelated}
	}
	for i, p := range id.parts {
		q := target.parts[i]
		if p.Parent || q.Parent || p.Name != q.Name {
			return Result{Relation: Unrelated}
		}
	}
	if len(id.parts) == len(target.parts) {
		return Result{Relation: Identical}
	}
	next := target.parts[len(id.parts)]
	if next.Parent {
		return Result{Relation: Unrelated}
	}
	return Result{Relation: Descend, Next: next.Name}
}

// Walk returns the name parts a consumer steps through to reach target from
// an already-imported base, or false if target is not below base.
func Walk(base, target Identifier) ([]string, bool) {
	var steps []string
	cur := base
	for {
		r := cur.Find(target)
		switch r.Relation {
		case Identical:
			return steps, true
		case Descend:
			steps = append(steps, r.Next)
			cur = cur.Dot(r.Next)
		default:
			return nil, false
		}
	}
}

// Nearest picks the imported identifier closest to target, the one needing
// the fewest steps, so a reference can be spelled as an attribute chain
// without a new import. Ties go to the earlier entry.
func Nearest(imported []Identifier, target Identifier) (Identifier, []string, bool) {
	var (
		best      Identifier
		bestSteps []string
		found     bool
	)
	for _, base := range imported {
		steps, ok := Walk(base, target)
		if !ok {
			continue
		}
		if !found || len(steps) < len(bestSteps) {
			best, bestSteps, found = base, steps, true
		}
	}
	return best, bestSteps, found
}
