// Package dotted implements dotted module identifiers such as pkg.sub.mod
// and relative forms such as ..pkg.mod.
//
// An Identifier is an immutable sequence of parts. Relative markers form a
// single leading run and each one climbs a single package from the
// containing package. A marker renders as a literal "." and every name part
// after the first token gets a "." in front, so [Up, a] is "..a". Equality
// and ordering use the rendered text.
package dotted

import (
	"path"
	"strconv"
	"strings"

	"github.com/leapstack-labs/pyemit/pkg/ident"
)

// Part is one step of an Identifier: either a relative marker or a name.
type Part struct {
	Parent bool
	Name   string
}

// Up returns a relative marker part.
func Up() Part { return Part{Parent: true} }

// Name returns a name part.
func Name(name string) Part { return Part{Name: name} }

// Identifier is a dotted module path. The zero value is the empty identifier.
type Identifier struct {
	parts []Part
	text  string
}

// Error reports a malformed identifier.
type Error struct {
	Input  string
	Reason string
}

func (e *Error) Error() string {
	return "malformed dotted identifier \"" + e.Input + "\": " + e.Reason
}

// New builds an Identifier from parts, validating every name and the
// position of relative markers.
func New(parts ...Part) (Identifier, error) {
	seenName := false
	for i, p := range parts {
		if p.Parent {
			if seenName {
				return Identifier{}, &Error{Input: render(parts), Reason: "relative marker after a name"}
			}
			continue
		}
		if err := ident.Validate(p.Name); err != nil {
			return Identifier{}, &Error{Input: render(parts), Reason: "part " + strconv.Itoa(i) + ": " + err.Error()}
		}
		seenName = true
	}
	cp := make([]Part, len(parts))
	copy(cp, parts)
	return Identifier{parts: cp, text: render(cp)}, nil
}

// MustNew is like New but panics on error.
func MustNew(parts ...Part) Identifier {
	id, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return id
}

// Of builds an absolute identifier from names.
func Of(names ...string) (Identifier, error) {
	parts := make([]Part, len(names))
	for i, n := range names {
		parts[i] = Name(n)
	}
	return New(parts...)
}

// Parse parses text such as "a.b", "..a" or "..". A run of dots alone is
// one marker per dot. Before a name, the dot that joins the name is not a
// marker, so "...a" climbs two packages and ".a" has no parts form.
func Parse(text string) (Identifier, error) {
	rest := strings.TrimLeft(text, ".")
	dots := len(text) - len(rest)
	if rest != "" && dots > 0 {
		if dots == 1 {
			return Identifier{}, &Error{Input: text, Reason: "single leading dot before a name"}
		}
		dots--
	}
	var parts []Part
	for range dots {
		parts = append(parts, Up())
	}
	if rest != "" {
		for _, seg := range strings.Split(rest, ".") {
			if seg == "" {
				return Identifier{}, &Error{Input: text, Reason: "empty name part"}
			}
			parts = append(parts, Name(seg))
		}
	}
	id, err := New(parts...)
	if err != nil {
		return Identifier{}, &Error{Input: text, Reason: err.(*Error).Reason}
	}
	return id, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Identifier {
	id, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// FromFilePath converts a slash-separated source path to an identifier.
// The extension ext is stripped from the last segment and a trailing
// package-init segment named initName is dropped, so "a/b/__init__.py"
// and "a/b.py" both name a.b. Each leading ".." segment becomes a relative
// marker and "." segments are ignored.
func FromFilePath(p, ext, initName string) (Identifier, error) {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	var parts []Part
	leading := true
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		if i == len(segs)-1 {
			seg = strings.TrimSuffix(seg, ext)
		}
		switch {
		case seg == "." || seg == "":
			continue
		case seg == "..":
			if !leading {
				return Identifier{}, &Error{Input: p, Reason: "parent segment after a name"}
			}
			parts = append(parts, Up())
			continue
		case seg == initName:
			continue
		}
		leading = false
		parts = append(parts, Name(seg))
	}
	id, err := New(parts...)
	if err != nil {
		return Identifier{}, &Error{Input: p, Reason: err.(*Error).Reason}
	}
	return id, nil
}

func render(parts []Part) string {
	var b strings.Builder
	for i, p := range parts {
		if p.Parent {
			b.WriteByte('.')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p.Name)
	}
	return b.String()
}

// String returns the canonical text.
func (id Identifier) String() string { return id.text }

// Parts returns a copy of the parts.
func (id Identifier) Parts() []Part {
	cp := make([]Part, len(id.parts))
	copy(cp, id.parts)
	return cp
}

// Len returns the number of parts.
func (id Identifier) Len() int { return len(id.parts) }

// IsEmpty reports whether the identifier has no parts.
func (id Identifier) IsEmpty() bool { return len(id.parts) == 0 }

// Level returns the number of leading relative markers.
func (id Identifier) Level() int {
	n := 0
	for n < len(id.parts) && id.parts[n].Parent {
		n++
	}
	return n
}

// IsRelative reports whether the identifier starts with a relative marker.
func (id Identifier) IsRelative() bool { return id.Level() > 0 }

// Names returns the name parts in order.
func (id Identifier) Names() []string {
	names := make([]string, 0, len(id.parts)-id.Level())
	for _, p := range id.parts[id.Level():] {
		names = append(names, p.Name)
	}
	return names
}

// Last returns the final name part, or "" if there is none.
func (id Identifier) Last() string {
	if len(id.parts) == 0 || id.parts[len(id.parts)-1].Parent {
		return ""
	}
	return id.parts[len(id.parts)-1].Name
}

// Dot returns a new identifier with name appended. It panics with an *Error
// if name is not a valid identifier.
func (id Identifier) Dot(name string) Identifier {
	parts := make([]Part, len(id.parts), len(id.parts)+1)
	copy(parts, id.parts)
	return MustNew(append(parts, Name(name))...)
}

// Parent returns the identifier without its last name part.
func (id Identifier) Parent() (Identifier, bool) {
	if id.Last() == "" {
		return Identifier{}, false
	}
	return MustNew(id.parts[:len(id.parts)-1]...), true
}

// SimpleName returns the single name of a one-part identifier.
func (id Identifier) SimpleName() (string, error) {
	if len(id.parts) != 1 || id.parts[0].Parent {
		return "", &Error{Input: id.text, Reason: "not a simple name"}
	}
	return id.parts[0].Name, nil
}

// Equal reports whether two identifiers have the same text.
func (id Identifier) Equal(other Identifier) bool { return id.text == other.text }

// Compare orders identifiers by their canonical text.
func Compare(a, b Identifier) int { return strings.Compare(a.text, b.text) }

// ModulePath converts the identifier to relative filesystem segments, one
// ".." per marker followed by the names.
func (id Identifier) ModulePath() []string {
	var segs []string
	for range id.Level() {
		segs = append(segs, "..")
	}
	return append(segs, id.Names()...)
}

// AbsoluteModulePath is ModulePath for absolute identifiers only.
func (id Identifier) AbsoluteModulePath() ([]string, error) {
	if id.IsRelative() {
		return nil, &Error{Input: id.text, Reason: "relative identifier has no absolute path"}
	}
	return id.Names(), nil
}

// Resolve interprets a relative identifier against pkg, the absolute
// package that contains the importing module. Each marker drops one name
// from pkg. Absolute identifiers are returned unchanged.
func (id Identifier) Resolve(pkg Identifier) (Identifier, error) {
	level := id.Level()
	if level == 0 {
		return id, nil
	}
	if pkg.IsRelative() {
		return Identifier{}, &Error{Input: pkg.text, Reason: "base package must be absolute"}
	}
	base := pkg.parts
	if level > len(base) {
		return Identifier{}, &Error{Input: id.text, Reason: "climbs above the top-level package"}
	}
	parts := append([]Part{}, base[:len(base)-level]...)
	parts = append(parts, id.parts[level:]...)
	return New(parts...)
}
