// Package modtree maps generated Python modules onto a package layout.
//
// Programs are attached to a tree keyed by their dotted module path. Each
// node then decides whether it is written as a package (directory plus
// package-init file) or as a plain module file, and records the names it
// exports, the names it imports from other nodes, and the support routines
// it needs.
//
// A Tree has no internal locking. Callers that attach programs from several
// goroutines must serialize every mutating call themselves, and the tree
// must not change shape while it is being iterated.
package modtree

import (
	"fmt"

	"github.com/leapstack-labs/pyemit/pkg/dotted"
)

// Export is a module-scope name reported by a Program.
type Export struct {
	Name string
	// Imported marks a name bound by an import statement rather than
	// defined locally.
	Imported bool
	// Drop marks a name explicitly removed from module scope (del x).
	Drop bool
}

// Import is a name a Program imports from another module.
type Import struct {
	// Level counts leading dots as written in "from ..x import y". Level 1
	// is the importing package itself. Module must be absolute when Level
	// is set; with Level 0 it may carry its own parent steps.
	Level  int
	Module dotted.Identifier
	Name   string
}

// Target resolves the imported module against pkg, the package of the
// importing node.
func (imp Import) Target(pkg dotted.Identifier) (dotted.Identifier, error) {
	if imp.Level == 0 {
		return imp.Module.Resolve(pkg)
	}
	if imp.Level < 0 {
		return dotted.Identifier{}, fmt.Errorf("import level %d is negative", imp.Level)
	}
	if imp.Module.IsRelative() {
		return dotted.Identifier{}, fmt.Errorf("from-import of %s: module carries parent steps and a level", imp.Module)
	}
	steps := make([]dotted.Part, imp.Level-1)
	for i := range steps {
		steps[i] = dotted.Up()
	}
	base := pkg
	if len(steps) > 0 {
		up, err := dotted.New(steps...)
		if err != nil {
			return dotted.Identifier{}, err
		}
		if base, err = up.Resolve(pkg); err != nil {
			return dotted.Identifier{}, err
		}
	}
	return dotted.New(append(base.Parts(), imp.Module.Parts()...)...)
}

// Program is the part of a generated module the tree needs to see.
type Program interface {
	// Exports lists module-scope names, including drop markers.
	Exports() []Export
	// Imports lists from-imported names.
	Imports() []Import
	// OutputPath is the declared slash-separated output location,
	// e.g. "pkg/sub/mod.py" or "pkg/__init__.py".
	OutputPath() string
}

// Options controls file naming.
type Options struct {
	// Extension is appended to simple module names, including the dot.
	Extension string
	// InitName is the package-init file name without extension.
	InitName string
}

// DefaultOptions returns Python's conventional naming.
func DefaultOptions() Options {
	return Options{Extension: ".py", InitName: "__init__"}
}

// InitFile returns the package-init file name.
func (o Options) InitFile() string { return o.InitName + o.Extension }

// Support records a runtime helper routine a node needs.
type Support struct {
	ID     string // support-code identifier
	Name   string // name the routine is emitted under
	Shared bool   // shared between nodes rather than private to one
}
