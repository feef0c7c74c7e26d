package modtree

import (
	"path"

	"github.com/leapstack-labs/pyemit/pkg/dotted"
)

// Layout is where a node is written.
type Layout struct {
	// Package is true when the node becomes a directory with an init file.
	Package bool
	// Path is the slash-separated file path relative to the output root.
	Path string
}

// IsPackage reports whether the node is laid out as a package: it has
// children, or it is a top-level name. The root always is.
func (n *Node) IsPackage() bool {
	return n.IsRoot() || len(n.children) > 0 || n.depth == 1
}

// Layout decides the node's file location.
func (n *Node) Layout() Layout {
	opts := n.tree.opts
	segs := n.id.Names()
	if n.IsPackage() {
		return Layout{Package: true, Path: path.Join(append(segs, opts.InitFile())...)}
	}
	segs[len(segs)-1] += opts.Extension
	return Layout{Path: path.Join(segs...)}
}

// Package returns the absolute path of the package that contains the
// node's code: the node itself for packages, its parent otherwise. Relative
// imports in the node's program are resolved against it.
func (n *Node) Package() dotted.Identifier {
	if n.IsPackage() || n.parent == nil {
		return n.id
	}
	return n.parent.id
}

// Entry is one node ready to be written.
type Entry struct {
	Program Program // nil for packages without content
	Name    dotted.Identifier
	HasName bool // false only for the root
	Path    string
}

// Entries lists every node in breadth-first order with its final path.
// The root is included only when a program is attached to it; every other
// node is listed even without a program, since a package directory still
// needs its init file.
func (t *Tree) Entries() []Entry {
	var out []Entry
	for n := range t.All() {
		if n.IsRoot() && n.program == nil {
			continue
		}
		out = append(out, Entry{
			Program: n.program,
			Name:    n.id,
			HasName: !n.IsRoot(),
			Path:    n.Layout().Path,
		})
	}
	return out
}
