package modtree

import (
	"fmt"
	"iter"
	"path"
	"sort"
	"strings"

	"github.com/leapstack-labs/pyemit/pkg/dotted"
	"github.com/leapstack-labs/pyemit/pkg/ident"
)

// Node is one position in the module namespace.
type Node struct {
	name     string
	id       dotted.Identifier
	depth    int
	parent   *Node
	tree     *Tree
	program  Program
	children map[string]*Node

	exports map[string]struct{}
	imports []ImportRef
	support []Support
}

// ImportRef is an analyzed import that resolved to another node's export.
type ImportRef struct {
	Module dotted.Identifier // absolute
	Name   string
}

// String renders the import as module.name.
func (r ImportRef) String() string {
	return r.Module.String() + "." + r.Name
}

// Tree owns the root node and every node below it.
type Tree struct {
	root *Node
	opts Options
	size int
}

// New creates an empty tree.
func New(opts Options) *Tree {
	t := &Tree{opts: opts, size: 1}
	t.root = &Node{tree: t, children: make(map[string]*Node)}
	return t
}

// Options returns the naming options.
func (t *Tree) Options() Options { return t.opts }

// Root returns the root node. The root has no name; top-level packages are
// its children.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return t.size }

// segments splits an output path into sanitized module names.
func (t *Tree) segments(p string) ([]string, error) {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	raw := strings.Split(p, "/")
	out := make([]string, 0, len(raw))
	for i, seg := range raw {
		if i == len(raw)-1 {
			seg = strings.TrimSuffix(seg, t.opts.Extension)
		}
		switch seg {
		case "", ".", t.opts.InitName:
			continue
		case "..":
			return nil, fmt.Errorf("output path %q escapes the output root", p)
		}
		out = append(out, ident.Sanitize(seg))
	}
	return out, nil
}

// SetProgram attaches p at the node named by its output path, creating
// missing nodes on the way. Attaching two programs to one node is an error.
func (t *Tree) SetProgram(p Program) (*Node, error) {
	segs, err := t.segments(p.OutputPath())
	if err != nil {
		return nil, err
	}
	n := t.root
	for _, seg := range segs {
		n = n.descend(seg)
	}
	if n.program != nil {
		return nil, fmt.Errorf("module %q already has a program (from %q)", n.displayName(), n.program.OutputPath())
	}
	n.program = p
	return n, nil
}

// Descend returns the node at the given path, creating missing nodes.
func (t *Tree) Descend(id dotted.Identifier) (*Node, error) {
	names, err := id.AbsoluteModulePath()
	if err != nil {
		return nil, err
	}
	n := t.root
	for _, name := range names {
		n = n.descend(name)
	}
	return n, nil
}

// Lookup finds the node at an absolute path without creating anything.
func (t *Tree) Lookup(id dotted.Identifier) (*Node, bool) {
	names, err := id.AbsoluteModulePath()
	if err != nil {
		return nil, false
	}
	n := t.root
	for _, name := range names {
		child, ok := n.children[name]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// All iterates nodes breadth-first, parents before children and siblings
// in name order. Children are read when their parent is dequeued.
func (t *Tree) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{t.root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			queue = append(queue, n.Children()...)
		}
	}
}

func (n *Node) descend(name string) *Node {
	if child, ok := n.children[name]; ok {
		return child
	}
	var id dotted.Identifier
	if n.parent == nil {
		id = dotted.MustNew(dotted.Name(name))
	} else {
		id = n.id.Dot(name)
	}
	child := &Node{
		name:     name,
		id:       id,
		depth:    n.depth + 1,
		parent:   n,
		tree:     n.tree,
		children: make(map[string]*Node),
	}
	n.children[name] = child
	n.tree.size++
	return child
}

// Name returns the node's last path segment; the root's name is empty.
func (n *Node) Name() string { return n.name }

// ID returns the node's absolute dotted path; the root's is empty.
func (n *Node) ID() dotted.Identifier { return n.id }

// IsRoot reports whether n is the tree root.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Depth is 0 for the root and 1 for top-level packages.
func (n *Node) Depth() int { return n.depth }

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Program returns the attached program, or nil.
func (n *Node) Program() Program { return n.program }

// Child returns the named child.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Children returns the children sorted by name.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (n *Node) displayName() string {
	if n.IsRoot() {
		return "<root>"
	}
	return n.id.String()
}
