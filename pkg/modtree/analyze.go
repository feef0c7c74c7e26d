package modtree

import (
	"fmt"
	"sort"
)

// computeExports collects a program's module-scope names. With
// excludeImports set, names bound only by imports are left out. Drop
// markers are subtracted after the walk.
func computeExports(p Program, excludeImports bool) map[string]struct{} {
	exports := make(map[string]struct{})
	drops := make(map[string]struct{})
	for _, e := range p.Exports() {
		switch {
		case e.Drop:
			drops[e.Name] = struct{}{}
		case e.Imported && excludeImports:
			// re-imported, not defined here
		default:
			exports[e.Name] = struct{}{}
		}
	}
	for name := range drops {
		delete(exports, name)
	}
	return exports
}

// AnalyzeImports recomputes export and import sets for every node,
// replacing earlier results. Exports are computed for the whole tree first
// so that imports can be matched against them; a from-import is recorded
// only when it names an export of another node in the tree.
func (t *Tree) AnalyzeImports(excludeImportsFromExports bool) error {
	for n := range t.All() {
		n.exports = nil
		n.imports = nil
		if n.program != nil {
			n.exports = computeExports(n.program, excludeImportsFromExports)
		}
	}
	for n := range t.All() {
		if n.program == nil {
			continue
		}
		if err := n.analyzeImports(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) analyzeImports() error {
	seen := make(map[string]struct{})
	for _, imp := range n.program.Imports() {
		mod, err := imp.Target(n.Package())
		if err != nil {
			return fmt.Errorf("module %s: %w", n.displayName(), err)
		}
		target, ok := n.tree.Lookup(mod)
		if !ok || !target.HasExport(imp.Name) {
			continue
		}
		ref := ImportRef{Module: mod, Name: imp.Name}
		key := ref.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		n.imports = append(n.imports, ref)
	}
	sort.Slice(n.imports, func(i, j int) bool {
		return n.imports[i].String() < n.imports[j].String()
	})
	return nil
}

// Exports returns the analyzed export names, sorted.
func (n *Node) Exports() []string {
	out := make([]string, 0, len(n.exports))
	for name := range n.exports {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasExport reports whether name is in the analyzed export set.
func (n *Node) HasExport(name string) bool {
	_, ok := n.exports[name]
	return ok
}

// Imports returns the analyzed imports, sorted.
func (n *Node) Imports() []ImportRef {
	out := make([]ImportRef, len(n.imports))
	copy(out, n.imports)
	return out
}
