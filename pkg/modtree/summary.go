package modtree

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary renders the layout as a table, one row per entry.
func (t *Tree) Summary() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Module", "Kind", "Path", "Exports", "Imports", "Support"})

	for n := range t.All() {
		if n.IsRoot() && n.program == nil {
			continue
		}
		kind := "module"
		if n.IsPackage() {
			kind = "package"
		}
		if n.program == nil {
			kind += " (empty)"
		}
		tw.AppendRow(table.Row{
			n.displayName(),
			kind,
			n.Layout().Path,
			strconv.Itoa(len(n.exports)),
			strconv.Itoa(len(n.imports)),
			strconv.Itoa(len(n.support)),
		})
	}

	return tw.Render()
}
