package modtree

// SaveSupport records a support routine private to this node.
func (n *Node) SaveSupport(id, name string) {
	n.support = append(n.support, Support{ID: id, Name: name})
}

// SaveSharedSupport records a support routine shared with other nodes.
func (n *Node) SaveSharedSupport(id, name string) {
	n.support = append(n.support, Support{ID: id, Name: name, Shared: true})
}

// Support returns the recorded support routines in insertion order.
func (n *Node) Support() []Support {
	out := make([]Support, len(n.support))
	copy(out, n.support)
	return out
}
