package sampler

// TreeNode is a node of an ExtendedTree: either an internal node (with one
// child per alphabet letter, in alphabet order) or a leaf. Both variants
// carry Access, their access sequence of alphabet-letter indices from the
// root.
type TreeNode struct {
	Access   []int
	IsLeaf   bool
	Children []*TreeNode // len == alphabet size for internal nodes, nil for leaves
}

// ExtendedTree is the decoded shape produced by TupleToTree (ϕ⁻¹).
type ExtendedTree struct {
	Root *TreeNode
}

// TupleToTree decodes tuple K into an ExtendedTree over an m-letter
// alphabet, per spec section 4.D.3 (ϕ⁻¹). The padded sequence [1]++K is
// walked with a single cursor; at each of a node's m child slots, equal
// adjacent entries close the branch as a leaf and consume one entry,
// unequal entries open an internal node and increment the head entry in
// place before recursing. Running out of lookahead always emits a leaf,
// which is only ever reached at the final, fully-saturated slot for a
// well-formed tuple.
func TupleToTree(tuple []int, m int) *ExtendedTree {
	entries := make([]int, 0, len(tuple)+1)
	entries = append(entries, 1)
	entries = append(entries, tuple...)

	pos := 0
	root := decodeNode(entries, &pos, nil, m)
	return &ExtendedTree{Root: root}
}

func decodeNode(entries []int, pos *int, access []int, m int) *TreeNode {
	node := &TreeNode{Access: access, Children: make([]*TreeNode, m)}

	for letter := 0; letter < m; letter++ {
		childAccess := make([]int, len(access)+1)
		copy(childAccess, access)
		childAccess[len(access)] = letter

		if *pos+1 >= len(entries) {
			node.Children[letter] = &TreeNode{Access: childAccess, IsLeaf: true}
			*pos++
			continue
		}

		if entries[*pos] == entries[*pos+1] {
			node.Children[letter] = &TreeNode{Access: childAccess, IsLeaf: true}
			*pos++
			continue
		}

		entries[*pos]++
		node.Children[letter] = decodeNode(entries, pos, childAccess, m)
	}

	return node
}

// InternalNodes returns every internal node of t, in preorder (a node
// before its children, children visited in alphabet order) — the
// deterministic order spec section 4.D.4/5 and section 5's ordering
// guarantee require for location naming and Bernoulli/closure draws.
func (t *ExtendedTree) InternalNodes() []*TreeNode {
	var out []*TreeNode
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		if n.IsLeaf {
			return
		}
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return out
}

// accessLess reports whether a is lexicographically less than b, treating
// a strict prefix as less than any sequence it's a prefix of (the empty
// root access sequence is less than every other access sequence).
func accessLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
