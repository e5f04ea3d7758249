package spquad

import "fmt"

// Insert adds a new data item to the Tree. If the Operator fails, the error is
// returned and the item isn't added.
func (t *Tree) Insert(d Datum, dataIndex int) error {
	if len(t.Nodes) == 0 {
		t.Nodes = append(t.Nodes, Node{IsLeaf: true})
		t.RootIndex = 0
	}

	leaf, d, err := t.chooseLeafNode(d)
	if err != nil {
		return err
	}

	// Full slice expression so that a failed split leaves the node alone.
	old := t.Nodes[leaf].Entries
	entries := append(old[:len(old):len(old)], Entry{Datum: d, Index: dataIndex})
	if len(entries) <= t.capacity {
		t.Nodes[leaf].Entries = entries
		return nil
	}
	return t.splitNode(leaf, entries)
}

// splitNode turns leaf n into an inner node, dividing entries between new
// leaf children. If the Operator sends every entry to the same child, the
// node becomes all-the-same and the entries are dealt out evenly instead.
func (t *Tree) splitNode(n int, entries []Entry) error {
	datums := make([]Datum, len(entries))
	for i, entry := range entries {
		datums[i] = entry.Datum
	}
	res, err := t.op.PickSplit(datums)
	if err != nil {
		return err
	}
	if res.NNodes < 2 || len(res.MapToNodes) != len(entries) || len(res.LeafDatums) != len(entries) {
		return fmt.Errorf("picksplit: malformed result for %d values (%d nodes, %d mappings, %d datums)",
			len(entries), res.NNodes, len(res.MapToNodes), len(res.LeafDatums))
	}

	groups := make([][]Entry, res.NNodes)
	used := 0
	for i, entry := range entries {
		c := res.MapToNodes[i]
		if c < 0 || c >= res.NNodes {
			return fmt.Errorf("picksplit: value %d mapped to node %d of %d", i, c, res.NNodes)
		}
		if len(groups[c]) == 0 {
			used++
		}
		groups[c] = append(groups[c], Entry{Datum: res.LeafDatums[i], Index: entry.Index})
	}

	allTheSame := used <= 1
	if allTheSame {
		var flat []Entry
		for _, g := range groups {
			flat = append(flat, g...)
		}
		groups = make([][]Entry, res.NNodes)
		for i, entry := range flat {
			groups[i%res.NNodes] = append(groups[i%res.NNodes], entry)
		}
	}

	children := make([]int, len(groups))
	for i, g := range groups {
		t.Nodes = append(t.Nodes, Node{IsLeaf: true, Entries: g})
		children[i] = len(t.Nodes) - 1
	}
	t.Nodes[n] = Node{
		Centroid:   res.Centroid,
		AllTheSame: allTheSame,
		Children:   children,
	}
	return nil
}

// chooseLeafNode descends from the root to the leaf that d belongs in. The
// datum to store at the leaf is returned with it.
func (t *Tree) chooseLeafNode(d Datum) (int, Datum, error) {
	node := t.RootIndex
	for !t.Nodes[node].IsLeaf {
		res, err := t.op.Choose(d, t.nodeContext(node))
		if err != nil {
			return 0, nil, err
		}
		children := t.Nodes[node].Children
		switch r := res.(type) {
		case MatchNode:
			if r.Node < 0 || r.Node >= len(children) {
				return 0, nil, fmt.Errorf("choose: child %d out of range for node with %d children", r.Node, len(children))
			}
			node, d = children[r.Node], r.RestDatum
		case MatchAllTheSame:
			node, d = t.leastLoaded(children), r.RestDatum
		default:
			return 0, nil, fmt.Errorf("choose: unexpected result %T", res)
		}
	}
	return node, d, nil
}

// leastLoaded picks the child of an all-the-same node to insert into. Leaves
// with the fewest entries are preferred so that equal values spread out.
func (t *Tree) leastLoaded(children []int) int {
	best, bestLen := children[0], -1
	for _, c := range children {
		if !t.Nodes[c].IsLeaf {
			continue
		}
		if n := len(t.Nodes[c].Entries); bestLen == -1 || n < bestLen {
			best, bestLen = c, n
		}
	}
	return best
}
