package spquad

// InsertItem is an item that can be inserted for bulk loading.
type InsertItem struct {
	Datum     Datum
	DataIndex int
}

// BulkLoad bulk loads multiple items into a new Tree. Rather than routing each
// item down from the root, groups of items are split top down, so each inner
// node's centroid is placed using every item beneath it.
func BulkLoad(op Operator, capacity int, inserts []InsertItem) (*Tree, error) {
	t, err := New(op, capacity)
	if err != nil {
		return nil, err
	}
	if len(inserts) == 0 {
		return t, nil
	}
	entries := make([]Entry, len(inserts))
	for i, item := range inserts {
		entries[i] = Entry{Datum: item.Datum, Index: item.DataIndex}
	}
	t.Nodes = append(t.Nodes, Node{IsLeaf: true, Entries: entries})
	t.RootIndex = 0
	if err := t.bulkInsert(t.RootIndex); err != nil {
		return nil, err
	}
	return t, nil
}

// bulkInsert splits node n if it's overfull, then does the same for each of
// the new children.
func (t *Tree) bulkInsert(n int) error {
	entries := t.Nodes[n].Entries
	if len(entries) <= t.capacity {
		return nil
	}
	if err := t.splitNode(n, entries); err != nil {
		return err
	}
	for _, c := range t.Nodes[n].Children {
		if err := t.bulkInsert(c); err != nil {
			return err
		}
	}
	return nil
}
