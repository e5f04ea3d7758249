package spquad

import (
	"errors"
	"fmt"
)

// Node is a node in a Tree. Nodes can either be leaf nodes holding entries for
// stored values, or inner nodes whose children are more nodes.
type Node struct {
	IsLeaf  bool
	Entries []Entry

	// Centroid is set for inner nodes that aren't all-the-same. Children[i]
	// holds the values in quadrant i+1 around it.
	Centroid   Centroid
	AllTheSame bool
	Children   []int
}

// Entry is a stored value in a leaf node.
type Entry struct {
	Datum Datum
	Index int
}

// Tree is an in-memory space partitioning tree that lays out its nodes using
// an Operator. It plays the part of the host engine: it stores nodes and
// decides when they are full, and leaves all geometric decisions to the
// Operator.
type Tree struct {
	RootIndex int
	Nodes     []Node

	op       Operator
	capacity int
}

// New creates an empty Tree. Leaf nodes are split once they hold more than
// capacity entries.
func New(op Operator, capacity int) (*Tree, error) {
	if op == nil {
		return nil, errors.New("operator must not be nil")
	}
	if capacity < 1 {
		return nil, errors.New("capacity must be at least 1")
	}
	return &Tree{op: op, capacity: capacity}, nil
}

// nodeContext describes inner node n to the Operator.
func (t *Tree) nodeContext(n int) NodeContext {
	node := &t.Nodes[n]
	if node.AllTheSame {
		return AllTheSameNode{NNodes: len(node.Children)}
	}
	return QuadNode{Centroid: node.Centroid}
}

// Search looks for any items in the tree that match all of the scan keys. The
// callback is called with the item index for each found item.
func (t *Tree) Search(keys []ScanKey, callback func(index int)) error {
	if len(t.Nodes) == 0 {
		return nil
	}
	var recurse func(int) error
	recurse = func(n int) error {
		node := &t.Nodes[n]
		if node.IsLeaf {
			for _, entry := range node.Entries {
				res, err := t.op.LeafConsistent(entry.Datum, keys)
				if err != nil {
					return err
				}
				if res.Match {
					callback(entry.Index)
				}
			}
			return nil
		}
		visit, err := t.op.InnerConsistent(t.nodeContext(n), keys)
		if err != nil {
			return err
		}
		for _, i := range visit {
			if i < 0 || i >= len(node.Children) {
				return fmt.Errorf("inner consistent: child %d out of range for node with %d children", i, len(node.Children))
			}
			if err := recurse(node.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return recurse(t.RootIndex)
}
