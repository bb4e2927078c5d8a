package btree

import (
	"iter"
	"slices"
)

// List returns the keys in ascending order by walking the leaf chain from
// the head. Each range over the sequence starts again from the head.
func (t *Tree[K, V]) List() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := t.head; n != nil; n = n.next {
			for _, k := range n.keys {
				if !yield(k) {
					return
				}
			}
		}
	}
}

// All returns every key/value pair in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.head; n != nil; n = n.next {
			for i, k := range n.keys {
				if !yield(k, n.values[i]) {
					return
				}
			}
		}
	}
}

// Keys collects List into a slice.
func (t *Tree[K, V]) Keys() []K {
	return slices.Collect(t.List())
}

// NodeInfo is a read-only view of one node, passed to Iterate.
type NodeInfo[K, V any] struct {
	Depth int
	Leaf  bool
	Keys  []K

	// Values is set for leaves only.
	Values []V

	// ChildFirstKeys holds the first key of each child of an index node.
	// A child without keys contributes nothing.
	ChildFirstKeys []K

	// NextFirstKey is the first key of the next leaf in the chain.
	NextFirstKey K
	HasNext      bool
}

// Iterate visits every node in pre-order, root first. The slices in
// NodeInfo are copies.
func (t *Tree[K, V]) Iterate(fn func(NodeInfo[K, V])) {
	if t.root == nil {
		return
	}
	t.iterate(t.root, 0, fn)
}

func (t *Tree[K, V]) iterate(n *node[K, V], depth int, fn func(NodeInfo[K, V])) {
	info := NodeInfo[K, V]{
		Depth: depth,
		Leaf:  n.isLeaf(),
		Keys:  slices.Clone(n.keys),
	}

	if n.isLeaf() {
		info.Values = slices.Clone(n.values)
		if n.next != nil && n.next.numKeys() > 0 {
			info.NextFirstKey = n.next.keys[0]
			info.HasNext = true
		}
		fn(info)
		return
	}

	for _, child := range n.children {
		if child.numKeys() > 0 {
			info.ChildFirstKeys = append(info.ChildFirstKeys, child.keys[0])
		}
	}
	fn(info)

	// Explore children.
	for _, child := range n.children {
		t.iterate(child, depth+1, fn)
	}
}
