package btree

import "github.com/huynhanx03/go-bptree/pkg/utils"

// node is a B+ tree node. kind selects the variant:
//
//   - index:  keys are separators, children has len(keys)+1 owned links.
//   - record: keys[i] maps to values[i]; prev/next form the leaf chain.
//
// prev and next never own their target. Ownership runs through children only.
type node[K, V any] struct {
	kind     nodeKind
	keys     []K
	children []*node[K, V]
	values   []V
	prev     *node[K, V]
	next     *node[K, V]
}

// partition is the result of a split. left is the node that split,
// right is the new sibling, and separator is the first key reachable
// through right.
type partition[K, V any] struct {
	separator K
	left      *node[K, V]
	right     *node[K, V]
}

func (t *Tree[K, V]) newRecord() *node[K, V] {
	return &node[K, V]{
		kind:   recordKind,
		keys:   make([]K, 0, t.cfg.MaxKeys),
		values: make([]V, 0, t.cfg.MaxKeys),
	}
}

func (t *Tree[K, V]) newIndex() *node[K, V] {
	return &node[K, V]{
		kind:     indexKind,
		keys:     make([]K, 0, t.cfg.MaxKeys+1),
		children: make([]*node[K, V], 0, t.cfg.MaxKeys+2),
	}
}

// numKeys returns the number of live keys.
func (n *node[K, V]) numKeys() int {
	return len(n.keys)
}

func (n *node[K, V]) isLeaf() bool {
	return n.kind == recordKind
}

// hasKey reports whether key is one of this node's own keys.
// It does not descend.
func (t *Tree[K, V]) hasKey(n *node[K, V], key K) bool {
	for _, k := range n.keys {
		if t.compare(k, key) == 0 {
			return true
		}
	}
	return false
}

// insert dispatches to the variant. A non-nil partition means n split.
func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) (*partition[K, V], Outcome) {
	switch n.kind {
	case indexKind:
		return t.insertIndex(n, key, value)
	case recordKind:
		return t.insertRecord(n, key, value)
	}
	panic("btree: unknown node kind " + n.kind.String())
}

func (t *Tree[K, V]) search(n *node[K, V], key K) (V, bool) {
	switch n.kind {
	case indexKind:
		return t.search(n.children[t.branch(n, key)], key)
	case recordKind:
		return t.searchRecord(n, key)
	}
	panic("btree: unknown node kind " + n.kind.String())
}

func (t *Tree[K, V]) update(n *node[K, V], key K, value V) bool {
	switch n.kind {
	case indexKind:
		return t.update(n.children[t.branch(n, key)], key, value)
	case recordKind:
		return t.updateRecord(n, key, value)
	}
	panic("btree: unknown node kind " + n.kind.String())
}

// delete removes key below n. found reports whether the key existed,
// drained whether n was left with zero keys.
func (t *Tree[K, V]) delete(n *node[K, V], key K) (found, drained bool) {
	switch n.kind {
	case indexKind:
		return t.deleteIndex(n, key)
	case recordKind:
		return t.deleteRecord(n, key)
	}
	panic("btree: unknown node kind " + n.kind.String())
}

func (t *Tree[K, V]) count(n *node[K, V]) int {
	if n.isLeaf() {
		return n.numKeys()
	}
	total := 0
	for _, child := range n.children {
		total += t.count(child)
	}
	return total
}

func (t *Tree[K, V]) blocksCount(n *node[K, V]) int {
	if n.isLeaf() {
		return utils.CeilDiv(n.numKeys(), t.cfg.RecordsPerBlock)
	}
	total := 0
	for _, child := range n.children {
		total += t.blocksCount(child)
	}
	return total
}

func (t *Tree[K, V]) height(n *node[K, V]) int {
	if n.isLeaf() {
		return 1
	}
	h := 0
	for _, child := range n.children {
		h = max(h, t.height(child))
	}
	return h + 1
}
