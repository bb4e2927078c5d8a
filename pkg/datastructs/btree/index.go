package btree

import "slices"

// branch returns the child index that may hold key.
// Keys at or above the last separator go to the rightmost child.
func (t *Tree[K, V]) branch(n *node[K, V], key K) int {
	N := n.numKeys()
	if N == 0 {
		panic("btree: branch on index node without keys")
	}

	i := 0
	for i < N && t.compare(key, n.keys[i]) >= 0 {
		i++
	}
	if i == N {
		i--
	}
	if t.compare(key, n.keys[i]) < 0 {
		return i
	}
	return i + 1
}

// insertIndex descends into the selected child and absorbs any partition it
// returns. The node splits in turn once it holds more than MaxKeys keys.
func (t *Tree[K, V]) insertIndex(n *node[K, V], key K, value V) (*partition[K, V], Outcome) {
	idx := t.branch(n, key)
	p, out := t.insert(n.children[idx], key, value)
	if p == nil {
		return nil, out
	}

	n.children[idx] = p.left
	t.absorb(n, idx, p)

	if n.numKeys() <= t.cfg.MaxKeys {
		return nil, out
	}
	return t.splitIndex(n), out
}

// absorb places the partition's separator at keys[idx] and its right node at
// children[idx+1]. idx is the slot the partition came from, so the separator
// lands in sorted position.
func (t *Tree[K, V]) absorb(n *node[K, V], idx int, p *partition[K, V]) {
	n.keys = slices.Insert(n.keys, idx, p.separator)
	n.children = slices.Insert(n.children, idx+1, p.right)
}

// splitIndex splits an overflowing index node around its middle key.
// n keeps keys [0, mid) and the new right node takes keys (mid, N).
// keys[mid] moves up as the separator.
func (t *Tree[K, V]) splitIndex(n *node[K, V]) *partition[K, V] {
	N := n.numKeys()
	mid := N / 2

	right := t.newIndex()
	right.keys = append(right.keys, n.keys[mid+1:]...)
	right.children = append(right.children, n.children[mid+1:]...)

	separator := n.keys[mid]

	clear(n.keys[mid:])
	clear(n.children[mid+1:])
	n.keys = n.keys[:mid]
	n.children = n.children[:mid+1]

	return &partition[K, V]{separator: separator, left: n, right: right}
}

// deleteIndex descends and collapses a drained child. A drained index child
// is replaced by its only remaining child. A drained record child is removed
// together with the separator next to it. Siblings are never rebalanced.
func (t *Tree[K, V]) deleteIndex(n *node[K, V], key K) (found, drained bool) {
	idx := t.branch(n, key)
	child := n.children[idx]

	found, childDrained := t.delete(child, key)
	if !found {
		return false, false
	}

	if childDrained {
		switch child.kind {
		case indexKind:
			n.children[idx] = child.children[0]
		case recordKind:
			t.removeChild(n, idx)
		}
	}
	return true, n.numKeys() == 0
}

// removeChild drops children[idx] and the separator that bounds it.
// The leftmost child loses keys[0], every other child loses keys[idx-1].
func (t *Tree[K, V]) removeChild(n *node[K, V], idx int) {
	keyIdx := idx - 1
	if idx == 0 {
		keyIdx = 0
	}
	n.keys = slices.Delete(n.keys, keyIdx, keyIdx+1)
	n.children = slices.Delete(n.children, idx, idx+1)
}
