package btree

import "github.com/pkg/errors"

// bounds is the key range a subtree may hold: lo <= k < hi.
type bounds[K any] struct {
	lo, hi       K
	hasLo, hasHi bool
}

// Validate walks the whole tree and returns an error describing the first
// broken invariant, or nil. Leaves may sit at different depths after
// deletes, so depth is not checked.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		if t.head != nil {
			return errors.New("empty tree has a head leaf")
		}
		return nil
	}

	var leaves []*node[K, V]
	if err := t.validate(t.root, bounds[K]{}, &leaves); err != nil {
		return err
	}

	if t.head != leaves[0] {
		return errors.New("head is not the leftmost leaf")
	}
	if leaves[0].prev != nil {
		return errors.New("head leaf has a prev link")
	}

	// The chain must visit the leaves in tree order.
	n := t.head
	for i, leaf := range leaves {
		if n != leaf {
			return errors.Errorf("leaf chain diverges from tree order at leaf %d", i)
		}
		if n.next != nil && n.next.prev != n {
			return errors.Errorf("leaf %d: next.prev does not point back", i)
		}
		n = n.next
	}
	if n != nil {
		return errors.New("leaf chain continues past the rightmost leaf")
	}

	var prev K
	seen := 0
	for k := range t.List() {
		if seen > 0 && t.compare(prev, k) >= 0 {
			return errors.Errorf("leaf chain not strictly ascending at %v", k)
		}
		prev = k
		seen++
	}
	if seen != t.Count() {
		return errors.Errorf("leaf chain holds %d keys, count is %d", seen, t.Count())
	}
	return nil
}

func (t *Tree[K, V]) validate(n *node[K, V], b bounds[K], leaves *[]*node[K, V]) error {
	N := n.numKeys()
	if N > t.cfg.MaxKeys {
		return errors.Errorf("%s node holds %d keys, max is %d", n.kind, N, t.cfg.MaxKeys)
	}

	for i, k := range n.keys {
		if i > 0 && t.compare(n.keys[i-1], k) >= 0 {
			return errors.Errorf("%s node keys not strictly ascending at %v", n.kind, k)
		}
		if b.hasLo && t.compare(k, b.lo) < 0 {
			return errors.Errorf("key %v below lower bound %v", k, b.lo)
		}
		if b.hasHi && t.compare(k, b.hi) >= 0 {
			return errors.Errorf("key %v not below upper bound %v", k, b.hi)
		}
	}

	switch n.kind {
	case recordKind:
		if N == 0 {
			return errors.New("reachable leaf has no keys")
		}
		if len(n.values) != N {
			return errors.Errorf("leaf holds %d keys and %d values", N, len(n.values))
		}
		*leaves = append(*leaves, n)
		return nil

	case indexKind:
		if N == 0 {
			return errors.New("reachable index node has no keys")
		}
		if len(n.children) != N+1 {
			return errors.Errorf("index node holds %d keys and %d children", N, len(n.children))
		}
		for i, child := range n.children {
			if child == nil {
				return errors.Errorf("index node child %d is nil", i)
			}
			cb := b
			if i > 0 {
				cb.lo, cb.hasLo = n.keys[i-1], true
			}
			if i < N {
				cb.hi, cb.hasHi = n.keys[i], true
			}
			if err := t.validate(child, cb, leaves); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Errorf("unknown node kind %d", n.kind)
}
