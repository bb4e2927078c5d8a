package btree

import "slices"

// find returns the position of key in a record node and whether it is there.
// When absent, pos is the first position whose key exceeds key.
func (t *Tree[K, V]) find(n *node[K, V], key K) (pos int, found bool) {
	for pos = 0; pos < n.numKeys(); pos++ {
		c := t.compare(key, n.keys[pos])
		if c == 0 {
			return pos, true
		}
		if c < 0 {
			break
		}
	}
	return pos, false
}

// insertRecord places key in order. A full leaf splits first and the key
// then goes to whichever half covers it. The partition is returned for the
// parent.
func (t *Tree[K, V]) insertRecord(n *node[K, V], key K, value V) (*partition[K, V], Outcome) {
	pos, found := t.find(n, key)
	if found {
		t.logger.Debug("key already present, insert skipped", zapKey(key))
		return nil, AlreadyPresent
	}

	if n.numKeys() < t.cfg.MaxKeys {
		t.place(n, pos, key, value)
		return nil, Inserted
	}

	p := t.splitRecord(n)
	target := p.right
	if t.compare(key, p.separator) < 0 {
		target = n
	}
	pos, _ = t.find(target, key)
	t.place(target, pos, key, value)
	return p, Inserted
}

func (t *Tree[K, V]) place(n *node[K, V], pos int, key K, value V) {
	n.keys = slices.Insert(n.keys, pos, key)
	n.values = slices.Insert(n.values, pos, value)
}

// splitRecord moves keys [mid, M) of a full leaf into a new leaf linked
// into the chain right after n, with mid = (M+1)/2.
func (t *Tree[K, V]) splitRecord(n *node[K, V]) *partition[K, V] {
	mid := (n.numKeys() + 1) / 2

	right := t.newRecord()
	right.keys = append(right.keys, n.keys[mid:]...)
	right.values = append(right.values, n.values[mid:]...)

	clear(n.keys[mid:])
	clear(n.values[mid:])
	n.keys = n.keys[:mid]
	n.values = n.values[:mid]

	right.prev = n
	right.next = n.next
	if n.next != nil {
		n.next.prev = right
	}
	n.next = right

	return &partition[K, V]{separator: right.keys[0], left: n, right: right}
}

func (t *Tree[K, V]) searchRecord(n *node[K, V], key K) (V, bool) {
	if pos, found := t.find(n, key); found {
		return n.values[pos], true
	}
	var zero V
	return zero, false
}

func (t *Tree[K, V]) updateRecord(n *node[K, V], key K, value V) bool {
	pos, found := t.find(n, key)
	if !found {
		return false
	}
	n.values[pos] = value
	return true
}

// deleteRecord compacts key out of n. A leaf that reaches zero keys is
// spliced out of the chain and reported as drained.
func (t *Tree[K, V]) deleteRecord(n *node[K, V], key K) (found, drained bool) {
	pos, found := t.find(n, key)
	if !found {
		return false, false
	}

	n.keys = slices.Delete(n.keys, pos, pos+1)
	n.values = slices.Delete(n.values, pos, pos+1)

	if n.numKeys() > 0 {
		return true, false
	}

	t.unlink(n)
	return true, true
}

// unlink removes an empty leaf from the chain.
func (t *Tree[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if t.head == n {
		t.head = n.next
	}
	n.prev, n.next = nil, nil
}
