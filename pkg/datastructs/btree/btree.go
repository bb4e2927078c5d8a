package btree

import (
	"cmp"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Tree is an in-memory B+ tree mapping unique ordered keys to values.
// Records live in leaves that are chained in ascending order.
//
// A Tree is not safe for concurrent use. Wrap it in a SyncTree when more
// than one goroutine needs it.
type Tree[K, V any] struct {
	root    *node[K, V]
	head    *node[K, V]
	cfg     Config
	compare func(a, b K) int
	logger  *zap.Logger
}

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any](cfg Config, opts ...Option) (*Tree[K, V], error) {
	return NewFunc[K, V](cfg, cmp.Compare[K], opts...)
}

// NewFunc returns an empty tree ordered by compare, which must define a
// strict total order and return <0, 0 or >0.
func NewFunc[K, V any](cfg Config, compare func(a, b K) int, opts ...Option) (*Tree[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tree config")
	}
	if compare == nil {
		return nil, errors.New("compare function is required")
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K, V]{
		cfg:     cfg,
		compare: compare,
		logger:  o.logger,
	}, nil
}

// NewDefault returns an empty tree with DefaultConfig.
func NewDefault[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	t, err := New[K, V](DefaultConfig(), opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns the sizing the tree was built with.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// Reset drops every node.
func (t *Tree[K, V]) Reset() {
	t.root = nil
	t.head = nil
}

// Insert adds key with value.
//
// Before descending, only the root's own keys are checked for key. A hit
// there skips the insert. Below the root, the leaf that would hold key
// rejects it if it is already present.
func (t *Tree[K, V]) Insert(key K, value V) Outcome {
	if t.root == nil {
		t.root = t.newRecord()
		t.head = t.root
	} else if t.hasKey(t.root, key) {
		t.logger.Debug("key has already been added, ignoring the insert", zapKey(key))
		return AlreadyPresent
	}

	p, out := t.insert(t.root, key, value)
	if p != nil {
		t.promote(p)
	}
	return out
}

// promote grows the tree by one level: a new index root holding the
// partition's separator and both halves.
func (t *Tree[K, V]) promote(p *partition[K, V]) {
	root := t.newIndex()
	root.keys = append(root.keys, p.separator)
	root.children = append(root.children, p.left, p.right)
	t.root = root
}

// Search looks for key and returns its value.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	return t.search(t.root, key)
}

// Update overwrites the value of an existing key.
func (t *Tree[K, V]) Update(key K, value V) Outcome {
	if t.root == nil || !t.update(t.root, key, value) {
		return NotFound
	}
	return Updated
}

// Delete removes key. A root index node left with a single child is
// replaced by that child. A root leaf left empty empties the tree.
func (t *Tree[K, V]) Delete(key K) Outcome {
	if t.root == nil {
		t.logger.Debug("deletion not possible, tree is empty", zapKey(key))
		return NotFound
	}

	found, drained := t.delete(t.root, key)
	if !found {
		t.logger.Debug("deletion not possible, key not found", zapKey(key))
		return NotFound
	}

	if drained {
		switch t.root.kind {
		case indexKind:
			t.root = t.root.children[0]
		case recordKind:
			t.root = nil
			t.head = nil
		}
	}
	return Deleted
}

// Count returns the number of records.
func (t *Tree[K, V]) Count() int {
	if t.root == nil {
		return 0
	}
	return t.count(t.root)
}

// BlocksCount returns the number of simulated storage blocks the leaves
// occupy, RecordsPerBlock records per block, per leaf.
func (t *Tree[K, V]) BlocksCount() int {
	if t.root == nil {
		return 0
	}
	return t.blocksCount(t.root)
}

// Height returns the number of levels on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.height(t.root)
}
