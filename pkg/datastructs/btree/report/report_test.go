package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree"
)

func newTree(t *testing.T, maxKeys int, keys ...int) *btree.Tree[int, string] {
	t.Helper()
	tree, err := btree.New[int, string](btree.Config{MaxKeys: maxKeys, RecordsPerBlock: 4})
	require.NoError(t, err)
	for _, k := range keys {
		tree.Insert(k, "v")
	}
	return tree
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTake(t *testing.T) {
	tree := newTree(t, 3, 1, 2, 3, 4)

	s := Take[int](tree)

	assert.False(t, s.Empty)
	assert.Equal(t, 4, s.Records)
	assert.Equal(t, 2, s.Blocks)
	assert.Equal(t, 2, s.Depth)
	assert.NotZero(t, s.Fingerprint)
}

func TestTake_Empty(t *testing.T) {
	s := Take[int](newTree(t, 3))

	assert.True(t, s.Empty)
	assert.Zero(t, s.Records)
	assert.Zero(t, s.Blocks)
	assert.Zero(t, s.Depth)
}

func TestTake_SyncTree(t *testing.T) {
	tree := btree.NewSync(newTree(t, 3, 5, 6, 7))

	var s Snapshot
	tree.View(func(tr *btree.Tree[int, string]) {
		s = Take[int](tr)
	})
	assert.Equal(t, 3, s.Records)
}

func TestFingerprint(t *testing.T) {
	a := newTree(t, 3, 1, 2, 3, 4, 5, 6)
	b := newTree(t, 5, 6, 5, 4, 3, 2, 1)
	c := newTree(t, 3, 1, 2, 3, 4, 5, 7)

	assert.Equal(t, Take[int](a).Fingerprint, Take[int](b).Fingerprint,
		"same keys in a different shape must hash the same")
	assert.NotEqual(t, Take[int](a).Fingerprint, Take[int](c).Fingerprint)
}

func TestFingerprint_KeyBoundaries(t *testing.T) {
	ab := btree.NewDefault[string, int]()
	ab.Insert("ab", 0)
	ab.Insert("c", 0)

	a := btree.NewDefault[string, int]()
	a.Insert("a", 0)
	a.Insert("bc", 0)

	assert.NotEqual(t, Fingerprint(ab.List()), Fingerprint(a.List()))
}

func TestWriteSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{
			name: "empty",
			snap: Snapshot{Empty: true},
			want: "\n\nSNAPSHOT\nTree is empty\n",
		},
		{
			name: "populated",
			snap: Snapshot{Records: 4, Blocks: 2, Depth: 2},
			want: "\n\nSNAPSHOT\n4 records in the table\n2 blocks\nDepth of 2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteSnapshot(&buf, tt.snap))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteSnapshot_WriterError(t *testing.T) {
	err := WriteSnapshot(failingWriter{}, Snapshot{Records: 1})
	assert.ErrorContains(t, err, "disk full")
}

func TestPrintTree(t *testing.T) {
	tree := newTree(t, 3, 1, 2, 3, 4)

	var buf bytes.Buffer
	require.NoError(t, PrintTree[int, string](&buf, tree))

	want := "\n\nALL NODES\n" +
		"\nINODE:\n  keys: 3; \n  links: 1; 3; \n" +
		"LNODE:\n  key: 1, value: v\n  key: 2, value: v\n NEXT: 3\n" +
		"LNODE:\n  key: 3, value: v\n  key: 4, value: v\n NEXT: null\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTree[int, string](&buf, newTree(t, 3)))
	assert.Equal(t, "\n\nALL NODES\nTree is empty\n", buf.String())
}

func TestPrintTree_WriterError(t *testing.T) {
	err := PrintTree[int, string](failingWriter{}, newTree(t, 3, 1))
	assert.Error(t, err)
}
