// Package report renders text diagnostics for a B+ tree: the summary
// snapshot and the node-by-node dump. It only uses the tree's exported
// read operations.
package report

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree"
)

// Source is the read-only surface a Snapshot is taken from.
type Source[K any] interface {
	Count() int
	Height() int
	BlocksCount() int
	List() iter.Seq[K]
}

// Walker exposes the node structure for PrintTree.
type Walker[K, V any] interface {
	Iterate(fn func(btree.NodeInfo[K, V]))
}

// Snapshot summarizes a tree.
type Snapshot struct {
	Empty   bool `json:"empty"`
	Records int  `json:"records"`
	Blocks  int  `json:"blocks"`
	Depth   int  `json:"depth"`

	// Fingerprint is an xxhash digest of the ascending key sequence.
	// Trees holding the same keys have the same fingerprint.
	Fingerprint uint64 `json:"fingerprint"`
}

// Take computes a Snapshot of src.
func Take[K any](src Source[K]) Snapshot {
	s := Snapshot{
		Records: src.Count(),
		Blocks:  src.BlocksCount(),
		Depth:   src.Height(),
	}
	s.Empty = s.Records == 0
	s.Fingerprint = Fingerprint(src.List())
	return s
}

// Fingerprint hashes keys in order. Each key is written in its %v form
// followed by its length, so adjacent keys cannot run together.
func Fingerprint[K any](keys iter.Seq[K]) uint64 {
	d := xxhash.New()
	var buf []byte
	for k := range keys {
		buf = fmt.Appendf(buf[:0], "%v", k)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(buf)))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// WriteSnapshot writes the SNAPSHOT block.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	ew := &errWriter{w: w}
	ew.printf("\n\nSNAPSHOT\n")
	if s.Empty {
		ew.printf("Tree is empty\n")
	} else {
		ew.printf("%d records in the table\n", s.Records)
		ew.printf("%d blocks\n", s.Blocks)
		ew.printf("Depth of %d\n", s.Depth)
	}
	return errors.Wrap(ew.err, "write snapshot")
}

// PrintTree writes the ALL NODES dump, one block per node in pre-order.
func PrintTree[K, V any](w io.Writer, t Walker[K, V]) error {
	ew := &errWriter{w: w}
	ew.printf("\n\nALL NODES\n")

	empty := true
	t.Iterate(func(n btree.NodeInfo[K, V]) {
		empty = false
		if n.Leaf {
			printLeaf(ew, n)
		} else {
			printIndex(ew, n)
		}
	})
	if empty {
		ew.printf("Tree is empty\n")
	}
	return errors.Wrap(ew.err, "print tree")
}

func printIndex[K, V any](ew *errWriter, n btree.NodeInfo[K, V]) {
	ew.printf("\nINODE:\n  keys: ")
	for _, k := range n.Keys {
		ew.printf("%v; ", k)
	}
	ew.printf("\n  links: ")
	for _, k := range n.ChildFirstKeys {
		ew.printf("%v; ", k)
	}
	ew.printf("\n")
}

func printLeaf[K, V any](ew *errWriter, n btree.NodeInfo[K, V]) {
	ew.printf("LNODE:\n")
	for i, k := range n.Keys {
		ew.printf("  key: %v, value: %v\n", k, n.Values[i])
	}
	if n.HasNext {
		ew.printf(" NEXT: %v\n", n.NextFirstKey)
	} else {
		ew.printf(" NEXT: null\n")
	}
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
