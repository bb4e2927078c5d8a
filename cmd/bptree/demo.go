package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree"
	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree/report"
	"github.com/huynhanx03/go-bptree/pkg/settings"
)

type demoOptions struct {
	keys      int
	maxKeys   int
	seed      uint64
	printTree bool
}

func newDemoCmd(root *rootOptions) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted insert/search/update/delete workload and print reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runDemo(cmd.OutOrStdout(), cfg, opts, log)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.keys, "keys", "n", 40, "number of keys to insert")
	f.IntVarP(&opts.maxKeys, "max-keys", "m", 0, "override tree.max_keys")
	f.Uint64Var(&opts.seed, "seed", 1, "shuffle seed")
	f.BoolVar(&opts.printTree, "print-tree", false, "dump every node after the workload")
	return cmd
}

func runDemo(w io.Writer, cfg *settings.Config, opts demoOptions, log *zap.Logger) error {
	treeCfg := cfg.Tree.ToBTree()
	if opts.maxKeys > 0 {
		treeCfg.MaxKeys = opts.maxKeys
	}

	tree, err := btree.New[int, string](treeCfg, btree.WithLogger(log))
	if err != nil {
		return err
	}

	r := rand.New(rand.NewPCG(opts.seed, opts.seed))
	for _, k := range r.Perm(opts.keys) {
		tree.Insert(k+1, fmt.Sprintf("value-%d", k+1))
	}
	if err := report.WriteSnapshot(w, report.Take[int](tree)); err != nil {
		return err
	}

	// Searches: first, last, and one past the end.
	fmt.Fprintln(w)
	for _, k := range []int{1, opts.keys, opts.keys + 1} {
		if _, ok := tree.Search(k); ok {
			fmt.Fprintf(w, "Key: %d, Found\n", k)
		} else {
			fmt.Fprintf(w, "Key, %d, not found.\n", k)
		}
	}

	updated := 0
	for k := 2; k <= opts.keys; k += 5 {
		if tree.Update(k, fmt.Sprintf("updated-%d", k)) == btree.Updated {
			updated++
		}
	}

	deleted := 0
	for k := 3; k <= opts.keys; k += 3 {
		if tree.Delete(k) == btree.Deleted {
			deleted++
		}
	}
	fmt.Fprintf(w, "%d updated, %d deleted\n", updated, deleted)

	for k := range tree.List() {
		fmt.Fprintf(w, "%d --> ", k)
	}
	fmt.Fprintln(w)

	if err := report.WriteSnapshot(w, report.Take[int](tree)); err != nil {
		return err
	}
	if opts.printTree {
		if err := report.PrintTree[int, string](w, tree); err != nil {
			return err
		}
	}

	log.Debug("demo finished",
		zap.Int("records", tree.Count()),
		zap.Int("height", tree.Height()),
	)
	return tree.Validate()
}
