package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree"
	"github.com/huynhanx03/go-bptree/pkg/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve an empty index over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			tree, err := btree.New[int64, string](cfg.Tree.ToBTree(), btree.WithLogger(log))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg.Server, btree.NewSync(tree), log).Run(ctx)
		},
	}
}
