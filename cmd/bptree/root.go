package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-bptree/pkg/logger"
	"github.com/huynhanx03/go-bptree/pkg/settings"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bptree",
		Short:         "In-memory B+ tree index",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(newDemoCmd(opts), newServeCmd(opts))
	return cmd
}

// load reads the config and builds the logger for a subcommand.
func (o *rootOptions) load() (*settings.Config, *zap.Logger, error) {
	cfg, err := settings.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
