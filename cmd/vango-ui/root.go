package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/logger"
	"github.com/vango-dev/vango-ui/pkg/tw"
)

type rootFlags struct {
	configPath string
	logLevel   string
	human      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vango-ui",
		Short:         "Merge utility classes, inspect variant tables and serve component stories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML or TOML file extending the conflict families (env TW_CONFIG)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (env LOG_LEVEL)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", false, "Human readable logs (env LOG_HUMAN)")

	cmd.AddCommand(newMergeCmd(flags))
	cmd.AddCommand(newFamilyCmd(flags))
	cmd.AddCommand(newVariantsCmd())
	cmd.AddCommand(newStoriesCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// appContext is what commands share once flags and environment are read.
type appContext struct {
	cfg      *config.Config
	log      *logger.Logger
	resolver *tw.Resolver
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.configPath != "" {
		cfg.FamilyConfig = flags.configPath
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		cfg.LogLevel = flags.logLevel
	}
	if f := cmd.Flag("human"); f != nil && f.Changed {
		cfg.LogHuman = flags.human
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogHuman,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	resolver := tw.Default
	if cfg.FamilyConfig != "" {
		resolver, err = tw.NewFromFile(cfg.FamilyConfig)
		if err != nil {
			return nil, fmt.Errorf("load conflict families: %w", err)
		}
		log.WithFields(map[string]any{"path": cfg.FamilyConfig}).Debug("loaded conflict families")
	}

	return &appContext{cfg: cfg, log: log, resolver: resolver}, nil
}
