package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tinyblog/app/config"

	"github.com/spf13/cobra"
)

// Version is reported by the version command.
const Version = "1.0.0"

// NewRootCommand creates the tinyblog command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tinyblog",
		Short:         "An in-memory blog served over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

type serveOptions struct {
	envFile   string
	addr      string
	store     string
	logLevel  string
	logFormat string
}

func newServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the blog HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return RunAppServer(ctx, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file to load before reading BLOG_* variables")
	flags.StringVar(&opts.addr, "addr", "", "listen address (overrides BLOG_ADDR)")
	flags.StringVar(&opts.store, "store", "", "store backend: memory or badger (overrides BLOG_STORE)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides BLOG_LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: json or console (overrides BLOG_LOG_FORMAT)")
	return cmd
}

// config loads the environment and applies the flags that were set.
func (o *serveOptions) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = o.addr
	}
	if flags.Changed("store") {
		cfg.Store = o.store
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tinyblog version %s\n", Version)
		},
	}
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
