package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/export"
	"github.com/solarflux/goesxrs/internal/runner"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse every configured source and write reports",
		Long: `Loads each source listed in the config, derives temperature, emission
measure, radiative loss and luminosity, evaluates alert rules, and writes the
reports in the configured output format.

With --watch the analysis re-runs whenever the config file changes, until
interrupted. A changed logging section takes effect on the reload.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, sink, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			defer sink.Close()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := analyze(ctx, cmd, cfg); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return config.Watch(ctx, root.configPath, func(updated *config.Config) {
				if err := sink.Apply(updated.Logging); err != nil {
					slog.Error("goesxrs: logging reload failed, keeping previous logger", "err", err)
				}
				if err := analyze(ctx, cmd, updated); err != nil {
					slog.Error("goesxrs: analysis after reload failed", "err", err)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run when the config file changes")
	return cmd
}

func analyze(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	r, err := runner.New(cfg)
	if err != nil {
		return err
	}
	out, err := r.Run(ctx)
	if err != nil {
		return err
	}
	return export.Write(cfg.Output, cmd.OutOrStdout(), out.Reports)
}
