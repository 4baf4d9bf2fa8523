package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/logging"
)

const (
	// envConfig names the environment variable holding the default config path.
	envConfig     = "GOESXRS_CONFIG"
	defaultConfig = "goesxrs.yaml"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "goesxrs",
		Short: "Derive flare plasma properties from GOES XRS fluxes",
		Long: `goesxrs turns GOES X-Ray Sensor fluxes into isothermal plasma
temperature, emission measure, radiative loss rate and X-ray luminosity,
and lists flare events from a catalog.

Subcommands:
  tem       derive quantities for fluxes given on the command line
  analyze   run the configured sources and write reports
  events    list flare events in a time range`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", configDefault(),
		"path to config file (env "+envConfig+")")

	root.AddCommand(newTemCmd(), newAnalyzeCmd(opts), newEventsCmd(opts))
	return root
}

func configDefault() string {
	if p := os.Getenv(envConfig); p != "" {
		return p
	}
	return defaultConfig
}

// loadConfig reads the config file and installs its logger. Closing the
// returned sink flushes the log output.
func loadConfig(path string) (*config.Config, *logging.Sink, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	sink, err := logging.Install(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("goesxrs: %w", err)
	}
	return cfg, sink, nil
}
