package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solarflux/goesxrs/pkg/types"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultLogOutput    = "stdout"
	DefaultMaxSizeMB    = 100
	DefaultMaxAgeDays   = 28
	DefaultMaxBackups   = 3
	DefaultWorkers      = 4
	DefaultOutputFormat = "json"

	// Stdout as an output path writes the report to standard output.
	Stdout = "-"
)

// Source formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Output formats.
const (
	OutputJSON    = "json"
	OutputProm    = "prom"
	OutputParquet = "parquet"
)

// Config is the top-level goesxrs configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Sources  []Source       `yaml:"sources"`
	Events   EventsConfig   `yaml:"events"`
	Output   OutputConfig   `yaml:"output"`
	Alerts   AlertsConfig   `yaml:"alerts"`
}

// LoggingConfig controls the process-wide slog handler.
type LoggingConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`

	// Format is one of: json | text.
	Format string `yaml:"format"`

	// Output is one of: stdout | stderr | file.
	Output string `yaml:"output"`

	// File configures the rotating log file used when Output is "file".
	File FileSink `yaml:"file"`
}

// FileSink holds log rotation settings.
type FileSink struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

// AnalysisConfig holds the derivation options shared by every source.
type AnalysisConfig struct {
	// Abundance is coronal or photospheric.
	Abundance string `yaml:"abundance"`

	// Cumulative also reports running totals of the integrated series.
	Cumulative bool `yaml:"cumulative"`

	// Workers bounds how many sources are processed at once.
	Workers int `yaml:"workers"`
}

// Source describes one XRS lightcurve file.
type Source struct {
	// ID is a unique, human-readable identifier for this source.
	ID string `yaml:"id"`

	// Format is csv or parquet.
	Format string `yaml:"format"`

	// Path is the lightcurve file on disk.
	Path string `yaml:"path"`

	// Telescope overrides the TELESCOP value read from the file, e.g. "GOES 15".
	Telescope string `yaml:"telescope"`
}

// EventsConfig locates the flare event catalog.
type EventsConfig struct {
	Catalog string `yaml:"catalog"`
}

// OutputConfig selects where and how reports are written.
type OutputConfig struct {
	// Format is one of: json | prom | parquet.
	Format string `yaml:"format"`

	// Path is a file or "-" for stdout. For parquet it names the directory
	// that receives one file per source.
	Path string `yaml:"path"`
}

// AlertsConfig holds the threshold rules evaluated after each analysis.
type AlertsConfig struct {
	Rules []AlertRule `yaml:"rules"`
}

// AlertRule defines a threshold condition over derived quantities.
type AlertRule struct {
	// Name is the human-readable alert identifier.
	Name string `yaml:"name"`

	// Condition is an expression like "temperature > 20" or "class >= M1".
	Condition string `yaml:"condition"`

	// Severity is one of: critical | warning | info.
	Severity string `yaml:"severity"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w: %w", types.ErrConfig, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: DefaultLogOutput,
			File: FileSink{
				MaxSizeMB:  DefaultMaxSizeMB,
				MaxAgeDays: DefaultMaxAgeDays,
				MaxBackups: DefaultMaxBackups,
			},
		},
		Analysis: AnalysisConfig{
			Abundance: string(types.Coronal),
			Workers:   DefaultWorkers,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
			Path:   Stdout,
		},
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, types.ErrConfig)...)
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level: unknown level %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return invalid("logging.format: unknown format %q", cfg.Logging.Format)
	}
	switch cfg.Logging.Output {
	case "stdout", "stderr":
	case "file":
		if cfg.Logging.File.Path == "" {
			return invalid("logging.file.path is required when output is file")
		}
	default:
		return invalid("logging.output: unknown output %q", cfg.Logging.Output)
	}

	if _, err := types.ParseAbundance(cfg.Analysis.Abundance); err != nil {
		return fmt.Errorf("analysis.abundance: %w", err)
	}
	if cfg.Analysis.Workers <= 0 {
		return invalid("analysis.workers must be positive")
	}

	seen := make(map[string]bool, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if src.ID == "" {
			return invalid("sources[%d]: id is required", i)
		}
		if seen[src.ID] {
			return invalid("sources[%d]: duplicate id %q", i, src.ID)
		}
		seen[src.ID] = true
		if src.Path == "" {
			return invalid("sources[%d] %q: path is required", i, src.ID)
		}
		switch src.Format {
		case FormatCSV, FormatParquet:
		default:
			return invalid("sources[%d] %q: unknown format %q", i, src.ID, src.Format)
		}
		if src.Telescope != "" {
			if _, err := types.ParseSatellite(src.Telescope); err != nil {
				return fmt.Errorf("sources[%d] %q: %w", i, src.ID, err)
			}
		}
	}

	switch cfg.Output.Format {
	case OutputJSON, OutputProm:
	case OutputParquet:
		if cfg.Output.Path == Stdout {
			return invalid("output.path: parquet output needs a file path")
		}
	default:
		return invalid("output.format: unknown format %q", cfg.Output.Format)
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = Stdout
	}

	for i, r := range cfg.Alerts.Rules {
		if r.Name == "" {
			return invalid("alerts.rules[%d]: name is required", i)
		}
		if r.Condition == "" {
			return invalid("alerts.rules[%d] %q: condition is required", i, r.Name)
		}
		switch r.Severity {
		case "critical", "warning", "info":
		case "":
			cfg.Alerts.Rules[i].Severity = "warning"
		default:
			return invalid("alerts.rules[%d] %q: unknown severity %q", i, r.Name, r.Severity)
		}
	}
	return nil
}
