package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/solarflux/goesxrs/pkg/types"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
logging:
  level: debug
  format: text
analysis:
  abundance: photospheric
  cumulative: true
  workers: 2
sources:
  - id: flare-2014-01-01
    format: csv
    path: data/goes15.csv
    telescope: "GOES 15"
events:
  catalog: events.yaml
output:
  format: prom
  path: out.prom
alerts:
  rules:
    - name: hot-plasma
      condition: "temperature > 20"
      severity: critical
`
	cfg := loadFromString(t, yaml)

	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("logging: got %+v", cfg.Logging)
	}
	if cfg.Analysis.Abundance != "photospheric" || !cfg.Analysis.Cumulative || cfg.Analysis.Workers != 2 {
		t.Errorf("analysis: got %+v", cfg.Analysis)
	}
	if len(cfg.Sources) != 1 {
		t.Fatalf("sources: got %d, want 1", len(cfg.Sources))
	}
	src := cfg.Sources[0]
	if src.ID != "flare-2014-01-01" || src.Format != FormatCSV || src.Telescope != "GOES 15" {
		t.Errorf("source: got %+v", src)
	}
	if cfg.Events.Catalog != "events.yaml" {
		t.Errorf("events.catalog: got %q", cfg.Events.Catalog)
	}
	if cfg.Output.Format != OutputProm || cfg.Output.Path != "out.prom" {
		t.Errorf("output: got %+v", cfg.Output)
	}
	if len(cfg.Alerts.Rules) != 1 || cfg.Alerts.Rules[0].Condition != "temperature > 20" {
		t.Errorf("alerts: got %+v", cfg.Alerts.Rules)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "sources: []\n")

	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("default level: got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Output != DefaultLogOutput {
		t.Errorf("default log output: got %q", cfg.Logging.Output)
	}
	if cfg.Logging.File.MaxSizeMB != DefaultMaxSizeMB {
		t.Errorf("default max_size_mb: got %d", cfg.Logging.File.MaxSizeMB)
	}
	if cfg.Analysis.Abundance != string(types.Coronal) {
		t.Errorf("default abundance: got %q", cfg.Analysis.Abundance)
	}
	if cfg.Analysis.Workers != DefaultWorkers {
		t.Errorf("default workers: got %d, want %d", cfg.Analysis.Workers, DefaultWorkers)
	}
	if cfg.Output.Format != DefaultOutputFormat || cfg.Output.Path != Stdout {
		t.Errorf("default output: got %+v", cfg.Output)
	}
}

func TestLoad_AlertSeverityDefault(t *testing.T) {
	cfg := loadFromString(t, `
alerts:
  rules:
    - name: big-flare
      condition: "class >= M1"
`)
	if got := cfg.Alerts.Rules[0].Severity; got != "warning" {
		t.Errorf("severity: got %q, want warning", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown log level", "logging:\n  level: loud\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
		{"file output without path", "logging:\n  output: file\n"},
		{"unknown abundance", "analysis:\n  abundance: Neither\n"},
		{"zero workers", "analysis:\n  workers: 0\n"},
		{"source without id", "sources:\n  - format: csv\n    path: a.csv\n"},
		{"source without path", "sources:\n  - id: a\n    format: csv\n"},
		{"unknown source format", "sources:\n  - id: a\n    format: fits\n    path: a.fits\n"},
		{"duplicate source id", "sources:\n  - {id: a, format: csv, path: a.csv}\n  - {id: a, format: csv, path: b.csv}\n"},
		{"bad telescope", "sources:\n  - {id: a, format: csv, path: a.csv, telescope: \"GOES -1\"}\n"},
		{"unknown output format", "output:\n  format: xml\n"},
		{"parquet to stdout", "output:\n  format: parquet\n"},
		{"rule without condition", "alerts:\n  rules:\n    - name: x\n"},
		{"rule with unknown severity", "alerts:\n  rules:\n    - {name: x, condition: \"em > 1\", severity: loud}\n"},
		{"malformed yaml", "sources: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadStringErr(t, tc.yaml)
			if !errors.Is(err, types.ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestWatch_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "analysis:\n  workers: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, func(c *Config) { got <- c }) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, "analysis:\n  workers: 0\n") // invalid, skipped
	writeFile(t, path, "analysis:\n  workers: 7\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-got:
			if c.Analysis.Workers == 7 {
				cancel()
				if err := <-done; err != nil {
					t.Fatalf("Watch: %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, content)
	return Load(path)
}
