package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/lightcurve"
	"github.com/solarflux/goesxrs/internal/loader"
	"github.com/solarflux/goesxrs/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const flareCSV = `# TELESCOP: GOES 15
time,xrsa,xrsb
2014-01-01T00:00:00Z,7e-7,7e-6
2014-01-01T00:00:02Z,2e-6,1.5e-5
2014-01-01T00:00:04Z,3e-6,2.5e-5
2014-01-01T00:00:06Z,1e-6,9e-6
`

const backwardsCSV = `# TELESCOP: GOES 15
time,xrsa,xrsb
2014-01-01T00:00:02Z,7e-7,7e-6
2014-01-01T00:00:00Z,7e-7,7e-6
`

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testConfig(t *testing.T, sources ...config.Source) *config.Config {
	t.Helper()
	return &config.Config{
		Analysis: config.AnalysisConfig{Abundance: "coronal", Cumulative: true, Workers: 2},
		Sources:  sources,
		Alerts: config.AlertsConfig{Rules: []config.AlertRule{
			{Name: "m-class", Condition: "class >= M1", Severity: "critical"},
		}},
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t,
		config.Source{ID: "flare", Format: config.FormatCSV, Path: writeCSV(t, dir, "flare.csv", flareCSV)},
		config.Source{ID: "backwards", Format: config.FormatCSV, Path: writeCSV(t, dir, "back.csv", backwardsCSV)},
		config.Source{ID: "missing", Format: config.FormatCSV, Path: filepath.Join(dir, "absent.csv")},
	)
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if out.RunID == "" {
		t.Error("run id missing")
	}
	if len(out.Reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(out.Reports))
	}
	rep := out.Reports[0]
	if rep.SourceID != "flare" || rep.RunID != out.RunID {
		t.Errorf("report = %+v", rep)
	}
	if rep.PeakClass != "M2.5" {
		t.Errorf("peak class = %q", rep.PeakClass)
	}
	if len(rep.Alerts) != 1 || rep.Alerts[0].Samples != 2 {
		t.Errorf("alerts = %+v", rep.Alerts)
	}
	if !rep.Lightcurve.Has(lightcurve.ColRadLossRate) {
		t.Error("report lightcurve lacks derived columns")
	}

	if len(out.Failures) != 2 {
		t.Fatalf("failures = %+v", out.Failures)
	}
	if f := out.Failures[0]; f.SourceID != "backwards" || !errors.Is(f.Err, types.ErrOrdering) {
		t.Errorf("failure[0] = %+v", f)
	}
	if f := out.Failures[1]; f.SourceID != "missing" || !errors.Is(f.Err, os.ErrNotExist) {
		t.Errorf("failure[1] = %+v", f)
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t,
		config.Source{ID: "flare", Format: config.FormatCSV, Path: writeCSV(t, dir, "flare.csv", flareCSV)},
	)
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRun_LoaderError(t *testing.T) {
	cfg := testConfig(t, config.Source{ID: "x", Format: config.FormatCSV, Path: "unused"})
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	boom := errors.New("boom")
	r.open = func(config.Source) (loader.Loader, error) { return nil, boom }
	out, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.Failures) != 1 || !errors.Is(out.Failures[0].Err, boom) {
		t.Errorf("failures = %+v", out.Failures)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Analysis.Abundance = "Neither"
	if _, err := New(cfg); !errors.Is(err, types.ErrConfig) {
		t.Errorf("abundance: err = %v, want ErrConfig", err)
	}
	cfg = testConfig(t)
	cfg.Alerts.Rules = []config.AlertRule{{Name: "bad", Condition: "temperature ~ 1"}}
	if _, err := New(cfg); !errors.Is(err, types.ErrConfig) {
		t.Errorf("alerts: err = %v, want ErrConfig", err)
	}
}
