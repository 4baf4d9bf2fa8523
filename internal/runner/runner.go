package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/solarflux/goesxrs/internal/alerts"
	"github.com/solarflux/goesxrs/internal/compute"
	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/export"
	"github.com/solarflux/goesxrs/internal/loader"
	"github.com/solarflux/goesxrs/pkg/types"
)

// Failure records a source that could not be analysed.
type Failure struct {
	SourceID string
	Err      error
}

// Outcome is the result of one Run.
type Outcome struct {
	RunID    string
	Reports  []*export.Report // in source order, failed sources omitted
	Failures []Failure
	Elapsed  time.Duration
}

// Runner analyses the sources of one Config. Build a new Runner when the
// config changes.
type Runner struct {
	cfg    *config.Config
	engine *compute.Engine
	alerts *alerts.Engine

	// open builds the loader for a source; tests replace it.
	open func(config.Source) (loader.Loader, error)
}

// New builds a Runner for cfg.
func New(cfg *config.Config) (*Runner, error) {
	ab, err := types.ParseAbundance(cfg.Analysis.Abundance)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	eng, err := compute.NewEngine(compute.Options{Abundance: ab, Cumulative: cfg.Analysis.Cumulative})
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	al, err := alerts.New(cfg.Alerts)
	if err != nil {
		return nil, fmt.Errorf("runner: alerts: %w", err)
	}
	return &Runner{cfg: cfg, engine: eng, alerts: al, open: loader.New}, nil
}

// Run analyses every source. It returns an error only when ctx is done;
// per-source failures are collected in the Outcome.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	started := time.Now()
	out := &Outcome{RunID: uuid.NewString()}
	reports := make([]*export.Report, len(r.cfg.Sources))
	errs := make([]error, len(r.cfg.Sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Analysis.Workers)
	for i, src := range r.cfg.Sources {
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := r.analyse(gctx, src)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				errs[i] = err
				return nil
			}
			rep.RunID = out.RunID
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	for i, src := range r.cfg.Sources {
		if errs[i] != nil {
			slog.Error("runner: source failed", "source", src.ID, "err", errs[i])
			out.Failures = append(out.Failures, Failure{SourceID: src.ID, Err: errs[i]})
			continue
		}
		out.Reports = append(out.Reports, reports[i])
	}
	out.Elapsed = time.Since(started)
	slog.Info("runner: run complete",
		"run_id", out.RunID,
		"sources", len(r.cfg.Sources),
		"failed", len(out.Failures),
		"elapsed", out.Elapsed,
	)
	return out, nil
}

func (r *Runner) analyse(ctx context.Context, src config.Source) (*export.Report, error) {
	l, err := r.open(src)
	if err != nil {
		return nil, err
	}
	lc, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := r.engine.Process(compute.FromLightcurve(lc))
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", src.ID, err)
	}
	rep := export.Summarize(src.ID, res)
	rep.Alerts = r.alerts.Evaluate(src.ID, res.Lightcurve)
	slog.Debug("runner: source analysed",
		"source", src.ID,
		"samples", rep.Samples,
		"peak_class", rep.PeakClass,
		"alerts", len(rep.Alerts),
	)
	return rep, nil
}
