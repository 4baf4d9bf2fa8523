package alerts

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solarflux/goesxrs/internal/config"
	"github.com/solarflux/goesxrs/internal/lightcurve"
)

// Alert is one fired rule for one source.
type Alert struct {
	ID       string    `json:"id"`
	RuleName string    `json:"rule_name"`
	SourceID string    `json:"source_id"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
	Value    float64   `json:"value"`
	FirstAt  time.Time `json:"first_at"`
	PeakAt   time.Time `json:"peak_at"`
	Samples  int       `json:"samples"`
}

type rule struct {
	name     string
	severity string
	text     string
	cond     condition
}

// Engine evaluates compiled alert rules. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	rules []rule
}

// New compiles cfg's rules. An Engine with no rules is valid; Evaluate then
// returns nothing.
func New(cfg config.AlertsConfig) (*Engine, error) {
	e := &Engine{rules: make([]rule, 0, len(cfg.Rules))}
	for _, r := range cfg.Rules {
		c, err := parseCondition(r.Condition)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		sev := r.Severity
		if sev == "" {
			sev = "warning"
		}
		e.rules = append(e.rules, rule{name: r.Name, severity: sev, text: r.Condition, cond: c})
	}
	return e, nil
}

// Evaluate tests every rule against lc. Rules over columns lc lacks are
// skipped.
func (e *Engine) Evaluate(sourceID string, lc *lightcurve.Lightcurve) []Alert {
	var out []Alert
	for _, r := range e.rules {
		col, ok := lc.Column(r.cond.field)
		if !ok {
			slog.Debug("alerts: column missing, rule skipped",
				"rule", r.name, "source", sourceID, "column", r.cond.field)
			continue
		}

		first, peak, hits := -1, -1, 0
		for i, v := range col {
			if !compareFloat(v, r.cond.op, r.cond.threshold) {
				continue
			}
			hits++
			if first < 0 {
				first, peak = i, i
			} else if r.cond.moreExtreme(v, col[peak]) {
				peak = i
			}
		}
		if hits == 0 {
			continue
		}

		a := Alert{
			ID:       uuid.NewString(),
			RuleName: r.name,
			SourceID: sourceID,
			Severity: r.severity,
			Value:    col[peak],
			FirstAt:  lc.Times[first],
			PeakAt:   lc.Times[peak],
			Samples:  hits,
		}
		a.Message = fmt.Sprintf("[%s] %s fired on %s: %s, peak %s at %s",
			a.Severity, r.name, sourceID, r.text, r.cond.format(a.Value), a.PeakAt.Format(time.RFC3339))
		slog.Warn("alerts: rule fired",
			"rule", r.name,
			"source", sourceID,
			"value", a.Value,
			"severity", a.Severity,
		)
		out = append(out, a)
	}
	return out
}
