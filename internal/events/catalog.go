package events

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/solarflux/goesxrs/pkg/types"
)

// timeLayouts are accepted for event timestamps, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type record struct {
	EventDate    string `yaml:"event_date"`
	Location     []int  `yaml:"location"`
	StartTime    string `yaml:"start_time"`
	PeakTime     string `yaml:"peak_time"`
	EndTime      string `yaml:"end_time"`
	Class        string `yaml:"class"`
	ActiveRegion int    `yaml:"active_region"`
}

// FileCatalog is a Catalog backed by a YAML file. The file is read on every
// call so edits are picked up without a restart.
type FileCatalog struct {
	Path string
}

// NewFileCatalog returns a catalog reading path.
func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{Path: path}
}

// Events implements Catalog.
func (c *FileCatalog) Events(ctx context.Context, r TimeRange) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("events: read catalog: %w", err)
	}
	evs, err := Parse(data)
	if err != nil {
		return nil, err
	}
	out := evs[:0]
	for _, ev := range evs {
		if r.Contains(ev.StartTime) {
			out = append(out, ev)
		}
	}
	slog.Debug("events: catalog read", "path", c.Path, "events", len(evs), "in_range", len(out))
	return out, nil
}

// Parse decodes a YAML list of events.
func Parse(data []byte) ([]Event, error) {
	var recs []record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("events: parse yaml: %w: %w", types.ErrConfig, err)
	}
	out := make([]Event, 0, len(recs))
	for i, rec := range recs {
		ev, err := rec.event()
		if err != nil {
			return nil, fmt.Errorf("events: record %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r record) event() (Event, error) {
	ev := Event{EventDate: r.EventDate, ActiveRegion: r.ActiveRegion}
	switch len(r.Location) {
	case 0:
	case 2:
		ev.Location = [2]int{r.Location[0], r.Location[1]}
	default:
		return Event{}, fmt.Errorf("location needs 2 values, got %d: %w", len(r.Location), types.ErrConfig)
	}

	var err error
	if ev.StartTime, err = parseTime("start_time", r.StartTime); err != nil {
		return Event{}, err
	}
	if ev.PeakTime, err = parseTime("peak_time", r.PeakTime); err != nil {
		return Event{}, err
	}
	if ev.EndTime, err = parseTime("end_time", r.EndTime); err != nil {
		return Event{}, err
	}
	if ev.EndTime.Before(ev.StartTime) {
		return Event{}, fmt.Errorf("end_time before start_time: %w", types.ErrOrdering)
	}
	if ev.EventDate == "" {
		ev.EventDate = ev.StartTime.Format(time.DateOnly)
	}
	if r.Class != "" {
		if ev.Class, err = ParseClass(r.Class); err != nil {
			return Event{}, err
		}
	}
	return ev, nil
}

func parseTime(field, s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%s %q: unrecognised time: %w", field, s, types.ErrConfig)
}
