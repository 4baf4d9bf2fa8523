package events

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/solarflux/goesxrs/pkg/types"
)

// Event is one flare record.
type Event struct {
	EventDate    string // YYYY-MM-DD
	Location     [2]int // heliographic longitude, latitude in degrees
	StartTime    time.Time
	PeakTime     time.Time
	EndTime      time.Time
	Class        Class
	ActiveRegion int // NOAA number, 0 when unassigned
}

// TimeRange is a closed interval of time.
type TimeRange struct {
	Start, End time.Time
}

// Validate reports ErrOrdering when End precedes Start.
func (r TimeRange) Validate() error {
	if r.End.Before(r.Start) {
		return fmt.Errorf("events: range end %s before start %s: %w",
			r.End.Format(time.RFC3339), r.Start.Format(time.RFC3339), types.ErrOrdering)
	}
	return nil
}

// Contains reports whether t lies in r, bounds included.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Catalog supplies the flare events that start within a time range.
type Catalog interface {
	Events(ctx context.Context, r TimeRange) ([]Event, error)
}

// List returns the events from cat that start within r and are at least as
// strong as classFilter, ordered by start time. An empty filter keeps every
// event.
func List(ctx context.Context, cat Catalog, r TimeRange, classFilter string) ([]Event, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var floor Class
	if classFilter != "" {
		c, err := ParseClass(classFilter)
		if err != nil {
			return nil, fmt.Errorf("events: class filter: %w", err)
		}
		floor = c
	}

	all, err := cat.Events(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("events: catalog: %w", err)
	}
	out := make([]Event, 0, len(all))
	for _, ev := range all {
		if !r.Contains(ev.StartTime) {
			continue
		}
		if !floor.IsZero() && ev.Class.Less(floor) {
			continue
		}
		out = append(out, ev)
	}
	slices.SortStableFunc(out, func(a, b Event) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out, nil
}
