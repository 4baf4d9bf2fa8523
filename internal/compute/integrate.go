package compute

import (
	"fmt"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/solarflux/goesxrs/pkg/types"
)

// KeyDT is the result key for the per-sample time weights.
const KeyDT = "dt"

// Series is a per-sample rate and, when sample times were given, its time
// integral. DT is nil without sample times; Cumulative is nil unless it was
// requested.
type Series struct {
	Rate       []float64
	DT         []float64 // seconds
	Integral   float64
	Cumulative []float64
}

// Timed reports whether the series was integrated over sample times.
func (s Series) Timed() bool { return s.DT != nil }

// Cumulated reports whether the running total was computed.
func (s Series) Cumulated() bool { return s.Cumulative != nil }

func (s Series) fields(out map[string]any, rateKey, intKey, cumulKey string) {
	out[rateKey] = s.Rate
	if s.Timed() {
		out[intKey] = s.Integral
		out[KeyDT] = s.DT
	}
	if s.Cumulated() {
		out[cumulKey] = s.Cumulative
	}
}

// Integrate returns values as a Series. With times, each sample is weighted
// by Intervals(times) and summed into Integral; with cumulative, the running
// sum is kept too. times must be nil or match values in length.
func Integrate(values []float64, times []time.Time, cumulative bool) (Series, error) {
	if err := checkCumulative(times, cumulative); err != nil {
		return Series{}, err
	}
	s := Series{Rate: slices.Clone(values)}
	if times == nil {
		return s, nil
	}
	if len(times) != len(values) {
		return Series{}, fmt.Errorf("compute: %d timestamps for %d values: %w: %w",
			len(times), len(values), types.ErrMalformedCall, types.ErrLengthMismatch)
	}
	dt, err := Intervals(times)
	if err != nil {
		return Series{}, err
	}

	weighted := floats.MulTo(make([]float64, len(values)), s.Rate, dt)
	s.DT = dt
	s.Integral = floats.Sum(weighted)
	if cumulative {
		s.Cumulative = floats.CumSum(make([]float64, len(weighted)), weighted)
	}
	return s, nil
}

// Intervals returns the time each sample stands for, in seconds: half the
// span between its neighbours, or half the single adjacent gap at either
// end. times must not go backwards.
func Intervals(times []time.Time) ([]float64, error) {
	n := len(times)
	for i := 1; i < n; i++ {
		if times[i].Before(times[i-1]) {
			return nil, fmt.Errorf("compute: sample %d at %s precedes sample %d at %s: %w",
				i, times[i].Format(time.RFC3339Nano), i-1, times[i-1].Format(time.RFC3339Nano), types.ErrOrdering)
		}
	}

	dt := make([]float64, n)
	for i := range dt {
		var span float64
		if i > 0 {
			span += times[i].Sub(times[i-1]).Seconds()
		}
		if i < n-1 {
			span += times[i+1].Sub(times[i]).Seconds()
		}
		dt[i] = span / 2
	}
	return dt, nil
}

func checkCumulative(times []time.Time, cumulative bool) error {
	if cumulative && times == nil {
		return fmt.Errorf("compute: cumulative integration requires timestamps: %w", types.ErrMalformedCall)
	}
	return nil
}
