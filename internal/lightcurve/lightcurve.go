package lightcurve

import (
	"fmt"
	"slices"
	"time"

	"github.com/solarflux/goesxrs/pkg/types"
)

// Column names.
const (
	ColXRSA           = "xrsa"
	ColXRSB           = "xrsb"
	ColTemperature    = "temperature"
	ColEM             = "em"
	ColRadLossRate    = "rad_loss_rate"
	ColLuminosityXRSA = "luminosity_xrsa"
	ColLuminosityXRSB = "luminosity_xrsb"
)

// MetaTelescope is the metadata key holding the spacecraft name.
const MetaTelescope = "TELESCOP"

// Lightcurve is a table of samples indexed by time.
type Lightcurve struct {
	Times []time.Time
	Meta  map[string]string

	columns map[string][]float64
	order   []string
}

// New returns an empty Lightcurve over a copy of times. meta may be nil.
// Times is never nil, so an empty lightcurve still has a time axis.
func New(times []time.Time, meta map[string]string) *Lightcurve {
	m := make(map[string]string, len(meta))
	for k, v := range meta {
		m[k] = v
	}
	ts := make([]time.Time, len(times))
	copy(ts, times)
	return &Lightcurve{
		Times:   ts,
		Meta:    m,
		columns: make(map[string][]float64),
	}
}

// Len returns the number of samples.
func (lc *Lightcurve) Len() int { return len(lc.Times) }

// Column returns the named column. The slice is shared; do not modify it.
func (lc *Lightcurve) Column(name string) ([]float64, bool) {
	v, ok := lc.columns[name]
	return v, ok
}

// Has reports whether the named column exists.
func (lc *Lightcurve) Has(name string) bool {
	_, ok := lc.columns[name]
	return ok
}

// SetColumn stores a copy of values under name, replacing any existing
// column. values must have one entry per sample.
func (lc *Lightcurve) SetColumn(name string, values []float64) error {
	if len(values) != lc.Len() {
		return fmt.Errorf("lightcurve: column %q has %d values for %d samples: %w",
			name, len(values), lc.Len(), types.ErrLengthMismatch)
	}
	if _, ok := lc.columns[name]; !ok {
		lc.order = append(lc.order, name)
	}
	lc.columns[name] = slices.Clone(values)
	return nil
}

// Delete removes the named column if present.
func (lc *Lightcurve) Delete(name string) {
	if _, ok := lc.columns[name]; !ok {
		return
	}
	delete(lc.columns, name)
	lc.order = slices.DeleteFunc(lc.order, func(s string) bool { return s == name })
}

// Columns returns column names in insertion order.
func (lc *Lightcurve) Columns() []string {
	return slices.Clone(lc.order)
}

// Clone returns a deep copy.
func (lc *Lightcurve) Clone() *Lightcurve {
	out := New(lc.Times, lc.Meta)
	for _, name := range lc.order {
		out.columns[name] = slices.Clone(lc.columns[name])
	}
	out.order = slices.Clone(lc.order)
	return out
}

// Satellite parses the TELESCOP metadata.
func (lc *Lightcurve) Satellite() (types.Satellite, error) {
	tel, ok := lc.Meta[MetaTelescope]
	if !ok {
		return 0, fmt.Errorf("lightcurve: no %s metadata: %w", MetaTelescope, types.ErrConfig)
	}
	return types.ParseSatellite(tel)
}

// Start returns the first sample time, or the zero time when empty.
func (lc *Lightcurve) Start() time.Time {
	if len(lc.Times) == 0 {
		return time.Time{}
	}
	return lc.Times[0]
}

// End returns the last sample time, or the zero time when empty.
func (lc *Lightcurve) End() time.Time {
	if len(lc.Times) == 0 {
		return time.Time{}
	}
	return lc.Times[len(lc.Times)-1]
}

// Equal reports whether a and b hold the same times, metadata and columns.
// Column order is ignored.
func Equal(a, b *Lightcurve) bool {
	if a.Len() != b.Len() || len(a.columns) != len(b.columns) || len(a.Meta) != len(b.Meta) {
		return false
	}
	for i := range a.Times {
		if !a.Times[i].Equal(b.Times[i]) {
			return false
		}
	}
	for k, v := range a.Meta {
		if b.Meta[k] != v {
			return false
		}
	}
	for name, col := range a.columns {
		other, ok := b.columns[name]
		if !ok || !slices.Equal(col, other) {
			return false
		}
	}
	return true
}
