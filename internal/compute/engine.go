package compute

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/solarflux/goesxrs/internal/calibration"
	"github.com/solarflux/goesxrs/internal/lightcurve"
	"github.com/solarflux/goesxrs/internal/units"
	"github.com/solarflux/goesxrs/pkg/types"
)

// RawArrays is caller-supplied data not wrapped in a lightcurve.
// Temperature and EM may be left empty; they are then derived from the
// fluxes. Times may be nil.
type RawArrays struct {
	Long        units.Quantity // 1-8 Å
	Short       units.Quantity // 0.5-4 Å
	Temperature units.Quantity
	EM          units.Quantity
	Times       []time.Time
	Satellite   types.Satellite
	Date        time.Time
}

// Input is either RawArrays or a lightcurve. Build it with FromRaw or
// FromLightcurve; the zero Input is rejected with ErrType.
type Input struct {
	raw   *RawArrays
	curve *lightcurve.Lightcurve
}

// FromRaw wraps raw arrays.
func FromRaw(r RawArrays) Input { return Input{raw: &r} }

// FromLightcurve wraps a lightcurve. The lightcurve is never modified.
func FromLightcurve(lc *lightcurve.Lightcurve) Input { return Input{curve: lc} }

// Options configure an Engine.
type Options struct {
	// Abundance defaults to coronal.
	Abundance types.Abundance

	// Cumulative also returns running totals for integrated series. Raw
	// input without Times then fails with ErrMalformedCall.
	Cumulative bool
}

// Result is the output of an Engine operation. Lightcurve is a derived copy
// when the input was a lightcurve and nil otherwise. RadLoss and Luminosity
// are nil when the operation did not compute them.
type Result struct {
	Key         calibration.Key
	Lightcurve  *lightcurve.Lightcurve
	Times       []time.Time
	Temperature units.Quantity
	EM          units.Quantity
	RadLoss     *RadLoss
	Luminosity  *Luminosity
}

// Fields merges the radiative loss and luminosity keys with temperature and em.
func (r *Result) Fields() map[string]any {
	out := make(map[string]any)
	if r.Temperature.Len() > 0 {
		out[lightcurve.ColTemperature] = r.Temperature.Values
	}
	if r.EM.Len() > 0 {
		out[lightcurve.ColEM] = r.EM.Values
	}
	if r.RadLoss != nil {
		for k, v := range r.RadLoss.Fields() {
			out[k] = v
		}
	}
	if r.Luminosity != nil {
		for k, v := range r.Luminosity.Fields() {
			out[k] = v
		}
	}
	return out
}

// Engine runs the derivations over an Input. It holds only its options and
// is safe for concurrent use.
type Engine struct {
	opts Options
}

// NewEngine validates opts and returns an Engine.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Abundance == "" {
		opts.Abundance = types.Coronal
	}
	if err := opts.Abundance.Validate(); err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	return &Engine{opts: opts}, nil
}

// TempEM derives temperature and emission measure. For a lightcurve the
// result carries a copy with temperature and em columns added.
func (e *Engine) TempEM(in Input) (*Result, error) {
	res, err := e.prepare(in)
	if err != nil {
		return nil, err
	}
	if err := e.deriveTempEM(res, true); err != nil {
		return nil, err
	}
	return res.Result, nil
}

// RadiativeLossRate computes the radiative loss rate, deriving temperature
// and emission measure first when the input lacks either.
func (e *Engine) RadiativeLossRate(in Input) (*Result, error) {
	res, err := e.prepare(in)
	if err != nil {
		return nil, err
	}
	if err := e.radLoss(res); err != nil {
		return nil, err
	}
	return res.Result, nil
}

// XrayLuminosity computes the channel luminosities. For a lightcurve the
// Sun-Earth distance is taken at the first sample.
func (e *Engine) XrayLuminosity(in Input) (*Result, error) {
	res, err := e.prepare(in)
	if err != nil {
		return nil, err
	}
	if err := e.luminosity(res); err != nil {
		return nil, err
	}
	return res.Result, nil
}

// Process runs temperature/EM, radiative loss and luminosity in one pass.
func (e *Engine) Process(in Input) (*Result, error) {
	res, err := e.prepare(in)
	if err != nil {
		return nil, err
	}
	if err := e.radLoss(res); err != nil {
		return nil, err
	}
	if err := e.luminosity(res); err != nil {
		return nil, err
	}
	slog.Debug("compute: processed",
		"satellite", res.Key.Satellite,
		"abundance", res.Key.Abundance,
		"samples", res.Temperature.Len(),
	)
	return res.Result, nil
}

// working carries the resolved input alongside the Result being built.
type working struct {
	*Result
	long, short units.Quantity
	// hasFlux is false for raw input that supplied neither channel.
	hasFlux bool
}

// prepare resolves the Input into a working set. A lightcurve must carry
// xrsa and xrsb columns and TELESCOP metadata.
func (e *Engine) prepare(in Input) (*working, error) {
	switch {
	case in.curve != nil && in.raw == nil:
		return e.prepareCurve(in.curve)
	case in.raw != nil && in.curve == nil:
		return e.prepareRaw(in.raw), nil
	default:
		return nil, fmt.Errorf("compute: input is neither raw arrays nor a lightcurve: %w", types.ErrType)
	}
}

func (e *Engine) prepareCurve(src *lightcurve.Lightcurve) (*working, error) {
	long, okB := src.Column(lightcurve.ColXRSB)
	short, okA := src.Column(lightcurve.ColXRSA)
	if !okA || !okB {
		return nil, fmt.Errorf("compute: lightcurve lacks %s/%s columns: %w",
			lightcurve.ColXRSA, lightcurve.ColXRSB, types.ErrType)
	}
	sat, err := src.Satellite()
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	lc := src.Clone()
	w := &working{
		Result: &Result{
			Key:        calibration.Key{Satellite: sat, Abundance: e.opts.Abundance, Date: lc.Start()},
			Lightcurve: lc,
			Times:      lc.Times,
		},
		long:    units.New(units.WattPerSquareMeter, long...),
		short:   units.New(units.WattPerSquareMeter, short...),
		hasFlux: true,
	}
	if t, ok := lc.Column(lightcurve.ColTemperature); ok {
		w.Temperature = units.New(units.MegaKelvin, t...)
	}
	if em, ok := lc.Column(lightcurve.ColEM); ok {
		w.EM = units.New(units.PerCubicCentimeter, em...)
	}
	return w, nil
}

func (e *Engine) prepareRaw(r *RawArrays) *working {
	return &working{
		Result: &Result{
			Key:         calibration.Key{Satellite: r.Satellite, Abundance: e.opts.Abundance, Date: r.Date},
			Times:       r.Times,
			Temperature: r.Temperature,
			EM:          r.EM,
		},
		long:    r.Long,
		short:   r.Short,
		hasFlux: r.Long.Len() > 0 || r.Short.Len() > 0,
	}
}

// deriveTempEM computes temperature and em from the fluxes. Unless force is
// set, it keeps values already present when both are.
func (e *Engine) deriveTempEM(w *working, force bool) error {
	if !force && w.Temperature.Len() > 0 && w.EM.Len() > 0 {
		return nil
	}
	if !w.hasFlux {
		return fmt.Errorf("compute: no fluxes to derive temperature and emission measure from: %w",
			types.ErrMalformedCall)
	}
	temp, em, err := TemperatureEM(w.long, w.short, w.Key)
	if err != nil {
		return err
	}
	w.Temperature, w.EM = temp, em
	return w.setColumns(
		column{lightcurve.ColTemperature, temp.Values},
		column{lightcurve.ColEM, em.Values},
	)
}

func (e *Engine) radLoss(w *working) error {
	if err := e.deriveTempEM(w, false); err != nil {
		return err
	}
	rl, err := CalcRadLoss(w.Temperature, w.EM, w.Times, e.opts.Cumulative)
	if err != nil {
		return err
	}
	w.RadLoss = &rl
	return w.setColumns(column{lightcurve.ColRadLossRate, rl.Rate})
}

func (e *Engine) luminosity(w *working) error {
	if !w.hasFlux {
		return fmt.Errorf("compute: no fluxes to derive luminosity from: %w", types.ErrMalformedCall)
	}
	lx, err := GoesLX(w.long, w.short, w.Times, w.Key.Date, e.opts.Cumulative)
	if err != nil {
		return err
	}
	w.Luminosity = &lx
	return w.setColumns(
		column{lightcurve.ColLuminosityXRSA, lx.Short.Rate},
		column{lightcurve.ColLuminosityXRSB, lx.Long.Rate},
	)
}

type column struct {
	name   string
	values []float64
}

func (w *working) setColumns(cols ...column) error {
	if w.Lightcurve == nil {
		return nil
	}
	for _, c := range cols {
		if err := w.Lightcurve.SetColumn(c.name, c.values); err != nil {
			return fmt.Errorf("compute: %w", err)
		}
	}
	return nil
}
