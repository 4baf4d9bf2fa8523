package export

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/solarflux/goesxrs/internal/alerts"
	"github.com/solarflux/goesxrs/internal/compute"
	"github.com/solarflux/goesxrs/internal/events"
	"github.com/solarflux/goesxrs/internal/lightcurve"
)

// Report summarises one analysed source.
type Report struct {
	ID          string    `json:"id"`
	RunID       string    `json:"run_id,omitempty"`
	SourceID    string    `json:"source_id"`
	Telescope   string    `json:"telescope"`
	Abundance   string    `json:"abundance"`
	GeneratedAt time.Time `json:"generated_at"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Samples     int       `json:"samples"`

	PeakFlux        float64   `json:"peak_flux"` // W m^-2, 1-8 Å
	PeakClass       string    `json:"peak_class,omitempty"`
	PeakTime        time.Time `json:"peak_time"`
	PeakTemperature float64   `json:"peak_temperature"` // MK
	PeakEM          float64   `json:"peak_em"`          // cm^-3

	RadiatedEnergy float64 `json:"rad_loss_int"` // erg
	LongEnergy     float64 `json:"longlum_int"`  // erg
	ShortEnergy    float64 `json:"shortlum_int"` // erg

	Alerts []alerts.Alert `json:"alerts,omitempty"`
	Series map[string]any `json:"series,omitempty"`

	Lightcurve *lightcurve.Lightcurve `json:"-"`
}

// Summarize builds a Report for res. Series keeps every per-sample value
// res carries.
func Summarize(sourceID string, res *compute.Result) *Report {
	r := &Report{
		ID:          uuid.NewString(),
		SourceID:    sourceID,
		Telescope:   res.Key.Satellite.String(),
		Abundance:   string(res.Key.Abundance),
		GeneratedAt: time.Now().UTC(),
		Samples:     res.Temperature.Len(),
		Series:      res.Fields(),
		Lightcurve:  res.Lightcurve,
	}
	if n := len(res.Times); n > 0 {
		r.Start, r.End = res.Times[0], res.Times[n-1]
	}
	if res.Temperature.Len() > 0 {
		r.PeakTemperature = slices.Max(res.Temperature.Values)
	}
	if res.EM.Len() > 0 {
		r.PeakEM = slices.Max(res.EM.Values)
	}
	if res.RadLoss != nil {
		r.RadiatedEnergy = res.RadLoss.Integral
	}
	if res.Luminosity != nil {
		r.LongEnergy = res.Luminosity.Long.Integral
		r.ShortEnergy = res.Luminosity.Short.Integral
	}
	if res.Lightcurve != nil {
		if xrsb, ok := res.Lightcurve.Column(lightcurve.ColXRSB); ok && len(xrsb) > 0 {
			i := argmax(xrsb)
			r.PeakFlux = xrsb[i]
			r.PeakTime = res.Lightcurve.Times[i]
			r.PeakClass = events.ClassFromFlux(r.PeakFlux).String()
		}
	}
	return r
}

func argmax(v []float64) int {
	best := 0
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
