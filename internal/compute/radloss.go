package compute

import (
	"fmt"
	"time"

	"github.com/solarflux/goesxrs/internal/calibration"
	"github.com/solarflux/goesxrs/internal/units"
	"github.com/solarflux/goesxrs/pkg/types"
)

// Result keys for radiative loss.
const (
	KeyRadLossRate  = "rad_loss_rate"
	KeyRadLossInt   = "rad_loss_int"
	KeyRadLossCumul = "rad_loss_cumul"
)

// RadLoss is the radiative loss rate in erg/s and, with sample times, the
// energy radiated in erg.
type RadLoss struct {
	Series
}

// Fields returns the result keyed by rad_loss_rate, rad_loss_int,
// rad_loss_cumul and dt. Only keys for computed values are present.
func (r RadLoss) Fields() map[string]any {
	out := make(map[string]any, 4)
	r.fields(out, KeyRadLossRate, KeyRadLossInt, KeyRadLossCumul)
	return out
}

// CalcRadLoss computes the radiative loss rate em * Λ(T) for each sample.
// times may be nil; cumulative requires times.
func CalcRadLoss(temp, em units.Quantity, times []time.Time, cumulative bool) (RadLoss, error) {
	if err := checkCumulative(times, cumulative); err != nil {
		return RadLoss{}, err
	}
	if err := sameLength("temperature and emission measure", temp.Len(), em.Len()); err != nil {
		return RadLoss{}, err
	}
	t, err := convert(temp.Assume(units.MegaKelvin), units.MegaKelvin, "temperature")
	if err != nil {
		return RadLoss{}, err
	}
	e, err := convert(em.Assume(units.PerCubicCentimeter), units.PerCubicCentimeter, "emission measure")
	if err != nil {
		return RadLoss{}, err
	}

	rate := make([]float64, len(t))
	for i := range t {
		if err := checkTemperature(i, t[i]); err != nil {
			return RadLoss{}, err
		}
		if !(e[i] >= 0) {
			return RadLoss{}, fmt.Errorf("compute: emission measure %g at sample %d: %w", e[i], i, types.ErrDomain)
		}
		coeff, err := calibration.RadiativeLoss.Eval(t[i])
		if err != nil {
			return RadLoss{}, fmt.Errorf("compute: radiative loss at sample %d: %w", i, err)
		}
		rate[i] = e[i] * coeff
	}

	s, err := Integrate(rate, times, cumulative)
	if err != nil {
		return RadLoss{}, err
	}
	return RadLoss{Series: s}, nil
}
