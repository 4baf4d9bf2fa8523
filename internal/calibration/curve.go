package calibration

import (
	"fmt"
	"math"

	"github.com/solarflux/goesxrs/pkg/types"
)

// Curve maps x to y through log10(y) = c0 + c1*log10(x) + c2*log10(x)^2.
// It is defined for Min <= x <= Max; x must also be positive.
type Curve struct {
	Coeffs [3]float64
	Min    float64
	Max    float64
}

// Contains reports whether x lies in the curve's domain.
func (c Curve) Contains(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return false
	}
	return x >= c.Min && x <= c.Max
}

// Eval returns the curve value at x, or ErrDomain outside the domain.
func (c Curve) Eval(x float64) (float64, error) {
	if !c.Contains(x) {
		return 0, fmt.Errorf("calibration: %g outside [%g, %g]: %w", x, c.Min, c.Max, types.ErrDomain)
	}
	return math.Pow(10, horner(c.Coeffs, math.Log10(x))), nil
}

// horner evaluates the polynomial with coefficients in ascending order.
func horner(coeffs [3]float64, x float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}
