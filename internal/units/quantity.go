package units

import (
	"fmt"
	"slices"
	"strings"

	"github.com/solarflux/goesxrs/pkg/types"
)

// Dimension groups units that convert into one another.
type Dimension string

const (
	DimNone          Dimension = ""
	DimIrradiance    Dimension = "irradiance"
	DimTemperature   Dimension = "temperature"
	DimInverseVolume Dimension = "inverse_volume"
	DimPower         Dimension = "power"
	DimEnergy        Dimension = "energy"
	DimTime          Dimension = "time"
)

// Unit is a named unit with its factor to the dimension's base unit.
type Unit struct {
	Name  string
	Dim   Dimension
	Scale float64
}

// Units known to Parse. Base units: W/m**2, K, 1/cm**3, erg/s, erg, s.
var (
	Dimensionless = Unit{Name: "", Dim: DimNone, Scale: 1}

	WattPerSquareMeter      = Unit{Name: "W/m**2", Dim: DimIrradiance, Scale: 1}
	ErgPerSecondPerSquareCm = Unit{Name: "erg/(s cm**2)", Dim: DimIrradiance, Scale: 1e-3}

	Kelvin     = Unit{Name: "K", Dim: DimTemperature, Scale: 1}
	MegaKelvin = Unit{Name: "MK", Dim: DimTemperature, Scale: 1e6}

	PerCubicCentimeter = Unit{Name: "1/cm**3", Dim: DimInverseVolume, Scale: 1}
	PerCubicMeter      = Unit{Name: "1/m**3", Dim: DimInverseVolume, Scale: 1e-6}

	ErgPerSecond = Unit{Name: "erg/s", Dim: DimPower, Scale: 1}
	Watt         = Unit{Name: "W", Dim: DimPower, Scale: 1e7}

	Erg   = Unit{Name: "erg", Dim: DimEnergy, Scale: 1}
	Joule = Unit{Name: "J", Dim: DimEnergy, Scale: 1e7}

	Second = Unit{Name: "s", Dim: DimTime, Scale: 1}
)

var known = []Unit{
	WattPerSquareMeter, ErgPerSecondPerSquareCm,
	Kelvin, MegaKelvin,
	PerCubicCentimeter, PerCubicMeter,
	ErgPerSecond, Watt,
	Erg, Joule,
	Second,
}

// aliases maps alternative spellings to canonical names.
var aliases = map[string]string{
	"w/m^2":       "W/m**2",
	"w m-2":       "W/m**2",
	"erg/s/cm**2": "erg/(s cm**2)",
	"erg/s/cm^2":  "erg/(s cm**2)",
	"cm**-3":      "1/cm**3",
	"cm^-3":       "1/cm**3",
	"1/cm^3":      "1/cm**3",
	"m**-3":       "1/m**3",
	"erg s-1":     "erg/s",
	"megakelvin":  "MK",
}

// Parse resolves a unit name. The empty string is Dimensionless.
func Parse(name string) (Unit, error) {
	n := strings.TrimSpace(name)
	if canon, ok := aliases[strings.ToLower(n)]; ok {
		n = canon
	}
	if n == "" {
		return Dimensionless, nil
	}
	for _, u := range known {
		if u.Name == n {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("units: unknown unit %q: %w", name, types.ErrUnit)
}

func (u Unit) String() string {
	if u.Name == "" {
		return "dimensionless"
	}
	return u.Name
}

// Quantity is an array of values sharing one unit.
type Quantity struct {
	Values []float64
	Unit   Unit
}

// New returns a Quantity holding a copy of values.
func New(u Unit, values ...float64) Quantity {
	return Quantity{Values: slices.Clone(values), Unit: u}
}

// Plain wraps values with no unit attached.
func Plain(values ...float64) Quantity {
	return New(Dimensionless, values...)
}

// Scalar lifts a single value to a one-element Quantity.
func Scalar(v float64, u Unit) Quantity {
	return Quantity{Values: []float64{v}, Unit: u}
}

// Assume attaches u to a dimensionless q. Quantities that already carry a
// unit are returned unchanged.
func (q Quantity) Assume(u Unit) Quantity {
	if q.Unit.Dim != DimNone {
		return q
	}
	return Quantity{Values: q.Values, Unit: u}
}

// Len returns the number of values.
func (q Quantity) Len() int { return len(q.Values) }

// In returns the values expressed in u as a new slice. Dimensionless values
// are returned unchanged.
func (q Quantity) In(u Unit) ([]float64, error) {
	out := slices.Clone(q.Values)
	if q.Unit.Dim == DimNone || q.Unit == u {
		return out, nil
	}
	if q.Unit.Dim != u.Dim {
		return nil, fmt.Errorf("units: cannot convert %s to %s: %w", q.Unit, u, types.ErrUnit)
	}
	f := q.Unit.Scale / u.Scale
	for i := range out {
		out[i] *= f
	}
	return out, nil
}

// To converts q into u.
func (q Quantity) To(u Unit) (Quantity, error) {
	v, err := q.In(u)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Values: v, Unit: u}, nil
}

func (q Quantity) String() string {
	return fmt.Sprintf("%v %s", q.Values, q.Unit)
}
