package compute

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/solarflux/goesxrs/internal/units"
	"github.com/solarflux/goesxrs/pkg/types"
)

const (
	refRadLossRate = 3.01851392e26 // erg/s at 11 MK, 4e48 cm^-3
	refRadLossInt  = 3.01851392e27 // erg over six samples 2 s apart
)

func radLossInputs() (units.Quantity, units.Quantity) {
	return units.New(units.MegaKelvin, repeat(11, 6)...),
		units.New(units.PerCubicCentimeter, repeat(4e48, 6)...)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestCalcRadLoss_PlainArrays(t *testing.T) {
	times := sampleTimes(6)
	rl, err := CalcRadLoss(units.Plain(repeat(11, 6)...), units.Plain(repeat(4e48, 6)...), times, true)
	if err != nil {
		t.Fatalf("CalcRadLoss: %v", err)
	}
	if diff := cmp.Diff(repeat(refRadLossRate, 6), rl.Rate, approx); diff != "" {
		t.Errorf("rate mismatch (-want +got):\n%s", diff)
	}
	if !almostEqual(rl.Integral, refRadLossInt, 1e-6) {
		t.Errorf("integral = %g, want %g", rl.Integral, refRadLossInt)
	}

	temp, em := radLossInputs()
	withUnits, err := CalcRadLoss(temp, em, times, true)
	if err != nil {
		t.Fatalf("CalcRadLoss: %v", err)
	}
	if diff := cmp.Diff(withUnits.Cumulative, rl.Cumulative); diff != "" {
		t.Errorf("plain arrays differ from MK and cm^-3 (-units +plain):\n%s", diff)
	}
}

func TestCalcRadLoss(t *testing.T) {
	temp, em := radLossInputs()
	tests := []struct {
		name       string
		times      []time.Time
		cumulative bool
		wantKeys   []string
	}{
		{"rate only", nil, false, []string{KeyRadLossRate}},
		{"with times", sampleTimes(6), false, []string{KeyRadLossRate, KeyRadLossInt, KeyDT}},
		{"cumulative", sampleTimes(6), true, []string{KeyRadLossRate, KeyRadLossInt, KeyRadLossCumul, KeyDT}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rl, err := CalcRadLoss(temp, em, tc.times, tc.cumulative)
			if err != nil {
				t.Fatalf("CalcRadLoss: %v", err)
			}
			if diff := cmp.Diff(tc.wantKeys, keys(rl.Fields()), cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(repeat(refRadLossRate, 6), rl.Rate, approx); diff != "" {
				t.Errorf("rate mismatch (-want +got):\n%s", diff)
			}
			if tc.times != nil && !almostEqual(rl.Integral, refRadLossInt, 1e-6) {
				t.Errorf("integral = %g, want %g", rl.Integral, refRadLossInt)
			}
		})
	}
}

func TestCalcRadLoss_Cumulative(t *testing.T) {
	temp, em := radLossInputs()
	rl, err := CalcRadLoss(temp, em, sampleTimes(6), true)
	if err != nil {
		t.Fatalf("CalcRadLoss: %v", err)
	}
	want := []float64{3.0185e26, 9.0555e26, 1.5093e27, 2.1130e27, 2.7167e27, 3.0185e27}
	if diff := cmp.Diff(want, rl.Cumulative, approx); diff != "" {
		t.Errorf("cumulative mismatch (-want +got):\n%s", diff)
	}
}

func TestCalcRadLoss_KelvinInput(t *testing.T) {
	rl, err := CalcRadLoss(units.New(units.Kelvin, 1.1e7), units.New(units.PerCubicMeter, 4e54), nil, false)
	if err != nil {
		t.Fatalf("CalcRadLoss: %v", err)
	}
	if !almostEqual(rl.Rate[0], refRadLossRate, 1e-6) {
		t.Errorf("rate = %g, want %g", rl.Rate[0], refRadLossRate)
	}
}

func TestCalcRadLoss_Errors(t *testing.T) {
	temp, em := radLossInputs()
	tests := []struct {
		name       string
		temp, em   units.Quantity
		times      []time.Time
		cumulative bool
		want       []error
	}{
		{"cumulative without times", temp, em, nil, true, []error{types.ErrMalformedCall}},
		{"cumulative checked before lengths", temp, units.New(units.PerCubicCentimeter, 4e48), nil, true, []error{types.ErrMalformedCall}},
		{"em too short", temp, units.New(units.PerCubicCentimeter, 4e48), nil, false, []error{types.ErrLengthMismatch}},
		{"times too short", temp, em, sampleTimes(5), false, []error{types.ErrMalformedCall, types.ErrLengthMismatch}},
		{"temperature too big", units.New(units.MegaKelvin, 101), units.New(units.PerCubicCentimeter, 4e48), nil, false, []error{types.ErrDomain}},
		{"temperature zero", units.New(units.MegaKelvin, 0), units.New(units.PerCubicCentimeter, 4e48), nil, false, []error{types.ErrDomain}},
		{"negative em", units.New(units.MegaKelvin, 11), units.New(units.PerCubicCentimeter, -1), nil, false, []error{types.ErrDomain}},
		{"em in kelvin", temp, units.New(units.Kelvin, repeat(4e48, 6)...), nil, false, []error{types.ErrUnit}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalcRadLoss(tc.temp, tc.em, tc.times, tc.cumulative)
			if err == nil {
				t.Fatal("expected error")
			}
			for _, w := range tc.want {
				if !errors.Is(err, w) {
					t.Errorf("err = %v, want %v", err, w)
				}
			}
		})
	}
}
