package types

import (
	"errors"
	"testing"
)

func TestParseSatellite(t *testing.T) {
	tests := []struct {
		in      string
		want    Satellite
		wantErr bool
	}{
		{"GOES 15", 15, false},
		{"goes-13", 13, false},
		{"6", 6, false},
		{"GOES 0", 0, true},
		{"GOES -1", 0, true},
		{"SDO", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSatellite(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrConfig) {
					t.Fatalf("err = %v, want ErrConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSatellite: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSatelliteString(t *testing.T) {
	if s := Satellite(15).String(); s != "GOES 15" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseAbundance(t *testing.T) {
	if a, err := ParseAbundance(""); err != nil || a != Coronal {
		t.Errorf("empty: got %q, %v", a, err)
	}
	if a, err := ParseAbundance(" Photospheric "); err != nil || a != Photospheric {
		t.Errorf("photospheric: got %q, %v", a, err)
	}
	if _, err := ParseAbundance("Neither"); !errors.Is(err, ErrConfig) {
		t.Errorf("Neither: err = %v, want ErrConfig", err)
	}
}
