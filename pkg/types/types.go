package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Satellite is a GOES spacecraft number (GOES 1, GOES 15, ...).
type Satellite int

// ParseSatellite reads the satellite number from a telescope string such as
// "GOES 15" or "GOES-15". A bare number is accepted too.
func ParseSatellite(telescope string) (Satellite, error) {
	s := strings.ToUpper(strings.TrimSpace(telescope))
	if rest, ok := strings.CutPrefix(s, "GOES"); ok {
		rest = strings.TrimPrefix(rest, "-")
		s = strings.TrimSpace(strings.TrimPrefix(rest, "_"))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("satellite %q: %w", telescope, ErrConfig)
	}
	sat := Satellite(n)
	if err := sat.Validate(); err != nil {
		return 0, err
	}
	return sat, nil
}

// Validate reports ErrConfig unless s is a positive satellite number.
func (s Satellite) Validate() error {
	if s < 1 {
		return fmt.Errorf("satellite %d must be >= 1: %w", int(s), ErrConfig)
	}
	return nil
}

// String returns the telescope name, e.g. "GOES 15".
func (s Satellite) String() string {
	return "GOES " + strconv.Itoa(int(s))
}

// Abundance selects the elemental abundances assumed by the calibration.
type Abundance string

const (
	Coronal      Abundance = "coronal"
	Photospheric Abundance = "photospheric"
)

// ParseAbundance accepts "coronal" or "photospheric" in any case.
// An empty string selects coronal.
func ParseAbundance(s string) (Abundance, error) {
	a := Abundance(strings.ToLower(strings.TrimSpace(s)))
	if a == "" {
		return Coronal, nil
	}
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate reports ErrConfig for anything other than the two known regimes.
func (a Abundance) Validate() error {
	switch a {
	case Coronal, Photospheric:
		return nil
	default:
		return fmt.Errorf("abundance %q must be coronal or photospheric: %w", string(a), ErrConfig)
	}
}
