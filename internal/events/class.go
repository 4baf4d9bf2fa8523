package events

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/solarflux/goesxrs/pkg/types"
)

// classBase maps a class letter to its peak 1-8 Å flux in W/m^2 at scale 1.
var classBase = map[byte]float64{
	'A': 1e-8,
	'B': 1e-7,
	'C': 1e-6,
	'M': 1e-5,
	'X': 1e-4,
}

const classLetters = "ABCMX"

// Class is a GOES flare class such as "M2.5".
type Class struct {
	Letter byte
	Scale  float64
}

// ParseClass reads a class like "M2.5", "x1" or "C". A missing scale means 1.
func ParseClass(s string) (Class, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Class{}, fmt.Errorf("events: empty class: %w", types.ErrConfig)
	}
	letter := s[0]
	if _, ok := classBase[letter]; !ok {
		return Class{}, fmt.Errorf("events: class %q: unknown letter: %w", s, types.ErrConfig)
	}
	c := Class{Letter: letter, Scale: 1}
	if len(s) > 1 {
		v, err := strconv.ParseFloat(s[1:], 64)
		if err != nil || !(v > 0) || math.IsInf(v, 0) {
			return Class{}, fmt.Errorf("events: class %q: bad scale: %w", s, types.ErrConfig)
		}
		c.Scale = v
	}
	return c, nil
}

// ClassFromFlux returns the class of a peak 1-8 Å flux in W/m^2.
func ClassFromFlux(flux float64) Class {
	letter := byte('A')
	for i := len(classLetters) - 1; i >= 0; i-- {
		l := classLetters[i]
		if flux >= classBase[l] {
			letter = l
			break
		}
	}
	scale := math.Round(flux/classBase[letter]*10) / 10
	if scale >= 10 && letter != 'X' {
		letter = classLetters[strings.IndexByte(classLetters, letter)+1]
		scale = math.Round(flux/classBase[letter]*10) / 10
	}
	return Class{Letter: letter, Scale: scale}
}

// Flux returns the peak 1-8 Å flux the class stands for, in W/m^2.
func (c Class) Flux() float64 {
	return classBase[c.Letter] * c.Scale
}

// Less reports whether c is a weaker flare than o.
func (c Class) Less(o Class) bool {
	return c.Flux() < o.Flux()
}

// IsZero reports whether c is unset.
func (c Class) IsZero() bool { return c.Letter == 0 }

func (c Class) String() string {
	if c.IsZero() {
		return ""
	}
	return string(c.Letter) + strconv.FormatFloat(c.Scale, 'f', 1, 64)
}
