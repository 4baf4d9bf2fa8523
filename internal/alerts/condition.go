package alerts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solarflux/goesxrs/internal/events"
	"github.com/solarflux/goesxrs/internal/lightcurve"
	"github.com/solarflux/goesxrs/pkg/types"
)

// fieldClass compares xrsb against a flare class threshold.
const fieldClass = "class"

// condition is a parsed "field operator value" expression.
type condition struct {
	field     string // lightcurve column
	op        string
	threshold float64
	class     bool
}

// parseCondition parses expressions such as
//
//	temperature > 20
//	em >= 1e49
//	class >= M1
func parseCondition(s string) (condition, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return condition{}, fmt.Errorf("alerts: condition %q: want \"field op value\": %w", s, types.ErrConfig)
	}
	field, op, rhs := strings.ToLower(parts[0]), parts[1], parts[2]
	switch op {
	case ">", ">=", "<", "<=", "==":
	default:
		return condition{}, fmt.Errorf("alerts: condition %q: unknown operator %q: %w", s, op, types.ErrConfig)
	}

	if field == fieldClass {
		c, err := events.ParseClass(rhs)
		if err != nil {
			return condition{}, fmt.Errorf("alerts: condition %q: %w", s, err)
		}
		return condition{field: lightcurve.ColXRSB, op: op, threshold: c.Flux(), class: true}, nil
	}
	v, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		return condition{}, fmt.Errorf("alerts: condition %q: threshold: %w", s, types.ErrConfig)
	}
	return condition{field: field, op: op, threshold: v}, nil
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) bool {
	switch op {
	case ">":
		return v > threshold
	case ">=":
		return v >= threshold
	case "<":
		return v < threshold
	case "<=":
		return v <= threshold
	case "==":
		return v == threshold
	default:
		return false
	}
}

// moreExtreme reports whether v is further past the threshold than cur.
func (c condition) moreExtreme(v, cur float64) bool {
	if c.op == "<" || c.op == "<=" {
		return v < cur
	}
	return v > cur
}

// format renders a value in the condition's units.
func (c condition) format(v float64) string {
	if c.class {
		return events.ClassFromFlux(v).String()
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
