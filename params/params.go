// Package params turns declared parameter ranges into the ordered set of
// concrete value combinations used to instantiate level elements.
package params

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidRange is returned for malformed range declarations (negative
// step, non-finite bounds). Callers are expected to skip-and-warn per
// element rather than abort the whole level.
var ErrInvalidRange = errors.New("params: invalid range")

// Range is one named axis of a scalar generator.
type Range interface {
	// Values enumerates the axis. The result is a pure function of the
	// range: calling it twice yields identical slices.
	Values() ([]float64, error)
}

// FloatRange enumerates Start, Start+Step, ... up to and including End.
// A boundary epsilon proportional to the step keeps an exact endpoint in
// the sequence despite floating rounding.
type FloatRange struct {
	Start, End, Step float64
}

// IntRange is the discrete variant, used where a parameter counts things
// (e.g. number of stair steps).
type IntRange struct {
	Start, End, Step int
}

// boundaryEpsilonScale scales the per-range inclusion tolerance. Small
// enough that Start + (n+1)*Step is never admitted, large enough to absorb
// one multiplication's rounding on the endpoint.
const boundaryEpsilonScale = 1e-6

func (r FloatRange) Values() ([]float64, error) {
	if math.IsNaN(r.Start) || math.IsInf(r.Start, 0) ||
		math.IsNaN(r.End) || math.IsInf(r.End, 0) ||
		math.IsNaN(r.Step) || math.IsInf(r.Step, 0) {
		return nil, fmt.Errorf("%w: non-finite bounds {%v %v %v}", ErrInvalidRange, r.Start, r.End, r.Step)
	}
	if r.Step < 0 {
		return nil, fmt.Errorf("%w: negative step %v", ErrInvalidRange, r.Step)
	}
	// Defensive default: a zero step or inverted range yields the single
	// start value instead of looping or producing nothing.
	if r.Step == 0 || r.End < r.Start {
		return []float64{r.Start}, nil
	}
	eps := r.Step * boundaryEpsilonScale
	count := int(math.Floor((r.End-r.Start)/r.Step+eps)) + 1
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		// Start + i*Step, never accumulated, so repeat calls are
		// byte-identical and rounding does not drift with i.
		values = append(values, r.Start+float64(i)*r.Step)
	}
	return values, nil
}

func (r IntRange) Values() ([]float64, error) {
	if r.Step < 0 {
		return nil, fmt.Errorf("%w: negative step %d", ErrInvalidRange, r.Step)
	}
	if r.Step == 0 || r.End < r.Start {
		return []float64{float64(r.Start)}, nil
	}
	count := (r.End-r.Start)/r.Step + 1
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		values = append(values, float64(r.Start+i*r.Step))
	}
	return values, nil
}

// Axis pairs a range with the name element factories look it up by.
type Axis struct {
	Name  string
	Range Range
}

// Tuple is one concrete assignment of values across all declared axes.
// Order carries the declaration order so formatting is stable.
type Tuple struct {
	Order  []string
	Values map[string]float64
}

// Get returns the value for an axis name, or zero if the axis was never
// declared (factories treat that as a spec bug and validate dimensions).
func (t Tuple) Get(name string) float64 {
	return t.Values[name]
}

// Int returns the axis value rounded to the nearest integer.
func (t Tuple) Int(name string) int {
	return int(math.Round(t.Values[name]))
}

// String formats the tuple in declaration order, usable as a stable
// instance name suffix.
func (t Tuple) String() string {
	var b strings.Builder
	for i, name := range t.Order {
		if i > 0 {
			b.WriteByte('_')
		}
		fmt.Fprintf(&b, "%s%g", name, t.Values[name])
	}
	return b.String()
}
