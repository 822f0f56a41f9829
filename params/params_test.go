package params

import (
	"errors"
	"math"
	"testing"
)

func TestFloatRangeValues(t *testing.T) {
	cases := []struct {
		name string
		r    FloatRange
		want []float64
	}{
		{"two values", FloatRange{Start: 4, End: 8, Step: 4}, []float64{4, 8}},
		{"six values", FloatRange{Start: 5, End: 80, Step: 15}, []float64{5, 20, 35, 50, 65, 80}},
		{"endpoint excluded", FloatRange{Start: 10, End: 50, Step: 15}, []float64{10, 25, 40}},
		{"fractional step", FloatRange{Start: 0.1, End: 0.3, Step: 0.1}, []float64{0.1, 0.2, 0.3}},
		{"single value", FloatRange{Start: 7, End: 7, Step: 2}, []float64{7}},
		{"zero step defaults to start", FloatRange{Start: 3, End: 9, Step: 0}, []float64{3}},
		{"inverted range defaults to start", FloatRange{Start: 9, End: 3, Step: 1}, []float64{9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.r.Values()
			if err != nil {
				t.Fatalf("Values() error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d values %v, want %d %v", len(got), got, len(tc.want), tc.want)
			}
			for i := range got {
				if math.Abs(got[i]-tc.want[i]) > 1e-9 {
					t.Errorf("value[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestFloatRangeInvalid(t *testing.T) {
	bad := []FloatRange{
		{Start: 0, End: 10, Step: -1},
		{Start: math.NaN(), End: 10, Step: 1},
		{Start: 0, End: math.Inf(1), Step: 1},
	}
	for _, r := range bad {
		if _, err := r.Values(); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Values(%+v) error = %v, want ErrInvalidRange", r, err)
		}
	}
}

func TestIntRangeValues(t *testing.T) {
	got, err := IntRange{Start: 4, End: 4, Step: 4}.Values()
	if err != nil {
		t.Fatalf("Values() error: %v", err)
	}
	if len(got) != 1 || got[0] != 4 {
		t.Fatalf("got %v, want [4]", got)
	}

	got, err = IntRange{Start: 1, End: 7, Step: 2}.Values()
	if err != nil {
		t.Fatalf("Values() error: %v", err)
	}
	want := []float64{1, 3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if _, err := (IntRange{Start: 0, End: 4, Step: -2}).Values(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("negative step error = %v, want ErrInvalidRange", err)
	}
}

func TestTupleString(t *testing.T) {
	tuple := Tuple{
		Order:  []string{"length", "angle"},
		Values: map[string]float64{"length": 4, "angle": 35},
	}
	if got, want := tuple.String(), "length4_angle35"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
