package level

import (
	"reflect"
	"testing"

	"github.com/automoto/kcc-testbed/params"
)

const footprintSlack = 1e-9

func TestElementFootprintsContainGeometry(t *testing.T) {
	for _, spec := range BuiltinElements() {
		spec := spec
		t.Run(spec.Name, func(t *testing.T) {
			tuples, err := params.Permutations(spec.Axes)
			if err != nil {
				t.Fatalf("Permutations error: %v", err)
			}
			for _, tuple := range tuples {
				pieces, footprint := spec.Build(tuple)
				if len(pieces) == 0 {
					t.Fatalf("tuple %s built no geometry", tuple)
				}
				bounds := PiecesBounds(pieces)
				for axis := 0; axis < 3; axis++ {
					if bounds.Min[axis] < footprint.Min[axis]-footprintSlack ||
						bounds.Max[axis] > footprint.Max[axis]+footprintSlack {
						t.Errorf("tuple %s: geometry bounds %v..%v exceed footprint %v..%v on axis %d",
							tuple, bounds.Min, bounds.Max, footprint.Min, footprint.Max, axis)
					}
				}
			}
		})
	}
}

func TestElementBuildDeterministic(t *testing.T) {
	for _, spec := range BuiltinElements() {
		tuples, err := params.Permutations(spec.Axes)
		if err != nil {
			t.Fatalf("Permutations error: %v", err)
		}
		for _, tuple := range tuples {
			piecesA, fpA := spec.Build(tuple)
			piecesB, fpB := spec.Build(tuple)
			if !reflect.DeepEqual(piecesA, piecesB) || !reflect.DeepEqual(fpA, fpB) {
				t.Fatalf("%s: Build(%s) is not deterministic", spec.Name, tuple)
			}
		}
	}
}

func TestUnevenPatchesGrid(t *testing.T) {
	spec := unevenPatchesElement()
	tuples, err := params.Permutations(spec.Axes)
	if err != nil {
		t.Fatalf("Permutations error: %v", err)
	}
	if len(tuples) != 2 {
		t.Fatalf("expanded to %d tuples, want 2", len(tuples))
	}
	for _, tuple := range tuples {
		dim := tuple.Int("grid_dim")
		maxVar := tuple.Get("max_h_var")
		pieces, _ := spec.Build(tuple)
		if len(pieces) != dim*dim {
			t.Fatalf("tuple %s built %d patches, want %d", tuple, len(pieces), dim*dim)
		}
		varied := false
		for _, p := range pieces {
			bottom := p.Offset.Y() - p.Size.Y()/2
			if bottom < -maxVar || bottom > maxVar {
				t.Errorf("tuple %s: patch bottom %v outside +/-%v", tuple, bottom, maxVar)
			}
			if bottom != pieces[0].Offset.Y()-pieces[0].Size.Y()/2 {
				varied = true
			}
		}
		if !varied {
			t.Errorf("tuple %s: all patches at the same height", tuple)
		}
	}
}

func TestElementPermutationCounts(t *testing.T) {
	want := map[string]int{
		"ramp":           12,
		"stairs":         9,
		"ridge":          5,
		"crevice":        8,
		"angled_walls":   10,
		"half_obstacle":  4,
		"narrow_beam":    4,
		"uneven_patches": 2,
	}
	for _, spec := range BuiltinElements() {
		n, err := params.Count(spec.Axes)
		if err != nil {
			t.Fatalf("%s: Count error: %v", spec.Name, err)
		}
		if n != want[spec.Name] {
			t.Errorf("%s expands to %d instances, want %d", spec.Name, n, want[spec.Name])
		}
	}
}
