package level

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/kcc-testbed/collision"
	"github.com/automoto/kcc-testbed/params"
)

// Element family constants. Dimensions not worth permuting stay fixed.
const (
	rampWidth     = 4.0
	rampThickness = 0.2

	ridgePlaneWidth = 3.0
	ridgeThickness  = 0.2

	creviceWallThickness = 0.5
	creviceWallHeight    = 3.0

	corridorWallThickness = 0.3
	corridorWallHeight    = 2.0
	corridorLength        = 8.0

	obstacleThickness = 0.4

	beamHeight      = 0.3
	beamStartOffset = 0.2

	patchThickness     = 0.1
	patchSpacingFactor = 0.9 // patch centers sit closer than a patch width
)

var (
	xAxis = mgl64.Vec3{1, 0, 0}
	yAxis = mgl64.Vec3{0, 1, 0}
	zAxis = mgl64.Vec3{0, 0, 1}
)

// BuiltinElements returns the element families of the testbed, in the order
// the assembler lays out their rows. The slice is rebuilt per call so
// callers can't mutate shared state.
func BuiltinElements() []ElementSpec {
	return []ElementSpec{
		rampElement(),
		stairsElement(),
		ridgeElement(),
		creviceElement(),
		angledWallsElement(),
		halfHeightObstacleElement(),
		narrowBeamElement(),
		unevenPatchesElement(),
	}
}

// rampElement is a slab pitched about X: length along Z, rising toward +Z.
func rampElement() ElementSpec {
	return ElementSpec{
		Name: "ramp",
		Axes: []params.Axis{
			{Name: "length", Range: params.FloatRange{Start: 4, End: 8, Step: 4}},
			{Name: "angle", Range: params.FloatRange{Start: 5, End: 80, Step: 15}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			length := t.Get("length")
			angle := mgl64.DegToRad(t.Get("angle"))
			sin, cos := math.Sin(angle), math.Cos(angle)

			centerY := (length/2)*sin + (rampThickness/2)*cos
			pieces := []Piece{{
				Size:     mgl64.Vec3{rampWidth, rampThickness, length},
				Offset:   mgl64.Vec3{0, centerY, 0},
				Rotation: mgl64.QuatRotate(-angle, xAxis),
			}}
			halfZ := (length/2)*cos + (rampThickness/2)*sin
			fp := collision.AABB{
				Min: mgl64.Vec3{-rampWidth / 2, 0, -halfZ},
				Max: mgl64.Vec3{rampWidth / 2, length*sin + rampThickness*cos, halfZ},
			}
			return pieces, fp
		},
	}
}

// stairsElement is a run of boxes climbing toward +Z.
func stairsElement() ElementSpec {
	return ElementSpec{
		Name: "stairs",
		Axes: []params.Axis{
			{Name: "width", Range: params.FloatRange{Start: 4, End: 4, Step: 1}},
			{Name: "step_height", Range: params.FloatRange{Start: 0.1, End: 0.3, Step: 0.1}},
			{Name: "step_depth", Range: params.FloatRange{Start: 0.2, End: 0.6, Step: 0.2}},
			{Name: "num_steps", Range: params.IntRange{Start: 4, End: 4, Step: 4}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			width := t.Get("width")
			stepH := t.Get("step_height")
			stepD := t.Get("step_depth")
			n := t.Int("num_steps")

			pieces := make([]Piece, 0, n)
			runZ := float64(n) * stepD
			for i := 0; i < n; i++ {
				pieces = append(pieces, Piece{
					Size:     mgl64.Vec3{width, stepH, stepD},
					Offset:   mgl64.Vec3{0, (float64(i) + 0.5) * stepH, (float64(i)+0.5)*stepD - runZ/2},
					Rotation: mgl64.QuatIdent(),
				})
			}
			fp := collision.AABB{
				Min: mgl64.Vec3{-width / 2, 0, -runZ / 2},
				Max: mgl64.Vec3{width / 2, float64(n) * stepH, runZ / 2},
			}
			return pieces, fp
		},
	}
}

// ridgeElement is two planes leaning against each other along Z, forming a
// tent profile the character has to crest.
func ridgeElement() ElementSpec {
	return ElementSpec{
		Name: "ridge",
		Axes: []params.Axis{
			{Name: "plane_angle", Range: params.FloatRange{Start: 15, End: 80, Step: 15}},
			{Name: "length", Range: params.FloatRange{Start: 7, End: 7, Step: 2}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			angle := mgl64.DegToRad(t.Get("plane_angle"))
			length := t.Get("length")
			sin, cos := math.Sin(angle), math.Cos(angle)

			offsetX := (ridgePlaneWidth / 2) * cos
			centerY := (ridgePlaneWidth/2)*sin + (ridgeThickness/2)*cos
			size := mgl64.Vec3{ridgePlaneWidth, ridgeThickness, length}

			pieces := []Piece{
				{
					Size:     size,
					Offset:   mgl64.Vec3{-offsetX, centerY, 0},
					Rotation: mgl64.QuatRotate(-angle, zAxis),
				},
				{
					Size:     size,
					Offset:   mgl64.Vec3{offsetX, centerY, 0},
					Rotation: mgl64.QuatRotate(angle, zAxis),
				},
			}
			halfX := ridgePlaneWidth*cos + (ridgeThickness/2)*sin
			fp := collision.AABB{
				Min: mgl64.Vec3{-halfX, 0, -length / 2},
				Max: mgl64.Vec3{halfX, ridgePlaneWidth*sin + ridgeThickness*cos, length / 2},
			}
			return pieces, fp
		},
	}
}

// creviceElement is two walls tilted inwards, leaving a tapering gap of
// top_width at the rim.
func creviceElement() ElementSpec {
	return ElementSpec{
		Name: "crevice",
		Axes: []params.Axis{
			{Name: "top_width", Range: params.FloatRange{Start: 0.5, End: 1.5, Step: 1.0}},
			{Name: "wall_angle", Range: params.FloatRange{Start: 20, End: 40, Step: 20}},
			{Name: "length", Range: params.FloatRange{Start: 4, End: 6, Step: 2}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			topWidth := t.Get("top_width")
			angle := mgl64.DegToRad(t.Get("wall_angle"))
			length := t.Get("length")
			sin, cos := math.Sin(angle), math.Cos(angle)

			offsetX := topWidth/2 + (creviceWallThickness/2)*cos
			centerY := creviceWallHeight/2 - (creviceWallThickness/2)*sin
			size := mgl64.Vec3{creviceWallThickness, creviceWallHeight, length}

			pieces := []Piece{
				{
					Size:     size,
					Offset:   mgl64.Vec3{-offsetX, centerY, 0},
					Rotation: mgl64.QuatRotate(angle, zAxis),
				},
				{
					Size:     size,
					Offset:   mgl64.Vec3{offsetX, centerY, 0},
					Rotation: mgl64.QuatRotate(-angle, zAxis),
				},
			}
			halfX := topWidth/2 + creviceWallThickness*cos + (creviceWallHeight/2)*sin
			top := centerY + (creviceWallHeight/2)*cos + (creviceWallThickness/2)*sin
			fp := collision.AABB{
				Min: mgl64.Vec3{-halfX, centerY - (creviceWallHeight/2)*cos - (creviceWallThickness/2)*sin, -length / 2},
				Max: mgl64.Vec3{halfX, top, length / 2},
			}
			return pieces, fp
		},
	}
}

// angledWallsElement is a corridor whose walls deviate from parallel by a
// signed yaw angle, pinching or widening toward +Z.
func angledWallsElement() ElementSpec {
	return ElementSpec{
		Name: "angled_walls",
		Axes: []params.Axis{
			{Name: "wall_angle_dev", Range: params.FloatRange{Start: -30, End: 30, Step: 15}},
			{Name: "corridor_width", Range: params.FloatRange{Start: 1, End: 2, Step: 1}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			dev := mgl64.DegToRad(t.Get("wall_angle_dev"))
			width := t.Get("corridor_width")
			sin, cos := math.Abs(math.Sin(dev)), math.Cos(dev)

			offsetX := width/2 + corridorWallThickness/2
			size := mgl64.Vec3{corridorWallThickness, corridorWallHeight, corridorLength}

			pieces := []Piece{
				{
					Size:     size,
					Offset:   mgl64.Vec3{-offsetX, corridorWallHeight / 2, 0},
					Rotation: mgl64.QuatRotate(dev, yAxis),
				},
				{
					Size:     size,
					Offset:   mgl64.Vec3{offsetX, corridorWallHeight / 2, 0},
					Rotation: mgl64.QuatRotate(-dev, yAxis),
				},
			}
			halfX := offsetX + (corridorLength/2)*sin + (corridorWallThickness/2)*cos
			halfZ := (corridorLength/2)*cos + (corridorWallThickness/2)*sin
			fp := collision.AABB{
				Min: mgl64.Vec3{-halfX, 0, -halfZ},
				Max: mgl64.Vec3{halfX, corridorWallHeight, halfZ},
			}
			return pieces, fp
		},
	}
}

// halfHeightObstacleElement is a single bar across the path, low enough to
// step or jump over depending on the height parameter.
func halfHeightObstacleElement() ElementSpec {
	return ElementSpec{
		Name: "half_obstacle",
		Axes: []params.Axis{
			{Name: "height", Range: params.FloatRange{Start: 0.8, End: 1.2, Step: 0.4}},
			{Name: "width", Range: params.FloatRange{Start: 3, End: 5, Step: 2}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			height := t.Get("height")
			width := t.Get("width")
			pieces := []Piece{{
				Size:     mgl64.Vec3{width, height, obstacleThickness},
				Offset:   mgl64.Vec3{0, height / 2, 0},
				Rotation: mgl64.QuatIdent(),
			}}
			fp := collision.AABB{
				Min: mgl64.Vec3{-width / 2, 0, -obstacleThickness / 2},
				Max: mgl64.Vec3{width / 2, height, obstacleThickness / 2},
			}
			return pieces, fp
		},
	}
}

// unevenPatchesElement is a square grid of slightly overlapping floor
// patches whose heights vary around the ground plane. The variation is a
// sine of the grid position, not a random draw, so rebuilds are identical.
func unevenPatchesElement() ElementSpec {
	return ElementSpec{
		Name: "uneven_patches",
		Axes: []params.Axis{
			{Name: "grid_dim", Range: params.IntRange{Start: 3, End: 3, Step: 1}},
			{Name: "patch_size", Range: params.FloatRange{Start: 2, End: 2, Step: 0.5}},
			{Name: "max_h_var", Range: params.FloatRange{Start: 0.05, End: 0.15, Step: 0.1}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			dim := t.Int("grid_dim")
			size := t.Get("patch_size")
			maxVar := t.Get("max_h_var")

			spacing := size * patchSpacingFactor
			total := float64(dim) * spacing
			start := -total/2 + spacing/2

			pieces := make([]Piece, 0, dim*dim)
			for i := 0; i < dim; i++ {
				for j := 0; j < dim; j++ {
					factor := (math.Sin(float64(i)*1.618+float64(j)*math.E) + 1) / 2
					offset := (factor*2 - 1) * maxVar
					pieces = append(pieces, Piece{
						Size: mgl64.Vec3{size, patchThickness, size},
						Offset: mgl64.Vec3{
							start + float64(i)*spacing,
							offset + patchThickness/2,
							start + float64(j)*spacing,
						},
						Rotation: mgl64.QuatIdent(),
					})
				}
			}

			// Outermost patches extend half a patch beyond their centers,
			// and a patch is wider than the spacing.
			half := (total - spacing + size) / 2
			fp := collision.AABB{
				Min: mgl64.Vec3{-half, -maxVar, -half},
				Max: mgl64.Vec3{half, maxVar + patchThickness, half},
			}
			return pieces, fp
		},
	}
}

// narrowBeamElement is a raised walkway testing lateral precision.
func narrowBeamElement() ElementSpec {
	return ElementSpec{
		Name: "narrow_beam",
		Axes: []params.Axis{
			{Name: "width", Range: params.FloatRange{Start: 0.3, End: 0.5, Step: 0.2}},
			{Name: "length", Range: params.FloatRange{Start: 8, End: 12, Step: 4}},
		},
		Build: func(t params.Tuple) ([]Piece, collision.AABB) {
			width := t.Get("width")
			length := t.Get("length")
			pieces := []Piece{{
				Size:     mgl64.Vec3{width, beamHeight, length},
				Offset:   mgl64.Vec3{0, beamStartOffset + beamHeight/2, 0},
				Rotation: mgl64.QuatIdent(),
			}}
			fp := collision.AABB{
				Min: mgl64.Vec3{-width / 2, 0, -length / 2},
				Max: mgl64.Vec3{width / 2, beamStartOffset + beamHeight, length / 2},
			}
			return pieces, fp
		},
	}
}
