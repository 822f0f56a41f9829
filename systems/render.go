package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/collision"
	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/tags"
)

var (
	colorGround   = color.RGBA{40, 40, 48, 255}
	colorOutline  = color.RGBA{90, 90, 110, 255}
	colorPrint    = color.RGBA{60, 160, 80, 255}
	colorGrounded = color.RGBA{80, 220, 100, 255}
	colorSliding  = color.RGBA{240, 170, 60, 255}
	colorAirborne = color.RGBA{230, 80, 80, 255}
	colorVelocity = color.RGBA{240, 240, 240, 255}
)

// view maps world ground-plane coordinates to the screen: world +X is
// screen right, world +Z is screen up.
type view struct {
	camX, camZ float64
	scale      float64
	cx, cy     float64
}

func currentView(e *ecs.ECS, screen *ebiten.Image) view {
	v := view{
		scale: cfg.Camera.PixelsPerUnit * cfg.Camera.DefaultZoom,
		cx:    float64(screen.Bounds().Dx()) / 2,
		cy:    float64(screen.Bounds().Dy()) / 2,
	}
	if entry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(entry)
		v.camX = cam.X
		v.camZ = cam.Z
		v.scale = cfg.Camera.PixelsPerUnit * cam.Zoom
	}
	return v
}

func (v view) screen(x, z float64) (float32, float32) {
	return float32(v.cx + (x-v.camX)*v.scale), float32(v.cy - (z-v.camZ)*v.scale)
}

// DrawLevel renders the top-down debug view: collider boxes shaded by
// their top height, element footprints, and the character capsule.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(colorGround)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	assembly := components.Level.Get(levelEntry).Assembly
	v := currentView(e, screen)

	world := assembly.World
	for id := 0; id < world.Len(); id++ {
		b := world.Box(collision.ID(id))
		bounds := b.Bounds()
		x0, y0 := v.screen(bounds.Min.X(), bounds.Max.Z())
		x1, y1 := v.screen(bounds.Max.X(), bounds.Min.Z())

		shade := heightShade(bounds.Max.Y())
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, shade, false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colorOutline, false)
	}

	if cfg.Debug.ShowFootprints {
		for _, inst := range assembly.Instances {
			fp := inst.WorldFootprint()
			x0, y0 := v.screen(fp.Min.X(), fp.Max.Z())
			x1, y1 := v.screen(fp.Max.X(), fp.Min.Z())
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colorPrint, false)
			ebitenutil.DebugPrintAt(screen, inst.Name(), int(x0)+2, int(y0)+2)
		}
	}

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		drawCharacter(screen, v, entry)
	})
}

func drawCharacter(screen *ebiten.Image, v view, entry *donburi.Entry) {
	tr := components.Transform.Get(entry)
	ch := components.Character.Get(entry)
	shape := components.Object.Get(entry).Shape

	x, y := v.screen(tr.Position.X(), tr.Position.Z())
	r := float32(shape.Radius * v.scale)

	clr := colorAirborne
	switch ch.Mode {
	case cfg.ModeGrounded:
		clr = colorGrounded
	case cfg.ModeSliding:
		clr = colorSliding
	}
	vector.DrawFilledCircle(screen, x, y, r, clr, true)

	// Velocity on the ground plane, scaled so full run speed reads as a
	// short arrow.
	vx := float32(ch.Velocity.X() * v.scale * 0.25)
	vz := float32(ch.Velocity.Z() * v.scale * 0.25)
	vector.StrokeLine(screen, x, y, x+vx, y-vz, 1, colorVelocity, true)
}

// heightShade brightens boxes by how high they reach so ramps and stairs
// read in the flat top-down projection.
func heightShade(top float64) color.RGBA {
	t := top / 5
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	g := uint8(70 + t*140)
	return color.RGBA{g, g, uint8(80 + t*120), 255}
}
