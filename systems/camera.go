package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/tags"
)

// panSpeed is the free-look pan rate in world units per second while a fly
// key is held.
const panSpeed = 12.0

// UpdateCamera follows the character on the ground plane and eases the
// zoom towards its target. Runs after UpdateCharacters so the follow sees
// this tick's position.
func UpdateCamera(e *ecs.ECS) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	dt := 1.0 / cfg.C.TickRate

	if charEntry, ok := tags.Character.First(e.World); ok {
		pos := components.Transform.Get(charEntry).Position
		cam.X += (pos.X() - cam.X) * cfg.Camera.FollowSmoothing
		cam.Z += (pos.Z() - cam.Z) * cfg.Camera.FollowSmoothing

		intent := components.Intent.Get(charEntry)
		if intent.FlyUp {
			cam.Z += panSpeed * dt
		}
		if intent.FlyDown {
			cam.Z -= panSpeed * dt
		}
	}

	if inputEntry, ok := components.Input.First(e.World); ok {
		in := components.Input.Get(inputEntry)
		step := 0.0
		if in.Action(cfg.ActionZoomIn).JustPressed {
			step += cfg.Camera.ZoomStep
		}
		if in.Action(cfg.ActionZoomOut).JustPressed {
			step -= cfg.Camera.ZoomStep
		}
		if step != 0 {
			cam.TargetZoom = clamp(cam.TargetZoom+step, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
			cam.ZoomTween = gween.New(
				float32(cam.Zoom),
				float32(cam.TargetZoom),
				float32(cfg.Camera.ZoomEaseTime),
				ease.OutQuad,
			)
		}
	}

	if cam.ZoomTween != nil {
		v, done := cam.ZoomTween.Update(float32(dt))
		cam.Zoom = float64(v)
		if done {
			cam.Zoom = cam.TargetZoom
			cam.ZoomTween = nil
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
