package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/tags"
)

// UpdateInput polls the keyboard into the input entity and derives the
// per-tick movement intent for every character. Runs first in the tick so
// the controller and camera see a consistent snapshot.
func UpdateInput(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(inputEntry)
	in.Previous = in.Current

	for id, binding := range cfg.Input.Bindings {
		pressed := false
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed = true
				break
			}
		}
		in.Current[id] = pressed
	}

	intent := intentFrom(in)
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		*components.Intent.Get(entry) = intent
	})
}

func intentFrom(in *components.InputData) components.IntentData {
	var move [2]float64
	if in.Action(cfg.ActionMoveRight).Pressed {
		move[0]++
	}
	if in.Action(cfg.ActionMoveLeft).Pressed {
		move[0]--
	}
	if in.Action(cfg.ActionMoveForward).Pressed {
		move[1]++
	}
	if in.Action(cfg.ActionMoveBack).Pressed {
		move[1]--
	}
	if l := math.Hypot(move[0], move[1]); l > 1 {
		move[0] /= l
		move[1] /= l
	}

	return components.IntentData{
		Move:    move,
		Jump:    in.Action(cfg.ActionJump).JustPressed,
		FlyUp:   in.Action(cfg.ActionFlyUp).Pressed,
		FlyDown: in.Action(cfg.ActionFlyDown).Pressed,
	}
}
