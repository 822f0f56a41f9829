package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/collision"
	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/tags"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// walkableSlack absorbs float noise so a surface at exactly the walkable
// limit still counts as ground.
const walkableSlack = 1e-6

// UpdateCharacters advances every character one fixed tick: intent is
// turned into velocity, the capsule is swept through the static world, and
// the grounded/airborne/sliding mode is refreshed for the next tick.
// Must run after UpdateInput.
func UpdateCharacters(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	world := components.Level.Get(levelEntry).Assembly.World
	yaw := cameraYaw(e)

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		tickCharacter(entry, world, yaw)
	})
}

func tickCharacter(entry *donburi.Entry, world *collision.World, yaw float64) {
	c := cfg.Character
	dt := 1.0 / cfg.C.TickRate

	tr := components.Transform.Get(entry)
	ch := components.Character.Get(entry)
	intent := components.Intent.Get(entry)
	shape := components.Object.Get(entry).Shape

	if intent.Jump && ch.Mode == cfg.ModeGrounded {
		ch.Velocity[1] += c.JumpImpulse
		ch.Mode = cfg.ModeAirborne
		ch.GroundNormal = mgl64.Vec3{}
	}

	moveDir := moveDirWorld(yaw, intent.Move)

	var maxAccel float64
	switch ch.Mode {
	case cfg.ModeGrounded:
		ch.Velocity = ch.Velocity.Add(friction(ch.Velocity, c.Friction, dt))

		// Never carry velocity into the floor; it makes jump height
		// inconsistent.
		if into := ch.Velocity.Dot(ch.GroundNormal); into < 0 {
			ch.Velocity = ch.Velocity.Sub(ch.GroundNormal.Mul(into))
		}

		// Project intent onto the floor plane so walking down a slope
		// follows the surface instead of stepping off it.
		moveDir = normalizeOrZero(reject(moveDir, ch.GroundNormal))
		maxAccel = c.GroundAccel

	case cfg.ModeSliding:
		// Gravity drives the slide; no steering on an unwalkable surface,
		// the slide loop projects motion onto the surface tangent.
		ch.Velocity[1] -= c.Gravity * dt
		maxAccel = 0

	default: // airborne
		ch.Velocity[1] -= c.Gravity * dt
		maxAccel = c.AirAccel
	}

	ch.Velocity = ch.Velocity.Add(accelerate(ch.Velocity, moveDir, maxAccel, c.MoveSpeed, dt))

	start := tr.Position
	grounded, groundNormal := moveAndSlide(world, shape, tr, ch, dt)

	if !grounded {
		grounded, groundNormal = groundProbe(world, shape, tr, ch)
	}

	if grounded {
		ch.Mode = cfg.ModeGrounded
		ch.GroundNormal = groundNormal
		ch.AirTicks = 0
	} else {
		ch.AirTicks++
	}

	// Degenerate collider configurations (overlapping static geometry the
	// sweep had to ignore) must never leave the capsule embedded: stay put
	// for this tick instead.
	if world.Overlaps(shape, tr.Position) {
		tr.Position = start
		ch.Velocity = mgl64.Vec3{}
	}
}

// moveAndSlide sweeps the capsule along the velocity, clipping at contacts
// and projecting the remainder onto the contact plane, up to the iteration
// cap. Returns whether a walkable surface was touched and its normal.
func moveAndSlide(world *collision.World, shape collision.Capsule, tr *components.TransformData, ch *components.CharacterData, dt float64) (bool, mgl64.Vec3) {
	c := cfg.Character
	grounded := false
	groundNormal := worldUp

	remaining := dt
	original := normalizeOrZero(ch.Velocity)

	for i := 0; i < c.SlideIterations; i++ {
		motion := ch.Velocity.Mul(remaining)
		dist := motion.Len()
		if dist < 1e-9 {
			break
		}
		dir := motion.Mul(1 / dist)

		hit, ok := world.Sweep(shape, tr.Position, tr.Position.Add(motion))
		if !ok {
			tr.Position = tr.Position.Add(motion)
			break
		}

		safe := math.Max(hit.Distance-c.ContactEpsilon, 0)
		tr.Position = tr.Position.Add(dir.Mul(safe))
		normal := hit.Normal

		if isWalkable(normal, c.WalkableAngle) {
			grounded = true
			groundNormal = normal
		} else if ch.Mode == cfg.ModeGrounded {
			// Blocked by a wall while on the ground: try to treat it as a
			// step and continue on top of it.
			leftover := dir.Mul(dist - safe)
			if stepPos, stepNormal, climbed := tryClimbStep(world, shape, tr.Position, leftover); climbed {
				tr.Position = stepPos
				// The capsule's roundness would otherwise launch us off
				// the step lip.
				ch.Velocity[1] = 0
				grounded = true
				groundNormal = stepNormal
				break
			}
		}

		remaining *= 1 - safe/dist
		ch.Velocity = reject(ch.Velocity, normal)

		// Quake 2: stop early if velocity turned against the original
		// direction, avoids oscillation in sloping corners.
		if ch.Velocity.Dot(original) <= 0 {
			break
		}
	}
	return grounded, groundNormal
}

// tryClimbStep checks whether the blocking obstacle is low enough to walk
// onto: the capsule is swept forward at step height (nothing may block
// there) and then down onto the step surface, which must be walkable.
func tryClimbStep(world *collision.World, shape collision.Capsule, pos, motion mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, bool) {
	c := cfg.Character
	horiz := mgl64.Vec3{motion.X(), 0, motion.Z()}
	length := horiz.Len()
	if length < 1e-9 {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	// Carry the capsule centre past the step lip: landing right on the
	// edge reports the corner normal, which reads as unwalkable.
	if min := shape.Radius * 0.5; length < min {
		horiz = horiz.Mul(min / length)
	}

	rise := c.StepHeight + c.GroundProbe
	raised := pos.Add(worldUp.Mul(rise))
	if _, blocked := world.Sweep(shape, raised, raised.Add(horiz)); blocked {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	downFrom := raised.Add(horiz)
	hit, ok := world.Sweep(shape, downFrom, downFrom.Sub(worldUp.Mul(rise)))
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	// What we stepped onto may still be too steep to stand on.
	if !isWalkable(hit.Normal, c.WalkableAngle) {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	safe := math.Max(hit.Distance-c.ContactEpsilon, 0)
	return downFrom.Sub(worldUp.Mul(safe)), hit.Normal, true
}

// groundProbe sweeps a short distance down and classifies the support:
// walkable contact snaps the capsule onto the surface, a steep contact
// switches to sliding, no contact means airborne.
func groundProbe(world *collision.World, shape collision.Capsule, tr *components.TransformData, ch *components.CharacterData) (bool, mgl64.Vec3) {
	c := cfg.Character

	hit, ok := world.Sweep(shape, tr.Position, tr.Position.Sub(worldUp.Mul(c.GroundProbe)))
	if !ok {
		ch.Mode = cfg.ModeAirborne
		ch.GroundNormal = mgl64.Vec3{}
		return false, worldUp
	}
	if !isWalkable(hit.Normal, c.WalkableAngle) {
		ch.Mode = cfg.ModeSliding
		ch.GroundNormal = hit.Normal
		return false, worldUp
	}

	safe := math.Max(hit.Distance-c.ContactEpsilon, 0)
	tr.Position = tr.Position.Sub(worldUp.Mul(safe))
	return true, hit.Normal
}

func isWalkable(normal mgl64.Vec3, limit float64) bool {
	cos := mgl64.Clamp(normal.Dot(worldUp), -1, 1)
	return math.Acos(cos) <= limit+walkableSlack
}

// accelerate is Quake-style: add speed along the wish direction, clamped
// so the velocity component in that direction never exceeds the target.
func accelerate(velocity, dir mgl64.Vec3, maxAccel, targetSpeed, dt float64) mgl64.Vec3 {
	if dir.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	current := velocity.Dot(dir)
	if current >= targetSpeed {
		return mgl64.Vec3{}
	}
	add := math.Min(targetSpeed-current, maxAccel*dt)
	return dir.Mul(add)
}

// friction is a constant-rate exponential decay against the current
// velocity; below a tiny speed it leaves the velocity alone.
func friction(velocity mgl64.Vec3, friction, dt float64) mgl64.Vec3 {
	speedSq := velocity.Dot(velocity)
	if speedSq < 1e-8 {
		return mgl64.Vec3{}
	}
	factor := math.Exp(-friction / math.Sqrt(speedSq) * dt)
	return velocity.Mul(-(1 - factor))
}

func reject(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// moveDirWorld rotates the camera-relative intent onto the world ground
// plane: x is screen right, y is screen forward.
func moveDirWorld(yaw float64, move [2]float64) mgl64.Vec3 {
	sin, cos := math.Sincos(yaw)
	right := mgl64.Vec3{cos, 0, -sin}
	forward := mgl64.Vec3{sin, 0, cos}
	dir := right.Mul(move[0]).Add(forward.Mul(move[1]))
	if l := dir.Len(); l > 1 {
		dir = dir.Mul(1 / l)
	}
	return dir
}

func cameraYaw(e *ecs.ECS) float64 {
	if entry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(entry).Yaw
	}
	return 0
}
