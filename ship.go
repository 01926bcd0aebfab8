package asteroids

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke/partycle"
	"github.com/oliverbestmann/byke/physics"
)

var _ = byke.ValidateComponent[Ship]()

// Ship tags the player entity. There is exactly one while playing.
type Ship struct {
	byke.Component[Ship]
}

func configureShip(app *byke.App) {
	app.AddSystems(byke.OnEnter(ScreenPlaying), spawnShipSystem)

	app.AddSystems(byke.Update,
		byke.System(shipControlSystem).
			InSet(InputSystems).
			RunIf(byke.InState(ScreenPlaying)).
			RunIf(byke.InState(Unpaused)))
}

// shipCorners is the hull in local coordinates, nose pointing along +X.
func shipCorners() []gm.Vec {
	return []gm.Vec{
		{X: -12, Y: 12},
		{X: 18, Y: 0},
		{X: -12, Y: -12},
	}
}

func spawnShipSystem(commands *byke.Commands, cfg Config) {
	corners := shipCorners()

	var hull bykebiten.Path
	for _, corner := range corners {
		hull.LineTo(corner)
	}
	hull.Close()

	commands.
		Spawn(
			byke.DespawnOnExitState(ScreenPlaying),
			Ship{},
			bykebiten.NewTransform().WithRotation(gm.DegToRad(-90)),
			Wraps{},

			physics.RigidBodyKinematic,
			physics.Collider{
				Shape: physics.PolygonShape{Points: corners},
			},
			physics.Sensor{},
			physics.CollisionEventsEnabled{},
			shipShapeFilter(),

			hull,
			bykebiten.Fill{Color: color.Black},
			bykebiten.Stroke{Width: 2, Color: color.White, Antialias: true},
			ShapeStyle{Fill: color.Black},
		).
		Observe(func(
			trigger byke.On[physics.OnCollisionStarted],
			commands *byke.Commands,
			cfg Config,
			ship byke.Single[struct {
				_         byke.With[Ship]
				Transform *bykebiten.Transform
				Velocity  *physics.Velocity
			}],
		) {
			// rammed by an asteroid: blow up and start over in the center
			commands.Trigger(Explosion{
				Position: ship.Value.Transform.Translation,
				Radius:   cfg.Ship.ExplosionRadius,
			})

			resetShip(ship.Value.Transform, ship.Value.Velocity)
		})
}

func shipControlSystem(
	commands *byke.Commands,
	keys bykebiten.Keys,
	vt byke.VirtualTime,
	cfg Config,
	ship byke.Single[struct {
		_ byke.With[Ship]
		byke.EntityId
		Transform *bykebiten.Transform
		Velocity  *physics.Velocity
	}],
) {
	s := &ship.Value

	if keys.IsPressed(ebiten.KeyA) {
		s.Transform.Rotation -= gm.Rad(cfg.Ship.RotationSpeed * vt.DeltaSecs)
	}

	if keys.IsPressed(ebiten.KeyD) {
		s.Transform.Rotation += gm.Rad(cfg.Ship.RotationSpeed * vt.DeltaSecs)
	}

	if keys.IsPressed(ebiten.KeyW) {
		heading := headingOf(s.Transform.Rotation)
		s.Velocity.Linear = applyThrust(s.Velocity.Linear, heading, cfg.Ship.Thrust, cfg.Ship.MaxSpeed, vt.DeltaSecs)

		commands.Entity(s.EntityId).Update(byke.InsertComponent(exhaustEmitter()))
	} else {
		commands.Entity(s.EntityId).Update(byke.RemoveComponent[partycle.Emitter]())
	}

	s.Velocity.Linear = damp(s.Velocity.Linear, cfg.Ship.Damping, vt.DeltaSecs)

	if keys.IsJustPressed(ebiten.KeyR) {
		resetShip(s.Transform, s.Velocity)
	}
}

// headingOf is the unit forward vector for the given rotation.
func headingOf(rotation gm.Rad) gm.Vec {
	return gm.RotationMat(rotation).Transform(gm.Vec{X: 1})
}

// applyThrust accelerates vel along heading and clamps the result to maxSpeed.
func applyThrust(vel, heading gm.Vec, thrust, maxSpeed, deltaSecs float64) gm.Vec {
	vel = vel.Add(heading.Mul(thrust * deltaSecs))

	if speed := vel.Length(); speed > maxSpeed {
		vel = vel.Mul(maxSpeed / speed)
	}

	return vel
}

// damp applies exponential decay so the ship coasts to a stop.
func damp(vel gm.Vec, damping, deltaSecs float64) gm.Vec {
	return vel.Mul(math.Exp(-damping * deltaSecs))
}

func resetShip(transform *bykebiten.Transform, velocity *physics.Velocity) {
	transform.Translation = gm.VecZero
	transform.Rotation = gm.DegToRad(-90)
	velocity.Linear = gm.VecZero
	velocity.Angular = 0
}

// exhaustEmitter is attached to the ship only while thrusting.
func exhaustEmitter() partycle.Emitter {
	puff := bykebiten.Circle(1.5, 8)

	return partycle.Emitter{
		ParticlesPerSecond:       70,
		ParticlesPerSecondJitter: 30,
		LinearVelocity:           gm.Vec{X: -100},
		LinearVelocityJitter:     gm.Vec{X: 20, Y: 20},
		AngularVelocityJitter:    math.Pi,
		RotationJitter:           math.Pi * 2,
		DampeningLinear:          1,
		DampeningAngular:         1,
		ParticleLifetime:         200 * time.Millisecond,
		ParticleLifetimeJitter:   40 * time.Millisecond,
		Visual: func() byke.ErasedComponent {
			return puff
		},
	}
}
