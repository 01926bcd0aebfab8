package asteroids

import (
	"time"

	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke/physics"
)

// Explosion is triggered whenever an asteroid breaks apart or the ship is
// hit. The radius scales the visual burst.
type Explosion struct {
	Position gm.Vec
	Radius   float64
}

func configureParticles(app *byke.App) {
	app.World().AddObserver(byke.NewObserver(explosionObserver))
}

func explosionObserver(trigger byke.On[Explosion], commands *byke.Commands, cfg Config, rng *Rng) {
	explosion := &trigger.Event

	var ring bykebiten.Path
	ring.Circle(gm.VecZero, explosion.Radius)

	// expanding ring flash
	commands.Spawn(
		byke.DespawnAfter(cfg.Particles.Flash()),
		ring,
		bykebiten.TransformFromXY(explosion.Position.XY()),
		bykebiten.Stroke{
			Width:     explosion.Radius / 3,
			Color:     color.RGBA(1.0, 0.5, 0.2, 0.5),
			Antialias: true,
		},
		bykebiten.Layer{Z: 2},
	)

	for _, d := range debrisBurst(rng, &cfg.Particles, explosion.Radius) {
		spawnDebris(commands, explosion.Position, d)
	}
}

// debris is a single fragment flying away from an explosion.
type debris struct {
	Velocity gm.Vec
	Lifetime time.Duration
	Size     float64
	Spark    bool
}

// debrisBurst rolls the fragments for an explosion. The number of fragments
// grows with the explosion radius, so bigger asteroids go out with a bigger
// bang.
func debrisBurst(rng *Rng, cfg *ParticleConfig, radius float64) []debris {
	rocks := int(radius * cfg.DebrisPerUnit)
	sparks := int(radius * cfg.SparksPerUnit)

	burst := make([]debris, 0, rocks+sparks)

	for idx := range rocks + sparks {
		speed := rng.Range(cfg.MinSpeed, cfg.MaxSpeed)
		lifetime := rng.Range(cfg.MinLifetimeSecs, cfg.MaxLifetimeSecs)

		d := debris{
			Velocity: gm.Vec{X: speed}.Rotated(rng.Angle()),
			Lifetime: time.Duration(lifetime * float64(time.Second)),
			Size:     rng.Range(1.5, 3.5),
			Spark:    idx >= rocks,
		}

		if d.Spark {
			d.Size = rng.Range(0.8, 1.5)
		}

		burst = append(burst, d)
	}

	return burst
}

func spawnDebris(commands *byke.Commands, position gm.Vec, d debris) {
	debrisColor := color.Gray(0.6)
	if d.Spark {
		debrisColor = color.RGB(1.0, 0.8, 0.3)
	}

	var dot bykebiten.Path
	dot.Circle(gm.VecZero, d.Size)

	commands.Spawn(
		byke.DespawnAfter(d.Lifetime),
		bykebiten.TransformFromXY(position.XY()),

		// moved by the physics step but collides with nothing
		physics.RigidBodyKinematic,
		physics.Collider{
			Shape: physics.CircleShape{Radius: d.Size},
		},
		physics.ShapeFilter{},
		physics.Velocity{Linear: d.Velocity},

		dot,
		bykebiten.Fill{Color: debrisColor, Antialias: true},
		bykebiten.Stroke{Width: 1, Color: debrisColor, Antialias: true},
		bykebiten.Layer{Z: 1},
		ShapeStyle{Fill: debrisColor},
	)
}
