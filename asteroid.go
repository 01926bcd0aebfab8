package asteroids

import (
	"math"

	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke/physics"
)

// SizeClass is the categorical asteroid size. Splitting strictly decreases
// the class until SizeSmall, which does not split any further.
type SizeClass uint8

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

func (s SizeClass) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	default:
		return "small"
	}
}

// Smaller returns the next smaller class, or false for SizeSmall.
func (s SizeClass) Smaller() (SizeClass, bool) {
	if s == SizeSmall {
		return SizeSmall, false
	}

	return s - 1, true
}

var _ = byke.ValidateComponent[Asteroid]()

type Asteroid struct {
	byke.Component[Asteroid]
	Size SizeClass
}

// AsteroidSpawnTimer tops the population back up to the configured maximum.
type AsteroidSpawnTimer struct {
	Timer byke.Timer
}

func configureAsteroids(app *byke.App) {
	app.InsertResource(AsteroidSpawnTimer{})

	app.AddSystems(byke.OnEnter(ScreenPlaying), spawnInitialAsteroidsSystem)

	app.AddSystems(byke.Update,
		byke.System(replenishAsteroidsSystem).
			InSet(GameSystems).
			RunIf(byke.InState(ScreenPlaying)).
			RunIf(byke.InState(Unpaused)))
}

func spawnInitialAsteroidsSystem(commands *byke.Commands, cfg Config, rng *Rng, timer *AsteroidSpawnTimer) {
	timer.Timer = byke.NewTimer(cfg.Asteroids.SpawnInterval(), byke.TimerModeRepeating)

	for range cfg.Asteroids.InitialCount {
		spawnAsteroid(commands, cfg, rng, edgeSeed(rng, &cfg, SizeLarge))
	}
}

func replenishAsteroidsSystem(
	commands *byke.Commands,
	vt byke.VirtualTime,
	cfg Config,
	rng *Rng,
	timer *AsteroidSpawnTimer,
	asteroids byke.Query[byke.With[Asteroid]],
) {
	if timer.Timer.Tick(vt.Delta).TimesFinishedThisTick() == 0 {
		return
	}

	if asteroids.Count() < cfg.Asteroids.MaxCount {
		spawnAsteroid(commands, cfg, rng, edgeSeed(rng, &cfg, SizeLarge))
	}
}

// asteroidSeed is everything needed to spawn one asteroid.
type asteroidSeed struct {
	Size     SizeClass
	Position gm.Vec
	Velocity gm.Vec
	Spin     gm.Rad
}

// edgeSeed places a new asteroid just beyond a random screen edge, never
// inside the ship's safe zone around the origin.
func edgeSeed(rng *Rng, cfg *Config, size SizeClass) asteroidSeed {
	halfW := float64(cfg.Display.Width) / 2
	halfH := float64(cfg.Display.Height) / 2
	margin := cfg.Asteroids.Radius(size) + cfg.Asteroids.EdgeMargin

	var position gm.Vec
	for {
		switch rng.IntN(4) {
		case 0: // top
			position = gm.Vec{X: rng.Range(-halfW, halfW), Y: -halfH - margin}
		case 1: // right
			position = gm.Vec{X: halfW + margin, Y: rng.Range(-halfH, halfH)}
		case 2: // bottom
			position = gm.Vec{X: rng.Range(-halfW, halfW), Y: halfH + margin}
		default: // left
			position = gm.Vec{X: -halfW - margin, Y: rng.Range(-halfH, halfH)}
		}

		if position.Length() > cfg.Ship.SafeRadius {
			break
		}
	}

	speed := rng.Range(cfg.Asteroids.MinSpeed, cfg.Asteroids.MaxSpeed)

	return asteroidSeed{
		Size:     size,
		Position: position,
		Velocity: gm.Vec{X: speed}.Rotated(rng.Angle()),
		Spin:     gm.Rad(rng.Range(-cfg.Asteroids.MaxSpin, cfg.Asteroids.MaxSpin)),
	}
}

// splitSeeds derives the fragments of a destroyed asteroid: exactly two
// children of the next smaller class with velocities diverging from the
// parent heading, or nothing for the smallest class.
func splitSeeds(rng *Rng, cfg *AsteroidConfig, size SizeClass, position, parentVelocity gm.Vec) []asteroidSeed {
	smaller, ok := size.Smaller()
	if !ok {
		return nil
	}

	base := parentVelocity.Mul(cfg.ChildSpeedScale)
	if base.Length() < cfg.MinSpeed {
		base = gm.Vec{X: cfg.MinSpeed}.Rotated(rng.Angle())
	}

	spread := gm.DegToRad(cfg.ChildSpreadDeg)
	divergence := gm.Rad(rng.Range(float64(spread)/2, float64(spread)))

	seeds := make([]asteroidSeed, 0, 2)
	for _, angle := range []gm.Rad{divergence, -divergence} {
		seeds = append(seeds, asteroidSeed{
			Size:     smaller,
			Position: position,
			Velocity: base.Rotated(angle),
			Spin:     gm.Rad(rng.Range(-cfg.MaxSpin, cfg.MaxSpin)),
		})
	}

	return seeds
}

// rockOutline builds an irregular polygon roughly following a circle of the
// given radius.
func rockOutline(rng *Rng, radius float64) []gm.Vec {
	var points []gm.Vec

	var angle gm.Rad
	for angle < 2*math.Pi {
		point := gm.Vec{X: radius + rng.Range(-radius*0.25, radius*0.15)}.Rotated(angle)
		points = append(points, point)

		angle += gm.Rad(rng.Range(float64(gm.DegToRad(25)), float64(gm.DegToRad(55))))
	}

	return points
}

func spawnAsteroid(commands *byke.Commands, cfg Config, rng *Rng, seed asteroidSeed) {
	radius := cfg.Asteroids.Radius(seed.Size)

	var shape bykebiten.Path
	for _, point := range rockOutline(rng, radius) {
		shape.LineTo(point)
	}
	shape.Close()

	rockColor := color.Gray(0.25)

	commands.
		Spawn(
			byke.DespawnOnExitState(ScreenPlaying),
			Asteroid{Size: seed.Size},
			bykebiten.TransformFromXY(seed.Position.XY()),
			Wraps{},

			physics.RigidBodyDynamic,
			physics.Collider{
				Shape: physics.CircleShape{Radius: radius},
			},
			physics.CollisionEventsEnabled{},
			asteroidShapeFilter(),
			physics.Velocity{Linear: seed.Velocity, Angular: seed.Spin},

			shape,
			bykebiten.Fill{Color: rockColor},
			bykebiten.Stroke{Width: 2, Color: color.Gray(0.7), Antialias: true},
			ShapeStyle{Fill: rockColor},
		).
		Observe(func(
			trigger byke.On[physics.OnCollisionStarted],
			commands *byke.Commands,
			cfg Config,
			rng *Rng,
			asteroids byke.Query[struct {
				byke.EntityId
				Asteroid  Asteroid
				Transform bykebiten.Transform
				Velocity  physics.Velocity
			}],
		) {
			hit, ok := asteroids.Get(trigger.Target)
			if !ok {
				// already despawned by an earlier event this frame
				return
			}

			commands.Entity(hit.EntityId).Despawn()

			commands.Trigger(Explosion{
				Position: hit.Transform.Translation,
				Radius:   cfg.Asteroids.Radius(hit.Asteroid.Size),
			})

			for _, child := range splitSeeds(rng, &cfg.Asteroids, hit.Asteroid.Size, hit.Transform.Translation, hit.Velocity.Linear) {
				spawnAsteroid(commands, cfg, rng, child)
			}
		})
}
