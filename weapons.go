package asteroids

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke/physics"
)

var _ = byke.ValidateComponent[Bullet]()

// Bullet tags projectile entities.
type Bullet struct {
	byke.Component[Bullet]
}

// ShootCooldown gates the fire key. Firing while the timer is still running
// is a silent no-op; a successful shot re-arms the full cooldown.
type ShootCooldown struct {
	Timer byke.Timer
}

func NewShootCooldown(cooldown time.Duration) ShootCooldown {
	timer := byke.NewTimer(cooldown, byke.TimerModeOnce)

	// the first shot is available immediately
	timer.Tick(cooldown)

	return ShootCooldown{Timer: timer}
}

// Ready returns true once the cooldown has fully elapsed.
func (c *ShootCooldown) Ready() bool {
	return c.Timer.Finished()
}

// Arm restarts the cooldown after a shot.
func (c *ShootCooldown) Arm() {
	c.Timer.Reset()
}

func configureWeapons(app *byke.App) {
	app.InsertResource(ShootCooldown{})

	app.AddSystems(byke.OnEnter(ScreenPlaying), initCooldownSystem)

	app.AddSystems(byke.Update,
		byke.System(fireBulletSystem).
			InSet(InputSystems).
			RunIf(byke.InState(ScreenPlaying)).
			RunIf(byke.InState(Unpaused)))
}

func initCooldownSystem(cfg Config, cooldown *ShootCooldown) {
	*cooldown = NewShootCooldown(cfg.Bullet.Cooldown())
}

func fireBulletSystem(
	commands *byke.Commands,
	keys bykebiten.Keys,
	vt byke.VirtualTime,
	cfg Config,
	cooldown *ShootCooldown,
	ship byke.Single[struct {
		_         byke.With[Ship]
		Transform bykebiten.Transform
		Velocity  physics.Velocity
	}],
) {
	cooldown.Timer.Tick(vt.Delta)

	if !keys.IsPressed(ebiten.KeySpace) || !cooldown.Ready() {
		return
	}

	heading := headingOf(ship.Value.Transform.Rotation)
	position := ship.Value.Transform.Translation.Add(heading.Mul(cfg.Ship.NoseOffset))
	velocity := bulletVelocity(heading, ship.Value.Velocity.Linear, cfg.Bullet.Speed)

	spawnBullet(commands, cfg, position, velocity)
	cooldown.Arm()
}

// bulletVelocity is the muzzle velocity: ship heading scaled to bullet speed
// plus the ship's own velocity, so bullets never trail a fast ship.
func bulletVelocity(heading, shipVelocity gm.Vec, speed float64) gm.Vec {
	return heading.Mul(speed).Add(shipVelocity)
}

func spawnBullet(commands *byke.Commands, cfg Config, position, velocity gm.Vec) {
	var dot bykebiten.Path
	dot.Circle(gm.VecZero, cfg.Bullet.Radius)

	bulletColor := color.RGB(1, 1, 0.3)

	commands.
		Spawn(
			byke.DespawnOnExitState(ScreenPlaying),
			Bullet{},
			bykebiten.TransformFromXY(position.XY()),
			Wraps{},
			byke.DespawnAfter(cfg.Bullet.Lifetime()),

			physics.RigidBodyKinematic,
			physics.Collider{
				Shape: physics.CircleShape{Radius: cfg.Bullet.Radius},
			},
			physics.CollisionEventsEnabled{},
			bulletShapeFilter(),
			physics.Velocity{Linear: velocity},

			dot,
			bykebiten.Fill{Color: bulletColor, Antialias: true},
			bykebiten.Stroke{Width: 1, Color: bulletColor, Antialias: true},
			ShapeStyle{Fill: bulletColor},
		).
		Observe(func(trigger byke.On[physics.OnCollisionStarted], commands *byke.Commands) {
			// the asteroid handles its own destruction, the bullet just dies
			commands.Entity(trigger.Target).Despawn()
		})
}
