package asteroids

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/oliverbestmann/byke/gm"
	"gopkg.in/yaml.v3"
)

// Config carries every gameplay tunable. The engine owns rendering, input and
// physics; these values are the knobs of the thin rules layer on top. Defaults
// document the shipped balance, a YAML file can override any subset of them.
type Config struct {
	Display   DisplayConfig  `yaml:"display"`
	Ship      ShipConfig     `yaml:"ship"`
	Bullet    BulletConfig   `yaml:"bullet"`
	Asteroids AsteroidConfig `yaml:"asteroids"`
	Particles ParticleConfig `yaml:"particles"`
	Wrap      WrapConfig     `yaml:"wrap"`
}

type DisplayConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type ShipConfig struct {
	// Thrust is the forward acceleration in units per second squared applied
	// while the thrust key is held.
	Thrust float64 `yaml:"thrust"`

	// RotationSpeed is the turn rate in radians per second.
	RotationSpeed float64 `yaml:"rotation_speed"`

	// MaxSpeed clamps the length of the linear velocity.
	MaxSpeed float64 `yaml:"max_speed"`

	// Damping is the exponential decay rate of the linear velocity,
	// producing inertia-like coasting instead of an abrupt stop.
	Damping float64 `yaml:"damping"`

	// NoseOffset is the distance from the ship center to the muzzle.
	NoseOffset float64 `yaml:"nose_offset"`

	// SafeRadius around the ship spawn point that asteroid spawns avoid.
	SafeRadius float64 `yaml:"safe_radius"`

	// ExplosionRadius of the burst spawned when the ship is rammed.
	ExplosionRadius float64 `yaml:"explosion_radius"`
}

type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`

	LifetimeSecs float64 `yaml:"lifetime_secs"`
	CooldownSecs float64 `yaml:"cooldown_secs"`
}

func (c BulletConfig) Lifetime() time.Duration {
	return time.Duration(c.LifetimeSecs * float64(time.Second))
}

func (c BulletConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownSecs * float64(time.Second))
}

type AsteroidConfig struct {
	InitialCount int `yaml:"initial_count"`
	MaxCount     int `yaml:"max_count"`

	SpawnIntervalSecs float64 `yaml:"spawn_interval_secs"`

	LargeRadius  float64 `yaml:"large_radius"`
	MediumRadius float64 `yaml:"medium_radius"`
	SmallRadius  float64 `yaml:"small_radius"`

	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`

	// MaxSpin is the absolute limit of the random angular velocity
	// in radians per second.
	MaxSpin float64 `yaml:"max_spin"`

	// ChildSpeedScale scales the parent velocity when an asteroid splits.
	ChildSpeedScale float64 `yaml:"child_speed_scale"`

	// ChildSpreadDeg is the maximum angle in degrees by which the two
	// fragments diverge from the parent heading.
	ChildSpreadDeg float64 `yaml:"child_spread_deg"`

	// EdgeMargin is the extra distance beyond the screen edge at which
	// new asteroids appear.
	EdgeMargin float64 `yaml:"edge_margin"`
}

func (c AsteroidConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalSecs * float64(time.Second))
}

// Radius returns the collider radius of the given size class.
func (c AsteroidConfig) Radius(size SizeClass) float64 {
	switch size {
	case SizeLarge:
		return c.LargeRadius
	case SizeMedium:
		return c.MediumRadius
	default:
		return c.SmallRadius
	}
}

type ParticleConfig struct {
	// DebrisPerUnit and SparksPerUnit scale the particle count with the
	// radius of the destroyed object.
	DebrisPerUnit float64 `yaml:"debris_per_unit"`
	SparksPerUnit float64 `yaml:"sparks_per_unit"`

	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`

	MinLifetimeSecs float64 `yaml:"min_lifetime_secs"`
	MaxLifetimeSecs float64 `yaml:"max_lifetime_secs"`

	FlashSecs float64 `yaml:"flash_secs"`
}

// Flash is how long the expanding ring of an explosion stays on screen.
func (c ParticleConfig) Flash() time.Duration {
	return time.Duration(c.FlashSecs * float64(time.Second))
}

type WrapConfig struct {
	// Margin extends the wrap rectangle beyond the visible screen so large
	// entities fully leave before reappearing on the other side.
	Margin float64 `yaml:"margin"`
}

// WrapBounds is the size of the centered rectangle that positions of
// wrap-enabled entities are folded into.
func (c *Config) WrapBounds() gm.Vec {
	return gm.Vec{
		X: float64(c.Display.Width) + 2*c.Wrap.Margin,
		Y: float64(c.Display.Height) + 2*c.Wrap.Margin,
	}
}

func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Title:  "Asteroids",
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Thrust:          500,
			RotationSpeed:   4.5,
			MaxSpeed:        500,
			Damping:         0.8,
			NoseOffset:      22,
			SafeRadius:      150,
			ExplosionRadius: 30,
		},
		Bullet: BulletConfig{
			Speed:        400,
			Radius:       3,
			LifetimeSecs: 2,
			CooldownSecs: 0.2,
		},
		Asteroids: AsteroidConfig{
			InitialCount:      4,
			MaxCount:          8,
			SpawnIntervalSecs: 3,
			LargeRadius:       40,
			MediumRadius:      25,
			SmallRadius:       15,
			MinSpeed:          30,
			MaxSpeed:          100,
			MaxSpin:           2,
			ChildSpeedScale:   1.3,
			ChildSpreadDeg:    40,
			EdgeMargin:        50,
		},
		Particles: ParticleConfig{
			DebrisPerUnit:   0.8,
			SparksPerUnit:   0.33,
			MinSpeed:        50,
			MaxSpeed:        150,
			MinLifetimeSecs: 0.5,
			MaxLifetimeSecs: 1.5,
			FlashSecs:       0.15,
		},
		Wrap: WrapConfig{
			Margin: 100,
		},
	}
}

// LoadConfig returns the defaults overridden by the YAML file at path.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}

	if c.Ship.Thrust <= 0 || c.Ship.MaxSpeed <= 0 || c.Ship.RotationSpeed <= 0 {
		return fmt.Errorf("ship thrust, max_speed and rotation_speed must be positive")
	}

	if c.Ship.Damping < 0 {
		return fmt.Errorf("ship damping must not be negative, got %v", c.Ship.Damping)
	}

	// every edge spawn candidate lies at least this far from the origin, so a
	// safe radius at or above it would starve edge placement of valid spots
	maxSafe := math.Min(float64(c.Display.Width), float64(c.Display.Height))/2 +
		c.Asteroids.EdgeMargin + c.Asteroids.SmallRadius

	if c.Ship.SafeRadius < 0 || c.Ship.SafeRadius >= maxSafe {
		return fmt.Errorf("ship safe_radius must be in [0, %v) for this display size, got %v",
			maxSafe, c.Ship.SafeRadius)
	}

	if c.Bullet.Speed <= 0 || c.Bullet.LifetimeSecs <= 0 || c.Bullet.CooldownSecs <= 0 {
		return fmt.Errorf("bullet speed, lifetime_secs and cooldown_secs must be positive")
	}

	if !(c.Asteroids.LargeRadius > c.Asteroids.MediumRadius && c.Asteroids.MediumRadius > c.Asteroids.SmallRadius) {
		return fmt.Errorf("asteroid radii must strictly decrease, got %v > %v > %v",
			c.Asteroids.LargeRadius, c.Asteroids.MediumRadius, c.Asteroids.SmallRadius)
	}

	if c.Asteroids.SmallRadius <= 0 {
		return fmt.Errorf("small_radius must be positive, got %v", c.Asteroids.SmallRadius)
	}

	if c.Asteroids.InitialCount < 0 || c.Asteroids.MaxCount < c.Asteroids.InitialCount {
		return fmt.Errorf("asteroid counts out of range: initial=%d max=%d",
			c.Asteroids.InitialCount, c.Asteroids.MaxCount)
	}

	if c.Asteroids.MinSpeed < 0 || c.Asteroids.MaxSpeed < c.Asteroids.MinSpeed {
		return fmt.Errorf("asteroid speed range out of order: min=%v max=%v",
			c.Asteroids.MinSpeed, c.Asteroids.MaxSpeed)
	}

	if c.Particles.MinLifetimeSecs <= 0 || c.Particles.MaxLifetimeSecs < c.Particles.MinLifetimeSecs {
		return fmt.Errorf("particle lifetime range out of order: min=%v max=%v",
			c.Particles.MinLifetimeSecs, c.Particles.MaxLifetimeSecs)
	}

	if c.Wrap.Margin < 0 {
		return fmt.Errorf("wrap margin must not be negative, got %v", c.Wrap.Margin)
	}

	return nil
}
