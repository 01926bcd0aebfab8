package asteroids

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestRadiusBySizeClass(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, cfg.Asteroids.LargeRadius, cfg.Asteroids.Radius(SizeLarge))
	require.Equal(t, cfg.Asteroids.MediumRadius, cfg.Asteroids.Radius(SizeMedium))
	require.Equal(t, cfg.Asteroids.SmallRadius, cfg.Asteroids.Radius(SizeSmall))
}

func TestWrapBoundsExceedScreen(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.WrapBounds()

	require.Equal(t, float64(cfg.Display.Width)+2*cfg.Wrap.Margin, bounds.X)
	require.Equal(t, float64(cfg.Display.Height)+2*cfg.Wrap.Margin, bounds.Y)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ship:\n  thrust: 750\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 750.0, cfg.Ship.Thrust)

	// untouched values keep their defaults
	require.Equal(t, DefaultConfig().Ship.MaxSpeed, cfg.Ship.MaxSpeed)
	require.Equal(t, DefaultConfig().Asteroids.LargeRadius, cfg.Asteroids.LargeRadius)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"zero display", func(cfg *Config) { cfg.Display.Width = 0 }},
		{"negative damping", func(cfg *Config) { cfg.Ship.Damping = -1 }},
		{"zero cooldown", func(cfg *Config) { cfg.Bullet.CooldownSecs = 0 }},
		{"negative safe radius", func(cfg *Config) { cfg.Ship.SafeRadius = -1 }},
		{"safe radius covers spawn ring", func(cfg *Config) { cfg.Ship.SafeRadius = 400 }},
		{"radii out of order", func(cfg *Config) { cfg.Asteroids.MediumRadius = 50 }},
		{"max below initial", func(cfg *Config) { cfg.Asteroids.MaxCount = 1 }},
		{"speed range flipped", func(cfg *Config) { cfg.Asteroids.MinSpeed = 500 }},
		{"lifetime range flipped", func(cfg *Config) { cfg.Particles.MaxLifetimeSecs = 0.1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
