package asteroids

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebrisBurstCountsScaleWithRadius(t *testing.T) {
	rng := NewRng(7)
	cfg := DefaultConfig()

	small := debrisBurst(&rng, &cfg.Particles, cfg.Asteroids.SmallRadius)
	large := debrisBurst(&rng, &cfg.Particles, cfg.Asteroids.LargeRadius)

	require.NotEmpty(t, small)
	require.Greater(t, len(large), len(small))
}

func TestDebrisBurstFragments(t *testing.T) {
	rng := NewRng(8)
	cfg := DefaultConfig()

	burst := debrisBurst(&rng, &cfg.Particles, 40)

	var sparks int
	for _, d := range burst {
		if d.Spark {
			sparks++
		}

		require.Greater(t, d.Size, 0.0)
		require.GreaterOrEqual(t, d.Lifetime, time.Duration(cfg.Particles.MinLifetimeSecs*float64(time.Second)))
		require.LessOrEqual(t, d.Lifetime, time.Duration(cfg.Particles.MaxLifetimeSecs*float64(time.Second)))

		speed := d.Velocity.Length()
		require.GreaterOrEqual(t, speed, cfg.Particles.MinSpeed)
		require.LessOrEqual(t, speed, cfg.Particles.MaxSpeed)
	}

	// both rocks and sparks are present
	require.Greater(t, sparks, 0)
	require.Less(t, sparks, len(burst))
}

func TestDebrisBurstZeroRadius(t *testing.T) {
	rng := NewRng(9)
	cfg := DefaultConfig()

	require.Empty(t, debrisBurst(&rng, &cfg.Particles, 0))
}
