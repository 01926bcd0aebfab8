package asteroids

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRngIsDeterministicPerSeed(t *testing.T) {
	a := NewRng(42)
	b := NewRng(42)

	for range 100 {
		require.Equal(t, a.Range(0, 1), b.Range(0, 1))
	}
}

func TestRngZeroSeedPicksOne(t *testing.T) {
	rng := NewRng(0)
	require.NotZero(t, rng.Seed)
}

func TestRngRange(t *testing.T) {
	rng := NewRng(1)

	for range 1000 {
		value := rng.Range(-3, 7)
		require.GreaterOrEqual(t, value, -3.0)
		require.Less(t, value, 7.0)
	}
}

func TestRngAngle(t *testing.T) {
	rng := NewRng(2)

	for range 1000 {
		angle := float64(rng.Angle())
		require.GreaterOrEqual(t, angle, 0.0)
		require.Less(t, angle, 2*math.Pi)
	}
}
