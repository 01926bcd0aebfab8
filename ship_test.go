package asteroids

import (
	"math"
	"testing"

	"github.com/oliverbestmann/byke/gm"
	"github.com/stretchr/testify/require"
)

func TestHeadingOf(t *testing.T) {
	require.InDelta(t, 1, headingOf(0).X, 1e-9)
	require.InDelta(t, 0, headingOf(0).Y, 1e-9)

	// the ship spawns rotated -90 degrees, facing up in a y-down world
	up := headingOf(gm.DegToRad(-90))
	require.InDelta(t, 0, up.X, 1e-9)
	require.InDelta(t, -1, up.Y, 1e-9)
}

func TestApplyThrustAccelerates(t *testing.T) {
	heading := gm.Vec{X: 1}

	vel := applyThrust(gm.VecZero, heading, 500, 500, 0.1)

	require.InDelta(t, 50, vel.X, 1e-9)
	require.InDelta(t, 0, vel.Y, 1e-9)
}

func TestApplyThrustClampsToMaxSpeed(t *testing.T) {
	heading := gm.Vec{X: 1}

	vel := gm.Vec{X: 490}
	for range 100 {
		vel = applyThrust(vel, heading, 500, 500, 0.1)
	}

	require.InDelta(t, 500, vel.Length(), 1e-9)
}

func TestApplyThrustClampPreservesDirection(t *testing.T) {
	heading := gm.Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}

	vel := applyThrust(gm.Vec{X: 400, Y: 400}, heading, 500, 500, 0.1)

	require.InDelta(t, 500, vel.Length(), 1e-9)
	require.InDelta(t, vel.X, vel.Y, 1e-9)
}

func TestDampSlowsTheShip(t *testing.T) {
	vel := gm.Vec{X: 300, Y: -400}

	damped := damp(vel, 0.8, 0.1)

	require.Less(t, damped.Length(), vel.Length())

	// direction is unchanged
	require.InDelta(t, vel.X/vel.Length(), damped.X/damped.Length(), 1e-9)
	require.InDelta(t, vel.Y/vel.Length(), damped.Y/damped.Length(), 1e-9)
}

func TestDampConvergesToZero(t *testing.T) {
	vel := gm.Vec{X: 500}

	for range 1000 {
		vel = damp(vel, 0.8, 0.1)
	}

	require.InDelta(t, 0, vel.Length(), 1e-6)
}

func TestShipCornersNosePointsForward(t *testing.T) {
	corners := shipCorners()
	require.Len(t, corners, 3)

	// exactly one corner, the nose, lies on the +X axis
	var noses int
	for _, corner := range corners {
		if corner.X > 0 {
			noses++
			require.Zero(t, corner.Y)
		}
	}
	require.Equal(t, 1, noses)
}
