package asteroids

import (
	"testing"
	"time"

	"github.com/oliverbestmann/byke/gm"
	"github.com/stretchr/testify/require"
)

func TestBulletVelocityInheritsShipVelocity(t *testing.T) {
	heading := gm.Vec{X: 1}
	shipVelocity := gm.Vec{X: 100, Y: -30}

	velocity := bulletVelocity(heading, shipVelocity, 400)

	require.Equal(t, gm.Vec{X: 500, Y: -30}, velocity)
}

func TestBulletVelocityStationaryShip(t *testing.T) {
	heading := gm.Vec{Y: -1}

	velocity := bulletVelocity(heading, gm.VecZero, 400)

	require.InDelta(t, 400, velocity.Length(), 1e-9)
	require.InDelta(t, -400, velocity.Y, 1e-9)
}

func TestShootCooldownGatesShots(t *testing.T) {
	cooldown := NewShootCooldown(200 * time.Millisecond)

	// the first shot is free
	require.True(t, cooldown.Ready())

	cooldown.Arm()
	require.False(t, cooldown.Ready())

	cooldown.Timer.Tick(100 * time.Millisecond)
	require.False(t, cooldown.Ready())

	cooldown.Timer.Tick(100 * time.Millisecond)
	require.True(t, cooldown.Ready())

	// arming again restarts the full cooldown
	cooldown.Arm()
	require.False(t, cooldown.Ready())

	cooldown.Timer.Tick(250 * time.Millisecond)
	require.True(t, cooldown.Ready())
}
