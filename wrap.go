package asteroids

import (
	"math"

	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/gm"
)

var _ = byke.ValidateComponent[Wraps]()

// Wraps marks entities that teleport to the opposite edge once they leave
// the wrap rectangle. The rectangle extends beyond the visible screen so
// that entities fully disappear before reappearing on the other side.
type Wraps struct {
	byke.ImmutableComponent[Wraps]
}

func configureWrap(app *byke.App) {
	// after physics has integrated positions for this frame
	app.AddSystems(byke.PostUpdate, wrapSystem)
}

func wrapSystem(
	cfg Config,
	entities byke.Query[struct {
		_         byke.With[Wraps]
		Transform *bykebiten.Transform
	}],
) {
	bounds := cfg.WrapBounds()

	for item := range entities.Items() {
		item.Transform.Translation = wrapInto(item.Transform.Translation, bounds)
	}
}

// wrapInto folds pos into the centered rectangle of the given size. Any
// input maps into the rectangle, not just positions one step outside it.
func wrapInto(pos, size gm.Vec) gm.Vec {
	return gm.Vec{
		X: wrapAxis(pos.X, size.X),
		Y: wrapAxis(pos.Y, size.Y),
	}
}

func wrapAxis(value, size float64) float64 {
	half := size / 2

	value = math.Mod(value+half, size)
	if value < 0 {
		value += size
	}

	return value - half
}
