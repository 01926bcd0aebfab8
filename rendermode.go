package asteroids

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
)

// RenderMode switches every shape between its filled look and a wireframe
// outline. Toggling twice restores the exact previous look.
type RenderMode struct {
	Wireframe bool
}

func (r *RenderMode) Toggle() {
	r.Wireframe = !r.Wireframe
}

var _ = byke.ValidateComponent[ShapeStyle]()

// ShapeStyle remembers the filled-mode color of a shape so that leaving
// wireframe mode can restore it.
type ShapeStyle struct {
	byke.Component[ShapeStyle]
	Fill color.Color
}

func configureRenderMode(app *byke.App) {
	app.InsertResource(RenderMode{})

	app.AddSystems(byke.Update,
		byke.System(toggleRenderModeSystem).InSet(InputSystems))

	// after gameplay systems so freshly spawned shapes get styled this frame
	app.AddSystems(byke.PostUpdate, applyRenderModeSystem)
}

func toggleRenderModeSystem(keys bykebiten.Keys, mode *RenderMode) {
	if keys.IsJustPressed(ebiten.KeyTab) {
		mode.Toggle()
	}
}

func applyRenderModeSystem(
	mode RenderMode,
	shapes byke.Query[struct {
		Style ShapeStyle
		Fill  *bykebiten.Fill
	}],
) {
	for item := range shapes.Items() {
		item.Fill.Color = fillColorFor(mode, item.Style.Fill)
	}
}

// fillColorFor is the effective fill: transparent in wireframe mode, the
// shape's own color otherwise.
func fillColorFor(mode RenderMode, fill color.Color) color.Color {
	if mode.Wireframe {
		return color.Transparent
	}

	return fill
}
