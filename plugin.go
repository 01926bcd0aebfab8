package asteroids

import (
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke/physics"
)

// InputSystems run before GameSystems so that gameplay sees this frame's
// input, not last frame's.
var InputSystems = &byke.SystemSet{}
var GameSystems = &byke.SystemSet{}

// Plugin wires the gameplay rules into the app. The engine owns scheduling,
// rendering, input and collision resolution; everything registered here is a
// synchronous per-tick transform of entity state.
//
// The caller is expected to insert a Config and a Rng resource and to add the
// bykebiten, physics and partycle plugins before this one.
func Plugin(app *byke.App) {
	app.ConfigureSystemSets(byke.Update, InputSystems.Before(GameSystems))

	// open space, no gravity
	app.InsertResource(physics.Gravity{})

	app.InitState(byke.StateType[Screen]{
		InitialValue: ScreenTitle,
	})

	app.AddSystems(byke.Startup, setupCameraSystem)

	configureScreens(app)
	configureShip(app)
	configureWeapons(app)
	configureAsteroids(app)
	configureParticles(app)
	configureRenderMode(app)
	configureWrap(app)
}

// setupCameraSystem spawns the single camera at the world origin. All
// gameplay happens in a centered coordinate system; the wrap rectangle and
// edge spawning are derived from the same screen size.
func setupCameraSystem(commands *byke.Commands, cfg Config) {
	commands.Spawn(
		bykebiten.NewTransform(),
		bykebiten.Camera{},
		bykebiten.OrthographicProjection{
			ViewportOrigin: gm.VecSplat(0.5),
			ScalingMode:    bykebiten.ScalingModeFixedVertical{ViewportHeight: float64(cfg.Display.Height)},
			Scale:          1,
		},
	)
}
