package asteroids

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
)

type Screen int

const (
	ScreenTitle   Screen = 1
	ScreenPlaying Screen = 2
)

type PauseState int

const (
	Paused   PauseState = 0
	Unpaused PauseState = 1
)

func configureScreens(app *byke.App) {
	app.InitState(byke.StateType[PauseState]{
		InitialValue: Unpaused,
	})

	app.AddSystems(byke.OnEnter(ScreenTitle), spawnTitleScreenSystem)
	app.AddSystems(byke.OnEnter(ScreenPlaying), spawnHudSystem)
	app.AddSystems(byke.OnEnter(Paused), spawnPauseOverlaySystem)
	app.AddSystems(byke.OnExit(Paused), resumeTimeSystem)

	app.AddSystems(byke.Update,
		byke.System(startGameSystem).
			InSet(InputSystems).
			RunIf(byke.InState(ScreenTitle)))

	app.AddSystems(byke.PreUpdate,
		byke.System(pauseGameSystem).
			RunIf(byke.InState(Unpaused)).
			RunIf(byke.InState(ScreenPlaying)),
		byke.System(unpauseGameSystem).
			RunIf(byke.InState(Paused)))
}

func spawnTitleScreenSystem(commands *byke.Commands) {
	commands.Spawn(
		byke.DespawnOnExitState(ScreenTitle),
		bykebiten.Text{Text: "ASTEROIDS"},
		bykebiten.NewTransform().
			WithTranslation(gm.Vec{Y: -60}).
			WithScale(gm.VecSplat(4)),
	)

	commands.Spawn(
		byke.DespawnOnExitState(ScreenTitle),
		bykebiten.Text{Text: "press enter to start"},
		bykebiten.NewTransform().WithTranslation(gm.Vec{Y: 20}),
		bykebiten.ColorTint{Color: color.Gray(0.7)},
	)
}

func startGameSystem(keys bykebiten.Keys, screen *byke.NextState[Screen]) {
	if keys.IsJustPressed(ebiten.KeyEnter) || keys.IsJustPressed(ebiten.KeySpace) {
		screen.Set(ScreenPlaying)
	}
}

func spawnHudSystem(commands *byke.Commands, cfg Config) {
	commands.Spawn(
		byke.DespawnOnExitState(ScreenPlaying),
		bykebiten.Text{Text: "w thrust / a d turn / space shoot / tab wireframe / r reset / esc pause"},
		bykebiten.NewTransform().
			WithTranslation(gm.Vec{Y: float64(cfg.Display.Height)/2 - 20}),
		bykebiten.ColorTint{Color: color.Gray(0.4)},
		bykebiten.Layer{Z: 3},
	)
}

func pauseGameSystem(keys bykebiten.Keys, vt *byke.VirtualTime, pause *byke.NextState[PauseState]) {
	if keys.IsJustPressed(ebiten.KeyEscape) || keys.IsJustPressed(ebiten.KeyP) {
		pause.Set(Paused)
		vt.Scale = 0
	}
}

func unpauseGameSystem(keys bykebiten.Keys, pause *byke.NextState[PauseState]) {
	if keys.IsJustPressed(ebiten.KeyEscape) || keys.IsJustPressed(ebiten.KeyP) {
		pause.Set(Unpaused)
	}
}

func resumeTimeSystem(vt *byke.VirtualTime) {
	vt.Scale = 1
}

func spawnPauseOverlaySystem(commands *byke.Commands) {
	commands.Spawn(
		byke.DespawnOnExitState(Paused),
		bykebiten.Text{Text: "paused"},
		bykebiten.NewTransform().WithScale(gm.VecSplat(2)),
		bykebiten.Layer{Z: 3},
	)
}
