// asteroids is a small arcade shooter: steer a ship through a wrapping
// playfield, shoot asteroids and dodge the fragments.
//
// Flags:
//
//	--config <path>  - Override gameplay tunables from a YAML file
//	--seed <value>   - Fix the RNG seed for reproducible runs
//	--profile        - Write a CPU profile for this run
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/partycle"
	"github.com/oliverbestmann/byke/physics"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	asteroids "github.com/vectorwake/asteroids"
)

var (
	flagConfig     string
	flagSeed       uint64
	flagProfile    bool
	flagVerbose    bool
	flagFullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "An arcade shooter on a wrapping playfield",
	Long: `Steer a ship through a wrapping playfield, shoot asteroids and
dodge the fragments. Large asteroids break into smaller ones until
nothing is left.

Controls:
  W          - Thrust
  A / D      - Turn
  Space      - Shoot
  Tab        - Toggle wireframe rendering
  R          - Reset the ship to the center
  Esc        - Pause`,
	Args: cobra.NoArgs,
	RunE: run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a gameplay config YAML")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().BoolVar(&flagProfile, "profile", false, "Write a CPU profile")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	if flagProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	cfg, err := asteroids.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	rng := asteroids.NewRng(flagSeed)
	log.Debug("rng initialized", "seed", rng.Seed)

	if flagFullscreen {
		ebiten.SetFullscreen(true)
	}

	var app byke.App

	app.InsertResource(bykebiten.WindowConfig{
		Title:  cfg.Display.Title,
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
	})

	app.InsertResource(cfg)
	app.InsertResource(rng)

	app.AddPlugin(bykebiten.GamePlugin)
	app.AddPlugin(physics.Plugin)
	app.AddPlugin(partycle.Plugin)
	app.AddPlugin(asteroids.Plugin)

	log.Info("starting", "size", fmt.Sprintf("%dx%d", cfg.Display.Width, cfg.Display.Height))

	if err := app.Run(); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}

	return nil
}
