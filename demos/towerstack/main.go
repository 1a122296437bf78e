// towerstack is the playable stacking game: drop each sliding block onto
// the tower, trim what overhangs, and keep going until one misses.
//
// Controls: click, tap or Space drops; R restarts; - and = change volume.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/phanxgames/towerstack"
	"github.com/phanxgames/towerstack/audio"
	"github.com/phanxgames/towerstack/scene"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file overlaid on the defaults")
		seed       = flag.Uint64("seed", 0, "random seed (0 picks one per game)")
		debug      = flag.Bool("debug", false, "log placements and frame stats")
		script     = flag.String("script", "", "JSON test script to play back")
		width      = flag.Int("width", 480, "window width")
		height     = flag.Int("height", 720, "window height")
		showFPS    = flag.Bool("fps", false, "show the FPS overlay")
		mute       = flag.Bool("mute", false, "start with sound off")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "towerstack",
	})

	cfg := towerstack.DefaultConfig()
	if *configPath != "" {
		loaded, err := towerstack.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("config", "err", err)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *debug {
		cfg.Debug = true
		logger.SetLevel(log.DebugLevel)
	}

	scn := scene.NewScene(
		scene.WithLogger(logger.WithPrefix("scene")),
		scene.WithDebug(*debug),
	)

	volume := audio.DefaultVolume
	if *mute {
		volume = 0
	}
	sound := audio.NewPlayer(
		audio.WithLogger(logger.WithPrefix("audio")),
		audio.WithVolume(volume),
	)

	a := &app{cfg: cfg, log: logger, scene: scn, sound: sound}
	if err := a.restart(); err != nil {
		logger.Fatal("new game", "err", err)
	}

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			logger.Fatal("script", "err", err)
		}
		runner, err := scene.LoadTestScript(data)
		if err != nil {
			logger.Fatal("script", "err", err)
		}
		scn.SetTestRunner(runner)
		a.runner = runner
	}

	scn.OnAction(a.handle)
	scn.SetUpdateFunc(a.update)

	if err := scene.Run(scn, scene.RunConfig{
		Title:   "Tower Stack",
		Width:   *width,
		Height:  *height,
		ShowFPS: *showFPS,
	}); err != nil && !errors.Is(err, errScriptDone) {
		logger.Fatal("run", "err", err)
	}
}
