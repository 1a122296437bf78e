package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/phanxgames/towerstack"
	"github.com/phanxgames/towerstack/audio"
	"github.com/phanxgames/towerstack/scene"
)

// errScriptDone ends the run loop once a test script has played out.
var errScriptDone = errors.New("script done")

// app owns the current game and rebuilds it on restart.
type app struct {
	cfg    towerstack.Config
	log    *log.Logger
	scene  *scene.Scene
	sound  *audio.Player
	runner *scene.TestRunner
	game   *towerstack.Game
}

// restart clears the scene and starts a fresh game waiting for its first
// drop.
func (a *app) restart() error {
	a.scene.Reset()
	game, err := towerstack.NewGame(a.cfg, a.scene,
		towerstack.MultiSink{a.scene.HUD(), a.sound, eventLogger{a.log}},
		towerstack.WithLogger(a.log.WithPrefix("game")),
	)
	if err != nil {
		return err
	}
	a.game = game
	a.scene.SetBackground(game.Palette().Background())
	a.log.Info("new game", "session", game.Session().ID, "seed", game.Seed())
	return nil
}

func (a *app) handle(ctx scene.ActionContext) {
	switch ctx.Action {
	case scene.ActionDrop:
		if a.game.State() == towerstack.StateGameOver {
			a.mustRestart()
			return
		}
		a.game.Action()
	case scene.ActionRestart:
		a.mustRestart()
	case scene.ActionVolumeDown:
		a.sound.VolumeDown()
	case scene.ActionVolumeUp:
		a.sound.VolumeUp()
	}
}

func (a *app) mustRestart() {
	if err := a.restart(); err != nil {
		// cfg already passed validation for the first game.
		a.log.Fatal("restart", "err", err)
	}
}

func (a *app) update() error {
	a.game.Frame()
	a.scene.Camera().FollowTower(a.game.Tower().Len(), a.cfg.BoxHeight)
	if a.runner != nil && a.runner.Done() {
		return errScriptDone
	}
	return nil
}

// eventLogger logs the events a player would notice.
type eventLogger struct {
	log *log.Logger
}

func (l eventLogger) EmitEvent(e towerstack.Event) {
	switch e.Type {
	case towerstack.EventGameOver:
		l.log.Info("game over", "score", e.Score, "height", e.Height)
	case towerstack.EventPerfect:
		l.log.Debug("perfect", "score", e.Score)
	}
}
