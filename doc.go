// Package towerstack is the simulation core of a stack-tower arcade game.
//
// Blocks slide back and forth atop a growing tower. Each player action drops
// the moving block, which is clipped to its overlap with the block below.
// The clipped-away part breaks off as a physically simulated overhang and
// tumbles away; a block that misses entirely ends the game.
//
// # Quick start
//
// The core does not draw anything. It drives a [Renderer] and reports to an
// [EventSink]; the scene and audio packages provide ebiten-backed versions
// of both:
//
//	game, err := towerstack.NewGame(towerstack.DefaultConfig(), renderer, sink)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// per input event:
//	game.Action()
//	// per display refresh:
//	game.Frame()
//
// # Frame order
//
// Every [Game.Frame] runs, in order: the motion tick of the active layer,
// one fixed physics step of the [World], the projection of physics
// transforms onto visuals, the marker and feedback timers, and finally
// [Renderer.Render]. Input is handled between frames on the same goroutine;
// the package is single-threaded by construction and does no locking.
//
// # Lifecycle
//
// A [Game] moves from NotStarted to Running on the first action and from
// Running to GameOver on a miss. GameOver is terminal: restarting means
// building a new Game.
package towerstack
