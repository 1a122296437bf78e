// Package scene is the ebiten front end of a towerstack game.
//
// A [Scene] implements [towerstack.Renderer]: every box the game creates
// becomes a [Node] drawn with a fixed isometric orthographic projection,
// shaded by one directional light and painter-sorted by depth. The scene
// also owns the HUD (score, feedback message, game-over overlay), turns
// mouse, touch and keyboard input into [Action] callbacks, and hosts the
// ebiten game loop through [Run].
//
// # Quick start
//
//	scn := scene.NewScene()
//	game, err := towerstack.NewGame(cfg, scn, scn.HUD())
//	if err != nil {
//		log.Fatal(err)
//	}
//	scn.OnAction(func(ctx scene.ActionContext) {
//		if ctx.Action == scene.ActionDrop {
//			game.Action()
//		}
//	})
//	scn.SetUpdateFunc(func() error {
//		game.Frame()
//		return nil
//	})
//	if err := scene.Run(scn, scene.RunConfig{Title: "Stack", Width: 480, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
//
// # Automated runs
//
// [Scene.InjectClick] and [Scene.InjectKey] queue synthetic input consumed
// one event per frame, identical to real input. A JSON script loaded with
// [LoadTestScript] sequences clicks, keys, waits and PNG screenshots:
//
//	{"steps": [
//	    {"action": "click", "x": 240, "y": 360},
//	    {"action": "wait", "frames": 90},
//	    {"action": "screenshot", "label": "first-drop"}
//	]}
//
// Everything runs on the ebiten update goroutine; nothing here is safe for
// concurrent use.
package scene
