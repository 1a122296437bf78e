// Package audio plays synthesized sound cues for towerstack game events.
//
// Cues are generated once with beep oscillators and envelopes, rendered to
// 16-bit stereo PCM and played through ebiten's audio context. A [Player]
// is a towerstack.EventSink: wire it next to the HUD with
// towerstack.MultiSink and every placement, perfect placement and game
// over gets its sound.
package audio
