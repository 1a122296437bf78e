// Package ecs provides ECS adapters for towerstack's game events.
//
// The primary adapter is [NewDonburiSink], which republishes game events
// (start, placement, perfect, score, messages, game over) into a [Donburi]
// world as typed events. Subscribe to [GameEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game, err := towerstack.NewGame(cfg, renderer, sink)
//
// Events are queued by Donburi; call events.ProcessAllEvents(world) (or
// GameEventType.ProcessEvents) from your ECS update.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
