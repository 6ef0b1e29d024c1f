// Package ecs provides ECS adapters for hyperspace's reveal notification.
//
// The primary adapter is [NewDonburiSink], which publishes the one-time
// reveal of a starfield into a [Donburi] world as a typed event. Subscribe to
// [RevealEventType] in your ECS systems to react when the field becomes
// visible (start UI transitions, unlock input, and so on).
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	field.SetRevealSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
