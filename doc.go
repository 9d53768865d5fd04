// Package linview is an interactive visualization of 2×2 linear
// transformations built on [Ebitengine].
//
// A session holds a single [State]: the current matrix, an interpolation
// parameter t blending the identity display with the full transform, a
// draggable probe vector, up to six pinned ghost vectors, a [Camera], and a
// [GridMode]. All mutation goes through [State.Apply] with explicit
// [Command] values; the [Renderer] is a pure function of the state.
//
// The usual entry point is [NewApp], which wires the [Controller] (pointer
// gestures: drag the probe tip, pan, zoom to cursor, click to relocate) and
// the [Player] (ping-pong sweep of t) into an [ebiten.Game]:
//
//	app, err := linview.NewApp(linview.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := ebiten.RunGame(app); err != nil {
//		log.Fatal(err)
//	}
//
// The pieces also work standalone; the controller and player consume plain
// screen coordinates and elapsed milliseconds, so they can be driven without
// a window.
//
// [Ebitengine]: https://ebitengine.org
package linview
