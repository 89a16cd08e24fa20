// Package vtengine is a headless xterm-compatible terminal logic engine.
//
// It turns a stream of PTY output bytes into an in-memory grid of attributed
// cells, and turns logical key events into the byte sequences xterm would
// send back to the PTY. It does not open a PTY, spawn a child process,
// capture keyboard input, or draw anything — those are the host's job. See cmd/vtdemo for a host that
// wires a real PTY and a terminal renderer around this package.
//
//	eng := vtengine.New(80, 24)
//	dirty := eng.ProcessInput([]byte("\x1b[31mHello\x1b[0m"))
//	cell := eng.Cell(0, 0) // 'H', red on black
//
// The engine is single-threaded and non-reentrant: callers must serialize
// ProcessInput, ProcessKey and Resize calls themselves, typically from one
// poll loop that drains the PTY, forwards key events, and renders.
package vtengine
