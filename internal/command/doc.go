// Package command provides a name-to-handler command registry.
//
// The registry is the injection point between the extension and its host:
// the extension registers commands against a Registry it is handed, and the
// host (CLI, script runtime, or a test fake) decides when to execute them.
// Nothing in this package touches process-global state, so tests construct a
// fresh Registry per run instead of relying on teardown.
//
// All Registry methods are safe for concurrent use.
package command
