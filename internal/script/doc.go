// Package script provides the sandboxed Lua runtime for host scripts.
//
// A State wraps a gopher-lua LState with a restricted library set: the base,
// table, string, and math libraries are available, while io, os, debug, and
// package are never opened and the load/dofile family is removed. Host
// scripts drive the extension exclusively through modules installed with
// Install, so a script cannot reach the filesystem or spawn processes.
//
// Watcher re-runs a script when its file changes, for interactive editing
// of extension scripts.
package script
