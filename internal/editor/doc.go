// Package editor provides the document model the extension operates on.
//
// A document is an ordered sequence of lines with no embedded terminators.
// LineBuffer is the in-process implementation used by the CLI host and by
// tests; the extension itself only sees the BufferProvider interface, so a
// real editor integration can supply its own document model.
//
// Lines are mutable only via full replacement. Line endings are normalized
// to LF on load, and the presence of a trailing newline survives a
// Text() round trip.
//
// All LineBuffer methods are safe for concurrent use.
package editor
