// Package textcase provides the uppercase line transform.
//
// The transform is a pure function over a single line of text: it maps every
// letter to its uppercase form using the Unicode default case mapping and
// leaves all other characters untouched. It is deterministic, idempotent,
// and allocates a new string rather than mutating its input.
//
// Two entry points exist:
//
//   - ToUpper accepts a string and is the path for statically typed callers.
//   - Convert accepts any value and enforces the textual-content contract at
//     runtime. It exists for the Lua boundary, where values arrive untyped
//     from the host's document model.
//
// All functions are safe for concurrent use.
package textcase
