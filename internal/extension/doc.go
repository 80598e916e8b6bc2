// Package extension implements the uppercase extension.
//
// The extension registers a single command, text.to_uppercase, that converts
// every line of the active document to uppercase. Each line is transformed
// independently in ascending index order with one buffer write per line, so
// the document's line count is never changed by the command.
//
// The extension holds no document state between invocations; the host owns
// the buffer and hands the extension a BufferProvider and a command Registry
// at construction time.
package extension
