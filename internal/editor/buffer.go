package editor

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrLineOutOfRange is returned when a line index is outside the document.
var ErrLineOutOfRange = errors.New("line index out of range")

// BufferProvider is the document access boundary the extension depends on.
// The host editor owns the document; the extension only observes lines and
// proposes whole-line replacements.
type BufferProvider interface {
	// Line returns the text of line i (0-indexed, no terminator).
	Line(i int) (string, error)

	// SetLine replaces the text of line i.
	SetLine(i int, text string) error

	// LineCount returns the number of lines in the document.
	LineCount() int
}

// LineBuffer is a thread-safe line-oriented document buffer.
type LineBuffer struct {
	mu              sync.RWMutex
	lines           []string
	trailingNewline bool
}

// NewLineBuffer creates a buffer with the given lines.
func NewLineBuffer(lines ...string) *LineBuffer {
	b := &LineBuffer{
		lines: make([]string, len(lines)),
	}
	copy(b.lines, lines)
	return b
}

// NewLineBufferFromString creates a buffer by splitting s into lines.
// CRLF and CR line endings are normalized to LF first.
func NewLineBufferFromString(s string) *LineBuffer {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	b := &LineBuffer{}
	if s == "" {
		return b
	}

	if strings.HasSuffix(s, "\n") {
		b.trailingNewline = true
		s = strings.TrimSuffix(s, "\n")
	}
	b.lines = strings.Split(s, "\n")
	return b
}

// NewLineBufferFromReader creates a buffer from an io.Reader.
func NewLineBufferFromReader(r io.Reader) (*LineBuffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewLineBufferFromString(string(data)), nil
}

// Line returns the text of line i.
func (b *LineBuffer) Line(i int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.lines) {
		return "", fmt.Errorf("%w: %d (lines: %d)", ErrLineOutOfRange, i, len(b.lines))
	}
	return b.lines[i], nil
}

// SetLine replaces the text of line i.
// The replacement must not contain a line terminator.
func (b *LineBuffer) SetLine(i int, text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("line %d: replacement contains a line terminator", i)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.lines) {
		return fmt.Errorf("%w: %d (lines: %d)", ErrLineOutOfRange, i, len(b.lines))
	}
	b.lines[i] = text
	return nil
}

// LineCount returns the number of lines.
func (b *LineBuffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Lines returns a copy of all lines.
func (b *LineBuffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]string, len(b.lines))
	copy(result, b.lines)
	return result
}

// Text returns the full document text with LF line endings, restoring the
// trailing newline if the source content had one.
func (b *LineBuffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.lines) == 0 {
		return ""
	}

	text := strings.Join(b.lines, "\n")
	if b.trailingNewline {
		text += "\n"
	}
	return text
}
