package textcase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotString is returned when Convert receives non-textual input.
// Callers are expected to never violate this in production use; the check
// exists to produce a clear diagnostic at the untyped host boundary.
var ErrNotString = errors.New("to_uppercase requires a string")

// ToUpper returns s with every letter mapped to its uppercase form using the
// Unicode default case mapping. Non-letter characters pass through unchanged.
// Already-uppercase input is a fixed point.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// Convert enforces the textual-content contract for untyped input and applies
// ToUpper. It fails with ErrNotString for any non-string value.
func Convert(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w, got %T", ErrNotString, v)
	}
	return ToUpper(s), nil
}
