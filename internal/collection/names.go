package collection

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minNameLength = 3
	maxNameLength = 63
	padRune       = "x"
)

var (
	invalidChars    = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	leadingNonAlnum = regexp.MustCompile(`^[^a-zA-Z0-9]+`)
	trailingNonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+$`)
)

// NormalizeName converts an arbitrary string (typically a filename) into a
// valid collection name: 3-63 characters of [A-Za-z0-9_-], starting and ending
// alphanumeric. Short results are right-padded with a filler character, long
// results truncated. Normalization is idempotent; it fails only when nothing
// valid remains after stripping.
func NormalizeName(raw string) (string, error) {
	// Drop a file extension if present.
	name := raw
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	name = invalidChars.ReplaceAllString(name, "")
	name = leadingNonAlnum.ReplaceAllString(name, "")
	name = trailingNonAlnum.ReplaceAllString(name, "")

	if name == "" {
		return "", fmt.Errorf("collection name %q is empty after normalization", raw)
	}

	if len(name) < minNameLength {
		name = name + strings.Repeat(padRune, minNameLength-len(name))
	} else if len(name) > maxNameLength {
		name = name[:maxNameLength]
		// Truncation can expose a non-alphanumeric tail.
		name = trailingNonAlnum.ReplaceAllString(name, "")
		if len(name) < minNameLength {
			name = name + strings.Repeat(padRune, minNameLength-len(name))
		}
	}

	return name, nil
}
