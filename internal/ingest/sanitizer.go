package ingest

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes characters that cannot round-trip through the storage
// layer: UTF-16 surrogate code points (U+D800-U+DFFF, which arrive as invalid
// UTF-8 bytes since Go strings cannot encode them), any other invalid UTF-8
// byte, and NUL. Sanitizing already-clean text is a no-op, which makes the
// function idempotent.
func Sanitize(text string) string {
	if utf8.ValidString(text) && !strings.ContainsRune(text, 0) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid byte, typically a UTF-8-encoded surrogate half.
			i++
			continue
		}
		if r == 0 {
			i += size
			continue
		}
		b.WriteString(text[i : i+size])
		i += size
	}

	return b.String()
}
