package ingest

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitWindows(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		size    int
		overlap int
		want    []string
	}{
		{
			name:    "empty text",
			text:    "",
			size:    10,
			overlap: 2,
			want:    nil,
		},
		{
			name:    "text shorter than window",
			text:    "hello",
			size:    10,
			overlap: 2,
			want:    []string{"hello"},
		},
		{
			name:    "exact fit",
			text:    "abcdefghij",
			size:    10,
			overlap: 2,
			want:    []string{"abcdefghij"},
		},
		{
			name:    "two windows with overlap",
			text:    "abcdefghijkl",
			size:    10,
			overlap: 2,
			want:    []string{"abcdefghij", "ijkl"},
		},
		{
			name:    "zero overlap",
			text:    "abcdef",
			size:    3,
			overlap: 0,
			want:    []string{"abc", "def"},
		},
		{
			name:    "overlap equals size is rejected",
			text:    "abcdef",
			size:    3,
			overlap: 3,
			want:    nil,
		},
		{
			name:    "negative overlap is rejected",
			text:    "abcdef",
			size:    3,
			overlap: -1,
			want:    nil,
		},
		{
			name:    "zero size is rejected",
			text:    "abcdef",
			size:    0,
			overlap: 0,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWindows(tt.text, tt.size, tt.overlap)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitWindows() returned %d windows, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitWindows() window[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitWindows_ProductionSizes(t *testing.T) {
	// 5000 characters at size 3000 / overlap 300 advances by 2700 per window:
	// [0,3000) and [2700,5000).
	text := strings.Repeat("a", 5000)

	got := SplitWindows(text, 3000, 300)
	if len(got) != 2 {
		t.Fatalf("SplitWindows() returned %d windows, want 2", len(got))
	}
	if utf8.RuneCountInString(got[0]) != 3000 {
		t.Errorf("SplitWindows() window[0] length = %d, want 3000", utf8.RuneCountInString(got[0]))
	}
	if utf8.RuneCountInString(got[1]) != 2300 {
		t.Errorf("SplitWindows() window[1] length = %d, want 2300", utf8.RuneCountInString(got[1]))
	}
}

func TestSplitWindows_RoundTrip(t *testing.T) {
	// Dropping the leading overlap runes from every window after the first
	// must reproduce the original character sequence.
	texts := []string{
		strings.Repeat("abcdefgh", 700),
		"héllo wörld " + strings.Repeat("é", 150),
		strings.Repeat("x", 99),
	}

	const (
		size    = 50
		overlap = 10
	)

	for _, text := range texts {
		windows := SplitWindows(text, size, overlap)

		var b strings.Builder
		for i, w := range windows {
			runes := []rune(w)
			if i == 0 {
				b.WriteString(w)
				continue
			}
			b.WriteString(string(runes[overlap:]))
		}

		if b.String() != text {
			t.Errorf("reassembled windows do not match input (len %d vs %d)", b.Len(), len(text))
		}
	}
}

func TestSplitWindows_RuneBoundaries(t *testing.T) {
	// Multi-byte characters must never be split mid-encoding.
	text := strings.Repeat("日本語テキスト", 20)

	for _, w := range SplitWindows(text, 7, 2) {
		if !utf8.ValidString(w) {
			t.Fatalf("SplitWindows() produced invalid UTF-8 window %q", w)
		}
	}
}
