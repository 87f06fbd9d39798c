package collection

import (
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain name",
			raw:  "lecture_notes",
			want: "lecture_notes",
		},
		{
			name: "filename drops extension",
			raw:  "machine-learning.pdf",
			want: "machine-learning",
		},
		{
			name: "spaces and punctuation stripped",
			raw:  "My Lecture (v2)!",
			want: "MyLecturev2",
		},
		{
			name: "leading underscores trimmed",
			raw:  "__hidden_notes",
			want: "hidden_notes",
		},
		{
			name: "trailing hyphens trimmed",
			raw:  "notes--",
			want: "notes",
		},
		{
			name: "short name padded to three",
			raw:  "ml.pdf",
			want: "mlx",
		},
		{
			name: "single character padded",
			raw:  "a",
			want: "axx",
		},
		{
			name: "hidden file keeps dotfile name",
			raw:  ".env",
			want: "env",
		},
		{
			name: "long name truncated to sixty-three",
			raw:  strings.Repeat("a", 100),
			want: strings.Repeat("a", 63),
		},
		{
			name:    "nothing valid remains",
			raw:     "!!! ***",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "only an extension",
			raw:     "...",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.raw)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeName(%q) expected error, got %q", tt.raw, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("NormalizeName(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeName_Bounds(t *testing.T) {
	inputs := []string{
		"a", "ab", "abc",
		"weird--name__", "Notes 2024.md",
		strings.Repeat("b", 62) + "-x",
		strings.Repeat("-", 30) + "core" + strings.Repeat("-", 30),
	}

	for _, raw := range inputs {
		got, err := NormalizeName(raw)
		if err != nil {
			t.Fatalf("NormalizeName(%q) unexpected error: %v", raw, err)
		}
		if len(got) < 3 || len(got) > 63 {
			t.Errorf("NormalizeName(%q) = %q, length %d out of [3,63]", raw, got, len(got))
		}
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"lecture.pdf",
		"a",
		"My Notes (final).md",
		strings.Repeat("z", 100),
		"__x__",
	}

	for _, raw := range inputs {
		once, err := NormalizeName(raw)
		if err != nil {
			t.Fatalf("NormalizeName(%q) unexpected error: %v", raw, err)
		}
		twice, err := NormalizeName(once)
		if err != nil {
			t.Fatalf("NormalizeName(%q) second pass error: %v", once, err)
		}
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
