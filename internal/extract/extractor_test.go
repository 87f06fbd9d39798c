package extract

import (
	"strings"
	"testing"
)

func TestExtractor_Pages_Markdown(t *testing.T) {
	extractor := New()

	content := []byte(`# Gradient Descent

An iterative optimization method.

- computes the gradient
- takes a step against it

---

## Learning Rate

` + "```go\nstep := lr * grad\n```" + `

Controls the step size.
`)

	pages, err := extractor.Pages("optimization.md", content)
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Pages() returned %d pages, want 2 split at the thematic break", len(pages))
	}

	if !strings.Contains(pages[0], "Gradient Descent") {
		t.Errorf("page[0] missing heading text: %q", pages[0])
	}
	if !strings.Contains(pages[0], "computes the gradient") {
		t.Errorf("page[0] missing list item text: %q", pages[0])
	}
	if strings.Contains(pages[0], "Learning Rate") {
		t.Errorf("page[0] leaked content from page 2: %q", pages[0])
	}

	if !strings.Contains(pages[1], "step := lr * grad") {
		t.Errorf("page[1] missing code block text: %q", pages[1])
	}
	if !strings.Contains(pages[1], "Controls the step size.") {
		t.Errorf("page[1] missing paragraph text: %q", pages[1])
	}

	// Markdown syntax does not survive into the plain text.
	for i, page := range pages {
		if strings.Contains(page, "#") || strings.Contains(page, "```") {
			t.Errorf("page[%d] contains markdown syntax: %q", i, page)
		}
	}
}

func TestExtractor_Pages_MarkdownWithoutBreaks(t *testing.T) {
	extractor := New()

	pages, err := extractor.Pages("single.md", []byte("# Title\n\nOne body paragraph."))
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Pages() returned %d pages, want 1", len(pages))
	}
	if !strings.Contains(pages[0], "One body paragraph.") {
		t.Errorf("page[0] = %q", pages[0])
	}
}

func TestExtractor_Pages_PlainText(t *testing.T) {
	extractor := New()

	tests := []struct {
		name     string
		filename string
		content  string
		want     []string
	}{
		{
			name:     "form feeds split pages",
			filename: "notes.txt",
			content:  "page one\fpage two\fpage three",
			want:     []string{"page one", "page two", "page three"},
		},
		{
			name:     "no form feed is a single page",
			filename: "notes.txt",
			content:  "just one page of text",
			want:     []string{"just one page of text"},
		},
		{
			name:     "empty pages dropped",
			filename: "notes.txt",
			content:  "\f\fcontent\f  \f",
			want:     []string{"content"},
		},
		{
			name:     "whitespace trimmed per page",
			filename: "notes.txt",
			content:  "  padded  \f\n\nnext\n",
			want:     []string{"padded", "next"},
		},
		{
			name:     "unknown extension treated as plain text",
			filename: "lecture.pdf",
			content:  "extracted pdf text\fsecond page",
			want:     []string{"extracted pdf text", "second page"},
		},
		{
			name:     "empty document",
			filename: "empty.txt",
			content:  "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := extractor.Pages(tt.filename, []byte(tt.content))
			if err != nil {
				t.Fatalf("Pages() error = %v", err)
			}
			if len(pages) != len(tt.want) {
				t.Fatalf("Pages() = %q, want %q", pages, tt.want)
			}
			for i := range pages {
				if pages[i] != tt.want[i] {
					t.Errorf("Pages() page[%d] = %q, want %q", i, pages[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractor_Pages_ExtensionCaseInsensitive(t *testing.T) {
	extractor := New()

	pages, err := extractor.Pages("NOTES.MD", []byte("# Heading\n\nBody."))
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	if len(pages) != 1 || strings.Contains(pages[0], "#") {
		t.Errorf("Pages() = %q, want markdown handling for upper-case extension", pages)
	}
}
