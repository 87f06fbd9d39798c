// Package extract turns uploaded documents into plain text pages.
// Chunking happens per page downstream, so page boundaries decide where
// chunks may not span.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Extractor converts raw document bytes into plain text pages.
type Extractor struct {
	markdown goldmark.Markdown
}

// New creates an extractor.
func New() *Extractor {
	return &Extractor{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Pages returns the document's content as plain text pages.
// Markdown files are parsed via the AST with thematic breaks (---) acting as
// page boundaries. Any other file is treated as plain text, split on form
// feeds; a document without form feeds is a single page.
func (e *Extractor) Pages(filename string, content []byte) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return e.markdownPages(content), nil
	default:
		return plainTextPages(string(content)), nil
	}
}

// markdownPages walks the markdown AST collecting text content, starting a new
// page at every thematic break.
func (e *Extractor) markdownPages(content []byte) []string {
	reader := text.NewReader(content)
	doc := e.markdown.Parser().Parse(reader)

	var pages []string
	var page strings.Builder

	flush := func() {
		if trimmed := strings.TrimSpace(page.String()); trimmed != "" {
			pages = append(pages, trimmed)
		}
		page.Reset()
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.ThematicBreak:
			flush()
			return ast.WalkSkipChildren, nil

		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			if page.Len() > 0 && !strings.HasSuffix(page.String(), "\n") {
				page.WriteString("\n")
			}
			return ast.WalkContinue, nil

		case *ast.Text:
			segment := node.Segment
			page.Write(segment.Value(content))
			return ast.WalkContinue, nil

		case *ast.String:
			page.Write(node.Value)
			return ast.WalkContinue, nil

		case *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				page.Write(line.Value(content))
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				page.Write(line.Value(content))
			}
			return ast.WalkSkipChildren, nil

		default:
			return ast.WalkContinue, nil
		}
	})
	flush()

	return pages
}

// plainTextPages splits text on form feed characters, dropping empty pages.
func plainTextPages(content string) []string {
	parts := strings.Split(content, "\f")
	pages := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}
	return pages
}
