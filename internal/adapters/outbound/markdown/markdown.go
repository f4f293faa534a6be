// Package markdown extracts structure from context cards: the YAML
// frontmatter block and the heading outline.
package markdown

import (
	"bytes"
	"strings"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Parser implements domain.MarkdownParser on top of goldmark.
type Parser struct {
	md goldmark.Markdown
}

func New() *Parser {
	return &Parser{md: goldmark.New()}
}

// Frontmatter parses the YAML block between --- delimiters at the top of the
// document. The second return reports whether a frontmatter block exists at
// all: a present-but-malformed block yields (nil, true), so callers can tell
// "no frontmatter" apart from "frontmatter without usable keys".
func (p *Parser) Frontmatter(content []byte) (map[string]any, bool) {
	s := string(content)

	if !strings.HasPrefix(s, "---") {
		return nil, false
	}

	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, false
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(rest[:endIdx])), &fm); err != nil {
		return nil, true
	}
	return fm, true
}

// Headings returns the document outline in source order. Frontmatter is
// stripped first so line numbers count from the real markdown body the same
// way they do for cards without frontmatter.
func (p *Parser) Headings(content []byte) []domain.Heading {
	body := stripFrontmatter(content)
	doc := p.md.Parser().Parse(text.NewReader(body))

	var headings []domain.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		line := 1
		if heading.Lines().Len() > 0 {
			seg := heading.Lines().At(0)
			line = bytes.Count(body[:seg.Start], []byte("\n")) + 1
		}

		headings = append(headings, domain.Heading{
			Level: heading.Level,
			Title: string(heading.Text(body)),
			Line:  line,
		})
		return ast.WalkContinue, nil
	})

	return headings
}

func stripFrontmatter(content []byte) []byte {
	s := string(content)
	if !strings.HasPrefix(s, "---") {
		return content
	}
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return content
	}
	remaining := rest[endIdx+4:]
	remaining = strings.TrimPrefix(remaining, "\n")
	return []byte(remaining)
}
