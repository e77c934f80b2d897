// Package render turns post bodies into HTML that is safe to embed in a page.
//
// Markdown goes through goldmark with GitHub flavoured extensions and class
// based syntax highlighting; raw HTML inside markdown is dropped. Both
// markdown output and HTML fragments then pass a bluemonday policy.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/starford/folio/internal/models"
)

// Style is the chroma style used for code blocks.
const Style = "dracula"

var classRe = regexp.MustCompile(`^[a-zA-Z0-9_ -]+$`)

// Renderer converts markdown and HTML post bodies to sanitized HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New returns a Renderer.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(Style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classRe).OnElements("span", "code", "pre", "div", "table", "td", "th")
	p.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	p.AllowAttrs("loading").Matching(regexp.MustCompile(`^lazy$`)).OnElements("img")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{md: md, policy: p}
}

// Markdown renders a markdown body.
func (r *Renderer) Markdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// HTML sanitizes an HTML fragment.
func (r *Renderer) HTML(src []byte) template.HTML {
	return template.HTML(r.policy.SanitizeBytes(src))
}

// Body renders src according to format.
func (r *Renderer) Body(format models.PostFormat, src []byte) (template.HTML, error) {
	switch format {
	case models.FormatMarkdown:
		return r.Markdown(src)
	case models.FormatHTML:
		return r.HTML(src), nil
	default:
		return "", fmt.Errorf("render: unknown format %q", format)
	}
}

// WriteCSS writes the stylesheet for highlighted code blocks.
func WriteCSS(w io.Writer) error {
	f := chromahtml.New(chromahtml.WithClasses(true))
	if err := f.WriteCSS(w, styles.Get(Style)); err != nil {
		return fmt.Errorf("render: css: %w", err)
	}
	return nil
}
