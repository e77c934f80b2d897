// Package parser splits blog post assets into optional YAML frontmatter and
// a body, and derives display titles.
package parser

import (
	"bytes"
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	htmlH1Re  = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)
	titleCase = cases.Title(language.English)
)

// Meta is the frontmatter a post asset may carry. Every field is optional.
type Meta struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Date     string `yaml:"date"`
	Image    string `yaml:"image"`
	Excerpt  string `yaml:"excerpt"`
}

// Result holds the output of parsing a post asset.
type Result struct {
	Meta  *Meta
	Body  string
	Title string
}

// Parse extracts frontmatter and body from raw asset bytes. html selects how
// the fallback title is found in the body.
func Parse(data []byte, html bool) (*Result, error) {
	meta, body := splitFrontmatter(data)
	return &Result{
		Meta:  meta,
		Body:  body,
		Title: deriveTitle(meta, body, html),
	}, nil
}

// splitFrontmatter separates YAML frontmatter between leading --- lines from
// the body. Missing or malformed frontmatter leaves the whole input as body.
func splitFrontmatter(data []byte) (*Meta, string) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, string(data)
	}

	block := rest[:idx]
	after := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(after), "\n\r")

	var meta Meta
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return nil, string(data)
	}
	return &meta, body
}

// deriveTitle prefers the frontmatter title, then the first H1 of the body.
func deriveTitle(meta *Meta, body string, html bool) string {
	if meta != nil && strings.TrimSpace(meta.Title) != "" {
		return strings.TrimSpace(meta.Title)
	}
	if html {
		if m := htmlH1Re.FindStringSubmatch(body); m != nil {
			return strings.TrimSpace(htmlTagRe.ReplaceAllString(m[1], ""))
		}
		return ""
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// TitleFromFilename turns "my-first_post.md" into "My First Post".
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return titleCase.String(strings.Join(strings.Fields(base), " "))
}
