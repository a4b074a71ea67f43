package render

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Markdown renders s as sanitized HTML. Bundle values and descriptions may carry
// emphasis, links or inline code.
func Markdown(s string) template.HTML {
	// parsers keep state between documents, so one per call
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	out := markdown.ToHTML([]byte(s), p, nil)
	return template.HTML(sanitizer.SanitizeBytes(out))
}

// Inline renders s like Markdown but drops the enclosing paragraph of a
// single-paragraph result, for use inside <p> and <h*> elements.
func Inline(s string) template.HTML {
	html := strings.TrimSpace(string(Markdown(s)))
	if strings.HasPrefix(html, "<p>") && strings.HasSuffix(html, "</p>") && strings.Count(html, "<p>") == 1 {
		html = strings.TrimSuffix(strings.TrimPrefix(html, "<p>"), "</p>")
	}
	return template.HTML(html)
}
