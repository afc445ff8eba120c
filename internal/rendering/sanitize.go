package rendering

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	richTextOnce   sync.Once
	richTextPolicy *bluemonday.Policy
)

// richTextElements are the inline elements kept as markup.
var richTextElements = map[atom.Atom]bool{
	atom.B:      true,
	atom.Strong: true,
	atom.I:      true,
	atom.Em:     true,
	atom.Code:   true,
	atom.A:      true,
}

// RichText sanitizes author-supplied free text, keeping only inline emphasis,
// code spans and links. Any other markup is escaped and shown as text, so
// "List<String>" renders literally instead of disappearing.
func RichText(raw string) template.HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	//nolint:gosec // output of a strict allow-list policy
	return template.HTML(richTextSanitizer().Sanitize(escapeUnknownMarkup(trimmed)))
}

// escapeUnknownMarkup passes allowed inline tags through and escapes
// everything else, including text inside raw-text elements like <title>.
func escapeUnknownMarkup(s string) string {
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.WriteString(html.EscapeString(string(z.Text())))
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			if richTextElements[atom.Lookup(name)] {
				sb.WriteString(raw)
			} else {
				sb.WriteString(html.EscapeString(raw))
			}
		default:
			sb.WriteString(html.EscapeString(string(z.Raw())))
		}
	}
}

func richTextSanitizer() *bluemonday.Policy {
	richTextOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		richTextPolicy = policy
	})
	return richTextPolicy
}
