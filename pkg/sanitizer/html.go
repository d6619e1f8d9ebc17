package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// Email clients render a narrow, table-era subset of HTML. The
		// policy admits that subset plus inline styles, and strips
		// scripts, event handlers, and javascript: URLs.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr", "div", "span",
			"strong", "b", "em", "i", "u", "s", "small", "sub", "sup",
			"ul", "ol", "li", "dl", "dt", "dd",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th",
			"center",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.AllowImages()
		emailPolicy.AllowAttrs("align", "valign", "colspan", "rowspan",
			"cellpadding", "cellspacing", "border", "width").OnElements(
			"table", "tr", "td", "th")
		emailPolicy.AllowAttrs("style").Globally()
	})
}

// SanitizeEmailHTML strips markup that email clients should never receive
// (scripts, event handlers, javascript: URLs) while keeping the table-based
// layout and inline styling that HTML email depends on.
func SanitizeEmailHTML(s string) string {
	initPolicy()
	return emailPolicy.Sanitize(s)
}

// SanitizeEmailHTMLCustom applies a caller-supplied bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeEmailHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
