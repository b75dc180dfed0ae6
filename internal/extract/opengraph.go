package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// OpenGraph scans all <meta property="og:*"> tags and maps the property
// suffix (after "og:") to its content value. Duplicate keys resolve
// last-tag-wins, matching a single forward pass over the document.
func OpenGraph(doc *Document) map[string]string {
	tags := make(map[string]string)
	doc.walk(func(n *html.Node) bool {
		if n.Data != "meta" {
			return true
		}
		prop := strings.ToLower(attr(n, "property"))
		if !strings.HasPrefix(prop, "og:") {
			return true
		}
		key := strings.TrimPrefix(prop, "og:")
		if key == "" {
			return true
		}
		tags[key] = strings.TrimSpace(attr(n, "content"))
		return true
	})
	return tags
}
