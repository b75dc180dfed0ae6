package extract

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree together with the page origin used to
// resolve relative URLs.
type Document struct {
	root *html.Node
	base *url.URL
}

// Parse builds a Document from raw HTML. The tokenizer is forgiving, so
// malformed markup still yields a usable (possibly sparse) tree. An
// unparseable base URL only disables relative-URL resolution.
func Parse(rawHTML, baseURL string) *Document {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		root = nil
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" {
		base = nil
	}
	return &Document{root: root, base: base}
}

// walk visits every element node in document order. fn returning false stops
// the traversal.
func (d *Document) walk(fn func(n *html.Node) bool) {
	if d == nil || d.root == nil {
		return
	}
	stop := false
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if stop {
			return
		}
		if n.Type == html.ElementNode {
			if !fn(n) {
				stop = true
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(d.root)
}

// resolveURL makes href absolute against the page origin. Protocol-relative
// and path-relative references are normalized; failures yield "".
func (d *Document) resolveURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	if d == nil || d.base == nil {
		return ""
	}
	return d.base.ResolveReference(ref).String()
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all text nodes under n, collapsing whitespace.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
