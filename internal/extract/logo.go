package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// LogoURL resolves the page's logo/avatar image through a fixed waterfall:
// the og:image meta tag, then apple-touch-icon links, then plain icon links.
// The first non-empty source wins. Relative and protocol-relative URLs are
// normalized to absolute; unresolvable candidates yield "".
func LogoURL(doc *Document) string {
	var ogImage, touchIcon, icon string

	doc.walk(func(n *html.Node) bool {
		switch n.Data {
		case "meta":
			if ogImage == "" && strings.EqualFold(attr(n, "property"), "og:image") {
				ogImage = doc.resolveURL(attr(n, "content"))
			}
		case "link":
			rel := strings.ToLower(attr(n, "rel"))
			switch rel {
			case "apple-touch-icon", "apple-touch-icon-precomposed":
				if touchIcon == "" {
					touchIcon = doc.resolveURL(attr(n, "href"))
				}
			case "icon", "shortcut icon":
				if icon == "" {
					icon = doc.resolveURL(attr(n, "href"))
				}
			}
		}
		return true
	})

	for _, candidate := range []string{ogImage, touchIcon, icon} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
