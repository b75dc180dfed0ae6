package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// socialDomains maps known social platforms to the URL substrings that
// identify them. Matching is case-insensitive substring.
var socialDomains = map[string][]string{
	"facebook":  {"facebook.com"},
	"instagram": {"instagram.com"},
	"linkedin":  {"linkedin.com"},
	"twitter":   {"twitter.com", "x.com"},
}

// reviewDomains identify links to review sites, collected separately.
var reviewDomains = []string{"yelp.com", "google.com/maps", "tripadvisor"}

// SocialLinks classifies every anchor href against the known social and
// review domain tables. The first matching link per platform wins; later
// duplicates are ignored so the scan rule matches the CTA detector's
// first-match convention. Review links keep document order, deduplicated by
// exact URL.
func SocialLinks(doc *Document) (social map[string]string, reviews []string) {
	social = make(map[string]string)
	seenReview := make(map[string]bool)

	doc.walk(func(n *html.Node) bool {
		if n.Data != "a" {
			return true
		}
		href := doc.resolveURL(attr(n, "href"))
		if href == "" {
			return true
		}
		lower := strings.ToLower(href)

		for platform, needles := range socialDomains {
			if social[platform] != "" {
				continue
			}
			for _, needle := range needles {
				if strings.Contains(lower, needle) {
					social[platform] = href
					break
				}
			}
		}

		for _, needle := range reviewDomains {
			if strings.Contains(lower, needle) && !seenReview[href] {
				seenReview[href] = true
				reviews = append(reviews, href)
				break
			}
		}
		return true
	})
	return social, reviews
}
