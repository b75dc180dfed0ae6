package extract

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// JSONLD parses every <script type="application/ld+json"> block in the
// document. Each block is decoded independently; a malformed block is logged
// and skipped without aborting the rest. Returns the parsed values in
// document order.
func JSONLD(doc *Document) []any {
	var blocks []any
	doc.walk(func(n *html.Node) bool {
		if n.Data != "script" || !strings.EqualFold(attr(n, "type"), "application/ld+json") {
			return true
		}
		raw := rawText(n)
		if strings.TrimSpace(raw) == "" {
			return true
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			zap.L().Debug("extract: skipping malformed json-ld block", zap.Error(err))
			return true
		}
		blocks = append(blocks, v)
		return true
	})
	return blocks
}

// rawText returns the unprocessed text content of a script node.
func rawText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// JSONLDString finds the first non-empty string value for key across all
// parsed blocks, descending into objects, arrays, and @graph containers.
// Used by the waterfall merge, where JSON-LD outranks other evidence.
func JSONLDString(blocks []any, key string) string {
	for _, b := range blocks {
		if s := jsonldLookup(b, key); s != "" {
			return s
		}
	}
	return ""
}

func jsonldLookup(v any, key string) string {
	switch t := v.(type) {
	case map[string]any:
		if raw, ok := t[key]; ok {
			if s := jsonldScalar(raw); s != "" {
				return s
			}
		}
		for _, child := range t {
			switch child.(type) {
			case map[string]any, []any:
				if s := jsonldLookup(child, key); s != "" {
					return s
				}
			}
		}
	case []any:
		for _, item := range t {
			if s := jsonldLookup(item, key); s != "" {
				return s
			}
		}
	}
	return ""
}

// jsonldScalar renders a JSON-LD value as a string. PostalAddress-style
// objects are flattened into a single comma-separated line.
func jsonldScalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		var parts []string
		for _, k := range []string{"streetAddress", "addressLocality", "addressRegion", "postalCode"} {
			if s, ok := t[k].(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// JSONLDTypes collects every @type string found across the parsed blocks.
func JSONLDTypes(blocks []any) []string {
	var types []string
	var visit func(v any)
	visit = func(v any) {
		switch t := v.(type) {
		case map[string]any:
			switch typ := t["@type"].(type) {
			case string:
				types = append(types, typ)
			case []any:
				for _, item := range typ {
					if s, ok := item.(string); ok {
						types = append(types, s)
					}
				}
			}
			for _, child := range t {
				visit(child)
			}
		case []any:
			for _, item := range t {
				visit(item)
			}
		}
	}
	for _, b := range blocks {
		visit(b)
	}
	return types
}
