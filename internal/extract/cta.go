package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/taylored-ai/brand-dna-service/internal/model"
)

// ctaKeywords maps each industry to the lowercase phrases that mark a
// call-to-action link or button in that vertical.
var ctaKeywords = map[model.Industry][]string{
	model.IndustrySalon: {
		"book now", "book online", "schedule", "appointment", "reserve",
	},
	model.IndustryRestaurant: {
		"order online", "order now", "reserve", "book a table", "menu",
		"delivery",
	},
	model.IndustryService: {
		"get a quote", "free quote", "request service", "schedule", "book now",
		"contact us",
	},
	model.IndustryEcommerce: {
		"shop now", "buy now", "add to cart", "order now", "browse",
	},
	model.IndustryGeneral: {
		"book now", "schedule", "get started", "contact us", "sign up",
		"order online", "shop now", "get a quote",
	},
}

// bookingPlatformRe matches hrefs pointing at known booking/scheduling
// platforms regardless of the link's visible text.
var bookingPlatformRe = regexp.MustCompile(`(?i)(calendly\.com|squareup\.com|square\.site|booksy\.com|vagaro\.com|fresha\.com|acuityscheduling\.com|opentable\.com|resy\.com|toasttab\.com|mindbodyonline\.com|schedulicity\.com|glossgenius\.com)`)

// CTAButtons detects call-to-action candidates for the given industry.
//
// Pass one scans every anchor and button for a keyword match in its visible
// text, skipping empty, fragment-only, and root hrefs. The first qualifying
// match is tagged primary; every later match is secondary. Pass two matches
// hrefs against known booking-platform patterns regardless of text,
// appending any URL not already found. Output preserves discovery order and
// is capped at MaxCTAButtons, deduplicated by exact URL.
func CTAButtons(doc *Document, industry model.Industry) []model.CTAButton {
	keywords, ok := ctaKeywords[industry]
	if !ok {
		keywords = ctaKeywords[model.IndustryGeneral]
	}

	var buttons []model.CTAButton
	seen := make(map[string]bool)

	doc.walk(func(n *html.Node) bool {
		if n.Data != "a" && n.Data != "button" {
			return true
		}
		href := strings.TrimSpace(attr(n, "href"))
		if skippableHref(href) {
			return true
		}
		title := textContent(n)
		lower := strings.ToLower(title)
		for _, kw := range keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			resolved := doc.resolveURL(href)
			if resolved == "" || seen[resolved] {
				break
			}
			kind := model.CTASecondary
			if len(buttons) == 0 {
				kind = model.CTAPrimary
			}
			seen[resolved] = true
			buttons = append(buttons, model.CTAButton{Title: title, URL: resolved, Kind: kind})
			break
		}
		return true
	})

	// Second pass: booking-platform hrefs qualify on URL alone.
	doc.walk(func(n *html.Node) bool {
		if n.Data != "a" && n.Data != "button" {
			return true
		}
		href := strings.TrimSpace(attr(n, "href"))
		if skippableHref(href) || !bookingPlatformRe.MatchString(href) {
			return true
		}
		resolved := doc.resolveURL(href)
		if resolved == "" || seen[resolved] {
			return true
		}
		title := textContent(n)
		if title == "" {
			title = "Book Now"
		}
		seen[resolved] = true
		buttons = append(buttons, model.CTAButton{Title: title, URL: resolved, Kind: model.CTASecondary})
		return true
	})

	if len(buttons) > model.MaxCTAButtons {
		buttons = buttons[:model.MaxCTAButtons]
	}
	return buttons
}

// skippableHref reports whether an href can never be a useful CTA target.
func skippableHref(href string) bool {
	return href == "" || href == "/" || strings.HasPrefix(href, "#")
}

// IndustryHint maps schema.org @type values found in JSON-LD to the industry
// enum, used to pick a CTA keyword table before synthesis runs. Unknown or
// absent types fall back to General.
func IndustryHint(jsonldTypes []string) model.Industry {
	for _, t := range jsonldTypes {
		switch strings.ToLower(t) {
		case "hairsalon", "beautysalon", "nailsalon", "daspa", "tattooparlor":
			return model.IndustrySalon
		case "restaurant", "cafeorcoffeeshop", "bakery", "barorpub", "foodestablishment":
			return model.IndustryRestaurant
		case "store", "onlinestore", "clothingstore", "furniturestore":
			return model.IndustryEcommerce
		case "plumber", "electrician", "roofingcontractor", "housepainter",
			"homeandconstructionbusiness", "generalcontractor", "movingcompany",
			"autorepair", "legalservice", "accountingservice":
			return model.IndustryService
		}
	}
	return model.IndustryGeneral
}
