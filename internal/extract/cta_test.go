package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylored-ai/brand-dna-service/internal/model"
)

func TestCTAButtonsFirstMatchIsPrimary(t *testing.T) {
	doc := Parse(`<html><body>
		<a href="/book">Book Now</a>
		<a href="/contact">Schedule a visit</a>
	</body></html>`, "https://salon.example")

	buttons := CTAButtons(doc, model.IndustrySalon)
	require.Len(t, buttons, 2)
	assert.Equal(t, model.CTAPrimary, buttons[0].Kind)
	assert.Equal(t, "Book Now", buttons[0].Title)
	assert.Equal(t, "https://salon.example/book", buttons[0].URL)
	assert.Equal(t, model.CTASecondary, buttons[1].Kind)
}

func TestCTAButtonsSkipsUselessHrefs(t *testing.T) {
	doc := Parse(`<html><body>
		<a href="#">Book Now</a>
		<a href="/">Book Now</a>
		<a href="">Book Now</a>
		<a href="/real-booking">Book Now</a>
	</body></html>`, "https://salon.example")

	buttons := CTAButtons(doc, model.IndustrySalon)
	require.Len(t, buttons, 1)
	assert.Equal(t, "https://salon.example/real-booking", buttons[0].URL)
	assert.Equal(t, model.CTAPrimary, buttons[0].Kind)
}

func TestCTAButtonsIndustryKeywords(t *testing.T) {
	html := `<html><body>
		<a href="/order">Order Online</a>
		<a href="/quote">Get a Quote</a>
	</body></html>`

	restaurant := CTAButtons(Parse(html, "https://example.com"), model.IndustryRestaurant)
	require.Len(t, restaurant, 1)
	assert.Equal(t, "Order Online", restaurant[0].Title)

	service := CTAButtons(Parse(html, "https://example.com"), model.IndustryService)
	require.Len(t, service, 1)
	assert.Equal(t, "Get a Quote", service[0].Title)
}

func TestCTAButtonsBookingPlatformPass(t *testing.T) {
	doc := Parse(`<html><body>
		<a href="https://calendly.com/salon/30min"><img src="cal.png"></a>
	</body></html>`, "https://salon.example")

	buttons := CTAButtons(doc, model.IndustrySalon)
	require.Len(t, buttons, 1)
	assert.Equal(t, "Book Now", buttons[0].Title, "empty anchor text gets a default title")
	assert.Equal(t, "https://calendly.com/salon/30min", buttons[0].URL)
}

func TestCTAButtonsDedupeAndCap(t *testing.T) {
	doc := Parse(`<html><body>
		<a href="/book">Book Now</a>
		<a href="/book">Book Now</a>
		<a href="/a">Schedule</a>
		<a href="/b">Appointment</a>
		<a href="/c">Reserve today</a>
		<a href="/d">Book Online</a>
	</body></html>`, "https://salon.example")

	buttons := CTAButtons(doc, model.IndustrySalon)
	require.Len(t, buttons, model.MaxCTAButtons)

	seen := make(map[string]bool)
	primaries := 0
	for _, b := range buttons {
		assert.False(t, seen[b.URL], "duplicate url %s", b.URL)
		seen[b.URL] = true
		if b.Kind == model.CTAPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestCTAButtonsUnknownIndustryFallsBackToGeneral(t *testing.T) {
	doc := Parse(`<html><body><a href="/start">Get Started</a></body></html>`, "https://example.com")
	buttons := CTAButtons(doc, model.Industry("Bogus"))
	require.Len(t, buttons, 1)
	assert.Equal(t, "Get Started", buttons[0].Title)
}

func TestIndustryHint(t *testing.T) {
	tests := []struct {
		types []string
		want  model.Industry
	}{
		{[]string{"HairSalon"}, model.IndustrySalon},
		{[]string{"WebSite", "Restaurant"}, model.IndustryRestaurant},
		{[]string{"ClothingStore"}, model.IndustryEcommerce},
		{[]string{"Plumber"}, model.IndustryService},
		{[]string{"WebSite", "Organization"}, model.IndustryGeneral},
		{nil, model.IndustryGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IndustryHint(tt.types), "types=%v", tt.types)
	}
}
