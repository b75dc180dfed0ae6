package model

import "regexp"

// Industry is the closed set of business categories the extractor recognizes.
type Industry string

const (
	IndustrySalon      Industry = "Salon"
	IndustryRestaurant Industry = "Restaurant"
	IndustryService    Industry = "Service"
	IndustryGeneral    Industry = "General"
	IndustryEcommerce  Industry = "E-commerce"
)

// Industries lists every valid industry value.
var Industries = []Industry{
	IndustrySalon,
	IndustryRestaurant,
	IndustryService,
	IndustryGeneral,
	IndustryEcommerce,
}

// Valid reports whether i is a member of the closed industry set.
func (i Industry) Valid() bool {
	for _, v := range Industries {
		if i == v {
			return true
		}
	}
	return false
}

// Vibe is the closed set of brand aesthetic labels.
type Vibe string

const (
	VibeLuxury     Vibe = "Luxury"
	VibeIndustrial Vibe = "Industrial"
	VibeBoho       Vibe = "Boho"
	VibeMinimalist Vibe = "Minimalist"
	VibeCasual     Vibe = "Casual"
	VibeHighEnergy Vibe = "HighEnergy"
)

// Vibes lists every valid vibe value.
var Vibes = []Vibe{
	VibeLuxury,
	VibeIndustrial,
	VibeBoho,
	VibeMinimalist,
	VibeCasual,
	VibeHighEnergy,
}

// Valid reports whether v is a member of the closed vibe set.
func (v Vibe) Valid() bool {
	for _, m := range Vibes {
		if v == m {
			return true
		}
	}
	return false
}

// CTAKind ranks a call-to-action button.
type CTAKind string

const (
	CTAPrimary   CTAKind = "primary"
	CTASecondary CTAKind = "secondary"
)

// Fallback colors substituted when the synthesis output carries an empty or
// invalid hex value. Colors are never left empty after validation.
const (
	FallbackPrimaryColor   = "#1A1A1A"
	FallbackSecondaryColor = "#D4AF37"
)

// MaxDescriptionLen is the hard cap on profile descriptions. Longer output is
// a validation failure, not a truncation.
const MaxDescriptionLen = 150

// MaxCTAButtons caps the ctaButtons sequence.
const MaxCTAButtons = 4

// HexColorRe matches a 6-digit hex color string.
var HexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Colors holds the brand color pair. Both values are valid 6-digit hex
// strings after validation.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Contact holds contact details. Unresolved fields are empty strings.
type Contact struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// Links holds the profile's action and social URLs. BookingURL is the only
// required link; the social links may be empty.
type Links struct {
	BookingURL string `json:"bookingUrl"`
	Instagram  string `json:"instagram"`
	Facebook   string `json:"facebook"`
}

// CTAButton is a detected call-to-action with an inferred priority.
type CTAButton struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Kind  CTAKind `json:"kind"`
}

// VoiceSetup configures the voice agent derived from the brand.
type VoiceSetup struct {
	Tone           string `json:"tone"`
	WelcomeMessage string `json:"welcomeMessage"`
}

// BrandProfile is the validated output record of the extraction pipeline.
// Every string field is always present; unresolved values are empty strings,
// never null. This is a hard contract enforced at the validation boundary.
type BrandProfile struct {
	BusinessName string      `json:"businessName"`
	Tagline      string      `json:"tagline"`
	Industry     Industry    `json:"industry"`
	Vibe         Vibe        `json:"vibe"`
	Colors       Colors      `json:"colors"`
	Description  string      `json:"description"`
	Services     []string    `json:"services"`
	Contact      Contact     `json:"contact"`
	Links        Links       `json:"links"`
	CTAButtons   []CTAButton `json:"ctaButtons"`
	VoiceSetup   VoiceSetup  `json:"voiceSetup"`
}
