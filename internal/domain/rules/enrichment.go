package rules

import (
	"strings"

	"github.com/presetapp/gigboard/internal/domain/model"
)

var StyleTagVocabulary = []string{
	"fashion", "portrait", "urban", "commercial", "product", "beauty",
	"wedding", "documentary", "event", "lifestyle", "headshots", "street",
	"editorial", "conceptual", "nature", "architecture",
}

var VibeTagVocabulary = []string{
	"creative", "professional", "modern", "clean", "bright", "romantic",
	"intimate", "natural", "confident", "edgy", "dynamic", "moody",
	"minimalist", "vintage", "dramatic", "warm", "cool", "artistic",
}

type Enrichment struct {
	StyleTags     []string
	VibeTags      []string
	City          string
	Country       string
	PaletteColors []string
}

type tagRule struct {
	titleAny []string
	purpose  []string
	tags     []string
}

var styleRules = []tagRule{
	{titleAny: []string{"fashion"}, purpose: []string{"fashion"}, tags: []string{"fashion"}},
	{titleAny: []string{"portrait"}, purpose: []string{"portrait"}, tags: []string{"portrait"}},
	{titleAny: []string{"commercial"}, purpose: []string{"commercial"}, tags: []string{"commercial"}},
	{titleAny: []string{"wedding"}, purpose: []string{"wedding"}, tags: []string{"wedding", "documentary", "event"}},
	{titleAny: []string{"headshots", "lifestyle"}, tags: []string{"headshots", "lifestyle"}},
	{titleAny: []string{"street", "urban"}, tags: []string{"street", "urban"}},
	{titleAny: []string{"product"}, tags: []string{"product", "commercial"}},
	{titleAny: []string{"beauty"}, tags: []string{"beauty", "commercial"}},
}

var vibeRules = []tagRule{
	{titleAny: []string{"creative"}, tags: []string{"creative"}},
	{titleAny: []string{"professional"}, purpose: []string{"commercial"}, tags: []string{"professional", "clean"}},
	{titleAny: []string{"modern", "contemporary"}, tags: []string{"modern"}},
	{titleAny: []string{"wedding"}, purpose: []string{"wedding"}, tags: []string{"romantic", "intimate", "natural"}},
	{titleAny: []string{"street", "urban"}, tags: []string{"edgy", "dynamic"}},
	{titleAny: []string{"lifestyle", "headshots"}, tags: []string{"confident", "natural"}},
}

// SimulatedGigData derives stand-in tags from keywords in the title
// (substring) and purpose (exact, case-insensitive). Existing palette
// colors are kept; otherwise a themed default palette is chosen.
func SimulatedGigData(gig model.Gig) Enrichment {
	title := strings.ToLower(gig.Title)
	purpose := strings.ToLower(strings.TrimSpace(gig.Purpose))

	out := Enrichment{
		StyleTags: applyTagRules(styleRules, title, purpose),
		VibeTags:  applyTagRules(vibeRules, title, purpose),
	}
	out.City, _ = ExtractCityFromLocation(gig.LocationText, "")
	out.Country, _ = ExtractCountryFromLocation(gig.LocationText, "")

	if len(gig.PaletteColors) > 0 {
		out.PaletteColors = append([]string(nil), gig.PaletteColors...)
	} else {
		out.PaletteColors = SimulatedPaletteColors(gig.Purpose, gig.Title)
	}
	return out
}

func applyTagRules(rules []tagRule, title, purpose string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, rule := range rules {
		if !rule.matches(title, purpose) {
			continue
		}
		for _, tag := range rule.tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

func (r tagRule) matches(title, purpose string) bool {
	for _, kw := range r.titleAny {
		if strings.Contains(title, kw) {
			return true
		}
	}
	for _, p := range r.purpose {
		if purpose == p {
			return true
		}
	}
	return false
}

// SimulatedPaletteColors returns a themed default palette for gigs whose
// moodboards carry no colors.
func SimulatedPaletteColors(purpose, title string) []string {
	title = strings.ToLower(title)
	purpose = strings.ToUpper(strings.TrimSpace(purpose))

	switch {
	case purpose == "FASHION" || strings.Contains(title, "fashion"):
		return []string{"#E8D5C4", "#C7B299", "#A08A7A", "#8B7267"}
	case purpose == "COMMERCIAL" || strings.Contains(title, "commercial"):
		return []string{"#2D3748", "#4A5568", "#718096", "#A0AEC0"}
	case purpose == "WEDDING" || strings.Contains(title, "wedding"):
		return []string{"#FED7D7", "#FBB6CE", "#ED8936", "#DD6B20"}
	case strings.Contains(title, "lifestyle") || strings.Contains(title, "headshots"):
		return []string{"#E6FFFA", "#B2F5EA", "#4FD1C7", "#319795"}
	default:
		return []string{"#F7FAFC", "#EDF2F7", "#CBD5E0", "#A0AEC0"}
	}
}
