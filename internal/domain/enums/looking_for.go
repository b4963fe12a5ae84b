package enums

import "strings"

type LookingFor string

var lookingForOrder = []LookingFor{
	"PHOTOGRAPHERS", "VIDEOGRAPHERS", "CINEMATOGRAPHERS",
	"MAKEUP_ARTISTS", "HAIR_STYLISTS", "FASHION_STYLISTS", "WARDROBE_STYLISTS",
	"PRODUCTION_CREW", "PRODUCERS", "DIRECTORS", "CREATIVE_DIRECTORS", "ART_DIRECTORS",
	"EDITORS", "VIDEO_EDITORS", "PHOTO_EDITORS", "VFX_ARTISTS", "MOTION_GRAPHICS",
	"RETOUCHERS", "COLOR_GRADERS",
	"DESIGNERS", "GRAPHIC_DESIGNERS", "ILLUSTRATORS", "ANIMATORS",
	"MODELS", "MODELS_FASHION", "MODELS_COMMERCIAL", "MODELS_EDITORIAL",
	"MODELS_FITNESS", "MODELS_RUNWAY", "MODELS_HAND", "MODELS_PARTS",
	"ACTORS", "DANCERS", "PERFORMERS", "TALENT",
}

var lookingForLabels = map[LookingFor]string{
	"MAKEUP_ARTISTS":    "Makeup Artists",
	"VFX_ARTISTS":       "VFX Artists",
	"MODELS_FASHION":    "Fashion Models",
	"MODELS_COMMERCIAL": "Commercial Models",
	"MODELS_EDITORIAL":  "Editorial Models",
	"MODELS_FITNESS":    "Fitness Models",
	"MODELS_RUNWAY":     "Runway Models",
	"MODELS_HAND":       "Hand Models",
	"MODELS_PARTS":      "Parts Models",
	"TALENT":            "Talent & Performers",
}

func LookingForTypes() []LookingFor {
	out := make([]LookingFor, len(lookingForOrder))
	copy(out, lookingForOrder)
	return out
}

func (l LookingFor) Known() bool {
	for _, code := range lookingForOrder {
		if code == l {
			return true
		}
	}
	return false
}

// Label returns a display label; unknown codes are humanized rather than rejected.
func (l LookingFor) Label() string {
	if label, ok := lookingForLabels[l]; ok {
		return label
	}
	return humanize(string(l))
}

func humanize(code string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(code)), "_")
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		words = append(words, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(words, " ")
}
