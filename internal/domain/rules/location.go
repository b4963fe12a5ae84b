package rules

import (
	"encoding/json"
	"strings"
)

type structuredLocation struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// ExtractCityFromLocation prefers the city of the structured location JSON
// and falls back to the first comma separated segment of the free text.
func ExtractCityFromLocation(text, structured string) (string, bool) {
	if loc, ok := parseStructuredLocation(structured); ok && strings.TrimSpace(loc.City) != "" {
		return strings.TrimSpace(loc.City), true
	}

	segments := locationSegments(text)
	if len(segments) == 0 {
		return "", false
	}
	return segments[0], true
}

// ExtractCountryFromLocation mirrors ExtractCityFromLocation using the
// structured country and the last text segment.
func ExtractCountryFromLocation(text, structured string) (string, bool) {
	if loc, ok := parseStructuredLocation(structured); ok && strings.TrimSpace(loc.Country) != "" {
		return strings.TrimSpace(loc.Country), true
	}

	segments := locationSegments(text)
	if len(segments) == 0 {
		return "", false
	}
	return segments[len(segments)-1], true
}

func parseStructuredLocation(raw string) (structuredLocation, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return structuredLocation{}, false
	}
	var loc structuredLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return structuredLocation{}, false
	}
	return loc, true
}

func locationSegments(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
