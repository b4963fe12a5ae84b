package rules

import (
	"sort"
	"strings"

	"github.com/presetapp/gigboard/internal/domain/model"
)

const MaxPaletteColors = 5

// ExtractPaletteColors walks moodboard and item palettes in order and keeps
// the first five distinct '#'-prefixed colors, upper-cased.
func ExtractPaletteColors(moodboards []model.Moodboard) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, MaxPaletteColors)

	add := func(colors []string) {
		for _, c := range colors {
			if len(out) == MaxPaletteColors {
				return
			}
			if !strings.HasPrefix(c, "#") {
				continue
			}
			c = strings.ToUpper(c)
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	for _, mb := range moodboards {
		add(mb.Palette)
		for _, item := range mb.Items {
			add(item.Palette)
		}
	}
	return out
}

// MoodboardURLs orders the featured item first, then the rest by position.
func MoodboardURLs(mb model.Moodboard) []string {
	items := make([]model.MoodboardItem, len(mb.Items))
	copy(items, mb.Items)
	sort.SliceStable(items, func(i, j int) bool {
		fi := mb.FeaturedImageID != "" && items[i].ID == mb.FeaturedImageID
		fj := mb.FeaturedImageID != "" && items[j].ID == mb.FeaturedImageID
		if fi != fj {
			return fi
		}
		return items[i].Position < items[j].Position
	})

	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.URL) == "" {
			continue
		}
		out = append(out, item.URL)
	}
	return out
}
