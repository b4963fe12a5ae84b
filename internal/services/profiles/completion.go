package profiles

import (
	"math"
	"sort"

	"github.com/presetapp/gigboard/internal/domain/model"
)

type CompletionField struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Weight   int     `json:"weight"`
	Category string  `json:"category"`
	SubTab   Section `json:"sub_tab"`
}

type CategoryProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type Completion struct {
	Percentage int                         `json:"percentage"`
	Missing    []CompletionField           `json:"missing"`
	Categories map[string]CategoryProgress `json:"categories"`
}

type completionRule struct {
	field  CompletionField
	filled func(model.UserProfile) bool
}

func textSet(v string) bool { return v != "" }

// Boolean fields always count as filled once the profile exists.
var completionRules = []completionRule{
	{CompletionField{"bio", "Bio", 10, "basic", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.Bio) }},
	{CompletionField{"city", "Location", 8, "basic", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.City) }},
	{CompletionField{"country", "Country", 5, "basic", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.Country) }},
	{CompletionField{"years_experience", "Experience", 12, "professional", SectionProfessional}, func(p model.UserProfile) bool { return p.YearsExperience != nil }},
	{CompletionField{"specializations", "Specializations", 15, "professional", SectionProfessional}, func(p model.UserProfile) bool { return len(p.Specializations) > 0 }},
	{CompletionField{"hourly_rate_min", "Rate Range", 10, "professional", SectionProfessional}, func(p model.UserProfile) bool { return p.HourlyRateMin != nil }},
	{CompletionField{"typical_turnaround_days", "Turnaround Time", 6, "professional", SectionProfessional}, func(p model.UserProfile) bool { return p.TypicalTurnaroundDays != nil }},
	{CompletionField{"equipment_list", "Equipment", 8, "equipment", SectionProfessional}, func(p model.UserProfile) bool { return len(p.EquipmentList) > 0 }},
	{CompletionField{"editing_software", "Software", 6, "equipment", SectionProfessional}, func(p model.UserProfile) bool { return len(p.EditingSoftware) > 0 }},
	{CompletionField{"phone_number", "Phone", 5, "contact", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.PhoneNumber) }},
	{CompletionField{"portfolio_url", "Portfolio", 8, "social", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.PortfolioURL) }},
	{CompletionField{"website_url", "Website", 5, "social", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.WebsiteURL) }},
	{CompletionField{"instagram_handle", "Instagram", 3, "social", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.InstagramHandle) }},
	{CompletionField{"tiktok_handle", "TikTok", 2, "social", SectionPersonal}, func(p model.UserProfile) bool { return textSet(p.TikTokHandle) }},
	{CompletionField{"available_for_travel", "Travel Availability", 4, "professional", SectionProfessional}, func(model.UserProfile) bool { return true }},
	{CompletionField{"has_studio", "Studio Info", 4, "professional", SectionProfessional}, func(model.UserProfile) bool { return true }},
	{CompletionField{"languages", "Languages", 4, "contact", SectionPersonal}, func(p model.UserProfile) bool { return len(p.Languages) > 0 }},
}

// ComputeCompletion scores a profile by the weighted share of filled key
// fields. Missing fields are ordered by weight, heaviest first.
func ComputeCompletion(p model.UserProfile) Completion {
	out := Completion{
		Missing:    []CompletionField{},
		Categories: make(map[string]CategoryProgress),
	}

	completed, total := 0, 0
	for _, rule := range completionRules {
		cat := out.Categories[rule.field.Category]
		cat.Total += rule.field.Weight
		total += rule.field.Weight

		if rule.filled(p) {
			cat.Completed += rule.field.Weight
			completed += rule.field.Weight
		} else {
			out.Missing = append(out.Missing, rule.field)
		}
		out.Categories[rule.field.Category] = cat
	}

	for name, cat := range out.Categories {
		cat.Percentage = percent(cat.Completed, cat.Total)
		out.Categories[name] = cat
	}
	out.Percentage = percent(completed, total)

	sort.SliceStable(out.Missing, func(i, j int) bool {
		return out.Missing[i].Weight > out.Missing[j].Weight
	})
	return out
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
