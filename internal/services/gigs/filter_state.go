package gigs

import "github.com/presetapp/gigboard/internal/domain/enums"

// FilterState holds the criteria a viewer is building up. It is not safe
// for concurrent use.
type FilterState struct {
	c Criteria
}

func NewFilterState() *FilterState {
	return &FilterState{c: DefaultCriteria()}
}

// FilterStateFrom starts from an existing criteria value.
func FilterStateFrom(c Criteria) *FilterState {
	return &FilterState{c: c.clone()}
}

func (s *FilterState) Criteria() Criteria {
	return s.c.clone()
}

func (s *FilterState) SetSearchTerm(v string) { s.c.SearchTerm = v }
func (s *FilterState) SetCompType(v string) { s.c.CompType = v }
func (s *FilterState) SetPurpose(v string) { s.c.Purpose = v }
func (s *FilterState) SetUsageRights(v string) { s.c.UsageRights = v }
func (s *FilterState) SetLocation(v string) { s.c.Location = v }
func (s *FilterState) SetStartDate(v string) { s.c.StartDate = v }
func (s *FilterState) SetEndDate(v string) { s.c.EndDate = v }
func (s *FilterState) SetMaxApplicants(v *int) { s.c.MaxApplicants = copyInt(v) }
func (s *FilterState) SetPalette(v []string) { s.c.Palette = copyStrings(v) }
func (s *FilterState) SetStyleTags(v []string) { s.c.StyleTags = copyStrings(v) }
func (s *FilterState) SetVibeTags(v []string) { s.c.VibeTags = copyStrings(v) }
func (s *FilterState) SetRoleTypes(v []string) { s.c.RoleTypes = copyStrings(v) }
func (s *FilterState) SetMinExperience(v *int) { s.c.MinExperience = copyInt(v) }
func (s *FilterState) SetMaxExperience(v *int) { s.c.MaxExperience = copyInt(v) }
func (s *FilterState) SetMinRate(v *float64) { s.c.MinRate = copyFloat(v) }
func (s *FilterState) SetMaxRate(v *float64) { s.c.MaxRate = copyFloat(v) }
func (s *FilterState) SetTravelOnly(v bool) { s.c.TravelOnly = v }
func (s *FilterState) SetStudioOnly(v bool) { s.c.StudioOnly = v }
func (s *FilterState) SetSpecializations(v []string) { s.c.Specializations = copyStrings(v) }

// TogglePalette adds the color when absent and removes it otherwise.
func (s *FilterState) TogglePalette(color string) {
	s.c.Palette = toggle(s.c.Palette, color)
}

func (s *FilterState) ToggleStyleTag(tag string) {
	s.c.StyleTags = toggle(s.c.StyleTags, tag)
}

func (s *FilterState) ToggleVibeTag(tag string) {
	s.c.VibeTags = toggle(s.c.VibeTags, tag)
}

func (s *FilterState) ToggleRoleType(role string) {
	s.c.RoleTypes = toggle(s.c.RoleTypes, role)
}

func (s *FilterState) ToggleSpecialization(spec string) {
	s.c.Specializations = toggle(s.c.Specializations, spec)
}

func (s *FilterState) ClearAll() {
	s.c = DefaultCriteria()
}

// HasActive reports whether any advanced filter is set. Search term, comp
// type and location are basic filters and never count.
func (s *FilterState) HasActive() bool {
	c := s.c
	return !isAll(c.Purpose) ||
		!isAll(c.UsageRights) ||
		c.StartDate != "" ||
		c.EndDate != "" ||
		(c.MaxApplicants != nil && *c.MaxApplicants != 0) ||
		len(c.Palette) > 0 ||
		len(c.StyleTags) > 0 ||
		len(c.VibeTags) > 0 ||
		len(c.RoleTypes) > 0 ||
		c.MinExperience != nil ||
		c.MaxExperience != nil ||
		len(c.Specializations) > 0 ||
		c.MinRate != nil ||
		c.MaxRate != nil ||
		c.TravelOnly ||
		c.StudioOnly
}

func (c Criteria) clone() Criteria {
	out := c
	out.MaxApplicants = copyInt(c.MaxApplicants)
	out.Palette = copyStrings(c.Palette)
	out.StyleTags = copyStrings(c.StyleTags)
	out.VibeTags = copyStrings(c.VibeTags)
	out.RoleTypes = copyStrings(c.RoleTypes)
	out.MinExperience = copyInt(c.MinExperience)
	out.MaxExperience = copyInt(c.MaxExperience)
	out.Specializations = copyStrings(c.Specializations)
	out.MinRate = copyFloat(c.MinRate)
	out.MaxRate = copyFloat(c.MaxRate)
	if out.CompType == "" {
		out.CompType = enums.FilterAll
	}
	if out.Purpose == "" {
		out.Purpose = enums.FilterAll
	}
	if out.UsageRights == "" {
		out.UsageRights = enums.FilterAll
	}
	return out
}

func toggle(list []string, v string) []string {
	out := make([]string, 0, len(list)+1)
	removed := false
	for _, item := range list {
		if item == v {
			removed = true
			continue
		}
		out = append(out, item)
	}
	if !removed {
		out = append(out, v)
	}
	return out
}

func copyStrings(v []string) []string {
	if len(v) == 0 {
		return nil
	}
	return append([]string(nil), v...)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
