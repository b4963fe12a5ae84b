package gigs

import (
	"strings"
	"time"

	"github.com/presetapp/gigboard/internal/domain/enums"
	"github.com/presetapp/gigboard/internal/domain/model"
	"github.com/presetapp/gigboard/internal/domain/rules"
)

const filterDateLayout = "2006-01-02"

// Criteria is the full set of gig search constraints. Each field is
// inactive at its zero value, except the enum fields which are inactive at
// "ALL" (see DefaultCriteria).
type Criteria struct {
	SearchTerm      string   `json:"search_term"`
	CompType        string   `json:"comp_type"`
	Purpose         string   `json:"purpose"`
	UsageRights     string   `json:"usage_rights"`
	Location        string   `json:"location"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	MaxApplicants   *int     `json:"max_applicants"`
	Palette         []string `json:"palette"`
	StyleTags       []string `json:"style_tags"`
	VibeTags        []string `json:"vibe_tags"`
	RoleTypes       []string `json:"role_types"`
	MinExperience   *int     `json:"min_experience"`
	MaxExperience   *int     `json:"max_experience"`
	Specializations []string `json:"specializations"`
	MinRate         *float64 `json:"min_rate"`
	MaxRate         *float64 `json:"max_rate"`
	TravelOnly      bool     `json:"travel_only"`
	StudioOnly      bool     `json:"studio_only"`
}

func DefaultCriteria() Criteria {
	return Criteria{
		CompType:    enums.FilterAll,
		Purpose:     enums.FilterAll,
		UsageRights: enums.FilterAll,
	}
}

type predicate func(g model.Gig) bool

// FilterGigs returns the gigs satisfying every active criterion, in input
// order. The input slice and its elements are never modified.
func FilterGigs(gigs []model.Gig, c Criteria) []model.Gig {
	return filterWith(gigs, c.predicates())
}

func filterWith(gigs []model.Gig, preds []predicate) []model.Gig {
	filtered := make([]model.Gig, len(gigs))
	copy(filtered, gigs)

	for _, pred := range preds {
		if pred == nil {
			continue
		}
		kept := make([]model.Gig, 0, len(filtered))
		for _, g := range filtered {
			if pred(g) {
				kept = append(kept, g)
			}
		}
		filtered = kept
	}
	return filtered
}

// predicates returns one slot per criterion in a fixed order; inactive
// criteria leave their slot nil.
func (c Criteria) predicates() []predicate {
	return []predicate{
		c.searchPredicate(),
		c.compTypePredicate(),
		c.purposePredicate(),
		c.usageRightsPredicate(),
		c.locationPredicate(),
		c.startDatePredicate(),
		c.endDatePredicate(),
		c.maxApplicantsPredicate(),
		c.palettePredicate(),
		anyTagPredicate(c.StyleTags, func(g model.Gig) []string { return g.StyleTags }),
		anyTagPredicate(c.VibeTags, func(g model.Gig) []string { return g.VibeTags }),
		anyTagPredicate(c.RoleTypes, func(g model.Gig) []string { return g.LookingForTypes }),
		c.minExperiencePredicate(),
		c.maxExperiencePredicate(),
		c.specializationsPredicate(),
		c.minRatePredicate(),
		c.maxRatePredicate(),
		c.travelPredicate(),
		c.studioPredicate(),
	}
}

func (c Criteria) searchPredicate() predicate {
	if c.SearchTerm == "" {
		return nil
	}
	term := strings.ToLower(c.SearchTerm)
	return func(g model.Gig) bool {
		return containsFold(g.Title, term) ||
			containsFold(g.Description, term) ||
			containsFold(g.LocationText, term)
	}
}

func (c Criteria) compTypePredicate() predicate {
	if isAll(c.CompType) {
		return nil
	}
	return func(g model.Gig) bool { return g.CompType == c.CompType }
}

func (c Criteria) purposePredicate() predicate {
	if isAll(c.Purpose) {
		return nil
	}
	return func(g model.Gig) bool { return g.Purpose == c.Purpose }
}

// usageRightsPredicate excludes gigs that carry no usage rights at all.
func (c Criteria) usageRightsPredicate() predicate {
	if isAll(c.UsageRights) {
		return nil
	}
	want := strings.ToLower(c.UsageRights)
	return func(g model.Gig) bool {
		return g.UsageRights != "" && containsFold(g.UsageRights, want)
	}
}

func (c Criteria) locationPredicate() predicate {
	if c.Location == "" {
		return nil
	}
	want := strings.ToLower(c.Location)
	return func(g model.Gig) bool { return containsFold(g.LocationText, want) }
}

func (c Criteria) startDatePredicate() predicate {
	if c.StartDate == "" {
		return nil
	}
	from, err := time.Parse(filterDateLayout, c.StartDate)
	if err != nil {
		return rejectAll
	}
	return func(g model.Gig) bool {
		return !g.StartTime.IsZero() && !g.StartTime.Before(from)
	}
}

// endDatePredicate compares against 23:59:59 local time on the end date.
func (c Criteria) endDatePredicate() predicate {
	if c.EndDate == "" {
		return nil
	}
	day, err := time.ParseInLocation(filterDateLayout, c.EndDate, time.Local)
	if err != nil {
		return rejectAll
	}
	until := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return func(g model.Gig) bool {
		return !g.EndTime.IsZero() && !g.EndTime.After(until)
	}
}

// maxApplicantsPredicate treats 0 like an unset ceiling.
func (c Criteria) maxApplicantsPredicate() predicate {
	if c.MaxApplicants == nil || *c.MaxApplicants == 0 {
		return nil
	}
	limit := *c.MaxApplicants
	return func(g model.Gig) bool { return g.MaxApplicants <= limit }
}

func (c Criteria) palettePredicate() predicate {
	if len(c.Palette) == 0 {
		return nil
	}
	wanted := append([]string(nil), c.Palette...)
	return func(g model.Gig) bool { return rules.AnyPaletteMatch(g.PaletteColors, wanted) }
}

// Owner numeric bounds keep a truthiness guard: an owner whose value is
// missing or zero never satisfies a min or max bound.

func (c Criteria) minExperiencePredicate() predicate {
	if c.MinExperience == nil {
		return nil
	}
	bound := *c.MinExperience
	return func(g model.Gig) bool {
		years, ok := ownerExperience(g)
		return ok && years >= bound
	}
}

func (c Criteria) maxExperiencePredicate() predicate {
	if c.MaxExperience == nil {
		return nil
	}
	bound := *c.MaxExperience
	return func(g model.Gig) bool {
		years, ok := ownerExperience(g)
		return ok && years <= bound
	}
}

func (c Criteria) specializationsPredicate() predicate {
	return anyTagPredicate(c.Specializations, func(g model.Gig) []string {
		if g.Owner == nil {
			return nil
		}
		return g.Owner.Specializations
	})
}

func (c Criteria) minRatePredicate() predicate {
	if c.MinRate == nil {
		return nil
	}
	bound := *c.MinRate
	return func(g model.Gig) bool {
		if g.Owner == nil || g.Owner.HourlyRateMin == nil || *g.Owner.HourlyRateMin == 0 {
			return false
		}
		return *g.Owner.HourlyRateMin >= bound
	}
}

func (c Criteria) maxRatePredicate() predicate {
	if c.MaxRate == nil {
		return nil
	}
	bound := *c.MaxRate
	return func(g model.Gig) bool {
		if g.Owner == nil || g.Owner.HourlyRateMax == nil || *g.Owner.HourlyRateMax == 0 {
			return false
		}
		return *g.Owner.HourlyRateMax <= bound
	}
}

func (c Criteria) travelPredicate() predicate {
	if !c.TravelOnly {
		return nil
	}
	return func(g model.Gig) bool {
		return g.Owner != nil && g.Owner.AvailableForTravel != nil && *g.Owner.AvailableForTravel
	}
}

func (c Criteria) studioPredicate() predicate {
	if !c.StudioOnly {
		return nil
	}
	return func(g model.Gig) bool {
		return g.Owner != nil && g.Owner.HasStudio != nil && *g.Owner.HasStudio
	}
}

func anyTagPredicate(wanted []string, field func(model.Gig) []string) predicate {
	if len(wanted) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(wanted))
	for _, w := range wanted {
		set[w] = struct{}{}
	}
	return func(g model.Gig) bool {
		for _, v := range field(g) {
			if _, ok := set[v]; ok {
				return true
			}
		}
		return false
	}
}

func ownerExperience(g model.Gig) (int, bool) {
	if g.Owner == nil || g.Owner.YearsExperience == nil || *g.Owner.YearsExperience == 0 {
		return 0, false
	}
	return *g.Owner.YearsExperience, true
}

func rejectAll(model.Gig) bool { return false }

func isAll(v string) bool {
	return v == "" || v == enums.FilterAll
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
