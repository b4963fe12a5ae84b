package gigs

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/presetapp/gigboard/internal/domain/model"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func gigIDs(gigs []model.Gig) []string {
	out := make([]string, 0, len(gigs))
	for _, g := range gigs {
		out = append(out, g.ID)
	}
	return out
}

func TestFilterGigsCompTypeScenario(t *testing.T) {
	gigs := []model.Gig{{ID: "g1", CompType: "PAID"}}

	cases := []struct {
		compType string
		want     int
	}{
		{compType: "PAID", want: 1},
		{compType: "TFP", want: 0},
		{compType: "ALL", want: 1},
	}
	for _, tc := range cases {
		c := DefaultCriteria()
		c.CompType = tc.compType
		if got := len(FilterGigs(gigs, c)); got != tc.want {
			t.Fatalf("comp type %s: got %d want %d", tc.compType, got, tc.want)
		}
	}
}

func TestFilterGigsStyleTagsRequireIntersection(t *testing.T) {
	gigs := []model.Gig{{ID: "g1"}, {ID: "g2", StyleTags: []string{"portrait", "fashion"}}}
	c := DefaultCriteria()
	c.StyleTags = []string{"fashion", "street"}

	got := gigIDs(FilterGigs(gigs, c))
	if !reflect.DeepEqual(got, []string{"g2"}) {
		t.Fatalf("unexpected gigs: %v", got)
	}
}

func TestFilterGigsPaletteFuzzyMatch(t *testing.T) {
	gigs := []model.Gig{
		{ID: "near", PaletteColors: []string{"#FE0101"}},
		{ID: "far", PaletteColors: []string{"#00FF00"}},
		{ID: "none"},
		{ID: "bad", PaletteColors: []string{"crimson"}},
	}
	c := DefaultCriteria()
	c.Palette = []string{"#FF0000"}

	got := gigIDs(FilterGigs(gigs, c))
	if !reflect.DeepEqual(got, []string{"near"}) {
		t.Fatalf("unexpected gigs: %v", got)
	}
}

func TestFilterGigsTextPredicates(t *testing.T) {
	gigs := []model.Gig{
		{ID: "g1", Title: "Fashion Editorial", Description: "studio day", LocationText: "Dublin, Ireland", UsageRights: "Portfolio and social media"},
		{ID: "g2", Title: "Wedding", Description: "Outdoor FASHION vibes", LocationText: "Cork, Ireland"},
		{ID: "g3", Title: "Product", Description: "packshots", LocationText: "London, UK", UsageRights: "COMMERCIAL_PRINT"},
	}

	c := DefaultCriteria()
	c.SearchTerm = "fashion"
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"g1", "g2"}) {
		t.Fatalf("search: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.SearchTerm = "london"
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"g3"}) {
		t.Fatalf("search by location: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.Location = "IRELAND"
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"g1", "g2"}) {
		t.Fatalf("location: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.UsageRights = "social"
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"g1"}) {
		t.Fatalf("usage rights: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.UsageRights = "commercial_print"
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"g3"}) {
		t.Fatalf("usage rights case: unexpected gigs %v", got)
	}
}

func TestFilterGigsDateBounds(t *testing.T) {
	gigs := []model.Gig{
		{ID: "early", StartTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)},
		{ID: "late", StartTime: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)},
		{ID: "undated"},
	}

	c := DefaultCriteria()
	c.StartDate = "2025-03-05"
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"late"}) {
		t.Fatalf("start date: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.EndDate = "2025-03-05"
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"early"}) {
		t.Fatalf("end date: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.StartDate = "05/03/2025"
	if got := FilterGigs(gigs, c); len(got) != 0 {
		t.Fatalf("malformed date must exclude everything, got %v", gigIDs(got))
	}
}

func TestFilterGigsEndDateIncludesWholeDay(t *testing.T) {
	end := time.Date(2025, 6, 1, 23, 59, 58, 0, time.Local)
	gigs := []model.Gig{{ID: "g1", EndTime: end}}

	c := DefaultCriteria()
	c.EndDate = "2025-06-01"
	if got := FilterGigs(gigs, c); len(got) != 1 {
		t.Fatalf("expected gig ending on the filter day to match")
	}

	gigs[0].EndTime = end.Add(2 * time.Second)
	if got := FilterGigs(gigs, c); len(got) != 0 {
		t.Fatalf("expected gig ending after 23:59:59 to be excluded")
	}
}

func TestFilterGigsMaxApplicants(t *testing.T) {
	gigs := []model.Gig{{ID: "small", MaxApplicants: 5}, {ID: "big", MaxApplicants: 50}}

	c := DefaultCriteria()
	c.MaxApplicants = intPtr(10)
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"small"}) {
		t.Fatalf("unexpected gigs %v", got)
	}

	c.MaxApplicants = intPtr(0)
	if got := FilterGigs(gigs, c); len(got) != 2 {
		t.Fatalf("zero ceiling must be inactive, got %v", gigIDs(got))
	}
}

func TestFilterGigsOwnerPredicatesKeepFalsyExclusion(t *testing.T) {
	gigs := []model.Gig{
		{ID: "zero", Owner: &model.OwnerProfile{YearsExperience: intPtr(0), HourlyRateMin: floatPtr(0), HourlyRateMax: floatPtr(0)}},
		{ID: "senior", Owner: &model.OwnerProfile{YearsExperience: intPtr(8), HourlyRateMin: floatPtr(50), HourlyRateMax: floatPtr(120)}},
		{ID: "junior", Owner: &model.OwnerProfile{YearsExperience: intPtr(2), HourlyRateMin: floatPtr(20), HourlyRateMax: floatPtr(40)}},
		{ID: "no_profile"},
		{ID: "empty_profile", Owner: &model.OwnerProfile{}},
	}

	c := DefaultCriteria()
	c.MinExperience = intPtr(0)
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"senior", "junior"}) {
		t.Fatalf("min experience: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.MaxExperience = intPtr(5)
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"junior"}) {
		t.Fatalf("max experience: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.MinRate = floatPtr(30)
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"senior"}) {
		t.Fatalf("min rate: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.MaxRate = floatPtr(100)
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"junior"}) {
		t.Fatalf("max rate: unexpected gigs %v", got)
	}
}

func TestFilterGigsOwnerFlagsAndSpecializations(t *testing.T) {
	gigs := []model.Gig{
		{ID: "travel", Owner: &model.OwnerProfile{AvailableForTravel: boolPtr(true), Specializations: []string{"Retouching"}}},
		{ID: "studio", Owner: &model.OwnerProfile{HasStudio: boolPtr(true), AvailableForTravel: boolPtr(false)}},
		{ID: "bare"},
	}

	c := DefaultCriteria()
	c.TravelOnly = true
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"travel"}) {
		t.Fatalf("travel: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.StudioOnly = true
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"studio"}) {
		t.Fatalf("studio: unexpected gigs %v", got)
	}

	c = DefaultCriteria()
	c.Specializations = []string{"Retouching", "Color Grading"}
	if got := gigIDs(FilterGigs(gigs, c)); !reflect.DeepEqual(got, []string{"travel"}) {
		t.Fatalf("specializations: unexpected gigs %v", got)
	}
}

func TestFilterGigsDoesNotMutateInput(t *testing.T) {
	gigs := []model.Gig{{ID: "a", CompType: "TFP"}, {ID: "b", CompType: "PAID"}, {ID: "c", CompType: "TFP"}}
	before := gigIDs(gigs)

	c := DefaultCriteria()
	c.CompType = "PAID"
	_ = FilterGigs(gigs, c)

	if !reflect.DeepEqual(gigIDs(gigs), before) {
		t.Fatalf("input slice was modified: %v", gigIDs(gigs))
	}
}

func TestFilterGigsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(20250301))

	for i := 0; i < 300; i++ {
		gigs := randomGigs(rng, 25)
		c := randomCriteria(rng)

		once := FilterGigs(gigs, c)

		if !isSubsequence(once, gigs) {
			t.Fatalf("iteration %d: result is not a subset of the input", i)
		}

		twice := FilterGigs(once, c)
		if !reflect.DeepEqual(gigIDs(twice), gigIDs(once)) {
			t.Fatalf("iteration %d: filter is not idempotent: %v vs %v", i, gigIDs(once), gigIDs(twice))
		}

		preds := c.predicates()
		rng.Shuffle(len(preds), func(a, b int) { preds[a], preds[b] = preds[b], preds[a] })
		shuffled := filterWith(gigs, preds)
		if !reflect.DeepEqual(gigIDs(shuffled), gigIDs(once)) {
			t.Fatalf("iteration %d: predicate order changed the result: %v vs %v", i, gigIDs(once), gigIDs(shuffled))
		}

		if got := FilterGigs(gigs, DefaultCriteria()); !reflect.DeepEqual(gigIDs(got), gigIDs(gigs)) {
			t.Fatalf("iteration %d: default criteria must keep every gig", i)
		}
	}
}

func TestPredicateCatalogueHasOneSlotPerCriterion(t *testing.T) {
	if got := len(DefaultCriteria().predicates()); got != 19 {
		t.Fatalf("unexpected predicate count: %d", got)
	}
	for i, p := range DefaultCriteria().predicates() {
		if p != nil {
			t.Fatalf("predicate %d should be inactive for default criteria", i)
		}
	}
	if got := len(Criteria{}.predicates()); got != 19 {
		t.Fatalf("unexpected predicate count for zero criteria: %d", got)
	}
}

func isSubsequence(sub, all []model.Gig) bool {
	j := 0
	for _, g := range all {
		if j < len(sub) && sub[j].ID == g.ID {
			j++
		}
	}
	return j == len(sub)
}

var (
	sampleCompTypes = []string{"TFP", "PAID", "EXPENSES", "OTHER"}
	samplePurposes  = []string{"", "FASHION", "WEDDING", "COMMERCIAL", "PORTFOLIO"}
	sampleUsage     = []string{"", "PORTFOLIO_ONLY", "SOCIAL_MEDIA_COMMERCIAL", "Full commercial"}
	sampleLocations = []string{"Dublin, Ireland", "Cork, Ireland", "London, UK", "New York, USA", ""}
	sampleColors    = []string{"#FF0000", "#FE0101", "#00FF00", "#0000FF", "#ABC123", "bad"}
	sampleStyles    = []string{"fashion", "portrait", "wedding", "street", "product"}
	sampleVibes     = []string{"creative", "moody", "clean", "edgy"}
	sampleRoles     = []string{"PHOTOGRAPHERS", "MODELS", "MAKEUP_ARTISTS", "VIDEOGRAPHERS"}
	sampleSpecs     = []string{"Retouching", "Color Grading", "Fashion Photography"}
)

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func pickSome(rng *rand.Rand, values []string) []string {
	n := rng.Intn(3)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pick(rng, values))
	}
	return out
}

func randomGigs(rng *rand.Rand, n int) []model.Gig {
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	out := make([]model.Gig, 0, n)
	for i := 0; i < n; i++ {
		start := base.Add(time.Duration(rng.Intn(60*24)) * time.Hour)
		g := model.Gig{
			ID:              fmt.Sprintf("gig-%02d", i),
			Title:           pick(rng, []string{"Fashion shoot", "Wedding day", "Street portraits", "Product launch"}),
			Description:     pick(rng, []string{"creative team wanted", "quick gig", ""}),
			Purpose:         pick(rng, samplePurposes),
			CompType:        pick(rng, sampleCompTypes),
			UsageRights:     pick(rng, sampleUsage),
			LocationText:    pick(rng, sampleLocations),
			StartTime:       start,
			EndTime:         start.Add(time.Duration(rng.Intn(72)) * time.Hour),
			MaxApplicants:   rng.Intn(30),
			PaletteColors:   pickSome(rng, sampleColors),
			StyleTags:       pickSome(rng, sampleStyles),
			VibeTags:        pickSome(rng, sampleVibes),
			LookingForTypes: pickSome(rng, sampleRoles),
		}
		if rng.Intn(4) > 0 {
			g.Owner = &model.OwnerProfile{
				YearsExperience:    intPtr(rng.Intn(12)),
				HourlyRateMin:      floatPtr(float64(rng.Intn(80))),
				HourlyRateMax:      floatPtr(float64(rng.Intn(200))),
				AvailableForTravel: boolPtr(rng.Intn(2) == 0),
				HasStudio:          boolPtr(rng.Intn(2) == 0),
				Specializations:    pickSome(rng, sampleSpecs),
			}
		}
		out = append(out, g)
	}
	return out
}

func randomCriteria(rng *rand.Rand) Criteria {
	c := DefaultCriteria()
	maybe := func() bool { return rng.Intn(3) == 0 }

	if maybe() {
		c.SearchTerm = pick(rng, []string{"fashion", "TEAM", "dublin"})
	}
	if maybe() {
		c.CompType = pick(rng, sampleCompTypes)
	}
	if maybe() {
		c.Purpose = pick(rng, samplePurposes[1:])
	}
	if maybe() {
		c.UsageRights = pick(rng, []string{"portfolio", "commercial"})
	}
	if maybe() {
		c.Location = pick(rng, []string{"ireland", "uk"})
	}
	if maybe() {
		c.StartDate = pick(rng, []string{"2025-05-20", "2025-06-10", "not-a-date"})
	}
	if maybe() {
		c.EndDate = pick(rng, []string{"2025-06-15", "2025-07-01"})
	}
	if maybe() {
		c.MaxApplicants = intPtr(rng.Intn(30))
	}
	if maybe() {
		c.Palette = []string{pick(rng, sampleColors)}
	}
	if maybe() {
		c.StyleTags = []string{pick(rng, sampleStyles)}
	}
	if maybe() {
		c.VibeTags = []string{pick(rng, sampleVibes)}
	}
	if maybe() {
		c.RoleTypes = []string{pick(rng, sampleRoles)}
	}
	if maybe() {
		c.MinExperience = intPtr(rng.Intn(6))
	}
	if maybe() {
		c.MaxExperience = intPtr(rng.Intn(12))
	}
	if maybe() {
		c.Specializations = []string{pick(rng, sampleSpecs)}
	}
	if maybe() {
		c.MinRate = floatPtr(float64(rng.Intn(50)))
	}
	if maybe() {
		c.MaxRate = floatPtr(float64(rng.Intn(200)))
	}
	c.TravelOnly = maybe()
	c.StudioOnly = maybe()
	return c
}
