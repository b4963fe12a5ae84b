package gigs

import (
	"reflect"
	"testing"

	"github.com/presetapp/gigboard/internal/domain/model"
)

func TestFilterStateHasActiveIgnoresBasicFilters(t *testing.T) {
	s := NewFilterState()
	s.SetSearchTerm("fashion")
	s.SetCompType("PAID")
	s.SetLocation("Dublin")

	if s.HasActive() {
		t.Fatalf("search, comp type and location must not count as active filters")
	}

	s.SetPurpose("WEDDING")
	if !s.HasActive() {
		t.Fatalf("purpose should count as an active filter")
	}
}

func TestFilterStateEachAdvancedFilterCounts(t *testing.T) {
	setters := map[string]func(*FilterState){
		"usage_rights":    func(s *FilterState) { s.SetUsageRights("ADVERTISING") },
		"start_date":      func(s *FilterState) { s.SetStartDate("2025-01-01") },
		"end_date":        func(s *FilterState) { s.SetEndDate("2025-01-01") },
		"max_applicants":  func(s *FilterState) { s.SetMaxApplicants(intPtr(5)) },
		"palette":         func(s *FilterState) { s.TogglePalette("#FF0000") },
		"style_tags":      func(s *FilterState) { s.ToggleStyleTag("fashion") },
		"vibe_tags":       func(s *FilterState) { s.ToggleVibeTag("moody") },
		"role_types":      func(s *FilterState) { s.ToggleRoleType("MODELS") },
		"min_experience":  func(s *FilterState) { s.SetMinExperience(intPtr(1)) },
		"max_experience":  func(s *FilterState) { s.SetMaxExperience(intPtr(10)) },
		"specializations": func(s *FilterState) { s.ToggleSpecialization("Retouching") },
		"min_rate":        func(s *FilterState) { s.SetMinRate(floatPtr(10)) },
		"max_rate":        func(s *FilterState) { s.SetMaxRate(floatPtr(100)) },
		"travel_only":     func(s *FilterState) { s.SetTravelOnly(true) },
		"studio_only":     func(s *FilterState) { s.SetStudioOnly(true) },
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			s := NewFilterState()
			set(s)
			if !s.HasActive() {
				t.Fatalf("%s should make the state active", name)
			}
		})
	}
}

func TestFilterStateZeroMaxApplicantsIsInactive(t *testing.T) {
	s := NewFilterState()
	s.SetMaxApplicants(intPtr(0))
	if s.HasActive() {
		t.Fatalf("max_applicants=0 applies no filter and must not count as active")
	}

	gigs := []model.Gig{{ID: "a", MaxApplicants: 10}, {ID: "b"}}
	if got := FilterGigs(gigs, s.Criteria()); len(got) != len(gigs) {
		t.Fatalf("max_applicants=0 must keep every gig, got %d", len(got))
	}
}

func TestFilterStateClearAllRestoresDefaults(t *testing.T) {
	s := NewFilterState()
	s.SetSearchTerm("x")
	s.SetCompType("TFP")
	s.SetPalette([]string{"#000000"})
	s.SetRoleTypes([]string{"MODELS"})
	s.SetVibeTags([]string{"moody"})
	s.SetStyleTags([]string{"street"})
	s.SetSpecializations([]string{"Retouching"})
	s.SetTravelOnly(true)

	s.ClearAll()

	if !reflect.DeepEqual(s.Criteria(), DefaultCriteria()) {
		t.Fatalf("clear all did not restore defaults: %+v", s.Criteria())
	}
	if s.HasActive() {
		t.Fatalf("cleared state must not be active")
	}
}

func TestFilterStateToggleAddsAndRemoves(t *testing.T) {
	s := NewFilterState()
	s.ToggleStyleTag("fashion")
	s.ToggleStyleTag("street")
	s.ToggleStyleTag("fashion")

	if got := s.Criteria().StyleTags; !reflect.DeepEqual(got, []string{"street"}) {
		t.Fatalf("unexpected style tags: %v", got)
	}
}

func TestFilterStateCriteriaIsASnapshot(t *testing.T) {
	s := NewFilterState()
	s.SetPalette([]string{"#111111"})

	snap := s.Criteria()
	snap.Palette[0] = "#222222"

	if got := s.Criteria().Palette[0]; got != "#111111" {
		t.Fatalf("snapshot mutation leaked into state: %s", got)
	}
}

func TestFilterStateFromZeroCriteria(t *testing.T) {
	s := FilterStateFrom(Criteria{})
	if s.HasActive() {
		t.Fatalf("zero criteria must not be active")
	}
	if got := s.Criteria().CompType; got != "ALL" {
		t.Fatalf("unexpected comp type: %s", got)
	}
}
