package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/presetapp/gigboard/internal/domain/model"
	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
	authsvc "github.com/presetapp/gigboard/internal/services/auth"
	gigsvc "github.com/presetapp/gigboard/internal/services/gigs"
	savedsvc "github.com/presetapp/gigboard/internal/services/saved"
)

const (
	viewerID = "c3d2a1b0-9f8e-4d7c-8b6a-5f4e3d2c1b0a"
	gigOne   = "11111111-2222-4333-8444-555555555501"
	gigTwo   = "11111111-2222-4333-8444-555555555502"
)

type stubGigStore struct {
	records []pgrepo.GigRecord
}

func (s stubGigStore) ListPublished(context.Context, time.Time) ([]pgrepo.GigRecord, error) {
	return s.records, nil
}

func (s stubGigStore) GetByID(_ context.Context, id string) (pgrepo.GigRecord, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return pgrepo.GigRecord{}, pgrepo.ErrGigNotFound
}

func (s stubGigStore) ListByIDs(_ context.Context, ids []string) ([]pgrepo.GigRecord, error) {
	var out []pgrepo.GigRecord
	for _, id := range ids {
		if rec, err := s.GetByID(context.Background(), id); err == nil {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memorySavedStore struct {
	saved map[string]time.Time
}

func (m *memorySavedStore) ListIDs(context.Context, string) ([]string, error) {
	out := []string{}
	for id := range m.saved {
		out = append(out, id)
	}
	return out, nil
}

func (m *memorySavedStore) List(context.Context, string) ([]pgrepo.SavedGigRef, error) {
	out := []pgrepo.SavedGigRef{}
	for id, at := range m.saved {
		out = append(out, pgrepo.SavedGigRef{GigID: id, SavedAt: at})
	}
	return out, nil
}

func (m *memorySavedStore) Toggle(_ context.Context, _, gigID string) (bool, error) {
	if _, ok := m.saved[gigID]; ok {
		delete(m.saved, gigID)
		return false, nil
	}
	m.saved[gigID] = time.Now()
	return true, nil
}

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, string) (int64, bool, error) {
	return 9, false, nil
}

func newTestGigsHandler(t *testing.T) (*GigsHandler, *memorySavedStore) {
	t.Helper()

	deadline := time.Now().Add(72 * time.Hour)
	store := stubGigStore{records: []pgrepo.GigRecord{
		{
			ID: gigOne, Title: "Editorial shoot", CompType: "PAID", Purpose: "EDITORIAL",
			LocationText: "Dublin, Ireland", ApplicationDeadline: deadline, Status: "PUBLISHED",
			StyleTags: []string{"editorial"}, VibeTags: []string{"moody"},
		},
		{
			ID: gigTwo, Title: "Portfolio swap", CompType: "TFP", Purpose: "PORTFOLIO",
			LocationText: "Cork, Ireland", ApplicationDeadline: deadline, Status: "PUBLISHED",
			StyleTags: []string{"portrait"}, VibeTags: []string{"natural"},
		},
	}}

	gigs := gigsvc.NewService(store, gigsvc.Config{PageSize: 12}, nil)
	savedStore := &memorySavedStore{saved: map[string]time.Time{}}
	saved := savedsvc.NewService(savedStore, nil)
	saved.AttachGigs(gigs)
	gigs.AttachSaved(saved)

	return NewGigsHandler(gigs, saved), savedStore
}

func newGigsRouter(h *GigsHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/v1/gigs", h.List)
	r.Get("/v1/gigs/saved", h.Saved)
	r.Get("/v1/gigs/{id}", h.Get)
	r.Post("/v1/gigs/{id}/save", h.ToggleSave)
	return r
}

func withViewer(req *http.Request) *http.Request {
	return req.WithContext(authsvc.WithIdentity(req.Context(), authsvc.Identity{UserID: viewerID}))
}

func TestParseGigListQuery(t *testing.T) {
	values := url.Values{
		"q":              {"  shoot "},
		"comp_type":      {"tfp"},
		"palette":        {"#ff0000,#00ff00", "#0000ff"},
		"style_tags":     {"editorial, portrait,"},
		"min_experience": {"3"},
		"max_rate":       {"45.5"},
		"travel_only":    {"true"},
		"page":           {"2"},
	}

	q, err := parseGigListQuery(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Search != "shoot" || q.CompType != "TFP" || q.Page != 2 || !q.TravelOnly {
		t.Fatalf("unexpected scalars: %+v", q)
	}
	if len(q.Palette) != 3 || len(q.StyleTags) != 2 {
		t.Fatalf("unexpected lists: palette=%v style=%v", q.Palette, q.StyleTags)
	}
	if q.MinExperience == nil || *q.MinExperience != 3 || q.MaxRate == nil || *q.MaxRate != 45.5 {
		t.Fatalf("unexpected numbers: %+v", q)
	}

	c := criteriaFromQuery(q)
	if c.Purpose != "ALL" || c.UsageRights != "ALL" || c.CompType != "TFP" {
		t.Fatalf("unexpected enum criteria: %+v", c)
	}

	for _, bad := range []url.Values{
		{"min_experience": {"three"}},
		{"max_rate": {"cheap"}},
		{"studio_only": {"maybe"}},
	} {
		if _, err := parseGigListQuery(bad); err == nil {
			t.Fatalf("expected parse error for %v", bad)
		}
	}
}

func TestListFiltersAndReportsActiveFilters(t *testing.T) {
	h, _ := newTestGigsHandler(t)
	router := newGigsRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/gigs?comp_type=TFP", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Items            []model.Gig `json:"items"`
		TotalItems       int         `json:"total_items"`
		HasActiveFilters bool        `json:"has_active_filters"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalItems != 1 || len(resp.Items) != 1 || resp.Items[0].ID != gigTwo {
		t.Fatalf("unexpected items: %+v", resp)
	}
	if resp.HasActiveFilters {
		t.Fatalf("comp type alone must not count as an active filter")
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/gigs?vibe_tags=moody", nil))
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.HasActiveFilters || len(resp.Items) != 1 || resp.Items[0].ID != gigOne {
		t.Fatalf("unexpected vibe result: %+v", resp)
	}
}

func TestListRejectsInvalidQuery(t *testing.T) {
	h, _ := newTestGigsHandler(t)
	router := newGigsRouter(h)

	for _, target := range []string{
		"/v1/gigs?comp_type=FREE",
		"/v1/gigs?start_date=2026-13-40",
		"/v1/gigs?max_experience=99",
		"/v1/gigs?min_rate=-5",
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestGetGig(t *testing.T) {
	h, _ := newTestGigsHandler(t)
	router := newGigsRouter(h)

	cases := map[string]int{
		"/v1/gigs/" + gigOne:                            http.StatusOK,
		"/v1/gigs/not-a-uuid":                           http.StatusBadRequest,
		"/v1/gigs/99999999-2222-4333-8444-555555555599": http.StatusNotFound,
	}
	for target, want := range cases {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != want {
			t.Fatalf("%s: got %d want %d", target, rr.Code, want)
		}
	}
}

func TestToggleSaveAndSavedList(t *testing.T) {
	h, _ := newTestGigsHandler(t)
	router := newGigsRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/gigs/"+gigOne+"/save", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous toggle: expected 401, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withViewer(httptest.NewRequest(http.MethodPost, "/v1/gigs/"+gigOne+"/save", nil)))
	if rr.Code != http.StatusOK {
		t.Fatalf("toggle: unexpected status %d: %s", rr.Code, rr.Body.String())
	}
	var toggled struct {
		IsSaved bool `json:"is_saved"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &toggled); err != nil || !toggled.IsSaved {
		t.Fatalf("expected saved=true, got %s (%v)", rr.Body.String(), err)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withViewer(httptest.NewRequest(http.MethodGet, "/v1/gigs/saved", nil)))
	var saved struct {
		Items []model.SavedGig `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode saved: %v", err)
	}
	if len(saved.Items) != 1 || saved.Items[0].Gig.ID != gigOne || !saved.Items[0].Gig.IsSaved {
		t.Fatalf("unexpected saved list: %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withViewer(httptest.NewRequest(http.MethodGet, "/v1/gigs/"+gigOne, nil)))
	var gig model.Gig
	if err := json.Unmarshal(rr.Body.Bytes(), &gig); err != nil || !gig.IsSaved {
		t.Fatalf("gig should be marked saved for the viewer: %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withViewer(httptest.NewRequest(http.MethodPost, "/v1/gigs/bad-id/save", nil)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: expected 400, got %d", rr.Code)
	}
}

func TestToggleSaveRateLimited(t *testing.T) {
	h, store := newTestGigsHandler(t)
	h.saved.AttachLimiter(denyLimiter{})
	router := newGigsRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, withViewer(httptest.NewRequest(http.MethodPost, "/v1/gigs/"+gigOne+"/save", nil)))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "9" {
		t.Fatalf("unexpected Retry-After %q", rr.Header().Get("Retry-After"))
	}
	if len(store.saved) != 0 {
		t.Fatalf("rate limited toggle must not persist")
	}
}
