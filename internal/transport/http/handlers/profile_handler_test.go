package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/presetapp/gigboard/internal/domain/model"
	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
	authsvc "github.com/presetapp/gigboard/internal/services/auth"
	profilesvc "github.com/presetapp/gigboard/internal/services/profiles"
)

type stubProfileStore struct {
	profile model.UserProfile
	columns map[string]any
}

func (s *stubProfileStore) GetByUserID(_ context.Context, userID string) (model.UserProfile, error) {
	if userID != s.profile.UserID {
		return model.UserProfile{}, pgrepo.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubProfileStore) UpdateColumns(_ context.Context, _ string, columns map[string]any) error {
	s.columns = columns
	if v, ok := columns["bio"].(string); ok {
		s.profile.Bio = v
	}
	return nil
}

func newProfileRouter(store *stubProfileStore) chi.Router {
	h := NewProfileHandler(profilesvc.NewService(store, nil))
	r := chi.NewRouter()
	r.Get("/v1/profile", h.Get)
	r.Patch("/v1/profile/{section}", h.UpdateSection)
	return r
}

func TestProfileGetIncludesCompletion(t *testing.T) {
	store := &stubProfileStore{profile: model.UserProfile{UserID: viewerID, DisplayName: "Ana", Bio: "hi"}}
	router := newProfileRouter(store)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withViewer(httptest.NewRequest(http.MethodGet, "/v1/profile", nil)))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Profile    model.UserProfile `json:"profile"`
		Completion struct {
			Percentage int `json:"percentage"`
		} `json:"completion"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Profile.DisplayName != "Ana" || resp.Completion.Percentage <= 0 {
		t.Fatalf("unexpected response %s", rr.Body.String())
	}
}

func TestProfileUpdateSection(t *testing.T) {
	store := &stubProfileStore{profile: model.UserProfile{UserID: viewerID}}
	router := newProfileRouter(store)

	patch := func(section, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/v1/profile/"+section, strings.NewReader(body))
		req = req.WithContext(authsvc.WithIdentity(req.Context(), authsvc.Identity{UserID: viewerID}))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	if rr := patch("personal", `{"bio":"Fashion photographer"}`); rr.Code != http.StatusOK {
		t.Fatalf("valid patch: got %d %s", rr.Code, rr.Body.String())
	}
	if store.profile.Bio != "Fashion photographer" {
		t.Fatalf("bio not stored: %v", store.columns)
	}

	rr := patch("talent", `{"height_cm": 300}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid height: expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "height_cm") {
		t.Fatalf("expected field name in message, got %s", rr.Body.String())
	}

	if rr := patch("billing", `{}`); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown section: expected 404, got %d", rr.Code)
	}
}
