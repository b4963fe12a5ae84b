package saved

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/presetapp/gigboard/internal/domain/model"
	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
)

const (
	userID = "0b6f3c1e-6a8d-4f55-a1b2-9c0d8e7f6a51"
	gigA   = "7d1f7c52-2c59-4d8b-8b0e-3c5a1f0e9a01"
	gigB   = "7d1f7c52-2c59-4d8b-8b0e-3c5a1f0e9a02"
	gigC   = "7d1f7c52-2c59-4d8b-8b0e-3c5a1f0e9a03"
)

type stubStore struct {
	saved   map[string]time.Time
	listErr error
	toggles int
}

func newStubStore() *stubStore {
	return &stubStore{saved: make(map[string]time.Time)}
}

func (s *stubStore) ListIDs(_ context.Context, _ string) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]string, 0, len(s.saved))
	for id := range s.saved {
		out = append(out, id)
	}
	return out, nil
}

func (s *stubStore) List(_ context.Context, _ string) ([]pgrepo.SavedGigRef, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	refs := []pgrepo.SavedGigRef{}
	for _, id := range []string{gigC, gigB, gigA} {
		if at, ok := s.saved[id]; ok {
			refs = append(refs, pgrepo.SavedGigRef{GigID: id, SavedAt: at})
		}
	}
	return refs, nil
}

func (s *stubStore) Toggle(_ context.Context, _, gigID string) (bool, error) {
	s.toggles++
	if _, ok := s.saved[gigID]; ok {
		delete(s.saved, gigID)
		return false, nil
	}
	s.saved[gigID] = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return true, nil
}

type stubLoader struct {
	visible map[string]bool
}

func (l stubLoader) LoadByIDs(_ context.Context, _ string, ids []string) ([]model.Gig, error) {
	out := []model.Gig{}
	for _, id := range ids {
		if l.visible[id] {
			out = append(out, model.Gig{ID: id, Title: "gig " + id[len(id)-2:]})
		}
	}
	return out, nil
}

type stubLimiter struct {
	allowed    bool
	retryAfter int64
	err        error
}

func (l stubLimiter) Allow(context.Context, string) (int64, bool, error) {
	return l.retryAfter, l.allowed, l.err
}

func TestToggleFlipsSavedState(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil)
	ctx := context.Background()

	saved, err := svc.Toggle(ctx, userID, gigA)
	if err != nil || !saved {
		t.Fatalf("first toggle: saved=%v err=%v", saved, err)
	}
	if _, ok := svc.SavedIDs(ctx, userID)[gigA]; !ok {
		t.Fatalf("expected gig in saved set after save")
	}

	saved, err = svc.Toggle(ctx, userID, gigA)
	if err != nil || saved {
		t.Fatalf("second toggle: saved=%v err=%v", saved, err)
	}
	if len(svc.SavedIDs(ctx, userID)) != 0 {
		t.Fatalf("expected empty saved set after unsave")
	}
}

func TestToggleValidation(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "", gigA); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Toggle(ctx, userID, "not-a-uuid"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for gig id, got %v", err)
	}
	if _, err := svc.Toggle(ctx, "user-42", gigA); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for user id, got %v", err)
	}
	if store.toggles != 0 {
		t.Fatalf("store must not be touched on invalid input, got %d toggles", store.toggles)
	}
}

func TestToggleRateLimited(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil)
	svc.AttachLimiter(stubLimiter{allowed: false, retryAfter: 7})

	_, err := svc.Toggle(context.Background(), userID, gigA)
	tooFast, ok := IsTooFast(err)
	if !ok {
		t.Fatalf("expected TooFastError, got %v", err)
	}
	if tooFast.RetryAfter() != 7 {
		t.Fatalf("expected retry after 7, got %d", tooFast.RetryAfter())
	}
	if store.toggles != 0 {
		t.Fatalf("rate limited toggle must not reach the store")
	}
}

func TestToggleIgnoresLimiterFailure(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil)
	svc.AttachLimiter(stubLimiter{err: errors.New("redis down")})

	saved, err := svc.Toggle(context.Background(), userID, gigA)
	if err != nil || !saved {
		t.Fatalf("toggle with failing limiter: saved=%v err=%v", saved, err)
	}
}

func TestSavedIDsDegradesToEmpty(t *testing.T) {
	store := newStubStore()
	store.listErr = errors.New("db down")
	svc := NewService(store, nil)

	got := svc.SavedIDs(context.Background(), userID)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil set, got %v", got)
	}
	if len(svc.SavedIDs(context.Background(), "")) != 0 {
		t.Fatalf("anonymous viewer must have no saved gigs")
	}
}

func TestListSkipsInvisibleGigs(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil)
	svc.AttachGigs(stubLoader{visible: map[string]bool{gigA: true, gigC: true}})
	ctx := context.Background()

	for _, id := range []string{gigA, gigB, gigC} {
		if _, err := svc.Toggle(ctx, userID, id); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	got, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 visible saved gigs, got %d", len(got))
	}
	if got[0].Gig.ID != gigC || got[1].Gig.ID != gigA {
		t.Fatalf("unexpected order: %s, %s", got[0].Gig.ID, got[1].Gig.ID)
	}
	for _, item := range got {
		if !item.Gig.IsSaved || item.SavedAt.IsZero() {
			t.Fatalf("saved gig not marked: %+v", item)
		}
	}

	if _, err := svc.List(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
