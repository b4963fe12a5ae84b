package saved

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/presetapp/gigboard/internal/domain/model"
	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("authentication required")
	ErrDependenciesNil = errors.New("saved gigs dependencies are not configured")
)

type TooFastError struct {
	RetryAfterSec int64
}

func (e TooFastError) Error() string {
	return "too fast"
}

func (e TooFastError) RetryAfter() int64 {
	if e.RetryAfterSec <= 0 {
		return 1
	}
	return e.RetryAfterSec
}

func IsTooFast(err error) (*TooFastError, bool) {
	var tf TooFastError
	if errors.As(err, &tf) {
		return &tf, true
	}
	return nil, false
}

type Store interface {
	ListIDs(ctx context.Context, userID string) ([]string, error)
	List(ctx context.Context, userID string) ([]pgrepo.SavedGigRef, error)
	Toggle(ctx context.Context, userID, gigID string) (bool, error)
}

// GigLoader returns gigs in the order of ids, already reshaped for viewerID.
type GigLoader interface {
	LoadByIDs(ctx context.Context, viewerID string, ids []string) ([]model.Gig, error)
}

type Limiter interface {
	Allow(ctx context.Context, subject string) (int64, bool, error)
}

type Service struct {
	store   Store
	gigs    GigLoader
	limiter Limiter
	logger  *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, logger: log}
}

func (s *Service) AttachGigs(gigs GigLoader) {
	s.gigs = gigs
}

func (s *Service) AttachLimiter(limiter Limiter) {
	s.limiter = limiter
}

// SavedIDs returns the set of gig ids saved by userID. Anonymous viewers and
// store failures yield an empty set.
func (s *Service) SavedIDs(ctx context.Context, userID string) map[string]struct{} {
	out := make(map[string]struct{})
	userID = strings.TrimSpace(userID)
	if userID == "" || s.store == nil {
		return out
	}

	ids, err := s.store.ListIDs(ctx, userID)
	if err != nil {
		s.logger.Warn("load saved gig ids failed", zap.String("user_id", userID), zap.Error(err))
		return out
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// Toggle flips the saved state of gigID for userID and reports the new state.
func (s *Service) Toggle(ctx context.Context, userID, gigID string) (bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false, ErrUnauthorized
	}
	if _, err := uuid.Parse(userID); err != nil {
		return false, fmt.Errorf("%w: user id must be a uuid", ErrValidation)
	}
	gigID = strings.TrimSpace(gigID)
	if _, err := uuid.Parse(gigID); err != nil {
		return false, fmt.Errorf("%w: gig id must be a uuid", ErrValidation)
	}
	if s.store == nil {
		return false, ErrDependenciesNil
	}

	if s.limiter != nil {
		retryAfter, allowed, err := s.limiter.Allow(ctx, userID)
		if err != nil {
			s.logger.Warn("save rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			return false, TooFastError{RetryAfterSec: retryAfter}
		}
	}

	saved, err := s.store.Toggle(ctx, userID, gigID)
	if err != nil {
		return false, fmt.Errorf("toggle saved gig: %w", err)
	}

	s.logger.Info("saved gig toggled",
		zap.String("user_id", userID),
		zap.String("gig_id", gigID),
		zap.Bool("saved", saved),
	)
	return saved, nil
}

// List returns the gigs saved by userID, newest save first. Saved rows whose
// gig is no longer visible are skipped.
func (s *Service) List(ctx context.Context, userID string) ([]model.SavedGig, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if s.store == nil || s.gigs == nil {
		return nil, ErrDependenciesNil
	}

	refs, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved gigs: %w", err)
	}
	if len(refs) == 0 {
		return []model.SavedGig{}, nil
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.GigID)
	}

	loaded, err := s.gigs.LoadByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("load saved gigs: %w", err)
	}
	byID := make(map[string]model.Gig, len(loaded))
	for _, gig := range loaded {
		byID[gig.ID] = gig
	}

	out := make([]model.SavedGig, 0, len(refs))
	for _, ref := range refs {
		gig, ok := byID[ref.GigID]
		if !ok {
			continue
		}
		gig.IsSaved = true
		out = append(out, model.SavedGig{Gig: gig, SavedAt: ref.SavedAt})
	}
	return out, nil
}
