package gigs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/presetapp/gigboard/internal/domain/model"
	"github.com/presetapp/gigboard/internal/domain/rules"
	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type GigStore interface {
	ListPublished(ctx context.Context, now time.Time) ([]pgrepo.GigRecord, error)
	GetByID(ctx context.Context, gigID string) (pgrepo.GigRecord, error)
	ListByIDs(ctx context.Context, gigIDs []string) ([]pgrepo.GigRecord, error)
}

// SavedLookup reports the gigs a viewer has saved. Implementations degrade
// to an empty set on failure.
type SavedLookup interface {
	SavedIDs(ctx context.Context, userID string) map[string]struct{}
}

type URLResolver interface {
	ResolveURLs(ctx context.Context, refs []string) []string
}

type Config struct {
	PageSize                int
	EnrichMissingTags       bool
	SimulatePalettes        bool
	PaletteLimit            int
	PaletteCacheTTL         time.Duration
	FallbackPalettes        []string
	FallbackSpecializations []string
}

type Service struct {
	store     GigStore
	cfg       Config
	saved     SavedLookup
	urls      URLResolver
	cache     PaletteCache
	reference ReferenceStore
	logger    *zap.Logger
	now       func() time.Time
}

type ListResult struct {
	Page
	HasActiveFilters bool
}

func NewService(store GigStore, cfg Config, log *zap.Logger) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PaletteLimit <= 0 {
		cfg.PaletteLimit = defaultPaletteLimit
	}
	if cfg.PaletteCacheTTL <= 0 {
		cfg.PaletteCacheTTL = defaultPaletteCacheTTL
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		store:  store,
		cfg:    cfg,
		logger: log,
		now:    time.Now,
	}
}

func (s *Service) AttachSaved(saved SavedLookup) {
	s.saved = saved
}

func (s *Service) AttachURLResolver(urls URLResolver) {
	s.urls = urls
}

// List loads the open gigs, applies the criteria and returns one page.
// A failing store yields an empty page rather than an error.
func (s *Service) List(ctx context.Context, viewerID string, c Criteria, page int) (ListResult, error) {
	all := s.loadOpenGigs(ctx, viewerID)
	filtered := FilterGigs(all, c)

	return ListResult{
		Page:             Paginate(filtered, page, s.cfg.PageSize),
		HasActiveFilters: FilterStateFrom(c).HasActive(),
	}, nil
}

// All returns every open gig, reshaped but unfiltered.
func (s *Service) All(ctx context.Context, viewerID string) []model.Gig {
	return s.loadOpenGigs(ctx, viewerID)
}

func (s *Service) Get(ctx context.Context, viewerID, gigID string) (model.Gig, error) {
	if _, err := uuid.Parse(gigID); err != nil {
		return model.Gig{}, ErrValidation
	}
	if s.store == nil {
		return model.Gig{}, fmt.Errorf("gig store is nil")
	}

	record, err := s.store.GetByID(ctx, gigID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrGigNotFound) {
			return model.Gig{}, ErrNotFound
		}
		return model.Gig{}, err
	}

	gig := s.reshape(ctx, record)
	if _, ok := s.savedSet(ctx, viewerID)[gig.ID]; ok {
		gig.IsSaved = true
	}
	return gig, nil
}

// LoadByIDs returns the requested gigs in the order given; unknown ids are
// skipped.
func (s *Service) LoadByIDs(ctx context.Context, viewerID string, gigIDs []string) ([]model.Gig, error) {
	if len(gigIDs) == 0 {
		return []model.Gig{}, nil
	}
	if s.store == nil {
		return nil, fmt.Errorf("gig store is nil")
	}

	records, err := s.store.ListByIDs(ctx, gigIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]pgrepo.GigRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	saved := s.savedSet(ctx, viewerID)
	out := make([]model.Gig, 0, len(gigIDs))
	for _, id := range gigIDs {
		rec, ok := byID[id]
		if !ok {
			continue
		}
		gig := s.reshape(ctx, rec)
		_, gig.IsSaved = saved[gig.ID]
		out = append(out, gig)
	}
	return out, nil
}

func (s *Service) loadOpenGigs(ctx context.Context, viewerID string) []model.Gig {
	if s.store == nil {
		return []model.Gig{}
	}

	records, err := s.store.ListPublished(ctx, s.now().UTC())
	if err != nil {
		s.logger.Error("gig list fetch failed", zap.Error(err))
		return []model.Gig{}
	}

	saved := s.savedSet(ctx, viewerID)
	out := make([]model.Gig, 0, len(records))
	for _, rec := range records {
		gig := s.reshape(ctx, rec)
		_, gig.IsSaved = saved[gig.ID]
		out = append(out, gig)
	}
	return out
}

func (s *Service) savedSet(ctx context.Context, viewerID string) map[string]struct{} {
	if s.saved == nil || strings.TrimSpace(viewerID) == "" {
		return map[string]struct{}{}
	}
	return s.saved.SavedIDs(ctx, viewerID)
}

func (s *Service) reshape(ctx context.Context, rec pgrepo.GigRecord) model.Gig {
	gig := model.Gig{
		ID:                  rec.ID,
		Title:               rec.Title,
		Description:         rec.Description,
		Purpose:             rec.Purpose,
		CompType:            rec.CompType,
		UsageRights:         rec.UsageRights,
		LocationText:        rec.LocationText,
		LocationData:        rec.LocationData,
		StartTime:           rec.StartTime,
		EndTime:             rec.EndTime,
		ApplicationDeadline: rec.ApplicationDeadline,
		CreatedAt:           rec.CreatedAt,
		MaxApplicants:       rec.MaxApplicants,
		CurrentApplicants:   rec.CurrentApplicants,
		Status:              rec.Status,
		OwnerUserID:         rec.OwnerUserID,
		LookingForTypes:     nonNil(rec.LookingForTypes),
		MoodboardURLs:       []string{},
		PaletteColors:       []string{},
		StyleTags:           nonNil(rec.StyleTags),
		VibeTags:            nonNil(rec.VibeTags),
		Owner:               rec.Owner,
		Moodboard:           rec.Moodboard,
	}

	if rec.Moodboard != nil {
		refs := rules.MoodboardURLs(*rec.Moodboard)
		if s.urls != nil {
			gig.MoodboardURLs = s.urls.ResolveURLs(ctx, refs)
		} else {
			gig.MoodboardURLs = refs
		}
		gig.PaletteColors = rules.ExtractPaletteColors([]model.Moodboard{*rec.Moodboard})
	}

	gig.City, _ = rules.ExtractCityFromLocation(rec.LocationText, rec.LocationData)
	gig.Country, _ = rules.ExtractCountryFromLocation(rec.LocationText, rec.LocationData)

	if len(gig.PaletteColors) == 0 && s.cfg.SimulatePalettes {
		gig.PaletteColors = rules.SimulatedPaletteColors(gig.Purpose, gig.Title)
	}

	// Stored tags win; the keyword heuristics only fill gigs with none.
	if s.cfg.EnrichMissingTags && len(gig.StyleTags) == 0 && len(gig.VibeTags) == 0 {
		enriched := rules.SimulatedGigData(gig)
		gig.StyleTags = enriched.StyleTags
		gig.VibeTags = enriched.VibeTags
	}

	return gig
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
