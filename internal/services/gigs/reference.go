package gigs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/presetapp/gigboard/internal/domain/enums"
	"github.com/presetapp/gigboard/internal/domain/rules"
	redrepo "github.com/presetapp/gigboard/internal/repo/redis"
)

const (
	defaultPaletteLimit    = 20
	defaultPaletteCacheTTL = 15 * time.Minute
)

type PaletteCache interface {
	GetStrings(ctx context.Context, key string) ([]string, error)
	SetStrings(ctx context.Context, key string, values []string, ttl time.Duration) error
}

type ReferenceStore interface {
	PopularPalettes(ctx context.Context, limit int) ([]string, error)
	RoleTypes(ctx context.Context) ([]string, error)
	Specializations(ctx context.Context) ([]string, error)
}

type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type Tags struct {
	Style []string `json:"style"`
	Vibe  []string `json:"vibe"`
}

type Labels struct {
	CompTypes   []Option `json:"comp_types"`
	Purposes    []Option `json:"purposes"`
	UsageRights []Option `json:"usage_rights"`
	LookingFor  []Option `json:"looking_for"`
}

func (s *Service) AttachReference(store ReferenceStore, cache PaletteCache) {
	s.reference = store
	s.cache = cache
}

// Palettes returns popular palette colors from the cache, then the store,
// then the configured fallback list.
func (s *Service) Palettes(ctx context.Context) []string {
	if s.cache != nil {
		cached, err := s.cache.GetStrings(ctx, redrepo.PopularPalettesKey)
		if err == nil && len(cached) > 0 {
			return capStrings(cached, s.cfg.PaletteLimit)
		}
		if err != nil && !errors.Is(err, redrepo.ErrCacheMiss) {
			s.logger.Warn("palette cache read failed", zap.Error(err))
		}
	}

	colors, err := s.RefreshPalettes(ctx)
	if err != nil {
		s.logger.Warn("popular palettes unavailable, using fallback", zap.Error(err))
		return capStrings(s.cfg.FallbackPalettes, s.cfg.PaletteLimit)
	}
	return colors
}

var errNoPalettes = errors.New("no palette colors found")

// RefreshPalettes reloads popular palettes from the store into the cache.
func (s *Service) RefreshPalettes(ctx context.Context) ([]string, error) {
	if s.reference == nil {
		return nil, errors.New("reference store is nil")
	}

	colors, err := s.reference.PopularPalettes(ctx, s.cfg.PaletteLimit)
	if err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		return nil, errNoPalettes
	}
	colors = capStrings(colors, s.cfg.PaletteLimit)

	if s.cache != nil {
		if err := s.cache.SetStrings(ctx, redrepo.PopularPalettesKey, colors, s.cfg.PaletteCacheTTL); err != nil {
			s.logger.Warn("palette cache write failed", zap.Error(err))
		}
	}
	return colors, nil
}

// RoleTypes lists the roles requested by published gigs, or the full role
// table when none can be loaded.
func (s *Service) RoleTypes(ctx context.Context) []Option {
	var codes []string
	if s.reference != nil {
		loaded, err := s.reference.RoleTypes(ctx)
		if err != nil {
			s.logger.Warn("role types unavailable, using fallback", zap.Error(err))
		}
		codes = loaded
	}

	if len(codes) == 0 {
		for _, code := range enums.LookingForTypes() {
			codes = append(codes, string(code))
		}
	}

	out := make([]Option, 0, len(codes))
	for _, code := range codes {
		out = append(out, Option{Code: code, Label: enums.LookingFor(code).Label()})
	}
	return out
}

func (s *Service) Specializations(ctx context.Context) []string {
	if s.reference != nil {
		loaded, err := s.reference.Specializations(ctx)
		if err != nil {
			s.logger.Warn("specializations unavailable, using fallback", zap.Error(err))
		} else if len(loaded) > 0 {
			return loaded
		}
	}
	return append([]string(nil), s.cfg.FallbackSpecializations...)
}

func (s *Service) Tags() Tags {
	return Tags{
		Style: append([]string(nil), rules.StyleTagVocabulary...),
		Vibe:  append([]string(nil), rules.VibeTagVocabulary...),
	}
}

func (s *Service) Labels() Labels {
	out := Labels{}
	for _, c := range enums.CompTypes() {
		out.CompTypes = append(out.CompTypes, Option{Code: string(c), Label: c.Label(), Icon: c.Icon()})
	}
	for _, p := range enums.Purposes() {
		out.Purposes = append(out.Purposes, Option{Code: string(p), Label: p.Label()})
	}
	for _, u := range enums.UsageRightsOptions() {
		out.UsageRights = append(out.UsageRights, Option{Code: string(u), Label: u.Label()})
	}
	for _, l := range enums.LookingForTypes() {
		out.LookingFor = append(out.LookingFor, Option{Code: string(l), Label: l.Label()})
	}
	return out
}

func capStrings(v []string, limit int) []string {
	if limit > 0 && len(v) > limit {
		v = v[:limit]
	}
	return append([]string(nil), v...)
}
