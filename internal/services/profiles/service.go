package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/presetapp/gigboard/internal/domain/model"
	"github.com/presetapp/gigboard/internal/domain/rules"
	pgrepo "github.com/presetapp/gigboard/internal/repo/postgres"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("profile not found")
	ErrUnauthorized = errors.New("authentication required")
)

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (model.UserProfile, error)
	UpdateColumns(ctx context.Context, userID string, columns map[string]any) error
}

type Service struct {
	store    ProfileStore
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(store ProfileStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		validate: newValidator(),
		logger:   log,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "style_tag", vocabularyValidator(rules.StyleTagVocabulary))
	mustRegister(v, "vibe_tag", vocabularyValidator(rules.VibeTagVocabulary))
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func vocabularyValidator(vocabulary []string) validator.Func {
	allowed := make(map[string]struct{}, len(vocabulary))
	for _, v := range vocabulary {
		allowed[v] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	}
}

func (s *Service) Get(ctx context.Context, userID string) (model.UserProfile, error) {
	userID, err := checkUserID(userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	if s.store == nil {
		return model.UserProfile{}, fmt.Errorf("profile store is nil")
	}

	profile, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	return normalizeProfile(profile), nil
}

// UpdateSection applies a JSON patch restricted to the columns of section
// and returns the stored profile afterwards.
func (s *Service) UpdateSection(ctx context.Context, userID string, section Section, raw []byte) (model.UserProfile, error) {
	userID, err := checkUserID(userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	patch := newPatch(section)
	if patch == nil {
		return model.UserProfile{}, fmt.Errorf("unknown profile section %q: %w", section, ErrValidation)
	}
	if s.store == nil {
		return model.UserProfile{}, fmt.Errorf("profile store is nil")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(patch); err != nil {
		return model.UserProfile{}, fmt.Errorf("decode %s patch: %v: %w", section, err, ErrValidation)
	}
	if err := s.validate.Struct(patch); err != nil {
		return model.UserProfile{}, fmt.Errorf("%s: %s: %w", section, describeValidation(err), ErrValidation)
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	if p, ok := patch.(*professionalPatch); ok {
		if err := checkRateRange(current, p); err != nil {
			return model.UserProfile{}, err
		}
	}

	columns := columnsOf(patch)
	if len(columns) == 0 {
		return current, nil
	}
	if err := s.store.UpdateColumns(ctx, userID, columns); err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, fmt.Errorf("update %s: %w", section, err)
	}

	s.logger.Info("profile section updated",
		zap.String("user_id", userID),
		zap.String("section", string(section)),
		zap.Int("columns", len(columns)),
	)
	return s.Get(ctx, userID)
}

func checkUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrUnauthorized
	}
	if _, err := uuid.Parse(userID); err != nil {
		return "", fmt.Errorf("user id must be a uuid: %w", ErrValidation)
	}
	return userID, nil
}

// checkRateRange compares the patched rate bounds, falling back to the
// stored value for the side the patch leaves untouched.
func checkRateRange(current model.UserProfile, p *professionalPatch) error {
	lo, hi := current.HourlyRateMin, current.HourlyRateMax
	if p.HourlyRateMin != nil {
		lo = p.HourlyRateMin
	}
	if p.HourlyRateMax != nil {
		hi = p.HourlyRateMax
	}
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("hourly_rate_min must not exceed hourly_rate_max: %w", ErrValidation)
	}
	return nil
}

func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed validation: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

func normalizeProfile(p model.UserProfile) model.UserProfile {
	p.Specializations = nonNil(p.Specializations)
	p.ProfessionalSkills = nonNil(p.ProfessionalSkills)
	p.Languages = nonNil(p.Languages)
	p.StyleTags = nonNil(p.StyleTags)
	p.VibeTags = nonNil(p.VibeTags)
	p.EquipmentList = nonNil(p.EquipmentList)
	p.EditingSoftware = nonNil(p.EditingSoftware)
	p.TalentCategories = nonNil(p.TalentCategories)
	p.PerformanceRoles = nonNil(p.PerformanceRoles)
	return p
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
