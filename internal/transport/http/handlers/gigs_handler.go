package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	authsvc "github.com/presetapp/gigboard/internal/services/auth"
	gigsvc "github.com/presetapp/gigboard/internal/services/gigs"
	savedsvc "github.com/presetapp/gigboard/internal/services/saved"
	"github.com/presetapp/gigboard/internal/transport/http/dto"
	httperrors "github.com/presetapp/gigboard/internal/transport/http/errors"
)

type GigsHandler struct {
	gigs     *gigsvc.Service
	saved    *savedsvc.Service
	validate *validator.Validate
	now      func() time.Time
}

func NewGigsHandler(gigs *gigsvc.Service, saved *savedsvc.Service) *GigsHandler {
	return &GigsHandler{
		gigs:     gigs,
		saved:    saved,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (h *GigsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.gigs == nil {
		writeInternal(w, "GIGS_SERVICE_UNAVAILABLE", "gigs service is unavailable")
		return
	}

	query, err := parseGigListQuery(r.URL.Query())
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.validate.Struct(query); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", describeValidation(err))
		return
	}

	result, err := h.gigs.List(r.Context(), authsvc.UserIDFromContext(r.Context()), criteriaFromQuery(query), query.Page)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load gigs")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.GigListResponse{
		Items:            result.Items,
		Page:             result.Page.Page,
		PageSize:         result.PageSize,
		TotalItems:       result.TotalItems,
		TotalPages:       result.TotalPages,
		HasActiveFilters: result.HasActiveFilters,
	})
}

func (h *GigsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.gigs == nil {
		writeInternal(w, "GIGS_SERVICE_UNAVAILABLE", "gigs service is unavailable")
		return
	}

	gig, err := h.gigs.Get(r.Context(), authsvc.UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, gigsvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid gig id")
		case errors.Is(err, gigsvc.ErrNotFound):
			writeNotFound(w, "GIG_NOT_FOUND", "gig not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to load gig")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, gig)
}

func (h *GigsHandler) Saved(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.saved == nil {
		writeInternal(w, "SAVED_SERVICE_UNAVAILABLE", "saved gigs service is unavailable")
		return
	}

	items, err := h.saved.List(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, savedsvc.ErrUnauthorized) {
			writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to load saved gigs")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SavedGigsResponse{Items: items})
}

func (h *GigsHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.saved == nil {
		writeInternal(w, "SAVED_SERVICE_UNAVAILABLE", "saved gigs service is unavailable")
		return
	}

	gigID := chi.URLParam(r, "id")
	isSaved, err := h.saved.Toggle(r.Context(), identity.UserID, gigID)
	if err != nil {
		if tooFast, ok := savedsvc.IsTooFast(err); ok {
			httperrors.WriteRateLimited(w, "too many save actions", tooFast.RetryAfter())
			return
		}
		switch {
		case errors.Is(err, savedsvc.ErrUnauthorized):
			writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		case errors.Is(err, savedsvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid gig id")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to update saved gig")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ToggleSaveResponse{
		GigID:   gigID,
		IsSaved: isSaved,
		At:      h.now().UTC(),
	})
}

// parseGigListQuery reads the list filters. List values accept both
// repeated keys and comma separated values.
func parseGigListQuery(values url.Values) (dto.GigListQuery, error) {
	q := dto.GigListQuery{
		Search:          strings.TrimSpace(values.Get("q")),
		CompType:        strings.ToUpper(strings.TrimSpace(values.Get("comp_type"))),
		Purpose:         strings.ToUpper(strings.TrimSpace(values.Get("purpose"))),
		UsageRights:     strings.ToUpper(strings.TrimSpace(values.Get("usage_rights"))),
		Location:        strings.TrimSpace(values.Get("location")),
		StartDate:       strings.TrimSpace(values.Get("start_date")),
		EndDate:         strings.TrimSpace(values.Get("end_date")),
		Palette:         listParam(values, "palette"),
		StyleTags:       listParam(values, "style_tags"),
		VibeTags:        listParam(values, "vibe_tags"),
		RoleTypes:       listParam(values, "role_types"),
		Specializations: listParam(values, "specializations"),
		Page:            parseIntOrDefault(values.Get("page"), 1),
	}

	var err error
	if q.MaxApplicants, err = optionalInt(values, "max_applicants"); err != nil {
		return dto.GigListQuery{}, err
	}
	if q.MinExperience, err = optionalInt(values, "min_experience"); err != nil {
		return dto.GigListQuery{}, err
	}
	if q.MaxExperience, err = optionalInt(values, "max_experience"); err != nil {
		return dto.GigListQuery{}, err
	}
	if q.MinRate, err = optionalFloat(values, "min_rate"); err != nil {
		return dto.GigListQuery{}, err
	}
	if q.MaxRate, err = optionalFloat(values, "max_rate"); err != nil {
		return dto.GigListQuery{}, err
	}
	if q.TravelOnly, err = optionalBool(values, "travel_only"); err != nil {
		return dto.GigListQuery{}, err
	}
	if q.StudioOnly, err = optionalBool(values, "studio_only"); err != nil {
		return dto.GigListQuery{}, err
	}
	return q, nil
}

func criteriaFromQuery(q dto.GigListQuery) gigsvc.Criteria {
	state := gigsvc.NewFilterState()
	state.SetSearchTerm(q.Search)
	if q.CompType != "" {
		state.SetCompType(q.CompType)
	}
	if q.Purpose != "" {
		state.SetPurpose(q.Purpose)
	}
	if q.UsageRights != "" {
		state.SetUsageRights(q.UsageRights)
	}
	state.SetLocation(q.Location)
	state.SetStartDate(q.StartDate)
	state.SetEndDate(q.EndDate)
	state.SetMaxApplicants(q.MaxApplicants)
	state.SetPalette(q.Palette)
	state.SetStyleTags(q.StyleTags)
	state.SetVibeTags(q.VibeTags)
	state.SetRoleTypes(q.RoleTypes)
	state.SetSpecializations(q.Specializations)
	state.SetMinExperience(q.MinExperience)
	state.SetMaxExperience(q.MaxExperience)
	state.SetMinRate(q.MinRate)
	state.SetMaxRate(q.MaxRate)
	state.SetTravelOnly(q.TravelOnly)
	state.SetStudioOnly(q.StudioOnly)
	return state.Criteria()
}

func listParam(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func optionalInt(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

func optionalFloat(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}

func optionalBool(values url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}

func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "invalid request"
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed validation: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
