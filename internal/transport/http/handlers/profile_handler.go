package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authsvc "github.com/presetapp/gigboard/internal/services/auth"
	profilesvc "github.com/presetapp/gigboard/internal/services/profiles"
	"github.com/presetapp/gigboard/internal/transport/http/dto"
	httperrors "github.com/presetapp/gigboard/internal/transport/http/errors"
)

type ProfileHandler struct {
	service *profilesvc.Service
}

func NewProfileHandler(service *profilesvc.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	profile, err := h.service.Get(r.Context(), identity.UserID)
	if err != nil {
		writeProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ProfileResponse{
		Profile:    profile,
		Completion: profilesvc.ComputeCompletion(profile),
	})
}

func (h *ProfileHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	section, err := profilesvc.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		writeNotFound(w, "SECTION_NOT_FOUND", "unknown profile section")
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	profile, err := h.service.UpdateSection(r.Context(), identity.UserID, section, body)
	if err != nil {
		writeProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ProfileResponse{
		Profile:    profile,
		Completion: profilesvc.ComputeCompletion(profile),
	})
}

func writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profilesvc.ErrUnauthorized):
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, profilesvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", validationMessage(err))
	case errors.Is(err, profilesvc.ErrNotFound):
		writeNotFound(w, "PROFILE_NOT_FOUND", "profile not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to process profile")
	}
}

// validationMessage drops the trailing sentinel text from a wrapped
// validation error.
func validationMessage(err error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+profilesvc.ErrValidation.Error())
	if msg == "" {
		return "invalid profile data"
	}
	return msg
}
