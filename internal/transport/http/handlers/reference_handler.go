package handlers

import (
	"net/http"

	gigsvc "github.com/presetapp/gigboard/internal/services/gigs"
	"github.com/presetapp/gigboard/internal/transport/http/dto"
	httperrors "github.com/presetapp/gigboard/internal/transport/http/errors"
)

// ReferenceHandler serves the lookup lists the gig filters are built from.
type ReferenceHandler struct {
	service *gigsvc.Service
}

func NewReferenceHandler(service *gigsvc.Service) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) Palettes(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	httperrors.Write(w, http.StatusOK, dto.PalettesResponse{Colors: h.service.Palettes(r.Context())})
}

func (h *ReferenceHandler) Tags(w http.ResponseWriter, _ *http.Request) {
	if !h.ready(w) {
		return
	}
	tags := h.service.Tags()
	httperrors.Write(w, http.StatusOK, dto.TagsResponse{Style: tags.Style, Vibe: tags.Vibe})
}

func (h *ReferenceHandler) RoleTypes(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	httperrors.Write(w, http.StatusOK, dto.RoleTypesResponse{Items: toOptions(h.service.RoleTypes(r.Context()))})
}

func (h *ReferenceHandler) Specializations(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	httperrors.Write(w, http.StatusOK, dto.SpecializationsResponse{Items: h.service.Specializations(r.Context())})
}

func (h *ReferenceHandler) Labels(w http.ResponseWriter, _ *http.Request) {
	if !h.ready(w) {
		return
	}
	labels := h.service.Labels()
	httperrors.Write(w, http.StatusOK, dto.LabelsResponse{
		CompTypes:   toOptions(labels.CompTypes),
		Purposes:    toOptions(labels.Purposes),
		UsageRights: toOptions(labels.UsageRights),
		LookingFor:  toOptions(labels.LookingFor),
	})
}

func (h *ReferenceHandler) ready(w http.ResponseWriter) bool {
	if h.service == nil {
		writeInternal(w, "GIGS_SERVICE_UNAVAILABLE", "gigs service is unavailable")
		return false
	}
	return true
}

func toOptions(in []gigsvc.Option) []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(in))
	for _, o := range in {
		out = append(out, dto.OptionResponse{Code: o.Code, Label: o.Label, Icon: o.Icon})
	}
	return out
}
