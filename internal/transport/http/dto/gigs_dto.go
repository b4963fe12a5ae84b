package dto

import (
	"time"

	"github.com/presetapp/gigboard/internal/domain/model"
)

// GigListQuery mirrors the query string of GET /v1/gigs.
type GigListQuery struct {
	Search          string   `validate:"max=200"`
	CompType        string   `validate:"omitempty,oneof=ALL TFP PAID EXPENSES OTHER"`
	Purpose         string   `validate:"omitempty,max=40"`
	UsageRights     string   `validate:"omitempty,max=60"`
	Location        string   `validate:"max=120"`
	StartDate       string   `validate:"omitempty,datetime=2006-01-02"`
	EndDate         string   `validate:"omitempty,datetime=2006-01-02"`
	MaxApplicants   *int     `validate:"omitempty,min=0,max=10000"`
	Palette         []string `validate:"max=10,dive,min=3,max=7"`
	StyleTags       []string `validate:"max=16,dive,min=1,max=40"`
	VibeTags        []string `validate:"max=18,dive,min=1,max=40"`
	RoleTypes       []string `validate:"max=35,dive,min=1,max=60"`
	Specializations []string `validate:"max=24,dive,min=1,max=80"`
	MinExperience   *int     `validate:"omitempty,min=0,max=80"`
	MaxExperience   *int     `validate:"omitempty,min=0,max=80"`
	MinRate         *float64 `validate:"omitempty,gte=0"`
	MaxRate         *float64 `validate:"omitempty,gte=0"`
	TravelOnly      bool
	StudioOnly      bool
	Page            int
}

type GigListResponse struct {
	Items            []model.Gig `json:"items"`
	Page             int         `json:"page"`
	PageSize         int         `json:"page_size"`
	TotalItems       int         `json:"total_items"`
	TotalPages       int         `json:"total_pages"`
	HasActiveFilters bool        `json:"has_active_filters"`
}

type SavedGigsResponse struct {
	Items []model.SavedGig `json:"items"`
}

type ToggleSaveResponse struct {
	GigID   string    `json:"gig_id"`
	IsSaved bool      `json:"is_saved"`
	At      time.Time `json:"at"`
}
