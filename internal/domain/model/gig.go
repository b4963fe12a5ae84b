package model

import "time"

type Gig struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Purpose             string        `json:"purpose,omitempty"`
	CompType            string        `json:"comp_type"`
	UsageRights         string        `json:"usage_rights,omitempty"`
	LocationText        string        `json:"location_text"`
	LocationData        string        `json:"location_data,omitempty"`
	StartTime           time.Time     `json:"start_time"`
	EndTime             time.Time     `json:"end_time"`
	ApplicationDeadline time.Time     `json:"application_deadline"`
	CreatedAt           time.Time     `json:"created_at"`
	MaxApplicants       int           `json:"max_applicants"`
	CurrentApplicants   int           `json:"current_applicants"`
	Status              string        `json:"status"`
	OwnerUserID         string        `json:"owner_user_id"`
	LookingForTypes     []string      `json:"looking_for_types"`
	MoodboardURLs       []string      `json:"moodboard_urls"`
	PaletteColors       []string      `json:"palette_colors"`
	StyleTags           []string      `json:"style_tags"`
	VibeTags            []string      `json:"vibe_tags"`
	City                string        `json:"city,omitempty"`
	Country             string        `json:"country,omitempty"`
	Owner               *OwnerProfile `json:"users_profile,omitempty"`
	Moodboard           *Moodboard    `json:"moodboard,omitempty"`
	IsSaved             bool          `json:"is_saved"`
}

// OwnerProfile is the subset of the creator profile joined onto each gig.
type OwnerProfile struct {
	DisplayName        string   `json:"display_name"`
	AvatarURL          string   `json:"avatar_url,omitempty"`
	Handle             string   `json:"handle"`
	VerifiedID         bool     `json:"verified_id"`
	YearsExperience    *int     `json:"years_experience,omitempty"`
	Specializations    []string `json:"specializations,omitempty"`
	HourlyRateMin      *float64 `json:"hourly_rate_min,omitempty"`
	HourlyRateMax      *float64 `json:"hourly_rate_max,omitempty"`
	AvailableForTravel *bool    `json:"available_for_travel,omitempty"`
	TravelRadiusKM     *int     `json:"travel_radius_km,omitempty"`
	HasStudio          *bool    `json:"has_studio,omitempty"`
	StudioName         string   `json:"studio_name,omitempty"`
	InstagramHandle    string   `json:"instagram_handle,omitempty"`
	TikTokHandle       string   `json:"tiktok_handle,omitempty"`
	WebsiteURL         string   `json:"website_url,omitempty"`
	PortfolioURL       string   `json:"portfolio_url,omitempty"`
}

type Moodboard struct {
	ID              string          `json:"id"`
	Palette         []string        `json:"palette,omitempty"`
	FeaturedImageID string          `json:"featured_image_id,omitempty"`
	Items           []MoodboardItem `json:"items,omitempty"`
}

type MoodboardItem struct {
	ID           string   `json:"id"`
	Position     int      `json:"position"`
	URL          string   `json:"url"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Palette      []string `json:"palette,omitempty"`
}

type SavedGig struct {
	Gig     Gig       `json:"gig"`
	SavedAt time.Time `json:"saved_at"`
}
