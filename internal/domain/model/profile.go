package model

import "time"

type UserProfile struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Bio         string `json:"bio,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`

	GenderIdentity     string `json:"gender_identity,omitempty"`
	Ethnicity          string `json:"ethnicity,omitempty"`
	Nationality        string `json:"nationality,omitempty"`
	BodyType           string `json:"body_type,omitempty"`
	ExperienceLevel    string `json:"experience_level,omitempty"`
	AvailabilityStatus string `json:"availability_status,omitempty"`

	YearsExperience       *int     `json:"years_experience,omitempty"`
	Specializations       []string `json:"specializations"`
	ProfessionalSkills    []string `json:"professional_skills"`
	Languages             []string `json:"languages"`
	HourlyRateMin         *float64 `json:"hourly_rate_min,omitempty"`
	HourlyRateMax         *float64 `json:"hourly_rate_max,omitempty"`
	AvailableForTravel    bool     `json:"available_for_travel"`
	TravelRadiusKM        *int     `json:"travel_radius_km,omitempty"`
	TypicalTurnaroundDays *int     `json:"typical_turnaround_days,omitempty"`
	InstagramHandle       string   `json:"instagram_handle,omitempty"`
	TikTokHandle          string   `json:"tiktok_handle,omitempty"`
	WebsiteURL            string   `json:"website_url,omitempty"`
	PortfolioURL          string   `json:"portfolio_url,omitempty"`
	StyleTags             []string `json:"style_tags"`
	VibeTags              []string `json:"vibe_tags"`

	EquipmentList   []string `json:"equipment_list"`
	EditingSoftware []string `json:"editing_software"`
	HasStudio       bool     `json:"has_studio"`
	StudioName      string   `json:"studio_name,omitempty"`
	StudioAddress   string   `json:"studio_address,omitempty"`

	HeightCM         *int     `json:"height_cm,omitempty"`
	Measurements     string   `json:"measurements,omitempty"`
	EyeColor         string   `json:"eye_color,omitempty"`
	HairColor        string   `json:"hair_color,omitempty"`
	ShoeSize         string   `json:"shoe_size,omitempty"`
	ClothingSizes    *string  `json:"clothing_sizes"`
	Tattoos          bool     `json:"tattoos"`
	Piercings        bool     `json:"piercings"`
	TalentCategories []string `json:"talent_categories"`
	PerformanceRoles []string `json:"performance_roles"`

	ShowLocation              bool `json:"show_location"`
	ShowAge                   bool `json:"show_age"`
	ShowPhysicalAttributes    bool `json:"show_physical_attributes"`
	ShowPhone                 bool `json:"show_phone"`
	ShowSocialLinks           bool `json:"show_social_links"`
	ShowWebsite               bool `json:"show_website"`
	ShowExperience            bool `json:"show_experience"`
	ShowRates                 bool `json:"show_rates"`
	IncludeInSearch           bool `json:"include_in_search"`
	AllowDirectMessages       bool `json:"allow_direct_messages"`
	AllowCollaborationInvites bool `json:"allow_collaboration_invites"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
