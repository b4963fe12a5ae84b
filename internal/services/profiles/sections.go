package profiles

import (
	"fmt"
	"reflect"
	"strings"
)

type Section string

const (
	SectionPersonal     Section = "personal"
	SectionDemographics Section = "demographics"
	SectionProfessional Section = "professional"
	SectionEquipment    Section = "equipment"
	SectionTalent       Section = "talent"
	SectionPrivacy      Section = "privacy"
)

func Sections() []Section {
	return []Section{
		SectionPersonal,
		SectionDemographics,
		SectionProfessional,
		SectionEquipment,
		SectionTalent,
		SectionPrivacy,
	}
}

func ParseSection(raw string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Sections() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown profile section %q: %w", raw, ErrValidation)
}

// Section patches. A nil field is left untouched; an empty slice clears the
// column. Every field carries the column it writes in its db tag.

type personalPatch struct {
	DisplayName *string `json:"display_name" db:"display_name" validate:"omitempty,min=1,max=80"`
	Handle      *string `json:"handle" db:"handle" validate:"omitempty,min=3,max=30"`
	AvatarURL   *string `json:"avatar_url" db:"avatar_url" validate:"omitempty,max=500,url|eq="`
	Bio         *string `json:"bio" db:"bio" validate:"omitempty,max=1000"`
	City        *string `json:"city" db:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" db:"country" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" db:"phone_number" validate:"omitempty,max=30"`
	DateOfBirth *string `json:"date_of_birth" db:"date_of_birth" validate:"omitempty,datetime=2006-01-02|eq="`
}

type demographicsPatch struct {
	GenderIdentity     *string `json:"gender_identity" db:"gender_identity" validate:"omitempty,oneof=male female non_binary genderfluid agender transgender_male transgender_female prefer_not_to_say other|eq="`
	Ethnicity          *string `json:"ethnicity" db:"ethnicity" validate:"omitempty,oneof=african_american asian caucasian hispanic_latino middle_eastern native_american pacific_islander mixed_race other prefer_not_to_say|eq="`
	Nationality        *string `json:"nationality" db:"nationality" validate:"omitempty,max=60"`
	BodyType           *string `json:"body_type" db:"body_type" validate:"omitempty,oneof=petite slim athletic average curvy plus_size muscular tall short other|eq="`
	ExperienceLevel    *string `json:"experience_level" db:"experience_level" validate:"omitempty,oneof=beginner intermediate advanced professional expert|eq="`
	AvailabilityStatus *string `json:"availability_status" db:"availability_status" validate:"omitempty,oneof=available busy unavailable limited weekends_only weekdays_only|eq="`
}

type professionalPatch struct {
	YearsExperience       *int     `json:"years_experience" db:"years_experience" validate:"omitempty,min=0,max=80"`
	Specializations       []string `json:"specializations" db:"specializations" validate:"omitempty,max=20,dive,min=1,max=80"`
	ProfessionalSkills    []string `json:"professional_skills" db:"professional_skills" validate:"omitempty,max=30,dive,min=1,max=80"`
	Languages             []string `json:"languages" db:"languages" validate:"omitempty,max=20,dive,min=1,max=40"`
	HourlyRateMin         *float64 `json:"hourly_rate_min" db:"hourly_rate_min" validate:"omitempty,gte=0,lte=100000"`
	HourlyRateMax         *float64 `json:"hourly_rate_max" db:"hourly_rate_max" validate:"omitempty,gte=0,lte=100000"`
	AvailableForTravel    *bool    `json:"available_for_travel" db:"available_for_travel"`
	TravelRadiusKM        *int     `json:"travel_radius_km" db:"travel_radius_km" validate:"omitempty,min=0,max=20000"`
	TypicalTurnaroundDays *int     `json:"typical_turnaround_days" db:"typical_turnaround_days" validate:"omitempty,min=0,max=365"`
	InstagramHandle       *string  `json:"instagram_handle" db:"instagram_handle" validate:"omitempty,max=60"`
	TikTokHandle          *string  `json:"tiktok_handle" db:"tiktok_handle" validate:"omitempty,max=60"`
	WebsiteURL            *string  `json:"website_url" db:"website_url" validate:"omitempty,max=500,url|eq="`
	PortfolioURL          *string  `json:"portfolio_url" db:"portfolio_url" validate:"omitempty,max=500,url|eq="`
	StyleTags             []string `json:"style_tags" db:"style_tags" validate:"omitempty,max=16,dive,style_tag"`
	VibeTags              []string `json:"vibe_tags" db:"vibe_tags" validate:"omitempty,max=18,dive,vibe_tag"`
}

type equipmentPatch struct {
	EquipmentList   []string `json:"equipment_list" db:"equipment_list" validate:"omitempty,max=50,dive,min=1,max=100"`
	EditingSoftware []string `json:"editing_software" db:"editing_software" validate:"omitempty,max=30,dive,min=1,max=60"`
	HasStudio       *bool    `json:"has_studio" db:"has_studio"`
	StudioName      *string  `json:"studio_name" db:"studio_name" validate:"omitempty,max=100"`
	StudioAddress   *string  `json:"studio_address" db:"studio_address" validate:"omitempty,max=200"`
}

type talentPatch struct {
	HeightCM         *int     `json:"height_cm" db:"height_cm" validate:"omitempty,min=50,max=260"`
	Measurements     *string  `json:"measurements" db:"measurements" validate:"omitempty,max=100"`
	EyeColor         *string  `json:"eye_color" db:"eye_color" validate:"omitempty,max=30"`
	HairColor        *string  `json:"hair_color" db:"hair_color" validate:"omitempty,max=30"`
	ShoeSize         *string  `json:"shoe_size" db:"shoe_size" validate:"omitempty,max=10"`
	ClothingSizes    *string  `json:"clothing_sizes" db:"clothing_sizes" validate:"omitempty,max=100"`
	Tattoos          *bool    `json:"tattoos" db:"tattoos"`
	Piercings        *bool    `json:"piercings" db:"piercings"`
	TalentCategories []string `json:"talent_categories" db:"talent_categories" validate:"omitempty,max=20,dive,min=1,max=60"`
	PerformanceRoles []string `json:"performance_roles" db:"performance_roles" validate:"omitempty,max=20,dive,min=1,max=60"`
}

type privacyPatch struct {
	ShowLocation              *bool `json:"show_location" db:"show_location"`
	ShowAge                   *bool `json:"show_age" db:"show_age"`
	ShowPhysicalAttributes    *bool `json:"show_physical_attributes" db:"show_physical_attributes"`
	ShowPhone                 *bool `json:"show_phone" db:"show_phone"`
	ShowSocialLinks           *bool `json:"show_social_links" db:"show_social_links"`
	ShowWebsite               *bool `json:"show_website" db:"show_website"`
	ShowExperience            *bool `json:"show_experience" db:"show_experience"`
	ShowRates                 *bool `json:"show_rates" db:"show_rates"`
	IncludeInSearch           *bool `json:"include_in_search" db:"include_in_search"`
	AllowDirectMessages       *bool `json:"allow_direct_messages" db:"allow_direct_messages"`
	AllowCollaborationInvites *bool `json:"allow_collaboration_invites" db:"allow_collaboration_invites"`
}

func newPatch(section Section) any {
	switch section {
	case SectionPersonal:
		return &personalPatch{}
	case SectionDemographics:
		return &demographicsPatch{}
	case SectionProfessional:
		return &professionalPatch{}
	case SectionEquipment:
		return &equipmentPatch{}
	case SectionTalent:
		return &talentPatch{}
	case SectionPrivacy:
		return &privacyPatch{}
	default:
		return nil
	}
}

// SectionFields lists the json field names a section owns.
func SectionFields(section Section) []string {
	patch := newPatch(section)
	if patch == nil {
		return nil
	}
	t := reflect.TypeOf(patch).Elem()
	out := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		out = append(out, t.Field(i).Tag.Get("json"))
	}
	return out
}

// columnsOf collects the set fields of a patch keyed by column. Empty
// strings are written as NULL.
func columnsOf(patch any) map[string]any {
	v := reflect.ValueOf(patch).Elem()
	t := v.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		column := t.Field(i).Tag.Get("db")
		switch field.Kind() {
		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			value := field.Elem().Interface()
			if s, ok := value.(string); ok {
				s = strings.TrimSpace(s)
				if s == "" {
					out[column] = nil
					continue
				}
				value = s
			}
			out[column] = value
		case reflect.Slice:
			if field.IsNil() {
				continue
			}
			out[column] = field.Interface()
		}
	}
	return out
}
