package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/presetapp/gigboard/internal/domain/model"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileSelect = `
SELECT
	id::text,
	user_id::text,
	COALESCE(display_name, ''),
	COALESCE(handle, ''),
	COALESCE(avatar_url, ''),
	COALESCE(bio, ''),
	COALESCE(city, ''),
	COALESCE(country, ''),
	COALESCE(phone_number, ''),
	COALESCE(date_of_birth::text, ''),
	COALESCE(gender_identity, ''),
	COALESCE(ethnicity, ''),
	COALESCE(nationality, ''),
	COALESCE(body_type, ''),
	COALESCE(experience_level, ''),
	COALESCE(availability_status, ''),
	years_experience,
	specializations,
	professional_skills,
	languages,
	hourly_rate_min::float8,
	hourly_rate_max::float8,
	COALESCE(available_for_travel, FALSE),
	travel_radius_km,
	typical_turnaround_days,
	COALESCE(instagram_handle, ''),
	COALESCE(tiktok_handle, ''),
	COALESCE(website_url, ''),
	COALESCE(portfolio_url, ''),
	style_tags,
	vibe_tags,
	equipment_list,
	editing_software,
	COALESCE(has_studio, FALSE),
	COALESCE(studio_name, ''),
	COALESCE(studio_address, ''),
	height_cm,
	COALESCE(measurements, ''),
	COALESCE(eye_color, ''),
	COALESCE(hair_color, ''),
	COALESCE(shoe_size, ''),
	clothing_sizes,
	COALESCE(tattoos, FALSE),
	COALESCE(piercings, FALSE),
	talent_categories,
	performance_roles,
	COALESCE(show_location, TRUE),
	COALESCE(show_age, TRUE),
	COALESCE(show_physical_attributes, TRUE),
	COALESCE(show_phone, FALSE),
	COALESCE(show_social_links, TRUE),
	COALESCE(show_website, TRUE),
	COALESCE(show_experience, TRUE),
	COALESCE(show_rates, FALSE),
	COALESCE(include_in_search, TRUE),
	COALESCE(allow_direct_messages, TRUE),
	COALESCE(allow_collaboration_invites, TRUE),
	created_at,
	updated_at
FROM users_profile
`

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (model.UserProfile, error) {
	if r.pool == nil {
		return model.UserProfile{}, ErrProfileNotFound
	}

	row := r.pool.QueryRow(ctx, profileSelect+`WHERE user_id = $1::uuid`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserProfile{}, ErrProfileNotFound
		}
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpdateColumns writes the given column values for one profile. Column
// names must come from a fixed allow-list owned by the caller; they are
// still quoted as identifiers.
func (r *ProfileRepo) UpdateColumns(ctx context.Context, userID string, columns map[string]any) error {
	if r.pool == nil {
		return errors.New("postgres pool is nil")
	}
	if len(columns) == 0 {
		return nil
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names)+1)
	args := make([]any, 0, len(names)+1)
	args = append(args, userID)
	for i, name := range names {
		sets = append(sets, fmt.Sprintf("%s = $%d", pgx.Identifier{name}.Sanitize(), i+2))
		args = append(args, columns[name])
	}
	sets = append(sets, "updated_at = NOW()")

	query := "UPDATE users_profile SET " + strings.Join(sets, ", ") + " WHERE user_id = $1::uuid"
	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (model.UserProfile, error) {
	var p model.UserProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.DisplayName,
		&p.Handle,
		&p.AvatarURL,
		&p.Bio,
		&p.City,
		&p.Country,
		&p.PhoneNumber,
		&p.DateOfBirth,
		&p.GenderIdentity,
		&p.Ethnicity,
		&p.Nationality,
		&p.BodyType,
		&p.ExperienceLevel,
		&p.AvailabilityStatus,
		&p.YearsExperience,
		&p.Specializations,
		&p.ProfessionalSkills,
		&p.Languages,
		&p.HourlyRateMin,
		&p.HourlyRateMax,
		&p.AvailableForTravel,
		&p.TravelRadiusKM,
		&p.TypicalTurnaroundDays,
		&p.InstagramHandle,
		&p.TikTokHandle,
		&p.WebsiteURL,
		&p.PortfolioURL,
		&p.StyleTags,
		&p.VibeTags,
		&p.EquipmentList,
		&p.EditingSoftware,
		&p.HasStudio,
		&p.StudioName,
		&p.StudioAddress,
		&p.HeightCM,
		&p.Measurements,
		&p.EyeColor,
		&p.HairColor,
		&p.ShoeSize,
		&p.ClothingSizes,
		&p.Tattoos,
		&p.Piercings,
		&p.TalentCategories,
		&p.PerformanceRoles,
		&p.ShowLocation,
		&p.ShowAge,
		&p.ShowPhysicalAttributes,
		&p.ShowPhone,
		&p.ShowSocialLinks,
		&p.ShowWebsite,
		&p.ShowExperience,
		&p.ShowRates,
		&p.IncludeInSearch,
		&p.AllowDirectMessages,
		&p.AllowCollaborationInvites,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
