package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/presetapp/gigboard/internal/domain/model"
)

var ErrGigNotFound = errors.New("gig not found")

const GigStatusPublished = "PUBLISHED"

type GigRepo struct {
	pool *pgxpool.Pool
}

func NewGigRepo(pool *pgxpool.Pool) *GigRepo {
	return &GigRepo{pool: pool}
}

// GigRecord is a gig row joined with its owner profile and first moodboard.
// Owner and Moodboard are nil when the joined rows are missing.
type GigRecord struct {
	ID                  string
	Title               string
	Description         string
	Purpose             string
	CompType            string
	UsageRights         string
	LocationText        string
	LocationData        string
	StartTime           time.Time
	EndTime             time.Time
	ApplicationDeadline time.Time
	CreatedAt           time.Time
	MaxApplicants       int
	CurrentApplicants   int
	Status              string
	OwnerUserID         string
	LookingForTypes     []string
	StyleTags           []string
	VibeTags            []string
	Owner               *model.OwnerProfile
	Moodboard           *model.Moodboard
}

const gigSelect = `
SELECT
	g.id::text,
	g.title,
	COALESCE(g.description, ''),
	COALESCE(g.purpose::text, ''),
	g.comp_type::text,
	COALESCE(g.usage_rights, ''),
	COALESCE(g.location_text, ''),
	COALESCE(g.location_data::text, ''),
	g.start_time,
	g.end_time,
	g.application_deadline,
	g.created_at,
	COALESCE(g.max_applicants, 0),
	(SELECT COUNT(*) FROM applications a WHERE a.gig_id = g.id),
	g.status::text,
	g.owner_user_id::text,
	COALESCE(g.looking_for_types::text[], '{}'),
	COALESCE(g.style_tags, '{}'),
	COALESCE(g.vibe_tags, '{}'),
	p.id IS NOT NULL,
	COALESCE(p.display_name, ''),
	COALESCE(p.avatar_url, ''),
	COALESCE(p.handle, ''),
	COALESCE(p.verified_id, FALSE),
	p.years_experience,
	COALESCE(p.specializations, '{}'),
	p.hourly_rate_min::float8,
	p.hourly_rate_max::float8,
	p.available_for_travel,
	p.travel_radius_km,
	p.has_studio,
	COALESCE(p.studio_name, ''),
	COALESCE(p.instagram_handle, ''),
	COALESCE(p.tiktok_handle, ''),
	COALESCE(p.website_url, ''),
	COALESCE(p.portfolio_url, ''),
	mb.doc
FROM gigs g
LEFT JOIN users_profile p ON p.id = g.owner_user_id
LEFT JOIN LATERAL (
	SELECT json_build_object(
		'id', m.id::text,
		'palette', COALESCE(m.palette, '{}'),
		'featured_image_id', COALESCE(m.featured_image_id::text, ''),
		'items', COALESCE((
			SELECT json_agg(json_build_object(
				'id', i.id::text,
				'position', i.position,
				'url', COALESCE(i.url, ''),
				'thumbnail_url', COALESCE(i.thumbnail_url, ''),
				'palette', COALESCE(i.palette, '{}')
			) ORDER BY i.position)
			FROM moodboard_items i
			WHERE i.moodboard_id = m.id
		), '[]'::json)
	) AS doc
	FROM moodboards m
	WHERE m.gig_id = g.id
	ORDER BY m.created_at ASC
	LIMIT 1
) mb ON TRUE
`

// ListPublished returns published gigs whose application deadline has not
// passed, newest first.
func (r *GigRepo) ListPublished(ctx context.Context, now time.Time) ([]GigRecord, error) {
	if r.pool == nil {
		return []GigRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, gigSelect+`
WHERE g.status = $1 AND g.application_deadline >= $2
ORDER BY g.created_at DESC
`, GigStatusPublished, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("list published gigs: %w", err)
	}
	defer rows.Close()

	return collectGigRecords(rows)
}

func (r *GigRepo) GetByID(ctx context.Context, gigID string) (GigRecord, error) {
	if r.pool == nil {
		return GigRecord{}, ErrGigNotFound
	}

	rows, err := r.pool.Query(ctx, gigSelect+`
WHERE g.id = $1::uuid
`, gigID)
	if err != nil {
		return GigRecord{}, fmt.Errorf("get gig: %w", err)
	}
	defer rows.Close()

	records, err := collectGigRecords(rows)
	if err != nil {
		return GigRecord{}, err
	}
	if len(records) == 0 {
		return GigRecord{}, ErrGigNotFound
	}
	return records[0], nil
}

// ListByIDs preserves no particular order; callers reorder as needed.
func (r *GigRepo) ListByIDs(ctx context.Context, gigIDs []string) ([]GigRecord, error) {
	if r.pool == nil || len(gigIDs) == 0 {
		return []GigRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, gigSelect+`
WHERE g.id = ANY($1::uuid[])
`, gigIDs)
	if err != nil {
		return nil, fmt.Errorf("list gigs by id: %w", err)
	}
	defer rows.Close()

	return collectGigRecords(rows)
}

func collectGigRecords(rows pgx.Rows) ([]GigRecord, error) {
	out := make([]GigRecord, 0)
	for rows.Next() {
		record, err := scanGigRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gigs: %w", err)
	}
	return out, nil
}

func scanGigRecord(rows pgx.Rows) (GigRecord, error) {
	var (
		record       GigRecord
		hasOwner     bool
		owner        model.OwnerProfile
		moodboardDoc []byte
	)

	if err := rows.Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.Purpose,
		&record.CompType,
		&record.UsageRights,
		&record.LocationText,
		&record.LocationData,
		&record.StartTime,
		&record.EndTime,
		&record.ApplicationDeadline,
		&record.CreatedAt,
		&record.MaxApplicants,
		&record.CurrentApplicants,
		&record.Status,
		&record.OwnerUserID,
		&record.LookingForTypes,
		&record.StyleTags,
		&record.VibeTags,
		&hasOwner,
		&owner.DisplayName,
		&owner.AvatarURL,
		&owner.Handle,
		&owner.VerifiedID,
		&owner.YearsExperience,
		&owner.Specializations,
		&owner.HourlyRateMin,
		&owner.HourlyRateMax,
		&owner.AvailableForTravel,
		&owner.TravelRadiusKM,
		&owner.HasStudio,
		&owner.StudioName,
		&owner.InstagramHandle,
		&owner.TikTokHandle,
		&owner.WebsiteURL,
		&owner.PortfolioURL,
		&moodboardDoc,
	); err != nil {
		return GigRecord{}, fmt.Errorf("scan gig: %w", err)
	}

	if hasOwner {
		record.Owner = &owner
	}
	if len(moodboardDoc) > 0 {
		var mb model.Moodboard
		if err := json.Unmarshal(moodboardDoc, &mb); err != nil {
			return GigRecord{}, fmt.Errorf("decode gig moodboard: %w", err)
		}
		record.Moodboard = &mb
	}

	return record, nil
}
