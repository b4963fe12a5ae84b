package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferenceRepo struct {
	pool *pgxpool.Pool
}

func NewReferenceRepo(pool *pgxpool.Pool) *ReferenceRepo {
	return &ReferenceRepo{pool: pool}
}

// PopularPalettes ranks moodboard palette colors by how often they appear
// across published gigs.
func (r *ReferenceRepo) PopularPalettes(ctx context.Context, limit int) ([]string, error) {
	if r.pool == nil {
		return nil, errors.New("postgres pool is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	return r.queryStrings(ctx, "popular palettes", `
SELECT UPPER(c.color)
FROM moodboards m
JOIN gigs g ON g.id = m.gig_id
CROSS JOIN LATERAL unnest(m.palette) AS c(color)
WHERE g.status = $1 AND c.color LIKE '#%'
GROUP BY UPPER(c.color)
ORDER BY COUNT(*) DESC, UPPER(c.color)
LIMIT $2
`, GigStatusPublished, limit)
}

func (r *ReferenceRepo) RoleTypes(ctx context.Context) ([]string, error) {
	if r.pool == nil {
		return nil, errors.New("postgres pool is nil")
	}

	return r.queryStrings(ctx, "role types", `
SELECT DISTINCT t.role
FROM gigs g
CROSS JOIN LATERAL unnest(g.looking_for_types::text[]) AS t(role)
WHERE g.status = $1
ORDER BY t.role
`, GigStatusPublished)
}

func (r *ReferenceRepo) Specializations(ctx context.Context) ([]string, error) {
	if r.pool == nil {
		return nil, errors.New("postgres pool is nil")
	}

	return r.queryStrings(ctx, "specializations", `
SELECT name
FROM specializations
ORDER BY name
`)
}

func (r *ReferenceRepo) queryStrings(ctx context.Context, what, query string, args ...any) ([]string, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", what, err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return out, nil
}
