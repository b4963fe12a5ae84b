package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SavedGigRepo struct {
	pool *pgxpool.Pool
}

func NewSavedGigRepo(pool *pgxpool.Pool) *SavedGigRepo {
	return &SavedGigRepo{pool: pool}
}

type SavedGigRef struct {
	GigID   string
	SavedAt time.Time
}

func (r *SavedGigRepo) ListIDs(ctx context.Context, userID string) ([]string, error) {
	if r.pool == nil {
		return []string{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT gig_id::text
FROM saved_gigs
WHERE user_id = $1::uuid
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved gig ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan saved gig id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved gig ids: %w", err)
	}
	return ids, nil
}

func (r *SavedGigRepo) List(ctx context.Context, userID string) ([]SavedGigRef, error) {
	if r.pool == nil {
		return []SavedGigRef{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT gig_id::text, saved_at
FROM saved_gigs
WHERE user_id = $1::uuid
ORDER BY saved_at DESC, gig_id
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved gigs: %w", err)
	}
	defer rows.Close()

	out := make([]SavedGigRef, 0)
	for rows.Next() {
		var ref SavedGigRef
		if err := rows.Scan(&ref.GigID, &ref.SavedAt); err != nil {
			return nil, fmt.Errorf("scan saved gig: %w", err)
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved gigs: %w", err)
	}
	return out, nil
}

// Toggle removes the saved row when present and inserts it otherwise. It
// reports whether the gig is saved afterwards.
func (r *SavedGigRepo) Toggle(ctx context.Context, userID, gigID string) (bool, error) {
	if r.pool == nil {
		return false, errors.New("postgres pool is nil")
	}

	saved := false
	err := WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `
DELETE FROM saved_gigs
WHERE gig_id = $1::uuid AND user_id = $2::uuid
`, gigID, userID)
		if err != nil {
			return fmt.Errorf("delete saved gig: %w", err)
		}
		if result.RowsAffected() > 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO saved_gigs (
	gig_id,
	user_id,
	saved_at
) VALUES ($1::uuid, $2::uuid, NOW())
ON CONFLICT (gig_id, user_id) DO NOTHING
`, gigID, userID); err != nil {
			return fmt.Errorf("insert saved gig: %w", err)
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}
