package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
)

// SQLiteProfileRepo stores the flat profile map one row per path.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, businessID string) (domain.ProfileMap, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT path, value FROM profile_entries WHERE business_id = ?`, businessID)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	defer rows.Close()

	profile := domain.ProfileMap{}
	for rows.Next() {
		var path, raw string
		if err := rows.Scan(&path, &raw); err != nil {
			return nil, fmt.Errorf("scanning profile entry: %w", err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("profile entry %q: %w", path, err)
		}
		profile[path] = value
	}
	return profile, rows.Err()
}

func (r *SQLiteProfileRepo) UpsertEntry(ctx context.Context, businessID, path string, value any) error {
	if path == "" {
		return fmt.Errorf("upserting profile entry: %w", domain.ErrEmptyStorePath)
	}
	raw, err := encodeValue(value)
	if err != nil {
		return err
	}
	query := `INSERT INTO profile_entries (business_id, path, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(business_id, path) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, businessID, path, raw, nowUTC()); err != nil {
		return fmt.Errorf("upserting profile entry %q: %w", path, err)
	}
	return nil
}

func (r *SQLiteProfileRepo) DeleteEntry(ctx context.Context, businessID, path string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM profile_entries WHERE business_id = ? AND path = ?`, businessID, path); err != nil {
		return fmt.Errorf("deleting profile entry %q: %w", path, err)
	}
	return nil
}
