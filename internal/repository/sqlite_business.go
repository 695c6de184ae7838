package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
)

// SQLiteBusinessRepo implements BusinessRepo using a SQLite database.
type SQLiteBusinessRepo struct {
	db db.DBTX
}

// NewSQLiteBusinessRepo creates a new SQLiteBusinessRepo.
func NewSQLiteBusinessRepo(conn db.DBTX) *SQLiteBusinessRepo {
	return &SQLiteBusinessRepo{db: conn}
}

func (r *SQLiteBusinessRepo) Create(ctx context.Context, b *domain.Business) error {
	query := `INSERT INTO businesses (id, name, category, preferred_mode, precision_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.Category,
		string(b.PreferredMode),
		b.PrecisionScore,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting business: %w", err)
	}
	return nil
}

func (r *SQLiteBusinessRepo) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	query := `SELECT id, name, category, preferred_mode, precision_score, created_at, updated_at
		FROM businesses WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteBusinessRepo) List(ctx context.Context) ([]*domain.Business, error) {
	query := `SELECT id, name, category, preferred_mode, precision_score, created_at, updated_at
		FROM businesses ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}
	defer rows.Close()

	var out []*domain.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteBusinessRepo) Update(ctx context.Context, b *domain.Business) error {
	query := `UPDATE businesses SET name = ?, category = ?, preferred_mode = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Name, b.Category, string(b.PreferredMode), nowUTC(), b.ID)
	if err != nil {
		return fmt.Errorf("updating business: %w", err)
	}
	return requireRow(res, "business")
}

func (r *SQLiteBusinessRepo) UpdateScore(ctx context.Context, id string, score int) error {
	query := `UPDATE businesses SET precision_score = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, score, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating precision score: %w", err)
	}
	return requireRow(res, "business")
}

func (r *SQLiteBusinessRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting business: %w", err)
	}
	return requireRow(res, "business")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteBusinessRepo) scanOne(row *sql.Row) (*domain.Business, error) {
	b, err := scanBusiness(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("business: %w", ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func scanBusiness(row rowScanner) (*domain.Business, error) {
	var b domain.Business
	var mode, createdAt, updatedAt string
	if err := row.Scan(&b.ID, &b.Name, &b.Category, &mode, &b.PrecisionScore, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning business: %w", err)
	}
	b.PreferredMode = domain.Mode(mode)
	b.CreatedAt = parseTime(createdAt)
	b.UpdatedAt = parseTime(updatedAt)
	return &b, nil
}

func requireRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
