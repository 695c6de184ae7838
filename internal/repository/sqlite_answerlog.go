package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
)

// SQLiteAnswerLogRepo implements AnswerLogRepo using a SQLite database.
type SQLiteAnswerLogRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerLogRepo creates a new SQLiteAnswerLogRepo.
func NewSQLiteAnswerLogRepo(conn db.DBTX) *SQLiteAnswerLogRepo {
	return &SQLiteAnswerLogRepo{db: conn}
}

func (r *SQLiteAnswerLogRepo) Append(ctx context.Context, rec *domain.AnswerRecord) error {
	raw, err := encodeValue(rec.Value)
	if err != nil {
		return err
	}
	query := `INSERT INTO answer_log (id, business_id, question_id, path, value, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.BusinessID, rec.QuestionID, rec.StorePath, raw,
		rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("appending answer log: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerLogRepo) ListByBusiness(ctx context.Context, businessID string) ([]*domain.AnswerRecord, error) {
	query := `SELECT id, business_id, question_id, path, value, created_at
		FROM answer_log WHERE business_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing answer log: %w", err)
	}
	defer rows.Close()

	var out []*domain.AnswerRecord
	for rows.Next() {
		var rec domain.AnswerRecord
		var raw, createdAt string
		if err := rows.Scan(&rec.ID, &rec.BusinessID, &rec.QuestionID, &rec.StorePath, &raw, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning answer log: %w", err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, err
		}
		rec.Value = value
		rec.CreatedAt = parseTime(createdAt)
		out = append(out, &rec)
	}
	return out, rows.Err()
}
