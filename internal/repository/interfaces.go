package repository

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
)

type BusinessRepo interface {
	Create(ctx context.Context, b *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context) ([]*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) error
	UpdateScore(ctx context.Context, id string, score int) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	// Get loads the full flat profile map for a business. A business with
	// no entries yields an empty, non-nil map.
	Get(ctx context.Context, businessID string) (domain.ProfileMap, error)
	// UpsertEntry writes one path (whole-value overwrite).
	UpsertEntry(ctx context.Context, businessID, path string, value any) error
	DeleteEntry(ctx context.Context, businessID, path string) error
}

type AnswerLogRepo interface {
	Append(ctx context.Context, rec *domain.AnswerRecord) error
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.AnswerRecord, error)
}
