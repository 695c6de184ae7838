package service

import (
	"context"

	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
)

type BusinessService interface {
	Create(ctx context.Context, b *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context) ([]*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) error
	Delete(ctx context.Context, id string) error
	// Profile returns the stored flat profile of a business.
	Profile(ctx context.Context, id string) (domain.ProfileMap, error)
}

type OnboardingService interface {
	ActiveQuestions(ctx context.Context, req contract.ActiveQuestionsRequest) (*contract.ActiveQuestionsResponse, error)
	RecordAnswer(ctx context.Context, req contract.RecordAnswerRequest) (*contract.RecordAnswerResponse, error)
	Score(ctx context.Context, req contract.ScoreRequest) (*contract.ScoreResponse, error)
}
