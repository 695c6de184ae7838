package testutil

import (
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/google/uuid"
)

// Business options
type BusinessOption func(*domain.Business)

func WithCategory(c string) BusinessOption {
	return func(b *domain.Business) {
		b.Category = c
	}
}

func WithPreferredMode(m domain.Mode) BusinessOption {
	return func(b *domain.Business) {
		b.PreferredMode = m
	}
}

func WithPrecisionScore(s int) BusinessOption {
	return func(b *domain.Business) {
		b.PrecisionScore = s
	}
}

func NewTestBusiness(name string, opts ...BusinessOption) *domain.Business {
	now := time.Now().UTC()
	b := &domain.Business{
		ID:            uuid.New().String(),
		Name:          name,
		Category:      "gastro",
		PreferredMode: domain.ModeQuick,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AnswerRecord options
type AnswerOption func(*domain.AnswerRecord)

func WithAnswerCreatedAt(t time.Time) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.CreatedAt = t
	}
}

func NewTestAnswer(businessID, questionID, path string, value any, opts ...AnswerOption) *domain.AnswerRecord {
	a := &domain.AnswerRecord{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		QuestionID: questionID,
		StorePath:  path,
		Value:      value,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
