package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/google/uuid"
)

type businessService struct {
	businesses repository.BusinessRepo
	profiles   repository.ProfileRepo
}

func NewBusinessService(businesses repository.BusinessRepo, profiles repository.ProfileRepo) BusinessService {
	return &businessService{businesses: businesses, profiles: profiles}
}

func (s *businessService) Create(ctx context.Context, b *domain.Business) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.PreferredMode == "" {
		b.PreferredMode = domain.ModeQuick
	}
	if !domain.ValidRequestModes[b.PreferredMode] {
		return fmt.Errorf("preferred mode %q is not requestable", b.PreferredMode)
	}
	return s.businesses.Create(ctx, b)
}

func (s *businessService) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	return s.businesses.GetByID(ctx, id)
}

func (s *businessService) List(ctx context.Context) ([]*domain.Business, error) {
	return s.businesses.List(ctx)
}

func (s *businessService) Update(ctx context.Context, b *domain.Business) error {
	if !domain.ValidRequestModes[b.PreferredMode] {
		return fmt.Errorf("preferred mode %q is not requestable", b.PreferredMode)
	}
	b.UpdatedAt = time.Now().UTC()
	return s.businesses.Update(ctx, b)
}

func (s *businessService) Delete(ctx context.Context, id string) error {
	return s.businesses.Delete(ctx, id)
}

func (s *businessService) Profile(ctx context.Context, id string) (domain.ProfileMap, error) {
	if _, err := s.businesses.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.profiles.Get(ctx, id)
}
