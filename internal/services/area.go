package services

import (
	"context"
	"fmt"
	"strings"

	"invitationtracker/internal/domain"
)

type areaService struct {
	areaRepo domain.AreaRepository
}

// NewAreaService creates an AreaService with the given repository.
func NewAreaService(areaRepo domain.AreaRepository) domain.AreaService {
	return &areaService{areaRepo: areaRepo}
}

func (s *areaService) ListAreas(ctx context.Context) ([]*domain.Area, error) {
	areas, err := s.areaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	if areas == nil {
		areas = []*domain.Area{}
	}
	return areas, nil
}

func (s *areaService) CreateArea(ctx context.Context, name string) (*domain.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	area := domain.NewArea(name)
	if err := s.areaRepo.Create(ctx, area); err != nil {
		return nil, fmt.Errorf("create area: %w", err)
	}
	return area, nil
}

// SeedAreas inserts domain.SeedAreaNames. Calling it twice duplicates every row.
func (s *areaService) SeedAreas(ctx context.Context) ([]*domain.Area, error) {
	areas, err := s.areaRepo.CreateMany(ctx, domain.SeedAreaNames)
	if err != nil {
		return nil, fmt.Errorf("seed areas: %w", err)
	}
	return areas, nil
}
