package services

import (
	"context"
	"fmt"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/repositories"
	"github.com/birdiehq/scorekeeper/scoring"
)

type HoleService interface {
	GetAllHoles(ctx context.Context) ([]models.Hole, error)
	UpdateHole(ctx context.Context, number int, input UpdateHoleInput) (*models.Hole, error)
}

type UpdateHoleInput struct {
	Par         int `json:"par"`
	StrokeIndex int `json:"handicap"`
}

type holeService struct {
	holeRepo repositories.HoleRepository
}

func NewHoleService(holeRepo repositories.HoleRepository) HoleService {
	return &holeService{holeRepo: holeRepo}
}

func (s *holeService) GetAllHoles(ctx context.Context) ([]models.Hole, error) {
	holes, err := s.holeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get holes: %w", err)
	}
	if holes == nil {
		return []models.Hole{}, nil
	}
	return holes, nil
}

func (s *holeService) UpdateHole(ctx context.Context, number int, input UpdateHoleInput) (*models.Hole, error) {
	if number < 1 || number > scoring.HolesPerRound {
		return nil, ErrHoleOutOfRange
	}
	if input.Par < 3 || input.Par > 6 {
		return nil, ErrHoleInvalidPar
	}
	if input.StrokeIndex < 1 || input.StrokeIndex > scoring.HolesPerRound {
		return nil, ErrHoleOutOfRange
	}

	hole := &models.Hole{
		Number:      number,
		Par:         input.Par,
		StrokeIndex: input.StrokeIndex,
	}
	if err := s.holeRepo.Upsert(ctx, hole); err != nil {
		return nil, fmt.Errorf("failed to update hole %d: %w", number, err)
	}
	return hole, nil
}
