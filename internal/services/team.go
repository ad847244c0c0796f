package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch teams", err)
	}
	out := make([]dto.TeamDTO, 0, len(teams))
	for i := range teams {
		out = append(out, *teamToDTO(&teams[i]))
	}
	return out, nil
}
