package service

import (
	"context"

	"jerseykraft/internal/entity"
	"jerseykraft/internal/repository"
)

// TeamService imports rosters and persists teams.
type TeamService struct {
	store Store
}

// NewTeamService creates a new instance of TeamService.
func NewTeamService(store Store) *TeamService {
	return &TeamService{store: store}
}

// ImportRoster parses an uploaded roster CSV and persists it as a Team
// under the caller-supplied team name and sport. It returns the new team id
// and the number of imported roster entries.
func (s *TeamService) ImportRoster(ctx context.Context, teamName, sport string, csvData []byte) (string, int, error) {
	roster, err := ParseRoster(csvData)
	if err != nil {
		return "", 0, err
	}

	team := entity.Team{TeamName: teamName, Sport: sport, Roster: roster}
	team.ApplyDefaults()

	id, err := s.store.Create(ctx, repository.CollTeams, &team)
	if err != nil {
		logger.Error().Err(err).Msgf("Error importing team %s", teamName)
		return "", 0, err
	}
	return id, len(roster), nil
}
