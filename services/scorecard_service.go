package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/repositories"
	"github.com/birdiehq/scorekeeper/scoring"
)

type ScorecardService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.CalcuttaTeam, error)
	GetAllTeams(ctx context.Context) ([]models.CalcuttaTeam, error)
	DeleteTeam(ctx context.Context, id int) error
	CalcuttaScorecards(ctx context.Context, day models.TournamentDay) ([]models.CalcuttaScorecard, error)
}

type CreateTeamInput struct {
	Name      string `json:"name"`
	PlayerIDs []int  `json:"player_ids"`
}

type scorecardService struct {
	calcuttaRepo repositories.CalcuttaRepository
	roundRepo    repositories.RoundRepository
}

func NewScorecardService(calcuttaRepo repositories.CalcuttaRepository, roundRepo repositories.RoundRepository) ScorecardService {
	return &scorecardService{
		calcuttaRepo: calcuttaRepo,
		roundRepo:    roundRepo,
	}
}

func (s *scorecardService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.CalcuttaTeam, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	if len(input.PlayerIDs) < 2 {
		return nil, ErrTeamMembersRequired
	}

	team := &models.CalcuttaTeam{Name: name}
	if err := s.calcuttaRepo.CreateTeam(ctx, team, input.PlayerIDs); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		case errors.Is(err, repositories.ErrTeamMemberConflict):
			return nil, ErrTeamMemberConflict
		case errors.Is(err, repositories.ErrTeamMemberMissing):
			return nil, ErrPlayerNotFound
		default:
			return nil, fmt.Errorf("failed to create calcutta team: %w", err)
		}
	}

	created, err := s.calcuttaRepo.GetTeamByID(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload calcutta team %d: %w", team.ID, err)
	}
	return created, nil
}

func (s *scorecardService) GetAllTeams(ctx context.Context) ([]models.CalcuttaTeam, error) {
	teams, err := s.calcuttaRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get calcutta teams: %w", err)
	}
	if teams == nil {
		return []models.CalcuttaTeam{}, nil
	}
	return teams, nil
}

func (s *scorecardService) DeleteTeam(ctx context.Context, id int) error {
	if err := s.calcuttaRepo.DeleteTeam(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete calcutta team %d: %w", id, err)
	}
	return nil
}

// CalcuttaScorecards builds the team view for one day: a row per player with
// their card and totals, then the best-ball team row. Players without a
// recorded round show an all-unscored card.
func (s *scorecardService) CalcuttaScorecards(ctx context.Context, day models.TournamentDay) ([]models.CalcuttaScorecard, error) {
	if !day.Valid() || day == models.DayAll {
		return nil, ErrInvalidDay
	}

	teams, err := s.calcuttaRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get calcutta teams: %w", err)
	}

	scorecards := make([]models.CalcuttaScorecard, 0, len(teams))
	for _, team := range teams {
		card, buildErr := s.buildScorecard(ctx, team, day)
		if buildErr != nil {
			return nil, buildErr
		}
		scorecards = append(scorecards, *card)
	}
	return scorecards, nil
}

func (s *scorecardService) buildScorecard(ctx context.Context, team models.CalcuttaTeam, day models.TournamentDay) (*models.CalcuttaScorecard, error) {
	rows := make([]models.ScorecardRow, 0, len(team.Players)+1)
	cards := make([][]int, 0, len(team.Players))

	for _, player := range team.Players {
		rounds, err := s.roundRepo.ListByPlayerAndDay(ctx, player.ID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to get rounds for player %d on %s: %w", player.ID, day, err)
		}

		scores := make([]int, scoring.HolesPerRound)
		if len(rounds) > 0 {
			// One round per player and day is enforced at submission.
			copy(scores, rounds[0].HoleScores)
		}
		cards = append(cards, scores)

		totals := scoring.Aggregate(scores, player.Handicap)
		net := totals.Net
		rows = append(rows, models.ScorecardRow{
			Name:   player.FullName(),
			Scores: scores,
			Out:    totals.Out,
			In:     totals.In,
			Gross:  totals.Gross,
			Net:    &net,
		})
	}

	teamScores := scoring.BestBall(cards)
	teamTotals := scoring.Aggregate(teamScores, 0)
	rows = append(rows, models.ScorecardRow{
		Name:        team.Name,
		Scores:      teamScores,
		Out:         teamTotals.Out,
		In:          teamTotals.In,
		Gross:       teamTotals.Gross,
		IsTeamScore: true,
	})

	return &models.CalcuttaScorecard{
		TeamID:   team.ID,
		TeamName: team.Name,
		Day:      day,
		Rows:     rows,
	}, nil
}
