package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/birdiehq/scorekeeper/live"
	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/repositories"
	"github.com/birdiehq/scorekeeper/scoring"
	"golang.org/x/sync/errgroup"
)

type LeaderboardService interface {
	Standings(ctx context.Context, day models.TournamentDay, division models.Division) ([]scoring.Standing, error)
	StandingsAllDays(ctx context.Context, division models.Division) (map[models.TournamentDay][]scoring.Standing, error)
	BroadcastStandings(ctx context.Context) error
}

type leaderboardService struct {
	roundRepo repositories.RoundRepository
	hub       *live.Hub
	logger    *slog.Logger
}

func NewLeaderboardService(roundRepo repositories.RoundRepository, hub *live.Hub, logger *slog.Logger) LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &leaderboardService{
		roundRepo: roundRepo,
		hub:       hub,
		logger:    logger,
	}
}

// Standings ranks all rounds recorded for the day within one division,
// low net first.
func (s *leaderboardService) Standings(ctx context.Context, day models.TournamentDay, division models.Division) ([]scoring.Standing, error) {
	if !day.Valid() || day == models.DayAll {
		return nil, ErrInvalidDay
	}
	if !division.Valid() {
		return nil, ErrInvalidDivision
	}

	rounds, err := s.roundRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds for day %s: %w", day, err)
	}

	standings := make([]scoring.Standing, 0, len(rounds))
	for _, round := range rounds {
		if round.Player == nil || round.Player.Division != division {
			continue
		}
		standings = append(standings, scoring.NewStanding(
			round.Player.ID,
			round.Player.FullName(),
			string(round.Player.Division),
			round.Player.Handicap,
			round.HoleScores,
		))
	}
	scoring.SortStandings(standings)
	return standings, nil
}

// StandingsAllDays fans the three day queries out in parallel.
func (s *leaderboardService) StandingsAllDays(ctx context.Context, division models.Division) (map[models.TournamentDay][]scoring.Standing, error) {
	if !division.Valid() {
		return nil, ErrInvalidDivision
	}

	var mu sync.Mutex
	result := make(map[models.TournamentDay][]scoring.Standing, len(models.PlayableDays))

	g, gCtx := errgroup.WithContext(ctx)
	for _, day := range models.PlayableDays {
		day := day
		g.Go(func() error {
			standings, err := s.Standings(gCtx, day, division)
			if err != nil {
				return err
			}
			mu.Lock()
			result[day] = standings
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// BroadcastStandings recomputes every division's standings and pushes them
// to the matching live rooms. Called by the scheduler and safe to run often.
func (s *leaderboardService) BroadcastStandings(ctx context.Context) error {
	for _, division := range []models.Division{models.DivisionA, models.DivisionB} {
		standings, err := s.StandingsAllDays(ctx, division)
		if err != nil {
			return fmt.Errorf("failed to compute standings for division %s: %w", division, err)
		}
		s.hub.BroadcastToRoom(string(division), live.Message{
			Type:    live.MessageLeaderboardUpdated,
			Payload: standings,
		})
		s.logger.Debug("broadcast standings", slog.String("division", string(division)))
	}
	return nil
}
