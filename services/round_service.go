package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/birdiehq/scorekeeper/live"
	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/repositories"
	"github.com/birdiehq/scorekeeper/scoring"
)

var ErrRoundCreationFailed = errors.New("failed to record round")

type RoundService interface {
	CreateRound(ctx context.Context, input CreateRoundInput) (*models.Round, error)
	GetRoundByID(ctx context.Context, id int) (*models.Round, error)
	ListRoundsByDay(ctx context.Context, day models.TournamentDay) ([]models.Round, error)
	ListRoundsByPlayer(ctx context.Context, playerID int) ([]models.Round, error)
}

type CreateRoundInput struct {
	PlayerID   int                  `json:"player_id"`
	Day        models.TournamentDay `json:"day"`
	HoleScores []int                `json:"gross_holes"`
}

type roundService struct {
	roundRepo  repositories.RoundRepository
	playerRepo repositories.PlayerRepository
	hub        *live.Hub
	email      *EmailService
	logger     *slog.Logger
}

func NewRoundService(
	roundRepo repositories.RoundRepository,
	playerRepo repositories.PlayerRepository,
	hub *live.Hub,
	email *EmailService,
	logger *slog.Logger,
) RoundService {
	if logger == nil {
		logger = slog.Default()
	}
	return &roundService{
		roundRepo:  roundRepo,
		playerRepo: playerRepo,
		hub:        hub,
		email:      email,
		logger:     logger,
	}
}

// CreateRound validates the submitted card, persists it, and pushes the
// result to live scoreboards. Validation failures come back as FieldErrors
// so the entry form can highlight individual inputs.
func (s *roundService) CreateRound(ctx context.Context, input CreateRoundInput) (*models.Round, error) {
	fieldErrs := FieldErrors{}

	if input.PlayerID <= 0 {
		fieldErrs["player_id"] = "a player must be selected"
	}
	if !input.Day.Valid() {
		fieldErrs["day"] = "day must be one of FRI, SAT, SUN, ALL"
	}
	if len(input.HoleScores) != scoring.HolesPerRound {
		fieldErrs["gross_holes"] = fmt.Sprintf("exactly %d hole scores are required", scoring.HolesPerRound)
	} else {
		for i, score := range input.HoleScores {
			if score <= 0 || score > scoring.MaxHoleScore {
				fieldErrs["gross_holes"] = fmt.Sprintf("hole %d score must be between 1 and %d", i+1, scoring.MaxHoleScore)
				break
			}
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	player, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, FieldErrors{"player_id": "selected player does not exist"}
		}
		return nil, fmt.Errorf("failed to look up player %d: %w", input.PlayerID, err)
	}

	// An ALL round counts on every day, so it overlaps any existing round
	// for the player, and any existing ALL round blocks a day-specific
	// submission. The unique constraint only catches exact (player, day)
	// duplicates, so the overlap check lives here.
	var existing []models.Round
	if input.Day == models.DayAll {
		existing, err = s.roundRepo.ListByPlayer(ctx, player.ID)
	} else {
		existing, err = s.roundRepo.ListByPlayerAndDay(ctx, player.ID, input.Day)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check existing rounds for player %d: %w", player.ID, err)
	}
	if len(existing) > 0 {
		return nil, ErrRoundConflict
	}

	round := &models.Round{
		PlayerID:   player.ID,
		Day:        input.Day,
		HoleScores: input.HoleScores,
	}

	if err := s.roundRepo.Create(ctx, round); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRoundAlreadyExists):
			return nil, ErrRoundConflict
		case errors.Is(err, repositories.ErrRoundPlayerMissing):
			return nil, ErrPlayerNotFound
		default:
			return nil, fmt.Errorf("%w: %w", ErrRoundCreationFailed, err)
		}
	}
	round.Player = player

	s.notify(round, player)

	return round, nil
}

// notify pushes the round to the player's division room and the calcutta
// room, and sends the confirmation email. None of it is fatal to the submit.
func (s *roundService) notify(round *models.Round, player *models.Player) {
	totals := scoring.Aggregate(round.HoleScores, player.Handicap)

	s.hub.BroadcastToRoom(string(player.Division), live.Message{
		Type: live.MessageRoundRecorded,
		Payload: map[string]interface{}{
			"round":  round,
			"totals": totals,
		},
	})
	s.hub.BroadcastToRoom(live.RoomCalcutta, live.Message{
		Type:    live.MessageRoundRecorded,
		Payload: map[string]interface{}{"round": round},
	})

	if s.email.Enabled() {
		if err := s.email.SendRoundConfirmation(player.FullName(), round.Day, totals); err != nil {
			s.logger.Error("failed to send round confirmation email",
				slog.Int("round_id", round.ID), slog.Any("error", err))
		}
	}
}

func (s *roundService) GetRoundByID(ctx context.Context, id int) (*models.Round, error) {
	round, err := s.roundRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRoundNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round %d: %w", id, err)
	}
	return round, nil
}

func (s *roundService) ListRoundsByDay(ctx context.Context, day models.TournamentDay) ([]models.Round, error) {
	if !day.Valid() || day == models.DayAll {
		return nil, ErrInvalidDay
	}
	rounds, err := s.roundRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds for day %s: %w", day, err)
	}
	return rounds, nil
}

func (s *roundService) ListRoundsByPlayer(ctx context.Context, playerID int) ([]models.Round, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to look up player %d: %w", playerID, err)
	}
	rounds, err := s.roundRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds for player %d: %w", playerID, err)
	}
	return rounds, nil
}
