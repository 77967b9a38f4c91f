package services

import (
	"context"
	"errors"
	"testing"

	"github.com/birdiehq/scorekeeper/models"
)

// TestStandingsFiltersDivisionAndSorts ranks one division's rounds low net first.
func TestStandingsFiltersDivisionAndSorts(t *testing.T) {
	low := &models.Player{ID: 1, FirstName: "Ada", LastName: "Kerr", Division: models.DivisionA, Handicap: 12}
	high := &models.Player{ID: 2, FirstName: "Ben", LastName: "Ford", Division: models.DivisionA, Handicap: 2}
	other := &models.Player{ID: 3, FirstName: "Cam", LastName: "Dunn", Division: models.DivisionB, Handicap: 8}
	playerRepo := newFakePlayerRepo(low, high, other)
	roundRepo := newFakeRoundRepo(playerRepo)

	rounds := NewRoundService(roundRepo, playerRepo, nil, nil, nil)
	leaderboard := NewLeaderboardService(roundRepo, nil, nil)

	ctx := context.Background()
	steady := []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4} // gross 72
	for _, playerID := range []int{1, 2, 3} {
		if _, err := rounds.CreateRound(ctx, CreateRoundInput{
			PlayerID:   playerID,
			Day:        models.DayFriday,
			HoleScores: steady,
		}); err != nil {
			t.Fatalf("CreateRound for player %d returned error: %v", playerID, err)
		}
	}

	standings, err := leaderboard.Standings(ctx, models.DayFriday, models.DivisionA)
	if err != nil {
		t.Fatalf("Standings returned error: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 division A standings, got %d", len(standings))
	}
	// Same gross, so the bigger handicap leads on net: 60 vs 70.
	if standings[0].PlayerID != 1 || standings[0].Net != 60 {
		t.Fatalf("expected player 1 leading on net 60, got player %d net %d", standings[0].PlayerID, standings[0].Net)
	}
	if standings[1].PlayerID != 2 || standings[1].Net != 70 {
		t.Fatalf("expected player 2 second on net 70, got player %d net %d", standings[1].PlayerID, standings[1].Net)
	}
}

// TestStandingsOneEntryPerPlayer ensures a player holding an ALL round
// cannot end up ranked twice on a single day's board.
func TestStandingsOneEntryPerPlayer(t *testing.T) {
	player := &models.Player{ID: 1, FirstName: "Ada", LastName: "Kerr", Division: models.DivisionA, Handicap: 12}
	playerRepo := newFakePlayerRepo(player)
	roundRepo := newFakeRoundRepo(playerRepo)

	rounds := NewRoundService(roundRepo, playerRepo, nil, nil, nil)
	leaderboard := NewLeaderboardService(roundRepo, nil, nil)

	ctx := context.Background()
	steady := []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	if _, err := rounds.CreateRound(ctx, CreateRoundInput{
		PlayerID: 1, Day: models.DayAll, HoleScores: steady,
	}); err != nil {
		t.Fatalf("CreateRound ALL returned error: %v", err)
	}
	if _, err := rounds.CreateRound(ctx, CreateRoundInput{
		PlayerID: 1, Day: models.DayFriday, HoleScores: steady,
	}); !errors.Is(err, ErrRoundConflict) {
		t.Fatalf("expected ErrRoundConflict, got %v", err)
	}

	standings, err := leaderboard.Standings(ctx, models.DayFriday, models.DivisionA)
	if err != nil {
		t.Fatalf("Standings returned error: %v", err)
	}
	if len(standings) != 1 {
		t.Fatalf("expected 1 standing for the player, got %d", len(standings))
	}
}

// TestStandingsRejectsInvalidInput validates day and division.
func TestStandingsRejectsInvalidInput(t *testing.T) {
	playerRepo := newFakePlayerRepo()
	leaderboard := NewLeaderboardService(newFakeRoundRepo(playerRepo), nil, nil)

	ctx := context.Background()
	if _, err := leaderboard.Standings(ctx, models.DayAll, models.DivisionA); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	if _, err := leaderboard.Standings(ctx, models.DayFriday, "C"); !errors.Is(err, ErrInvalidDivision) {
		t.Fatalf("expected ErrInvalidDivision, got %v", err)
	}
}

// TestStandingsAllDays returns an entry per playable day.
func TestStandingsAllDays(t *testing.T) {
	player := &models.Player{ID: 1, FirstName: "Ada", LastName: "Kerr", Division: models.DivisionA, Handicap: 12}
	playerRepo := newFakePlayerRepo(player)
	roundRepo := newFakeRoundRepo(playerRepo)

	rounds := NewRoundService(roundRepo, playerRepo, nil, nil, nil)
	leaderboard := NewLeaderboardService(roundRepo, nil, nil)

	ctx := context.Background()
	if _, err := rounds.CreateRound(ctx, CreateRoundInput{
		PlayerID:   1,
		Day:        models.DayAll,
		HoleScores: []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4},
	}); err != nil {
		t.Fatalf("CreateRound returned error: %v", err)
	}

	byDay, err := leaderboard.StandingsAllDays(ctx, models.DivisionA)
	if err != nil {
		t.Fatalf("StandingsAllDays returned error: %v", err)
	}
	if len(byDay) != len(models.PlayableDays) {
		t.Fatalf("expected %d days, got %d", len(models.PlayableDays), len(byDay))
	}
	for _, day := range models.PlayableDays {
		standings, ok := byDay[day]
		if !ok {
			t.Fatalf("missing standings for day %s", day)
		}
		// An ALL round counts on every day.
		if len(standings) != 1 {
			t.Fatalf("day %s: expected 1 standing, got %d", day, len(standings))
		}
	}
}
