package services

import (
	"context"
	"errors"
	"testing"

	"github.com/birdiehq/scorekeeper/models"
)

func fullCard() []int {
	return []int{4, 5, 3, 4, 5, 4, 3, 5, 4, 4, 4, 5, 3, 4, 5, 4, 3, 4}
}

func newRoundServiceForTest(players ...*models.Player) (RoundService, *fakeRoundRepo) {
	playerRepo := newFakePlayerRepo(players...)
	roundRepo := newFakeRoundRepo(playerRepo)
	// nil hub and email: broadcasts and mail are disabled in tests
	return NewRoundService(roundRepo, playerRepo, nil, nil, nil), roundRepo
}

// TestCreateRoundSuccess records a valid card and returns the joined player.
func TestCreateRoundSuccess(t *testing.T) {
	player := &models.Player{ID: 1, FirstName: "Sam", LastName: "Hill", Division: models.DivisionA, Handicap: 10}
	svc, repo := newRoundServiceForTest(player)

	round, err := svc.CreateRound(context.Background(), CreateRoundInput{
		PlayerID:   1,
		Day:        models.DayFriday,
		HoleScores: fullCard(),
	})
	if err != nil {
		t.Fatalf("CreateRound returned error: %v", err)
	}
	if round.ID == 0 {
		t.Fatal("expected round to be assigned an id")
	}
	if round.Player == nil || round.Player.ID != 1 {
		t.Fatal("expected round to carry the joined player")
	}
	if len(repo.rounds) != 1 {
		t.Fatalf("expected 1 stored round, got %d", len(repo.rounds))
	}
}

// TestCreateRoundRequiresPlayer blocks submission when no player is selected.
func TestCreateRoundRequiresPlayer(t *testing.T) {
	svc, _ := newRoundServiceForTest()

	_, err := svc.CreateRound(context.Background(), CreateRoundInput{
		PlayerID:   0,
		Day:        models.DayFriday,
		HoleScores: fullCard(),
	})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["player_id"]; !ok {
		t.Fatalf("expected player_id field error, got %v", fieldErrs)
	}
}

// TestCreateRoundRejectsNonPositiveScores blocks any hole score <= 0.
func TestCreateRoundRejectsNonPositiveScores(t *testing.T) {
	player := &models.Player{ID: 1, Division: models.DivisionA}
	svc, _ := newRoundServiceForTest(player)

	card := fullCard()
	card[7] = 0

	_, err := svc.CreateRound(context.Background(), CreateRoundInput{
		PlayerID:   1,
		Day:        models.DaySaturday,
		HoleScores: card,
	})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["gross_holes"]; !ok {
		t.Fatalf("expected gross_holes field error, got %v", fieldErrs)
	}
}

// TestCreateRoundRequiresEighteenScores rejects short and long cards.
func TestCreateRoundRequiresEighteenScores(t *testing.T) {
	player := &models.Player{ID: 1, Division: models.DivisionA}
	svc, _ := newRoundServiceForTest(player)

	for _, scores := range [][]int{fullCard()[:17], append(fullCard(), 4), nil} {
		_, err := svc.CreateRound(context.Background(), CreateRoundInput{
			PlayerID:   1,
			Day:        models.DayFriday,
			HoleScores: scores,
		})

		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors for %d scores, got %v", len(scores), err)
		}
		if _, ok := fieldErrs["gross_holes"]; !ok {
			t.Fatalf("expected gross_holes field error, got %v", fieldErrs)
		}
	}
}

// TestCreateRoundRejectsInvalidDay only accepts FRI, SAT, SUN, ALL.
func TestCreateRoundRejectsInvalidDay(t *testing.T) {
	player := &models.Player{ID: 1, Division: models.DivisionA}
	svc, _ := newRoundServiceForTest(player)

	_, err := svc.CreateRound(context.Background(), CreateRoundInput{
		PlayerID:   1,
		Day:        "MON",
		HoleScores: fullCard(),
	})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["day"]; !ok {
		t.Fatalf("expected day field error, got %v", fieldErrs)
	}
}

// TestCreateRoundUnknownPlayer reports the missing player as a field error.
func TestCreateRoundUnknownPlayer(t *testing.T) {
	svc, _ := newRoundServiceForTest()

	_, err := svc.CreateRound(context.Background(), CreateRoundInput{
		PlayerID:   42,
		Day:        models.DayFriday,
		HoleScores: fullCard(),
	})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["player_id"]; !ok {
		t.Fatalf("expected player_id field error, got %v", fieldErrs)
	}
}

// TestCreateRoundDuplicateDay maps the repo conflict to ErrRoundConflict.
func TestCreateRoundDuplicateDay(t *testing.T) {
	player := &models.Player{ID: 1, Division: models.DivisionB}
	svc, _ := newRoundServiceForTest(player)

	input := CreateRoundInput{PlayerID: 1, Day: models.DaySunday, HoleScores: fullCard()}
	if _, err := svc.CreateRound(context.Background(), input); err != nil {
		t.Fatalf("first CreateRound returned error: %v", err)
	}

	_, err := svc.CreateRound(context.Background(), input)
	if !errors.Is(err, ErrRoundConflict) {
		t.Fatalf("expected ErrRoundConflict, got %v", err)
	}
}

// TestCreateRoundAllDayOverlap blocks day-specific rounds once an ALL round
// exists, and an ALL round once any round exists. Without this a player
// would hold two rounds that both count on the same day.
func TestCreateRoundAllDayOverlap(t *testing.T) {
	player := &models.Player{ID: 1, Division: models.DivisionA}
	svc, _ := newRoundServiceForTest(player)
	ctx := context.Background()

	if _, err := svc.CreateRound(ctx, CreateRoundInput{
		PlayerID: 1, Day: models.DayAll, HoleScores: fullCard(),
	}); err != nil {
		t.Fatalf("CreateRound ALL returned error: %v", err)
	}

	_, err := svc.CreateRound(ctx, CreateRoundInput{
		PlayerID: 1, Day: models.DayFriday, HoleScores: fullCard(),
	})
	if !errors.Is(err, ErrRoundConflict) {
		t.Fatalf("expected ErrRoundConflict for FRI after ALL, got %v", err)
	}

	player2 := &models.Player{ID: 1, Division: models.DivisionA}
	svc2, _ := newRoundServiceForTest(player2)

	if _, err := svc2.CreateRound(ctx, CreateRoundInput{
		PlayerID: 1, Day: models.DayFriday, HoleScores: fullCard(),
	}); err != nil {
		t.Fatalf("CreateRound FRI returned error: %v", err)
	}

	_, err = svc2.CreateRound(ctx, CreateRoundInput{
		PlayerID: 1, Day: models.DayAll, HoleScores: fullCard(),
	})
	if !errors.Is(err, ErrRoundConflict) {
		t.Fatalf("expected ErrRoundConflict for ALL after FRI, got %v", err)
	}

	// Distinct days never overlap.
	if _, err := svc2.CreateRound(ctx, CreateRoundInput{
		PlayerID: 1, Day: models.DaySaturday, HoleScores: fullCard(),
	}); err != nil {
		t.Fatalf("CreateRound SAT after FRI returned error: %v", err)
	}
}

// TestListRoundsByDayRejectsAll requires a concrete day for listing.
func TestListRoundsByDayRejectsAll(t *testing.T) {
	svc, _ := newRoundServiceForTest()

	if _, err := svc.ListRoundsByDay(context.Background(), models.DayAll); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
}

// TestListRoundsByDayIncludesAllDayRounds folds ALL rounds into each day.
func TestListRoundsByDayIncludesAllDayRounds(t *testing.T) {
	player := &models.Player{ID: 1, Division: models.DivisionA}
	svc, _ := newRoundServiceForTest(player)

	if _, err := svc.CreateRound(context.Background(), CreateRoundInput{
		PlayerID:   1,
		Day:        models.DayAll,
		HoleScores: fullCard(),
	}); err != nil {
		t.Fatalf("CreateRound returned error: %v", err)
	}

	rounds, err := svc.ListRoundsByDay(context.Background(), models.DaySaturday)
	if err != nil {
		t.Fatalf("ListRoundsByDay returned error: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}
}
