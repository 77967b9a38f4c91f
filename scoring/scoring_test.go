package scoring

import "testing"

// TestAggregateFullCard checks the four totals against a hand-computed card.
func TestAggregateFullCard(t *testing.T) {
	scores := []int{4, 5, 3, 4, 5, 4, 3, 5, 4, 4, 4, 5, 3, 4, 5, 4, 3, 4}

	got := Aggregate(scores, 10)
	if got.Out != 37 {
		t.Fatalf("expected out 37, got %d", got.Out)
	}
	if got.In != 36 {
		t.Fatalf("expected in 36, got %d", got.In)
	}
	if got.Gross != 73 {
		t.Fatalf("expected gross 73, got %d", got.Gross)
	}
	if got.Net != 63 {
		t.Fatalf("expected net 63, got %d", got.Net)
	}
	if !got.Complete {
		t.Fatal("expected card to be complete")
	}
}

// TestGrossEqualsOutPlusIn holds for every card, complete or not.
func TestGrossEqualsOutPlusIn(t *testing.T) {
	cards := [][]int{
		{4, 5, 3, 4, 5, 4, 3, 5, 4, 4, 4, 5, 3, 4, 5, 4, 3, 4},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		{4, 0, 3, 0, 5, 4, 0, 5, 4, 4, 0, 5, 3, 4, 0, 4, 3, 0},
		make([]int, 18),
	}
	for i, card := range cards {
		if Gross(card) != Out(card)+In(card) {
			t.Fatalf("card %d: gross %d != out %d + in %d", i, Gross(card), Out(card), In(card))
		}
	}
}

// TestNetCanGoNegative ensures net is never clamped at zero.
func TestNetCanGoNegative(t *testing.T) {
	scores := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	if got := Net(scores, 36); got != -18 {
		t.Fatalf("expected net -18, got %d", got)
	}
}

// TestIncompleteCardSkipsUnscoredHoles treats zeros as not-yet-entered.
func TestIncompleteCardSkipsUnscoredHoles(t *testing.T) {
	scores := make([]int, 18)
	scores[0] = 4
	scores[8] = 5
	scores[9] = 3
	scores[17] = 6

	if got := Out(scores); got != 9 {
		t.Fatalf("expected out 9, got %d", got)
	}
	if got := In(scores); got != 9 {
		t.Fatalf("expected in 9, got %d", got)
	}
	if Complete(scores) {
		t.Fatal("expected incomplete card")
	}
}

// TestCompleteRejectsShortCards guards against malformed slices.
func TestCompleteRejectsShortCards(t *testing.T) {
	if Complete([]int{4, 4, 4}) {
		t.Fatal("expected short card to be incomplete")
	}
	if Complete(nil) {
		t.Fatal("expected nil card to be incomplete")
	}
}

// TestBestBallTakesLowestEnteredScore covers the calcutta team line.
func TestBestBallTakesLowestEnteredScore(t *testing.T) {
	a := []int{4, 5, 3, 4, 5, 4, 3, 5, 4, 4, 4, 5, 3, 4, 5, 4, 3, 4}
	b := []int{5, 4, 4, 4, 4, 5, 4, 4, 5, 3, 5, 4, 4, 3, 6, 5, 4, 3}

	team := BestBall([][]int{a, b})
	want := []int{4, 4, 3, 4, 4, 4, 3, 4, 4, 3, 4, 4, 3, 3, 5, 4, 3, 3}
	for i := range want {
		if team[i] != want[i] {
			t.Fatalf("hole %d: expected %d, got %d", i+1, want[i], team[i])
		}
	}
}

// TestBestBallIgnoresUnscoredHoles keeps zeros out of the minimum.
func TestBestBallIgnoresUnscoredHoles(t *testing.T) {
	a := make([]int, 18)
	b := make([]int, 18)
	a[0] = 5
	b[3] = 4

	team := BestBall([][]int{a, b})
	if team[0] != 5 {
		t.Fatalf("hole 1: expected 5, got %d", team[0])
	}
	if team[3] != 4 {
		t.Fatalf("hole 4: expected 4, got %d", team[3])
	}
	if team[1] != 0 {
		t.Fatalf("hole 2: expected unscored, got %d", team[1])
	}
}

// TestBestBallNoCards returns an all-unscored line.
func TestBestBallNoCards(t *testing.T) {
	team := BestBall(nil)
	if len(team) != HolesPerRound {
		t.Fatalf("expected %d holes, got %d", HolesPerRound, len(team))
	}
	for i, s := range team {
		if s != 0 {
			t.Fatalf("hole %d: expected 0, got %d", i+1, s)
		}
	}
}
