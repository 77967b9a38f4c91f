package scoring

import "testing"

// TestSortStandingsOrdersByNetThenGrossThenName checks the full tiebreak chain.
func TestSortStandingsOrdersByNetThenGrossThenName(t *testing.T) {
	standings := []Standing{
		{Name: "Walker", Gross: 80, Net: 70},
		{Name: "Adams", Gross: 75, Net: 65},
		{Name: "Young", Gross: 73, Net: 65},
		{Name: "Brown", Gross: 73, Net: 65},
	}

	SortStandings(standings)

	want := []string{"Brown", "Young", "Adams", "Walker"}
	for i, name := range want {
		if standings[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i+1, name, standings[i].Name)
		}
	}
}

// TestNewStandingCountsThru counts only entered holes.
func TestNewStandingCountsThru(t *testing.T) {
	scores := make([]int, 18)
	for i := 0; i < 11; i++ {
		scores[i] = 4
	}

	s := NewStanding(7, "Miller", "A", 8, scores)
	if s.Thru != 11 {
		t.Fatalf("expected thru 11, got %d", s.Thru)
	}
	if s.Gross != 44 {
		t.Fatalf("expected gross 44, got %d", s.Gross)
	}
	if s.Net != 36 {
		t.Fatalf("expected net 36, got %d", s.Net)
	}
}
