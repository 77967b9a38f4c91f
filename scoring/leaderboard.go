package scoring

import "sort"

// Standing is one leaderboard line. Thru counts entered holes so an
// in-progress card can still be ranked and displayed.
type Standing struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Division string `json:"division"`
	Handicap int    `json:"handicap"`
	Out      int    `json:"out"`
	In       int    `json:"in"`
	Gross    int    `json:"gross"`
	Net      int    `json:"net"`
	Thru     int    `json:"thru"`
}

// NewStanding builds a standing from a card and player facts.
func NewStanding(playerID int, name, division string, handicap int, scores []int) Standing {
	t := Aggregate(scores, handicap)
	thru := 0
	for _, s := range scores {
		if s > 0 {
			thru++
		}
	}
	return Standing{
		PlayerID: playerID,
		Name:     name,
		Division: division,
		Handicap: handicap,
		Out:      t.Out,
		In:       t.In,
		Gross:    t.Gross,
		Net:      t.Net,
		Thru:     thru,
	}
}

// SortStandings orders ascending by net, then gross, then name. Low net wins.
func SortStandings(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Net != standings[j].Net {
			return standings[i].Net < standings[j].Net
		}
		if standings[i].Gross != standings[j].Gross {
			return standings[i].Gross < standings[j].Gross
		}
		return standings[i].Name < standings[j].Name
	})
}
