// Package scoring holds the pure stroke-play arithmetic: front/back nine
// sums, gross and net totals, best-ball team lines and leaderboard ordering.
// It knows nothing about storage or transport.
package scoring

// HolesPerRound is fixed: holes 1-9 are the front nine (out),
// 10-18 the back nine (in).
const (
	HolesPerRound = 18
	FrontNine     = 9

	// MaxHoleScore bounds a single-hole entry at submission time.
	MaxHoleScore = 99
)

// Unscored holes are represented as 0 in a score slice. Sums skip them so a
// partially entered card still shows running totals; Complete reports
// whether the card can be treated as final.

// Out returns the front-nine total (holes 1-9) over the entered holes.
func Out(scores []int) int {
	return sumRange(scores, 0, FrontNine)
}

// In returns the back-nine total (holes 10-18) over the entered holes.
func In(scores []int) int {
	return sumRange(scores, FrontNine, HolesPerRound)
}

// Gross returns the 18-hole total over the entered holes.
func Gross(scores []int) int {
	return Out(scores) + In(scores)
}

// Net returns gross minus handicap. The result may be negative when the
// handicap exceeds the gross total.
func Net(scores []int, handicap int) int {
	return Gross(scores) - handicap
}

// Complete reports whether all 18 holes carry a positive score.
func Complete(scores []int) bool {
	if len(scores) != HolesPerRound {
		return false
	}
	for _, s := range scores {
		if s <= 0 {
			return false
		}
	}
	return true
}

// Totals bundles the four aggregates for one card.
type Totals struct {
	Out      int  `json:"out"`
	In       int  `json:"in"`
	Gross    int  `json:"gross"`
	Net      int  `json:"net"`
	Complete bool `json:"complete"`
}

// Aggregate computes all totals for a card in one pass.
func Aggregate(scores []int, handicap int) Totals {
	out := Out(scores)
	in := In(scores)
	return Totals{
		Out:      out,
		In:       in,
		Gross:    out + in,
		Net:      out + in - handicap,
		Complete: Complete(scores),
	}
}

func sumRange(scores []int, from, to int) int {
	if to > len(scores) {
		to = len(scores)
	}
	total := 0
	for i := from; i < to; i++ {
		if scores[i] > 0 {
			total += scores[i]
		}
	}
	return total
}
