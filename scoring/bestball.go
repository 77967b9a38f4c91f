package scoring

// BestBall collapses several cards into a team line by taking the lowest
// entered score on each hole. Holes no team member has entered stay 0.
// This is the conventional calcutta team score.
func BestBall(cards [][]int) []int {
	team := make([]int, HolesPerRound)
	for _, card := range cards {
		for i := 0; i < HolesPerRound && i < len(card); i++ {
			s := card[i]
			if s <= 0 {
				continue
			}
			if team[i] == 0 || s < team[i] {
				team[i] = s
			}
		}
	}
	return team
}
