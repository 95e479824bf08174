package brackets

import (
	"sort"

	"github.com/Dosada05/swiss-tournament/models"
)

// CalculateStandings ranks every player by wins, most first. Players with the same
// number of wins keep registration order (ascending id), so the result does not
// depend on the order the inputs were read in.
//
// Matches naming a player outside the snapshot are skipped. Neither slice is modified.
func CalculateStandings(players []models.Player, matches []models.Match) []models.Standing {
	standings := make([]models.Standing, 0, len(players))
	index := make(map[int]int, len(players))
	for _, p := range players {
		index[p.ID] = len(standings)
		standings = append(standings, models.Standing{ID: p.ID, Name: p.Name})
	}

	for _, m := range matches {
		w, okW := index[m.WinnerID]
		l, okL := index[m.LoserID]
		if !okW || !okL {
			continue
		}
		standings[w].Wins++
		standings[w].Matches++
		standings[l].Matches++
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].ID < standings[j].ID
	})
	return standings
}
