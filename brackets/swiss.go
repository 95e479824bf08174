package brackets

import "github.com/Dosada05/swiss-tournament/models"

// SwissGenerator pairs neighbours in the standings: first with second, third with
// fourth and so on. It does not avoid rematches and never hands out a bye.
type SwissGenerator struct{}

func NewSwissGenerator() PairingGenerator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

// GeneratePairings fails with *OddPlayerCountError instead of leaving the last
// player out. No players yields no pairings.
func (g *SwissGenerator) GeneratePairings(standings []models.Standing) ([]models.Pairing, error) {
	if len(standings)%2 != 0 {
		return nil, &OddPlayerCountError{Count: len(standings)}
	}

	pairings := make([]models.Pairing, 0, len(standings)/2)
	for i := 0; i < len(standings); i += 2 {
		p1, p2 := standings[i], standings[i+1]
		pairings = append(pairings, models.Pairing{
			Player1ID:   p1.ID,
			Player1Name: p1.Name,
			Player2ID:   p2.ID,
			Player2Name: p2.Name,
		})
	}
	return pairings, nil
}
